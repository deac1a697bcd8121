package domain

// Record is appended once per successful prediction and never mutated or
// deleted afterwards. Timestamp uses the fixed layout "2006-01-02 15:04:05".
type Record struct {
	N               float64 `bson:"N" json:"N"`
	P               float64 `bson:"P" json:"P"`
	K               float64 `bson:"K" json:"K"`
	Temperature     float64 `bson:"temperature" json:"temperature"`
	Humidity        float64 `bson:"humidity" json:"humidity"`
	PH              float64 `bson:"ph" json:"ph"`
	Rainfall        float64 `bson:"rainfall" json:"rainfall"`
	RecommendedCrop string  `bson:"recommended_crop" json:"recommended_crop"`
	Timestamp       string  `bson:"timestamp" json:"timestamp"`
	UserEmail       string  `bson:"user_email" json:"user_email"`
}

const TimestampLayout = "2006-01-02 15:04:05"
