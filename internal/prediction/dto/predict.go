package dto

import autherror "github.com/sandeep-rathod-2004/crop-recommendation-project/internal/errors"

// CropInput uses pointer fields so a missing value is distinguishable
// from an explicit zero. No range validation happens here: out-of-domain
// values are passed through to the model unchanged.
type CropInput struct {
	N           *float64 `json:"N"`
	P           *float64 `json:"P"`
	K           *float64 `json:"K"`
	Temperature *float64 `json:"temperature"`
	Humidity    *float64 `json:"humidity"`
	PH          *float64 `json:"ph"`
	Rainfall    *float64 `json:"rainfall"`
}

func (in *CropInput) Validate() error {
	for _, f := range []*float64{in.N, in.P, in.K, in.Temperature, in.Humidity, in.PH, in.Rainfall} {
		if f == nil {
			return autherror.ErrInvalidInput
		}
	}

	return nil
}

// Features returns the seven values in the order the model was trained on.
func (in *CropInput) Features() []float64 {
	return []float64{*in.N, *in.P, *in.K, *in.Temperature, *in.Humidity, *in.PH, *in.Rainfall}
}

type PredictOutput struct {
	RecommendedCrop string `json:"recommended_crop"`
}
