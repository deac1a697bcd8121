package dto

type UserOutput struct {
	Email   string `json:"email"`
	IsAdmin bool   `json:"is_admin"`
}

type StatsOutput struct {
	TotalUsers       int64 `json:"total_users"`
	TotalPredictions int64 `json:"total_predictions"`
}
