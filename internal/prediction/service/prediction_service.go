package service

import (
	"context"
	"time"

	autherror "github.com/sandeep-rathod-2004/crop-recommendation-project/internal/errors"
	"github.com/sandeep-rathod-2004/crop-recommendation-project/internal/model"
	"github.com/sandeep-rathod-2004/crop-recommendation-project/internal/prediction/domain"
	"github.com/sandeep-rathod-2004/crop-recommendation-project/internal/prediction/dto"
)

type PredictionService struct {
	repo      domain.PredictionRepository
	predictor model.Predictor
	now       func() time.Time
}

func NewPredictionService(repo domain.PredictionRepository, predictor model.Predictor) *PredictionService {
	return &PredictionService{
		repo:      repo,
		predictor: predictor,
		now:       time.Now,
	}
}

// Predict runs one synchronous inference and records the result before
// returning, so a successful response always implies a history entry.
func (s *PredictionService) Predict(ctx context.Context, input dto.CropInput, userEmail string) (*dto.PredictOutput, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	crop, err := s.predictor.Predict(input.Features())
	if err != nil {
		return nil, autherror.NewDependencyError("model inference failed", err)
	}

	record := &domain.Record{
		N:               *input.N,
		P:               *input.P,
		K:               *input.K,
		Temperature:     *input.Temperature,
		Humidity:        *input.Humidity,
		PH:              *input.PH,
		Rainfall:        *input.Rainfall,
		RecommendedCrop: crop,
		Timestamp:       s.now().Format(domain.TimestampLayout),
		UserEmail:       userEmail,
	}

	if err := s.repo.Insert(ctx, record); err != nil {
		return nil, autherror.NewDependencyError("failed to record prediction", err)
	}

	return &dto.PredictOutput{RecommendedCrop: crop}, nil
}

func (s *PredictionService) History(ctx context.Context, userEmail string) ([]domain.Record, error) {
	records, err := s.repo.FindByEmail(ctx, userEmail)
	if err != nil {
		return nil, autherror.NewDependencyError("failed to load history", err)
	}

	return records, nil
}
