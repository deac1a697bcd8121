package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/sandeep-rathod-2004/crop-recommendation-project/internal/prediction/domain"
)

type MongoPredictionRepository struct {
	predictions *mongo.Collection
}

func NewMongoPredictionRepository(database *mongo.Database) *MongoPredictionRepository {
	return &MongoPredictionRepository{predictions: database.Collection("predictions")}
}

func (r *MongoPredictionRepository) Insert(ctx context.Context, record *domain.Record) error {
	_, err := r.predictions.InsertOne(ctx, record)
	if err != nil {
		return fmt.Errorf("failed to insert prediction: %w", err)
	}

	return nil
}

func (r *MongoPredictionRepository) FindByEmail(ctx context.Context, email string) ([]domain.Record, error) {
	projection := options.Find().SetProjection(bson.M{"_id": 0})
	cursor, err := r.predictions.Find(ctx, bson.M{"user_email": email}, projection)
	if err != nil {
		return nil, fmt.Errorf("failed to find predictions: %w", err)
	}

	records := make([]domain.Record, 0)
	if err := cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("failed to decode predictions: %w", err)
	}

	return records, nil
}

func (r *MongoPredictionRepository) Count(ctx context.Context) (int64, error) {
	count, err := r.predictions.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count predictions: %w", err)
	}

	return count, nil
}
