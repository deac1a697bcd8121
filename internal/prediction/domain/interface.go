package domain

import "context"

type PredictionRepository interface {
	Insert(ctx context.Context, record *Record) error
	FindByEmail(ctx context.Context, email string) ([]Record, error)
	Count(ctx context.Context) (int64, error)
}
