package domain

import (
	"context"
	"time"
)

type UserRepository interface {
	// GetByEmail returns (nil, nil) when no user has the given email.
	GetByEmail(ctx context.Context, email string) (*User, error)
	Create(ctx context.Context, user *User) error
	SetResetToken(ctx context.Context, email, token string, requestedAt time.Time) error
	UpdatePassword(ctx context.Context, email, passwordHash string) error
	GetAll(ctx context.Context) ([]User, error)
	Count(ctx context.Context) (int64, error)
}
