package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/sandeep-rathod-2004/crop-recommendation-project/internal/auth/domain"
	autherror "github.com/sandeep-rathod-2004/crop-recommendation-project/internal/errors"
)

type MongoUserRepository struct {
	users *mongo.Collection
}

func NewMongoUserRepository(database *mongo.Database) *MongoUserRepository {
	return &MongoUserRepository{users: database.Collection("users")}
}

func (r *MongoUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user domain.User
	err := r.users.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	return &user, nil
}

func (r *MongoUserRepository) Create(ctx context.Context, user *domain.User) error {
	_, err := r.users.InsertOne(ctx, user)
	if err != nil {
		// The unique email index catches the race where two concurrent
		// registrations both passed the existence check.
		if mongo.IsDuplicateKeyError(err) {
			return autherror.ErrEmailAlreadyInUse
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

func (r *MongoUserRepository) SetResetToken(ctx context.Context, email, token string, requestedAt time.Time) error {
	_, err := r.users.UpdateOne(ctx,
		bson.M{"email": email},
		bson.M{"$set": bson.M{"reset_token": token, "reset_requested_at": requestedAt}},
	)
	if err != nil {
		return fmt.Errorf("failed to set reset token: %w", err)
	}

	return nil
}

func (r *MongoUserRepository) UpdatePassword(ctx context.Context, email, passwordHash string) error {
	_, err := r.users.UpdateOne(ctx,
		bson.M{"email": email},
		bson.M{
			"$set":   bson.M{"password_hash": passwordHash},
			"$unset": bson.M{"reset_token": "", "reset_requested_at": ""},
		},
	)
	if err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	return nil
}

func (r *MongoUserRepository) GetAll(ctx context.Context) ([]domain.User, error) {
	projection := options.Find().SetProjection(bson.M{"_id": 0, "password_hash": 0})
	cursor, err := r.users.Find(ctx, bson.M{}, projection)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	var users []domain.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("failed to decode users: %w", err)
	}

	return users, nil
}

func (r *MongoUserRepository) Count(ctx context.Context) (int64, error) {
	count, err := r.users.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}

	return count, nil
}
