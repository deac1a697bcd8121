package service

import (
	"context"
	"fmt"
	"time"

	"github.com/sandeep-rathod-2004/crop-recommendation-project/config"
	"github.com/sandeep-rathod-2004/crop-recommendation-project/internal/auth/domain"
	"github.com/sandeep-rathod-2004/crop-recommendation-project/internal/auth/dto"
	autherror "github.com/sandeep-rathod-2004/crop-recommendation-project/internal/errors"
	preddomain "github.com/sandeep-rathod-2004/crop-recommendation-project/internal/prediction/domain"
)

type UserService struct {
	repo         domain.UserRepository
	predictions  preddomain.PredictionRepository
	tokenService TokenGenerator
	cfg          *config.Config
}

func NewUserService(repo domain.UserRepository, predictions preddomain.PredictionRepository,
	tokenService TokenGenerator, cfg *config.Config) *UserService {
	return &UserService{
		repo:         repo,
		predictions:  predictions,
		tokenService: tokenService,
		cfg:          cfg,
	}
}

func (s *UserService) Register(ctx context.Context, input dto.RegisterInput) (*domain.User, error) {
	if input.Email == "" || input.Password == "" {
		return nil, autherror.ErrInvalidInput
	}

	existingUser, err := s.repo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if existingUser != nil {
		return nil, autherror.ErrEmailAlreadyInUse
	}

	hashedPassword, err := HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Email:        input.Email,
		PasswordHash: hashedPassword,
		// Bootstrap admin: the configured address registers as admin,
		// everyone else stays a regular user for good.
		IsAdmin: input.Email == s.cfg.AdminEmail,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *UserService) Login(ctx context.Context, input dto.LoginInput) (*dto.LoginOutput, error) {
	user, err := s.repo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}

	if user == nil || !CheckPassword(input.Password, user.PasswordHash) {
		return nil, autherror.ErrInvalidCredentials
	}

	accessToken, _, err := s.tokenService.Generate(user.Email)
	if err != nil {
		return nil, err
	}

	return &dto.LoginOutput{
		AccessToken: accessToken,
		TokenType:   "bearer",
		IsAdmin:     user.IsAdmin,
	}, nil
}

// ForgotPassword issues a signed reset token, records it on the user and
// hands it straight back to the caller. Delivering it out of band is the
// caller's problem, not this service's.
func (s *UserService) ForgotPassword(ctx context.Context, input dto.ForgotPasswordInput) (string, error) {
	user, err := s.repo.GetByEmail(ctx, input.Email)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", autherror.ErrUserNotFound
	}

	token, _, err := s.tokenService.Generate(input.Email)
	if err != nil {
		return "", err
	}

	if err := s.repo.SetResetToken(ctx, input.Email, token, time.Now().UTC()); err != nil {
		return "", err
	}

	return token, nil
}

func (s *UserService) ResetPassword(ctx context.Context, input dto.ResetPasswordInput) error {
	claims, err := s.tokenService.Verify(input.Token)
	if err != nil {
		return autherror.ErrInvalidResetToken
	}

	user, err := s.repo.GetByEmail(ctx, claims.Email)
	if err != nil {
		return err
	}
	if user == nil {
		return autherror.ErrUserNotFound
	}

	hashedPassword, err := HashPassword(input.NewPassword)
	if err != nil {
		return err
	}

	return s.repo.UpdatePassword(ctx, claims.Email, hashedPassword)
}

// GetAdmin resolves the user behind an authenticated email and gates
// admin-only operations. The flag is re-read from the database on every
// call so a demotion takes effect on the next request.
func (s *UserService) GetAdmin(ctx context.Context, email string) (*domain.User, error) {
	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.IsAdmin {
		return nil, autherror.ErrAccessDenied
	}

	return user, nil
}

func (s *UserService) GetAllUsers(ctx context.Context) ([]dto.UserOutput, error) {
	users, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	out := make([]dto.UserOutput, 0, len(users))
	for _, u := range users {
		out = append(out, dto.UserOutput{Email: u.Email, IsAdmin: u.IsAdmin})
	}

	return out, nil
}

func (s *UserService) Stats(ctx context.Context) (*dto.StatsOutput, error) {
	totalUsers, err := s.repo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count users: %w", err)
	}

	totalPredictions, err := s.predictions.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count predictions: %w", err)
	}

	return &dto.StatsOutput{TotalUsers: totalUsers, TotalPredictions: totalPredictions}, nil
}
