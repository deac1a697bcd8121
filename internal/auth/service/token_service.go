package service

//go:generate mockgen -destination=../../mocks/mock_token_generator.go -package=mocks github.com/sandeep-rathod-2004/crop-recommendation-project/internal/auth/service TokenGenerator

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type TokenGenerator interface {
	Generate(email string) (string, time.Time, error)
	Verify(tokenString string) (*JWTCustomClaims, error)
	GetTokenExpiry() time.Duration
}

// TokenService issues and validates stateless HS256 bearer tokens. There
// is no revocation store: a token stays valid until its expiry even if
// the password changes afterwards.
type TokenService struct {
	Secret      string
	TokenExpiry time.Duration
}

type JWTCustomClaims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
}

func NewTokenService(secret string, ttlHours int) *TokenService {
	return &TokenService{
		Secret:      secret,
		TokenExpiry: time.Duration(ttlHours) * time.Hour,
	}
}

func (ts *TokenService) Generate(email string) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(ts.TokenExpiry)

	claims := JWTCustomClaims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(ts.Secret))
	if err != nil {
		return "", time.Time{}, err
	}

	return token, expiresAt, nil
}

func (ts *TokenService) GetTokenExpiry() time.Duration {
	return ts.TokenExpiry
}

// Verify parses and validates the given token string. Malformed, tampered
// and expired tokens all come back as an error, never a panic.
func (ts *TokenService) Verify(tokenString string) (*JWTCustomClaims, error) {
	claims := &JWTCustomClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		// Ensure the token's signing method is HMAC.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(ts.Secret), nil
	})

	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	return claims, nil
}
