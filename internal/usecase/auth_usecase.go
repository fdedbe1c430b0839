package usecase

import (
	"context"
	"time"

	"hobbyexplorer/internal/domain/entity"
)

// TokenTypeBearer is the only token type issued.
const TokenTypeBearer = "Bearer"

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Username string
	Password string
}

// LoginOutput returns the access token after a successful login.
type LoginOutput struct {
	AccessToken string
	TokenType   string
	ExpiresIn   time.Duration
	User        *entity.User
}

// AuthUsecase checks credentials.
type AuthUsecase interface {
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
}
