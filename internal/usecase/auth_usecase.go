// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"schoolhub/internal/domain/entity"
)

// TokenTypeBearer is the token_type returned to clients.
const TokenTypeBearer = "Bearer"

// LoginInput defines the data required for an account to log in.
// An empty Role means entity.RolePrincipal.
type LoginInput struct {
	Role     entity.Role
	Email    string
	Password string
}

// LoginOutput returns the issued access token after a successful login.
type LoginOutput struct {
	AccessToken string
	TokenType   string
	ExpiresAt   time.Time
	Identity    entity.Identity
}

// AuthUsecase defines login for every account kind.
type AuthUsecase interface {
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
}
