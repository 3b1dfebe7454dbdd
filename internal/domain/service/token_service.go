package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"schoolhub/internal/domain/entity"
)

// TokenTypeAccess is the only token type this system issues.
const TokenTypeAccess = "access"

// Claims defines the custom claims for the JWT tokens.
type Claims struct {
	Role string `json:"role"`
	Type string `json:"type"`
	jwt.RegisteredClaims
}

// Identity recovers the account identity bound into the token.
func (c *Claims) Identity() (entity.Identity, error) {
	id, err := uuid.Parse(c.Subject)
	if err != nil {
		return entity.Identity{}, err
	}

	return entity.Identity{AccountID: id, Role: entity.Role(c.Role)}, nil
}

// IssuedToken is a signed token and its expiry.
type IssuedToken struct {
	Token     string
	ExpiresAt time.Time
}

// TokenService issues and validates stateless access tokens.
type TokenService interface {
	// Issue signs a token bound to identity.
	Issue(identity entity.Identity) (*IssuedToken, error)

	// Validate checks signature, algorithm and expiry of a token string.
	Validate(tokenString string) (*Claims, error)
}
