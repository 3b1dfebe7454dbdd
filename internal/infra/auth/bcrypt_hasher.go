// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"schoolhub/config"
	domainerrors "schoolhub/internal/domain/errors"
	"schoolhub/internal/domain/service"
	"schoolhub/internal/errors"
)

// bcryptHasher is a concrete implementation of the CredentialHasher interface using bcrypt.
type bcryptHasher struct {
	cost int
}

// NewBcryptHasher builds the hasher from config. An unset cost means bcrypt.DefaultCost.
func NewBcryptHasher(cfg *config.Config) service.CredentialHasher {
	cost := 0
	if cfg.Auth != nil {
		cost = cfg.Auth.BcryptCost
	}

	return NewBcryptHasherWithCost(cost)
}

// NewBcryptHasherWithCost clamps cost into [bcrypt.MinCost, bcrypt.MaxCost].
func NewBcryptHasherWithCost(cost int) service.CredentialHasher {
	switch {
	case cost == 0:
		cost = bcrypt.DefaultCost
	case cost < bcrypt.MinCost:
		cost = bcrypt.MinCost
	case cost > bcrypt.MaxCost:
		cost = bcrypt.MaxCost
	}

	return &bcryptHasher{cost: cost}
}

// Hash generates a salted hash. bcrypt draws a fresh salt on every call.
func (h *bcryptHasher) Hash(_ context.Context, password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		// Inputs beyond 72 bytes are rejected by bcrypt; generated passwords never reach that.
		return "", errors.Wrap(err, "bcrypt hash")
	}

	return string(bytes), nil
}

// Verify compares in constant time. Only a mismatch counts as a failed check;
// any other bcrypt error means the stored hash itself is unusable.
func (h *bcryptHasher) Verify(_ context.Context, password, hash string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, domainerrors.ErrCredentialFormat.WithDetails(err.Error())
	}
}
