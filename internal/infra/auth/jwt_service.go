// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"schoolhub/config"
	"schoolhub/internal/domain/entity"
	domainerrors "schoolhub/internal/domain/errors"
	"schoolhub/internal/domain/service"
	"schoolhub/internal/errors"
)

const defaultAccessTTL = 24 * time.Hour

// ErrTokenExpired and ErrTokenInvalid classify Validate failures.
var (
	ErrTokenExpired = errors.New("token expired")
	ErrTokenInvalid = errors.New("token invalid")
)

// jwtService is a concrete implementation of the TokenService interface using HS256 JWTs.
type jwtService struct {
	accessSecret []byte
	accessTTL    time.Duration
	now          func() time.Time
}

// NewJWTService is the constructor for jwtService. An empty secret is a startup failure.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, domainerrors.ErrSigningUnavailable.WithDetails("access secret must be provided")
	}

	ttl := defaultAccessTTL
	if cfg.Auth != nil && cfg.Auth.TokenTTL > 0 {
		ttl = cfg.Auth.TokenTTL
	}

	return &jwtService{
		accessSecret: []byte(cfg.SecretKey.Access),
		accessTTL:    ttl,
		now:          time.Now,
	}, nil
}

// Issue creates a signed access token bound to the identity.
func (s *jwtService) Issue(identity entity.Identity) (*service.IssuedToken, error) {
	issuedAt := s.now()
	expiresAt := issuedAt.Add(s.accessTTL)

	claims := &service.Claims{
		Role: identity.Role.String(),
		Type: service.TokenTypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   identity.AccountID.String(),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.accessSecret)
	if err != nil {
		return nil, domainerrors.ErrSigningUnavailable.WithDetails(err.Error())
	}

	return &service.IssuedToken{Token: signed, ExpiresAt: expiresAt}, nil
}

// Validate parses and checks a token string.
func (s *jwtService) Validate(tokenString string) (*service.Claims, error) {
	claims := &service.Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.accessSecret, nil
	}, jwt.WithTimeFunc(s.now), jwt.WithExpirationRequired())
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, errors.Wrap(ErrTokenExpired, err.Error())
		}

		return nil, errors.Wrap(ErrTokenInvalid, err.Error())
	}

	if !token.Valid || claims.Type != service.TokenTypeAccess {
		return nil, errors.Wrap(ErrTokenInvalid, "unexpected token type")
	}

	return claims, nil
}
