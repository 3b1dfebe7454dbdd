package middleware

import (
	"log/slog"
	"strings"

	deliverycontext "schoolhub/internal/delivery/context"
	"schoolhub/internal/domain/entity"
	domainerrors "schoolhub/internal/domain/errors"
	"schoolhub/internal/domain/service"

	"github.com/labstack/echo/v4"
)

const bearerPrefix = "Bearer "

// AuthMiddleware validates access tokens and enforces roles.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	logger   *slog.Logger
}

func NewAuthMiddleware(tokenSvc service.TokenService, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, logger: logger}
}

// Authenticate requires a valid bearer token and stores the caller's identity
// in the request context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return domainerrors.ErrUnauthorized.WithDetails("authorization header is missing")
		}

		tokenString, found := strings.CutPrefix(authHeader, bearerPrefix)
		if !found || tokenString == "" {
			return domainerrors.ErrUnauthorized.WithDetails("authorization header must be a bearer token")
		}

		ctx := c.Request().Context()
		claims, err := m.tokenSvc.Validate(tokenString)
		if err != nil {
			deliverycontext.GetLoggerOrDefault(ctx, m.logger).DebugContext(ctx, "Rejected access token", slog.Any("error", err))

			return domainerrors.ErrUnauthorized.WithDetails("invalid or expired token")
		}

		identity, err := claims.Identity()
		if err != nil || !identity.Role.IsValid() {
			return domainerrors.ErrUnauthorized.WithDetails("token subject is malformed")
		}

		c.SetRequest(c.Request().WithContext(deliverycontext.WithIdentity(ctx, identity)))

		return next(c)
	}
}

// RequireRole must run after Authenticate.
func (m *AuthMiddleware) RequireRole(role entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity, ok := deliverycontext.GetIdentity(c.Request().Context())
			if !ok {
				return domainerrors.ErrUnauthorized
			}
			if identity.Role != role {
				return domainerrors.ErrForbidden.WithDetails("requires role " + role.String())
			}

			return next(c)
		}
	}
}
