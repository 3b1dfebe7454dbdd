package middleware

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"schoolhub/internal/delivery/api/response"
	deliverycontext "schoolhub/internal/delivery/context"
	"schoolhub/internal/domain/entity"
	domainerrors "schoolhub/internal/domain/errors"
	"schoolhub/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type tokenServiceFake struct {
	claims *service.Claims
	err    error
}

func (f *tokenServiceFake) Issue(entity.Identity) (*service.IssuedToken, error) {
	return nil, errors.New("not used")
}

func (f *tokenServiceFake) Validate(string) (*service.Claims, error) {
	return f.claims, f.err
}

func claimsFor(id uuid.UUID, role entity.Role) *service.Claims {
	return &service.Claims{
		Role: role.String(),
		Type: service.TokenTypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   id.String(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) response.ErrorInfo {
	t.Helper()
	var body response.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Error)

	return *body.Error
}

func handle(err error) *httptest.ResponseRecorder {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodPost, "/principal/classes", nil), rec)
	NewErrorMiddleware(slog.New(slog.DiscardHandler)).HandleHTTPError(err, c)

	return rec
}

func TestHandleHTTPError_DomainError(t *testing.T) {
	rec := handle(errors.Wrap(domainerrors.ErrClassNameTaken.WithDetails("class 7A"), "create class"))

	assert.Equal(t, http.StatusConflict, rec.Code)
	info := decodeError(t, rec)
	assert.Equal(t, "CLASS_NAME_TAKEN", info.Code)
	assert.Equal(t, "This class already exists", info.Message)
	assert.Equal(t, "class 7A", info.Details)
}

func TestHandleHTTPError_InternalFaultsAreGeneric(t *testing.T) {
	for _, err := range []error{
		domainerrors.ErrCredentialFormat.WithDetails("crypto/bcrypt: hashedSecret too short"),
		domainerrors.NewDatabaseExecuteError(errors.New("connection refused"), "find teacher"),
		errors.New("boom"),
		echo.NewHTTPError(http.StatusBadGateway, "upstream"),
	} {
		rec := handle(err)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		info := decodeError(t, rec)
		assert.Equal(t, "INTERNAL_ERROR", info.Code)
		assert.Nil(t, info.Details)
		assert.NotContains(t, rec.Body.String(), "bcrypt")
		assert.NotContains(t, rec.Body.String(), "connection refused")
	}
}

func TestHandleHTTPError_EchoHTTPError(t *testing.T) {
	rec := handle(echo.ErrNotFound)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "HTTP_ERROR", decodeError(t, rec).Code)
}

func TestHandleHTTPError_UnauthorizedHidesDetails(t *testing.T) {
	rec := handle(domainerrors.ErrUnauthorized.WithDetails("invalid or expired token"))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Nil(t, decodeError(t, rec).Details)
}

func runAuth(t *testing.T, m *AuthMiddleware, header string, role entity.Role) (entity.Identity, error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/principal/teachers", nil)
	if header != "" {
		req.Header.Set(echo.HeaderAuthorization, header)
	}
	c := e.NewContext(req, httptest.NewRecorder())

	var got entity.Identity
	err := m.Authenticate(m.RequireRole(role)(func(c echo.Context) error {
		got, _ = deliverycontext.GetIdentity(c.Request().Context())

		return nil
	}))(c)

	return got, err
}

func TestAuthMiddleware(t *testing.T) {
	principalID := uuid.New()
	logger := slog.New(slog.DiscardHandler)

	t.Run("principal token passes", func(t *testing.T) {
		m := NewAuthMiddleware(&tokenServiceFake{claims: claimsFor(principalID, entity.RolePrincipal)}, logger)

		got, err := runAuth(t, m, "Bearer token", entity.RolePrincipal)
		require.NoError(t, err)
		assert.Equal(t, entity.Identity{AccountID: principalID, Role: entity.RolePrincipal}, got)
	})

	t.Run("teacher token is forbidden", func(t *testing.T) {
		m := NewAuthMiddleware(&tokenServiceFake{claims: claimsFor(uuid.New(), entity.RoleTeacher)}, logger)

		_, err := runAuth(t, m, "Bearer token", entity.RolePrincipal)
		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	})

	tests := []struct {
		name   string
		header string
		fake   *tokenServiceFake
	}{
		{"missing header", "", &tokenServiceFake{}},
		{"not bearer", "Basic abc", &tokenServiceFake{}},
		{"empty bearer", "Bearer ", &tokenServiceFake{}},
		{"invalid token", "Bearer token", &tokenServiceFake{err: errors.New("token expired")}},
		{"malformed subject", "Bearer token", &tokenServiceFake{claims: &service.Claims{Role: "principal", RegisteredClaims: jwt.RegisteredClaims{Subject: "nope"}}}},
		{"unknown role", "Bearer token", &tokenServiceFake{claims: claimsFor(uuid.New(), entity.Role("janitor"))}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := runAuth(t, NewAuthMiddleware(tt.fake, logger), tt.header, entity.RolePrincipal)
			assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
		})
	}
}
