package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schoolhub/config"
	"schoolhub/internal/domain/entity"
	domainerrors "schoolhub/internal/domain/errors"
	"schoolhub/internal/domain/service"
	"schoolhub/internal/errors"
)

const testAccessSecret = "test_access_secret_key_very_long_for_testing"

func newTestJWTService(t *testing.T, ttl time.Duration) *jwtService {
	t.Helper()

	cfg := &config.Config{
		SecretKey: config.SecretKeyConfig{Access: testAccessSecret},
		Auth:      &config.AuthConfig{TokenTTL: ttl},
	}

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	jwtSvc, ok := svc.(*jwtService)
	require.True(t, ok)

	return jwtSvc
}

func TestJWTService_IssueAndValidate(t *testing.T) {
	svc := newTestJWTService(t, time.Hour)
	identity := entity.Identity{AccountID: uuid.New(), Role: entity.RoleTeacher}

	issued, err := svc.Issue(identity)
	require.NoError(t, err)
	assert.NotEmpty(t, issued.Token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), issued.ExpiresAt, 2*time.Second)

	claims, err := svc.Validate(issued.Token)
	require.NoError(t, err)
	assert.Equal(t, identity.AccountID.String(), claims.Subject)
	assert.Equal(t, "teacher", claims.Role)
	assert.Equal(t, service.TokenTypeAccess, claims.Type)
	require.NotNil(t, claims.IssuedAt)
	require.NotNil(t, claims.ExpiresAt)
	assert.Equal(t, time.Hour, claims.ExpiresAt.Sub(claims.IssuedAt.Time))

	got, err := claims.Identity()
	require.NoError(t, err)
	assert.Equal(t, identity, got)
}

func TestJWTService_DefaultTTL(t *testing.T) {
	svc, err := NewJWTService(&config.Config{SecretKey: config.SecretKeyConfig{Access: testAccessSecret}})
	require.NoError(t, err)

	issued, err := svc.Issue(entity.Identity{AccountID: uuid.New(), Role: entity.RolePrincipal})
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), issued.ExpiresAt, 2*time.Second)
}

func TestJWTService_EmptySecret(t *testing.T) {
	svc, err := NewJWTService(&config.Config{})
	assert.Nil(t, svc)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrSigningUnavailable))
}

func TestJWTService_Expired(t *testing.T) {
	svc := newTestJWTService(t, time.Minute)
	svc.now = func() time.Time { return time.Now().Add(-2 * time.Minute) }

	issued, err := svc.Issue(entity.Identity{AccountID: uuid.New(), Role: entity.RolePrincipal})
	require.NoError(t, err)

	svc.now = time.Now
	claims, err := svc.Validate(issued.Token)
	assert.Nil(t, claims)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrTokenExpired))
}

func TestJWTService_InvalidTokens(t *testing.T) {
	svc := newTestJWTService(t, time.Hour)
	identity := entity.Identity{AccountID: uuid.New(), Role: entity.RolePrincipal}

	otherKey := newTestJWTService(t, time.Hour)
	otherKey.accessSecret = []byte("a_completely_different_secret_value")
	foreign, err := otherKey.Issue(identity)
	require.NoError(t, err)

	noneToken, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"sub":  identity.AccountID.String(),
		"role": "principal",
		"type": "access",
		"exp":  time.Now().Add(time.Hour).Unix(),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	refreshToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  identity.AccountID.String(),
		"role": "principal",
		"type": "refresh",
		"exp":  time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte(testAccessSecret))
	require.NoError(t, err)

	tests := map[string]string{
		"garbage":      "clearly-not-a-jwt-token-format",
		"wrong key":    foreign.Token,
		"alg none":     noneToken,
		"non-access":   refreshToken,
		"empty string": "",
	}

	for name, token := range tests {
		t.Run(name, func(t *testing.T) {
			claims, err := svc.Validate(token)
			assert.Nil(t, claims)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrTokenInvalid))
		})
	}
}
