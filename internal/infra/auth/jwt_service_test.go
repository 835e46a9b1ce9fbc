package auth

import (
	"testing"
	"time"

	"upkeep/config"
	"upkeep/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testAccessSecret = "test_access_secret_key_very_long_for_testing"

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)

	return token
}

func newTestService(t *testing.T) *jwtService {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Access = testAccessSecret

	verifier, err := NewJWTService(cfg)
	require.NoError(t, err)

	return verifier.(*jwtService)
}

func TestJWTService_ValidateAccessToken(t *testing.T) {
	svc := newTestService(t)
	userID := uuid.New()

	token := signToken(t, testAccessSecret, jwt.MapClaims{
		"sub":   userID.String(),
		"exp":   time.Now().Add(time.Minute).Unix(),
		"type":  "access",
		"roles": []string{"user", "admin"},
	})

	claims, err := svc.ValidateAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, entity.Roles{entity.RoleUser, entity.RoleAdmin}, claims.Roles)
}

func TestJWTService_InvalidToken(t *testing.T) {
	svc := newTestService(t)
	userID := uuid.New().String()
	future := time.Now().Add(time.Minute).Unix()

	tests := []struct {
		name  string
		token string
	}{
		{name: "garbage", token: "not-a-token"},
		{name: "wrong secret", token: signToken(t, "other-secret", jwt.MapClaims{"sub": userID, "exp": future})},
		{name: "expired", token: signToken(t, testAccessSecret, jwt.MapClaims{"sub": userID, "exp": time.Now().Add(-time.Minute).Unix()})},
		{name: "missing exp", token: signToken(t, testAccessSecret, jwt.MapClaims{"sub": userID})},
		{name: "refresh token", token: signToken(t, testAccessSecret, jwt.MapClaims{"sub": userID, "exp": future, "type": "refresh"})},
		{name: "non uuid subject", token: signToken(t, testAccessSecret, jwt.MapClaims{"sub": "alice", "exp": future})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.ValidateAccessToken(tt.token)
			assert.Error(t, err)
		})
	}
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	_, err := NewJWTService(&config.Config{})
	assert.Error(t, err)
}
