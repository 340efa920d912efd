package jwtmanager

import (
	"context"
	"testing"
	"time"
	"unidash-service/internal/app/config"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestManager(t *testing.T, secret string) *JWTManager {
	cfg := &config.InternalConfig{
		Backend: config.AppBackend{
			ServiceJWTSecret:       secret,
			ServiceJWTIssuer:       "unidash-test",
			ServiceJWTTTLInMinutes: 5,
		},
	}
	manager, err := NewJWTManager(cfg, zap.NewNop())
	require.NoError(t, err)
	return manager
}

func parseServiceToken(t *testing.T, token, secret string) (*jwt.RegisteredClaims, error) {
	t.Helper()
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	return claims, err
}

func TestNewJWTManagerRequiresSecret(t *testing.T) {
	_, err := NewJWTManager(&config.InternalConfig{}, zap.NewNop())
	assert.Error(t, err)
}

func TestJWTManager(t *testing.T) {
	ctx := context.Background()

	t.Run("Signs Verifiable Token", func(t *testing.T) {
		manager := newTestManager(t, "secret")

		token, err := manager.Token(ctx)
		require.NoError(t, err)

		claims, err := parseServiceToken(t, token, "secret")
		require.NoError(t, err)
		assert.Equal(t, "unidash-test", claims.Issuer)
		assert.Equal(t, "unidash-service", claims.Subject)
		assert.NotEmpty(t, claims.ID)
		assert.WithinDuration(t, time.Now().Add(5*time.Minute), claims.ExpiresAt.Time, 5*time.Second)

		_, err = parseServiceToken(t, token, "other")
		assert.Error(t, err, "token must not verify with another secret")
	})

	t.Run("Reuses Token Until Near Expiry", func(t *testing.T) {
		manager := newTestManager(t, "secret")
		current := time.Now()
		manager.now = func() time.Time { return current }

		first, err := manager.Token(ctx)
		require.NoError(t, err)

		current = current.Add(2 * time.Minute)
		second, err := manager.Token(ctx)
		require.NoError(t, err)
		assert.Equal(t, first, second, "token should be reused while far from expiry")

		current = current.Add(2*time.Minute + 45*time.Second)
		third, err := manager.Token(ctx)
		require.NoError(t, err)
		assert.NotEqual(t, first, third, "token should be renewed close to expiry")
	})
}
