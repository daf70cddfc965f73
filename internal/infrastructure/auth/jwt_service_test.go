package auth

import (
	"testing"
	"time"

	"github.com/AniekanabasiUmoh/pontiff-protocol-sub002/internal/config"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidate(t *testing.T) {
	svc := NewJWTService(&config.JWTConfig{Secret: "test-secret", Expiry: time.Hour, Issuer: "pontiff-test"})

	token, err := svc.GenerateToken("  Alice ", "")
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Account)
	assert.Equal(t, RolePlayer, claims.Role)
	assert.Equal(t, "pontiff-test", claims.Issuer)
	assert.Equal(t, "alice", claims.Subject)
}

func TestValidateToken_Rejects(t *testing.T) {
	cfg := &config.JWTConfig{Secret: "test-secret", Expiry: time.Hour}
	svc := NewJWTService(cfg)

	expired, err := NewJWTService(&config.JWTConfig{Secret: "test-secret", Expiry: -time.Minute}).GenerateToken("alice", RoleOperator)
	require.NoError(t, err)

	otherKey, err := NewJWTService(&config.JWTConfig{Secret: "another", Expiry: time.Hour}).GenerateToken("alice", RoleOperator)
	require.NoError(t, err)

	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{Account: "alice"}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{"expired", expired},
		{"wrong key", otherKey},
		{"unsigned", none},
		{"garbage", "not-a-token"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.ValidateToken(tt.token)
			assert.Error(t, err)
		})
	}
}

func TestGenerateToken_RequiresAccount(t *testing.T) {
	svc := NewJWTService(&config.JWTConfig{Secret: "s", Expiry: time.Hour})
	_, err := svc.GenerateToken("   ", RolePlayer)
	assert.Error(t, err)
}
