package security

import (
	"Pulseboard/internal/api/config"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setTestConfig(t *testing.T, secret string) {
	t.Helper()
	old := config.Cfg
	config.Cfg = &config.Config{
		Auth: config.AuthConfig{JWTSecret: secret, TokenTTLHours: 1},
	}
	t.Cleanup(func() { config.Cfg = old })
}

func TestTokenRoundTrip(t *testing.T) {
	setTestConfig(t, "unit-test-secret-0123456789")

	token, err := GenerateToken(42)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), claims.UserID)
	assert.Equal(t, "Pulseboard", claims.Issuer)
}

func TestValidateTokenRejectsTampered(t *testing.T) {
	setTestConfig(t, "unit-test-secret-0123456789")

	token, err := GenerateToken(42)
	require.NoError(t, err)

	// 篡改载荷段后签名不再匹配
	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	tampered := parts[0] + ".eyJ1c2VyX2lkIjo5OTl9." + parts[2]

	_, err = ValidateToken(tampered)
	assert.Error(t, err)
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	setTestConfig(t, "unit-test-secret-0123456789")
	token, err := GenerateToken(7)
	require.NoError(t, err)

	setTestConfig(t, "a-completely-different-secret")
	_, err = ValidateToken(token)
	assert.Error(t, err)
}

func TestExtractSignature(t *testing.T) {
	setTestConfig(t, "unit-test-secret-0123456789")

	token, err := GenerateToken(1)
	require.NoError(t, err)

	sig, err := ExtractSignature(token)
	require.NoError(t, err)
	assert.Equal(t, strings.Split(token, ".")[2], sig)

	_, err = ExtractSignature("not-a-jwt")
	assert.Error(t, err)
}
