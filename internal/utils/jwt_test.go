package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testIssuer  = "go-chat-messenger"
	testSignKey = "test-sign-key"
)

func TestGenerateJWTToken(t *testing.T) {
	t.Run("valid params", func(t *testing.T) {
		token, err := GenerateJWTToken(testIssuer, "u1", time.Hour, testSignKey)
		require.NoError(t, err)

		assert.Equal(t, "u1", token.UserID)
		assert.NotEmpty(t, token.SignedString)
	})

	t.Run("invalid params", func(t *testing.T) {
		_, err := GenerateJWTToken("", "u1", time.Hour, testSignKey)
		assert.Error(t, err)

		_, err = GenerateJWTToken(testIssuer, "", time.Hour, testSignKey)
		assert.Error(t, err)

		_, err = GenerateJWTToken(testIssuer, "u1", 0, testSignKey)
		assert.Error(t, err)

		_, err = GenerateJWTToken(testIssuer, "u1", time.Hour, "")
		assert.Error(t, err)
	})
}

func TestValidateAndParseJWTToken(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		generated, err := GenerateJWTToken(testIssuer, "u1", time.Hour, testSignKey)
		require.NoError(t, err)

		parsed, err := ValidateAndParseJWTToken(generated.SignedString, testSignKey, testIssuer)
		require.NoError(t, err)
		assert.Equal(t, "u1", parsed.UserID)
	})

	t.Run("wrong sign key", func(t *testing.T) {
		generated, err := GenerateJWTToken(testIssuer, "u1", time.Hour, testSignKey)
		require.NoError(t, err)

		_, err = ValidateAndParseJWTToken(generated.SignedString, "other-key", testIssuer)
		assert.Error(t, err)
	})

	t.Run("wrong issuer", func(t *testing.T) {
		generated, err := GenerateJWTToken("someone-else", "u1", time.Hour, testSignKey)
		require.NoError(t, err)

		_, err = ValidateAndParseJWTToken(generated.SignedString, testSignKey, testIssuer)
		assert.Error(t, err)
	})

	t.Run("expired token", func(t *testing.T) {
		generated, err := GenerateJWTToken(testIssuer, "u1", -time.Minute, testSignKey)
		require.NoError(t, err)

		_, err = ValidateAndParseJWTToken(generated.SignedString, testSignKey, testIssuer)
		assert.Error(t, err)
	})
}

func TestParseBearerToken(t *testing.T) {
	token, err := ParseBearerToken("Bearer abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	_, err = ParseBearerToken("abc.def.ghi")
	assert.Error(t, err)

	_, err = ParseBearerToken("Bearer ")
	assert.Error(t, err)

	_, err = ParseBearerToken("")
	assert.Error(t, err)
}
