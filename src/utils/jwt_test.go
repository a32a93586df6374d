package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJWTRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := GenerateJWT("admin", "admin")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := ParseJWT(token)
	assert.NoError(t, err)
	assert.Equal(t, "admin", claims.Subject)
	assert.Equal(t, "admin", claims.Role)
}

func TestParseJWTRejectsGarbage(t *testing.T) {
	_, err := ParseJWT("")
	assert.Error(t, err)

	_, err = ParseJWT("not.a.token")
	assert.Error(t, err)
}

func TestParseJWTRejectsWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret-one")
	token, err := GenerateJWT("admin", "admin")
	assert.NoError(t, err)

	t.Setenv("JWT_SECRET", "secret-two")
	_, err = ParseJWT(token)
	assert.Error(t, err)
}
