package admins

import (
	"testing"

	"Backend-Curadoria-AF/src/utils"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func TestLoginWithPlainPassword(t *testing.T) {
	t.Setenv("ADMIN_PASSWORD_HASH", "")
	t.Setenv("ADMIN_PASSWORD", "s3cret")
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := Login("s3cret")
	assert.NoError(t, err)

	claims, err := utils.ParseJWT(token)
	assert.NoError(t, err)
	assert.Equal(t, "admin", claims.Role)

	_, err = Login("wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginWithBcryptHash(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	assert.NoError(t, err)

	t.Setenv("ADMIN_PASSWORD_HASH", string(hash))
	t.Setenv("ADMIN_PASSWORD", "")
	t.Setenv("JWT_SECRET", "test-secret")

	_, err = Login("s3cret")
	assert.NoError(t, err)

	_, err = Login("wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginRejectsWhenUnconfigured(t *testing.T) {
	t.Setenv("ADMIN_PASSWORD_HASH", "")
	t.Setenv("ADMIN_PASSWORD", "")

	_, err := Login("anything")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = Login("")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
