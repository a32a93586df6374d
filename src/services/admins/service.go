package admins

import (
	"errors"
	"os"

	"Backend-Curadoria-AF/src/utils"

	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// Login checks the admin password and mints a short-lived token for the
// management endpoints. The password lives in the environment as a bcrypt
// hash; a plaintext ADMIN_PASSWORD is accepted for local development.
func Login(password string) (string, error) {
	if !verifyPassword(password) {
		return "", ErrInvalidCredentials
	}
	return utils.GenerateJWT("admin", "admin")
}

func verifyPassword(password string) bool {
	if password == "" {
		return false
	}

	if hash := os.Getenv("ADMIN_PASSWORD_HASH"); hash != "" {
		return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
	}

	if plain := os.Getenv("ADMIN_PASSWORD"); plain != "" {
		return password == plain
	}

	return false
}
