package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/arohealth/healthbot/internal/config"
)

// HashPassword bcrypt-hashes a password. bcrypt only reads the first 72
// bytes, so longer input is truncated up front instead of failing.
func HashPassword(password string) (string, error) {
	pw := []byte(password)
	if len(pw) > config.MaxPasswordBytes {
		pw = pw[:config.MaxPasswordBytes]
	}
	hash, err := bcrypt.GenerateFromPassword(pw, bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// VerifyPassword reports whether the plain password matches the stored hash.
func VerifyPassword(plain, hash string) bool {
	pw := []byte(plain)
	if len(pw) > config.MaxPasswordBytes {
		pw = pw[:config.MaxPasswordBytes]
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), pw) == nil
}
