package util

import (
	"golang.org/x/crypto/bcrypt"
)

// Account credentials guard certification and payment state, so the cost
// stays above bcrypt's default.
const bcryptCost = 12

// HashPassword hashes an account password for storage
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// VerifyPassword reports whether the password matches the stored hash
func VerifyPassword(hashedPassword, password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
	return err == nil
}
