package utils

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword computes the bcrypt hash of password with the given work
// factor. The cost is fixed at configuration time and applies to every
// registration and login comparison.
func HashPassword(password string, cost int) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(hash), nil
}

// CheckPassword compares a bcrypt hash with a candidate plain-text password.
// It returns true only when the password matches the hash.
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
