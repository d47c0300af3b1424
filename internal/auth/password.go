package auth

import (
	"golang.org/x/crypto/bcrypt"
)

// DefaultBcryptCost matches the cost the seeded accounts were hashed with.
const DefaultBcryptCost = 12

// HashPassword returns the bcrypt hash of a plaintext password.
func HashPassword(password string, cost int) (string, error) {
	if cost <= 0 {
		cost = DefaultBcryptCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// ComparePassword reports whether the plaintext password matches the hash.
func ComparePassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
