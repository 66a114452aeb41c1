package utils

import (
	"crypto/subtle"

	"golang.org/x/crypto/bcrypt"
)

const BcryptCost = 14

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), BcryptCost)
	return string(bytes), err
}

func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// CheckPassword compares password with either a bcrypt hash (when hash is set)
// or the plain value. Empty passwords never match.
func CheckPassword(password, plain, hash string) bool {
	if password == "" {
		return false
	}
	if hash != "" {
		return CheckPasswordHash(password, hash)
	}
	return subtle.ConstantTimeCompare([]byte(plain), []byte(password)) == 1
}
