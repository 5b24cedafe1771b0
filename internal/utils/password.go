package utils

import (
	"crypto/subtle"
	"errors"

	"golang.org/x/crypto/bcrypt"
)

const MinPasswordLength = 4

var ErrPasswordMismatch = errors.New("password mismatch")

func ValidatePassword(password string) error {
	if len(password) < MinPasswordLength {
		return errors.New("password must be at least 4 characters")
	}
	return nil
}

func HashPassword(password string) (string, error) {
	if err := ValidatePassword(password); err != nil {
		return "", err
	}

	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashedBytes), nil
}

// IsHashed reports whether stored looks like a bcrypt hash.
func IsHashed(stored string) bool {
	_, err := bcrypt.Cost([]byte(stored))
	return err == nil
}

// CheckPassword accepts both bcrypt hashes and plain-text passwords
// written by older versions of the users file.
func CheckPassword(password, stored string) error {
	if IsHashed(stored) {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(password))
	}
	if subtle.ConstantTimeCompare([]byte(password), []byte(stored)) != 1 {
		return ErrPasswordMismatch
	}
	return nil
}
