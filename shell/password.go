package shell

import (
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/AntonStoeckl/locallibrary-go/catalog"
)

// ErrPasswordTooShort is returned when a password is shorter than MinPasswordLength.
var ErrPasswordTooShort = errors.New("password is too short")

// MinPasswordLength is the minimum number of bytes of a new password.
const MinPasswordLength = 8

// HashPassword returns the bcrypt hash of password using bcrypt.DefaultCost.
func HashPassword(password string) (string, error) {
	return HashPasswordWithCost(password, bcrypt.DefaultCost)
}

// HashPasswordWithCost returns the bcrypt hash of password using the given cost.
func HashPasswordWithCost(password string, cost int) (string, error) {
	if len(password) < MinPasswordLength {
		return "", ErrPasswordTooShort
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}

	return string(hash), nil
}

// CheckPassword compares a bcrypt hash with a clear-text password.
// Any mismatch, including a malformed hash, yields catalog.ErrInvalidCredentials.
func CheckPassword(hash, password string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return errors.Join(catalog.ErrInvalidCredentials, err)
	}

	return nil
}
