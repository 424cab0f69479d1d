package adapters

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/cohetebrands/backoffice/internal/application/adapter"
)

// passwordService implements the adapter.PasswordService interface using bcrypt.
type passwordService struct {
	cost int
}

// NewPasswordService creates a new password service instance.
func NewPasswordService() adapter.PasswordService {
	return &passwordService{
		cost: bcrypt.DefaultCost,
	}
}

// Hash hashes a plaintext password.
func (s *passwordService) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// Compare compares a plaintext password against a hash.
func (s *passwordService) Compare(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
