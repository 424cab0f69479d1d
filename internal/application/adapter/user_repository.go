package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/cohetebrands/backoffice/internal/domain/entity"
)

// UserRepository defines persistence operations for user accounts.
type UserRepository interface {
	// Create creates a new user.
	Create(ctx context.Context, user *entity.User) error

	// FindByID retrieves a user by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a user by email.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// ExistsByEmail checks whether an account with the email already exists.
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}
