package persistence

import (
	"context"

	"github.com/amirhossein-jamali/statement-ledger/internal/domain/entity"
)

// UserDirectory looks up and registers account holders
type UserDirectory interface {
	// FindByID retrieves a user by id, returning ErrUserNotFound when absent
	FindByID(ctx context.Context, userID string) (*entity.User, error)

	// FindByEmail retrieves a user by normalized email, returning ErrUserNotFound when absent
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Exists checks if a user with the given id is registered
	Exists(ctx context.Context, userID string) (bool, error)

	// Create stores a new user, assigning its id and timestamps.
	// Returns ErrDuplicateUser when the email is already registered.
	Create(ctx context.Context, user *entity.User) (*entity.User, error)
}
