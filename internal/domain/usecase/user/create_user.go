package user

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/amirhossein-jamali/statement-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/statement-ledger/internal/domain/error"
)

// MinPasswordLength is the shortest credential accepted at registration
const MinPasswordLength = 6

// CreateUser registers a new user. The password is hashed before it reaches
// the directory; id and timestamps are assigned by the directory.
func (u *UserUseCase) CreateUser(ctx context.Context, name, email, password string) (*entity.User, error) {
	if len(strings.TrimSpace(password)) < MinPasswordLength {
		return nil, fmt.Errorf("%w: password must have at least %d characters", errs.ErrInvalidUserData, MinPasswordLength)
	}

	// Validate name and email before paying for the hash
	if _, err := entity.NewUser(name, email, "pending"); err != nil {
		return nil, err
	}

	email = entity.NormalizeEmail(email)

	// Check if email is already registered
	_, err := u.users.FindByEmail(ctx, email)
	switch {
	case err == nil:
		u.logger.Warn("Attempt to register an existing email", map[string]any{
			"email": email,
		})
		return nil, errs.ErrDuplicateUser
	case !errors.Is(err, errs.ErrUserNotFound):
		u.logger.Error("Failed to look up user by email", map[string]any{
			"email": email,
			"error": err.Error(),
		})
		return nil, err
	}

	hash, err := u.hasher.Hash(password)
	if err != nil {
		u.logger.Error("Failed to hash credential", map[string]any{
			"email": email,
			"error": err.Error(),
		})
		return nil, fmt.Errorf("%w: %w", errs.ErrInternalServer, err)
	}

	user, err := entity.NewUser(name, email, hash)
	if err != nil {
		return nil, err
	}

	// The directory enforces email uniqueness again for concurrent registrations
	created, err := u.users.Create(ctx, user)
	if err != nil {
		if errors.Is(err, errs.ErrDuplicateUser) {
			u.logger.Warn("Attempt to register an existing email", map[string]any{
				"email": email,
			})
		} else {
			u.logger.Error("Failed to create user", map[string]any{
				"email": email,
				"error": err.Error(),
			})
		}
		return nil, err
	}

	u.logger.Info("User created", map[string]any{
		"userId": created.ID,
		"email":  created.Email,
	})

	return created, nil
}
