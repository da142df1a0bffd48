package usecase

import (
	"context"

	"github.com/amirhossein-jamali/statement-ledger/internal/domain/entity"
)

// UserUseCase defines operations on account holders
type UserUseCase interface {
	// CreateUser registers a new user with a hashed credential secret
	CreateUser(ctx context.Context, name, email, password string) (*entity.User, error)

	// ShowUserProfile returns the stored record for a user
	ShowUserProfile(ctx context.Context, userID string) (*entity.User, error)
}
