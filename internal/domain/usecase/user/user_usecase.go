package user

import (
	coreport "github.com/amirhossein-jamali/statement-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/statement-ledger/internal/domain/port/persistence"
)

// UserUseCase handles user-related business logic
type UserUseCase struct {
	users  persistence.UserDirectory
	hasher coreport.SecretHasher
	logger coreport.Logger
}

// NewUserUseCase creates a new UserUseCase
func NewUserUseCase(
	users persistence.UserDirectory,
	hasher coreport.SecretHasher,
	logger coreport.Logger,
) *UserUseCase {
	return &UserUseCase{
		users:  users,
		hasher: hasher,
		logger: logger,
	}
}
