package statement

import (
	"context"
	"errors"

	errs "github.com/amirhossein-jamali/statement-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/statement-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/statement-ledger/internal/domain/port/messaging"
	"github.com/amirhossein-jamali/statement-ledger/internal/domain/port/persistence"
)

// StatementUseCase handles the ledger business logic: admission of
// deposits and withdrawals, balance derivation and statement lookup.
// It holds no state between calls and is safe for concurrent use.
type StatementUseCase struct {
	users      persistence.UserDirectory
	statements persistence.StatementStore
	uow        persistence.UnitOfWork
	publisher  messaging.StatementPublisher
	logger     coreport.Logger
}

// NewStatementUseCase creates a new StatementUseCase
func NewStatementUseCase(
	users persistence.UserDirectory,
	statements persistence.StatementStore,
	uow persistence.UnitOfWork,
	publisher messaging.StatementPublisher,
	logger coreport.Logger,
) *StatementUseCase {
	if users == nil || statements == nil || uow == nil {
		panic("statement use case requires a user directory, statement store and unit of work")
	}
	return &StatementUseCase{
		users:      users,
		statements: statements,
		uow:        uow,
		publisher:  publisher,
		logger:     logger,
	}
}

// ensureUserExists returns ErrUserNotFound when the directory has no such user
func (s *StatementUseCase) ensureUserExists(ctx context.Context, userID string, operation string) error {
	if userID == "" {
		return errs.ErrInvalidUserID
	}

	exists, err := s.users.Exists(ctx, userID)
	if err != nil {
		s.logger.Error("Failed to check user existence", map[string]any{
			"userId":    userID,
			"operation": operation,
			"error":     err.Error(),
		})
		return err
	}

	if !exists {
		s.logger.Warn("Operation requested for non-existent user", map[string]any{
			"userId":    userID,
			"operation": operation,
		})
		return errs.ErrUserNotFound
	}

	return nil
}

// logFailure logs err with its structured fields when it carries them
func (s *StatementUseCase) logFailure(message string, err error, fields map[string]any) {
	var detailed interface{ LogFields() map[string]any }
	if errors.As(err, &detailed) {
		for k, v := range detailed.LogFields() {
			fields[k] = v
		}
	} else {
		fields["error"] = err.Error()
	}

	if errs.IsInsufficientFundsError(err) || errs.IsNotFoundError(err) || errs.IsValidationError(err) {
		s.logger.Warn(message, fields)
		return
	}
	s.logger.Error(message, fields)
}
