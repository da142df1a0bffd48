package database

import (
	"context"
	"errors"
	"fmt"

	errs "github.com/amirhossein-jamali/statement-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/statement-ledger/internal/infrastructure/adapter/repository"
)

// domainErrors are already meaningful to callers and pass through untouched
var domainErrors = []error{
	errs.ErrUserNotFound,
	errs.ErrStatementNotFound,
	errs.ErrInsufficientFunds,
	errs.ErrUserLocked,
	errs.ErrDuplicateUser,
	errs.ErrDatabaseConnection,
	errs.ErrInvalidAmount,
	errs.ErrInvalidOperationType,
}

// ErrorMapper maps transaction-level driver errors to domain errors
type ErrorMapper struct {
	classifier *repository.ErrorClassifier
}

// NewErrorMapper creates a new ErrorMapper
func NewErrorMapper() *ErrorMapper {
	return &ErrorMapper{classifier: repository.NewErrorClassifier()}
}

// MapError maps a database error to a domain error, wrapping the cause
func (m *ErrorMapper) MapError(err error, operation string) error {
	if err == nil {
		return nil
	}

	for _, known := range domainErrors {
		if errors.Is(err, known) {
			return err
		}
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}

	switch m.classifier.Classify(err) {
	case repository.LockError:
		return fmt.Errorf("%w: %s: %w", errs.ErrUserLocked, operation, err)
	case repository.DuplicateKeyError:
		return fmt.Errorf("%w: %s: %w", errs.ErrDuplicateUser, operation, err)
	default:
		return fmt.Errorf("%w: %s: %w", errs.ErrDatabaseConnection, operation, err)
	}
}
