package persistence

import (
	"context"

	"github.com/amirhossein-jamali/statement-ledger/internal/domain/entity"
)

// StatementStore is the append-only log of statements
type StatementStore interface {
	// Append stores the statement, assigning its id and creation time
	Append(ctx context.Context, statement *entity.Statement) (*entity.Statement, error)

	// ListByUser returns every statement of the user in insertion order
	ListByUser(ctx context.Context, userID string) ([]*entity.Statement, error)

	// FindByID retrieves a statement regardless of owner
	FindByID(ctx context.Context, statementID string) (*entity.Statement, error)

	// FindByUserAndID retrieves a statement only if it belongs to the user.
	// Returns ErrStatementNotFound otherwise.
	FindByUserAndID(ctx context.Context, userID, statementID string) (*entity.Statement, error)
}
