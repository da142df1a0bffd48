package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/amirhossein-jamali/statement-ledger/internal/domain/entity"
)

// StatementUseCase defines the ledger operations on a user's statements
type StatementUseCase interface {
	// CreateStatement records a deposit or withdraw for an existing user
	CreateStatement(ctx context.Context, userID string, operation entity.OperationType, amount decimal.Decimal, description string) (*entity.Statement, error)

	// GetBalance derives the current balance and full history of a user
	GetBalance(ctx context.Context, userID string) (*entity.Balance, error)

	// GetStatementOperation retrieves one statement owned by the user
	GetStatementOperation(ctx context.Context, userID, statementID string) (*entity.Statement, error)
}
