package statement

import (
	"context"

	"github.com/amirhossein-jamali/statement-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/statement-ledger/internal/domain/error"
)

// GetStatementOperation retrieves a single statement owned by the user.
// A statement that exists but belongs to someone else is reported as not found.
func (s *StatementUseCase) GetStatementOperation(ctx context.Context, userID, statementID string) (*entity.Statement, error) {
	if statementID == "" {
		return nil, errs.ErrInvalidStatementID
	}

	if err := s.ensureUserExists(ctx, userID, "get statement"); err != nil {
		return nil, err
	}

	statement, err := s.statements.FindByUserAndID(ctx, userID, statementID)
	if err != nil {
		wrapped := errs.NewStatementError("get statement", userID, statementID, err)
		s.logFailure("Statement lookup failed", wrapped, map[string]any{})
		return nil, wrapped
	}

	return statement, nil
}
