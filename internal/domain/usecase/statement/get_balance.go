package statement

import (
	"context"

	"github.com/amirhossein-jamali/statement-ledger/internal/domain/entity"
)

// GetBalance derives the user's balance from the full statement history.
// Statements are returned oldest first.
func (s *StatementUseCase) GetBalance(ctx context.Context, userID string) (*entity.Balance, error) {
	if err := s.ensureUserExists(ctx, userID, "get balance"); err != nil {
		return nil, err
	}

	history, err := s.statements.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Error("Failed to list statements", map[string]any{
			"userId": userID,
			"error":  err.Error(),
		})
		return nil, err
	}

	balance := entity.NewBalance(userID, history)

	s.logger.Debug("Balance derived", map[string]any{
		"userId":     userID,
		"balance":    balance.GetBalance(),
		"statements": len(balance.Statements),
	})

	return balance, nil
}
