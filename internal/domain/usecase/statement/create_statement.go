package statement

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/amirhossein-jamali/statement-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/statement-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/statement-ledger/internal/domain/port/persistence"
)

// CreateStatement records a deposit or withdraw for an existing user.
// A withdraw larger than the current balance is rejected whole with an
// InsufficientFundsError and nothing is appended. The balance check and
// the append run inside one per-user exclusion scope.
func (s *StatementUseCase) CreateStatement(
	ctx context.Context,
	userID string,
	operation entity.OperationType,
	amount decimal.Decimal,
	description string,
) (*entity.Statement, error) {
	// Validate the request before touching any collaborator
	draft, err := entity.NewStatement(userID, operation, amount, description)
	if err != nil {
		return nil, err
	}

	if err := s.ensureUserExists(ctx, userID, string(operation)); err != nil {
		return nil, err
	}

	var created *entity.Statement
	err = s.uow.WithUserLock(ctx, userID, func(ctx context.Context, store persistence.StatementStore) error {
		if draft.IsWithdraw() {
			history, err := store.ListByUser(ctx, userID)
			if err != nil {
				return err
			}

			balance := entity.NewBalance(userID, history)
			if !balance.CanWithdraw(draft.Amount) {
				return errs.NewInsufficientFundsError(userID, draft.GetAmount(), balance.GetBalance())
			}
		}

		stored, err := store.Append(ctx, draft)
		if err != nil {
			return err
		}
		created = stored
		return nil
	})
	if err != nil {
		s.logFailure("Statement rejected", err, map[string]any{
			"userId":    userID,
			"operation": string(operation),
			"amount":    draft.GetAmount(),
		})
		return nil, err
	}

	s.logger.Info("Statement created", map[string]any{
		"userId":      userID,
		"statementId": created.ID,
		"operation":   string(created.Type),
		"amount":      created.GetAmount(),
	})

	s.publishCreated(ctx, created)

	return created, nil
}

// publishCreated emits the statement.created event once the append is committed.
// A publish failure never undoes the statement.
func (s *StatementUseCase) publishCreated(ctx context.Context, statement *entity.Statement) {
	if s.publisher == nil {
		return
	}

	event := entity.NewStatementCreatedEvent(statement)
	if err := s.publisher.PublishStatementCreated(context.WithoutCancel(ctx), event); err != nil {
		s.logger.Warn("Failed to publish statement event", map[string]any{
			"userId":      statement.UserID,
			"statementId": statement.ID,
			"error":       err.Error(),
		})
	}
}
