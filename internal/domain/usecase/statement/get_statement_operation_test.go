package statement

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/statement-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/statement-ledger/internal/domain/error"
)

func TestStatementUseCase_GetStatementOperation(t *testing.T) {
	ctx := context.Background()
	userID := "u-1"

	t.Run("should return owned statement", func(t *testing.T) {
		d := newTestDeps(t)
		stored := storedStatement("st-1", userID, entity.OperationDeposit, "10")
		d.users.On("Exists", ctx, userID).Return(true, nil)
		d.statements.On("FindByUserAndID", ctx, userID, "st-1").Return(stored, nil)

		result, err := d.useCase().GetStatementOperation(ctx, userID, "st-1")

		require.NoError(t, err)
		assert.Equal(t, stored, result)
	})

	t.Run("should report foreign statement as not found", func(t *testing.T) {
		d := newTestDeps(t)
		d.users.On("Exists", ctx, userID).Return(true, nil)
		d.statements.On("FindByUserAndID", ctx, userID, "st-of-other").Return(nil, errs.ErrStatementNotFound)

		result, err := d.useCase().GetStatementOperation(ctx, userID, "st-of-other")

		assert.Nil(t, result)
		assert.ErrorIs(t, err, errs.ErrStatementNotFound)

		var statementErr *errs.StatementError
		require.ErrorAs(t, err, &statementErr)
		assert.Equal(t, "st-of-other", statementErr.StatementID)
	})

	t.Run("should return user not found before looking up statement", func(t *testing.T) {
		d := newTestDeps(t)
		d.users.On("Exists", ctx, "ghost").Return(false, nil)

		_, err := d.useCase().GetStatementOperation(ctx, "ghost", "st-1")

		assert.ErrorIs(t, err, errs.ErrUserNotFound)
		d.statements.AssertNotCalled(t, "FindByUserAndID", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("should reject empty statement id", func(t *testing.T) {
		d := newTestDeps(t)

		_, err := d.useCase().GetStatementOperation(ctx, userID, "")

		assert.ErrorIs(t, err, errs.ErrInvalidStatementID)
	})
}
