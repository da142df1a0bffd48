package entity

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/amirhossein-jamali/statement-ledger/internal/domain/error"
)

func TestParseOperationType(t *testing.T) {
	op, err := ParseOperationType("deposit")
	require.NoError(t, err)
	assert.Equal(t, OperationDeposit, op)

	op, err = ParseOperationType(" WITHDRAW ")
	require.NoError(t, err)
	assert.Equal(t, OperationWithdraw, op)

	_, err = ParseOperationType("transfer")
	assert.ErrorIs(t, err, errs.ErrInvalidOperationType)
}

func TestNewStatement(t *testing.T) {
	t.Run("Valid deposit", func(t *testing.T) {
		s, err := NewStatement("u-1", OperationDeposit, decimal.NewFromInt(100), "salary")
		require.NoError(t, err)
		assert.Empty(t, s.ID)
		assert.True(t, s.CreatedAt.IsZero())
		assert.True(t, s.IsDeposit())
		assert.Equal(t, "100.00", s.GetAmount())
		assert.True(t, s.SignedAmount().Equal(decimal.NewFromInt(100)))
	})

	t.Run("Withdraw has negative signed amount", func(t *testing.T) {
		s, err := NewStatement("u-1", OperationWithdraw, decimal.RequireFromString("12.34"), "")
		require.NoError(t, err)
		assert.True(t, s.IsWithdraw())
		assert.Equal(t, "-12.34", FormatAmount(s.SignedAmount()))
	})

	t.Run("Rejects invalid input", func(t *testing.T) {
		_, err := NewStatement("", OperationDeposit, decimal.NewFromInt(1), "")
		assert.ErrorIs(t, err, errs.ErrInvalidUserID)

		_, err = NewStatement("u-1", OperationType("bonus"), decimal.NewFromInt(1), "")
		assert.ErrorIs(t, err, errs.ErrInvalidOperationType)

		_, err = NewStatement("u-1", OperationWithdraw, decimal.NewFromInt(-1), "")
		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
	})
}

func TestNewStatementCreatedEvent(t *testing.T) {
	s := &Statement{ID: "st-1", UserID: "u-1", Type: OperationWithdraw, Amount: decimal.NewFromInt(7), Description: "coffee"}

	event := NewStatementCreatedEvent(s)

	assert.Equal(t, EventStatementCreated, event.EventType)
	assert.Equal(t, "st-1", event.StatementID)
	assert.Equal(t, "withdraw", event.Type)
	assert.Equal(t, "7.00", event.Amount)
}
