package statement_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/statement-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/statement-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/statement-ledger/internal/domain/usecase/statement"
	"github.com/amirhossein-jamali/statement-ledger/internal/infrastructure/adapter/identifier"
	"github.com/amirhossein-jamali/statement-ledger/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/statement-ledger/internal/infrastructure/adapter/memory"
	realtime "github.com/amirhossein-jamali/statement-ledger/internal/infrastructure/adapter/time"
)

type ledger struct {
	users      *memory.UserDirectory
	statements *memory.StatementStore
	uc         *statement.StatementUseCase
}

func newLedger(t *testing.T) *ledger {
	t.Helper()
	ids := identifier.NewUUIDGenerator()
	clock := realtime.NewRealTimeProvider()

	users := memory.NewUserDirectory(ids, clock)
	statements := memory.NewStatementStore(ids, clock)
	uow := memory.NewUnitOfWork(statements, time.Second)

	return &ledger{
		users:      users,
		statements: statements,
		uc:         statement.NewStatementUseCase(users, statements, uow, nil, logger.NewNoopLogger()),
	}
}

func (l *ledger) register(t *testing.T, email string) string {
	t.Helper()
	u, err := l.users.Create(context.Background(), &entity.User{Name: email, Email: email, PasswordHash: "x"})
	require.NoError(t, err)
	return u.ID
}

func amount(v string) decimal.Decimal { return decimal.RequireFromString(v) }

func TestLedger_DepositIsRecorded(t *testing.T) {
	ctx := context.Background()
	l := newLedger(t)
	a := l.register(t, "a@example.com")

	created, err := l.uc.CreateStatement(ctx, a, entity.OperationDeposit, amount("100"), "Deposit test")
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Deposit test", created.Description)
	assert.False(t, created.CreatedAt.IsZero())

	balance, err := l.uc.GetBalance(ctx, a)
	require.NoError(t, err)
	assert.Equal(t, "100.00", balance.GetBalance())
	require.Len(t, balance.Statements, 1)
	assert.Equal(t, created.ID, balance.Statements[0].ID)
}

func TestLedger_DepositThenWithdrawAll(t *testing.T) {
	ctx := context.Background()
	l := newLedger(t)
	a := l.register(t, "a@example.com")

	_, err := l.uc.CreateStatement(ctx, a, entity.OperationDeposit, amount("100"), "")
	require.NoError(t, err)
	_, err = l.uc.CreateStatement(ctx, a, entity.OperationWithdraw, amount("100"), "")
	require.NoError(t, err)

	balance, err := l.uc.GetBalance(ctx, a)
	require.NoError(t, err)
	assert.True(t, balance.Amount.IsZero())
	assert.Len(t, balance.Statements, 2)
}

func TestLedger_NewUserCannotWithdraw(t *testing.T) {
	ctx := context.Background()
	l := newLedger(t)
	b := l.register(t, "b@example.com")

	_, err := l.uc.CreateStatement(ctx, b, entity.OperationWithdraw, amount("100"), "")
	assert.ErrorIs(t, err, errs.ErrInsufficientFunds)

	balance, err := l.uc.GetBalance(ctx, b)
	require.NoError(t, err)
	assert.Equal(t, "0.00", balance.GetBalance())
	assert.Empty(t, balance.Statements)
	assert.Equal(t, 0, l.statements.Count())
}

func TestLedger_UnknownUser(t *testing.T) {
	ctx := context.Background()
	l := newLedger(t)

	for _, op := range []entity.OperationType{entity.OperationDeposit, entity.OperationWithdraw} {
		_, err := l.uc.CreateStatement(ctx, "nonexistent", op, amount("10"), "")
		assert.ErrorIs(t, err, errs.ErrUserNotFound, string(op))
	}

	_, err := l.uc.GetBalance(ctx, "nonexistent")
	assert.ErrorIs(t, err, errs.ErrUserNotFound)

	_, err = l.uc.GetStatementOperation(ctx, "nonexistent", "whatever")
	assert.ErrorIs(t, err, errs.ErrUserNotFound)
}

func TestLedger_ForeignStatementIsNotFound(t *testing.T) {
	ctx := context.Background()
	l := newLedger(t)
	a := l.register(t, "a@example.com")
	c := l.register(t, "c@example.com")

	s, err := l.uc.CreateStatement(ctx, a, entity.OperationDeposit, amount("10"), "")
	require.NoError(t, err)

	_, err = l.uc.GetStatementOperation(ctx, c, s.ID)
	assert.ErrorIs(t, err, errs.ErrStatementNotFound)

	owned, err := l.uc.GetStatementOperation(ctx, a, s.ID)
	require.NoError(t, err)
	assert.Equal(t, s.ID, owned.ID)
}

func TestLedger_ReadsAreIdempotent(t *testing.T) {
	ctx := context.Background()
	l := newLedger(t)
	a := l.register(t, "a@example.com")
	_, err := l.uc.CreateStatement(ctx, a, entity.OperationDeposit, amount("12.34"), "")
	require.NoError(t, err)

	first, err := l.uc.GetBalance(ctx, a)
	require.NoError(t, err)
	second, err := l.uc.GetBalance(ctx, a)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestLedger_ConcurrentWithdrawalsNeverOverdraw(t *testing.T) {
	ctx := context.Background()
	l := newLedger(t)
	a := l.register(t, "a@example.com")
	_, err := l.uc.CreateStatement(ctx, a, entity.OperationDeposit, amount("100"), "")
	require.NoError(t, err)

	var wg sync.WaitGroup
	results := make([]error, 2)
	start := make(chan struct{})
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start
			_, results[i] = l.uc.CreateStatement(ctx, a, entity.OperationWithdraw, amount("60"), "")
		}(i)
	}
	close(start)
	wg.Wait()

	succeeded, rejected := 0, 0
	for _, err := range results {
		switch {
		case err == nil:
			succeeded++
		case errs.IsInsufficientFundsError(err):
			rejected++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	assert.Equal(t, 1, succeeded)
	assert.Equal(t, 1, rejected)

	balance, err := l.uc.GetBalance(ctx, a)
	require.NoError(t, err)
	assert.Equal(t, "40.00", balance.GetBalance())
}

func TestLedger_ManyConcurrentOperationsKeepBalanceNonNegative(t *testing.T) {
	ctx := context.Background()
	l := newLedger(t)
	a := l.register(t, "a@example.com")
	b := l.register(t, "b@example.com")
	_, err := l.uc.CreateStatement(ctx, a, entity.OperationDeposit, amount("50"), "")
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, _ = l.uc.CreateStatement(ctx, a, entity.OperationWithdraw, amount("7"), "")
		}()
		go func() {
			defer wg.Done()
			_, _ = l.uc.CreateStatement(ctx, b, entity.OperationDeposit, amount("1"), "")
		}()
	}
	wg.Wait()

	balanceA, err := l.uc.GetBalance(ctx, a)
	require.NoError(t, err)
	assert.Equal(t, "1.00", balanceA.GetBalance())
	assert.Len(t, balanceA.Statements, 8)

	balanceB, err := l.uc.GetBalance(ctx, b)
	require.NoError(t, err)
	assert.Equal(t, "50.00", balanceB.GetBalance())
}
