package memory

import (
	"context"
	"errors"
	"fmt"
	"time"

	errs "github.com/amirhossein-jamali/statement-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/statement-ledger/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/statement-ledger/internal/infrastructure/adapter/lock"
)

// UnitOfWork serializes scoped work per user with a keyed lock table.
// The scoped function must perform its single append last; the memory
// store has nothing to roll back.
type UnitOfWork struct {
	locks       *lock.KeyedMutex
	store       persistence.StatementStore
	lockTimeout time.Duration
}

// NewUnitOfWork creates a unit of work over store. A zero lockTimeout
// waits for as long as the caller's context allows.
func NewUnitOfWork(store persistence.StatementStore, lockTimeout time.Duration) *UnitOfWork {
	return &UnitOfWork{
		locks:       lock.NewKeyedMutex(),
		store:       store,
		lockTimeout: lockTimeout,
	}
}

var _ persistence.UnitOfWork = (*UnitOfWork)(nil)

// WithUserLock runs fn while holding userID's lock
func (u *UnitOfWork) WithUserLock(ctx context.Context, userID string, fn persistence.ScopedFunc) error {
	lockCtx := ctx
	if u.lockTimeout > 0 {
		var cancel context.CancelFunc
		lockCtx, cancel = context.WithTimeout(ctx, u.lockTimeout)
		defer cancel()
	}

	unlock, err := u.locks.Lock(lockCtx, userID)
	if err != nil {
		// only our own timeout means the user is busy; caller cancellation passes through
		if errors.Is(err, context.DeadlineExceeded) && ctx.Err() == nil {
			return fmt.Errorf("%w: %s", errs.ErrUserLocked, userID)
		}
		return err
	}
	defer unlock()

	return fn(ctx, u.store)
}
