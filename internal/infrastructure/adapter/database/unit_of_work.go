package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"gorm.io/gorm"

	coreport "github.com/amirhossein-jamali/statement-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/statement-ledger/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/statement-ledger/internal/infrastructure/adapter/repository"
)

// UnitOfWork runs each scoped function in its own database transaction that
// first takes a FOR UPDATE row lock on the user. Concurrent scopes for the
// same user queue on that row; different users lock different rows.
type UnitOfWork struct {
	db           *gorm.DB
	driver       string
	lockTimeout  time.Duration
	ids          coreport.IDGenerator
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	errorMapper  *ErrorMapper
}

// NewUnitOfWork creates a new UnitOfWork instance
func NewUnitOfWork(
	db *gorm.DB,
	driver string,
	lockTimeout time.Duration,
	ids coreport.IDGenerator,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *UnitOfWork {
	return &UnitOfWork{
		db:           db,
		driver:       driver,
		lockTimeout:  lockTimeout,
		ids:          ids,
		timeProvider: timeProvider,
		logger:       logger,
		errorMapper:  NewErrorMapper(),
	}
}

var _ persistence.UnitOfWork = (*UnitOfWork)(nil)

// WithUserLock commits the writes made by fn only when it returns nil
func (u *UnitOfWork) WithUserLock(ctx context.Context, userID string, fn persistence.ScopedFunc) error {
	// READ COMMITTED lets reads after the row lock see every append committed before it
	opts := &sql.TxOptions{Isolation: sql.LevelReadCommitted}

	err := u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := u.applyLockTimeout(tx); err != nil {
			return err
		}

		users := repository.NewUserRepository(tx, u.ids, u.timeProvider, u.logger)
		if err := users.LockForUpdate(ctx, userID); err != nil {
			return err
		}

		store := repository.NewStatementRepository(tx, u.ids, u.timeProvider, u.logger)
		return fn(ctx, store)
	}, opts)

	return u.errorMapper.MapError(err, "user scoped transaction")
}

// applyLockTimeout bounds how long the row lock may be awaited
func (u *UnitOfWork) applyLockTimeout(tx *gorm.DB) error {
	if u.lockTimeout <= 0 {
		return nil
	}

	switch u.driver {
	case DriverPostgres:
		return tx.Exec(fmt.Sprintf("SET LOCAL lock_timeout = '%dms'", u.lockTimeout.Milliseconds())).Error
	case DriverMySQL:
		seconds := int64(u.lockTimeout / time.Second)
		if seconds < 1 {
			seconds = 1
		}
		return tx.Exec(fmt.Sprintf("SET SESSION innodb_lock_wait_timeout = %d", seconds)).Error
	default:
		return nil
	}
}
