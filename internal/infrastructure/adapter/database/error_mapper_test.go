package database

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	errs "github.com/amirhossein-jamali/statement-ledger/internal/domain/error"
)

func TestErrorMapper_MapError(t *testing.T) {
	mapper := NewErrorMapper()

	t.Run("nil stays nil", func(t *testing.T) {
		assert.NoError(t, mapper.MapError(nil, "op"))
	})

	t.Run("domain errors pass through unchanged", func(t *testing.T) {
		insufficient := errs.NewInsufficientFundsError("u1", "60.00", "40.00")
		assert.Same(t, insufficient, mapper.MapError(insufficient, "op"))

		notFound := fmt.Errorf("lock user: %w", errs.ErrUserNotFound)
		assert.Equal(t, notFound, mapper.MapError(notFound, "op"))
	})

	t.Run("context errors pass through unchanged", func(t *testing.T) {
		assert.Equal(t, context.Canceled, mapper.MapError(context.Canceled, "op"))
		assert.Equal(t, context.DeadlineExceeded, mapper.MapError(context.DeadlineExceeded, "op"))
	})

	t.Run("lock timeouts become user locked", func(t *testing.T) {
		pgErr := &pgconn.PgError{Code: "55P03"}
		mapped := mapper.MapError(pgErr, "user scoped transaction")
		assert.ErrorIs(t, mapped, errs.ErrUserLocked)

		var cause *pgconn.PgError
		assert.True(t, errors.As(mapped, &cause))

		assert.ErrorIs(t, mapper.MapError(&mysql.MySQLError{Number: 1205}, "op"), errs.ErrUserLocked)
	})

	t.Run("duplicate keys become duplicate user", func(t *testing.T) {
		assert.ErrorIs(t, mapper.MapError(&mysql.MySQLError{Number: 1062}, "op"), errs.ErrDuplicateUser)
	})

	t.Run("anything else is a database failure", func(t *testing.T) {
		mapped := mapper.MapError(errors.New("syntax error"), "op")
		assert.ErrorIs(t, mapped, errs.ErrDatabaseConnection)
		assert.Contains(t, mapped.Error(), "syntax error")
	})
}
