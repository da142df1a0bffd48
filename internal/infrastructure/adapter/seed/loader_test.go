package seed

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/statement-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/statement-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/statement-ledger/internal/infrastructure/adapter/logger"
	mockusecase "github.com/amirhossein-jamali/statement-ledger/mocks/port/usecase"
)

const seedYAML = `
users:
  - name: Alice
    email: alice@example.com
    password: alice-secret
    deposits:
      - amount: "100.00"
        description: Opening deposit
  - name: Bob
    email: bob@example.com
    password: bob-secret
`

func TestParse(t *testing.T) {
	file, err := Parse([]byte(seedYAML))
	require.NoError(t, err)
	require.Len(t, file.Users, 2)
	assert.Equal(t, "alice@example.com", file.Users[0].Email)
	assert.Equal(t, "100.00", file.Users[0].Deposits[0].Amount)

	_, err = Parse([]byte("users:\n  - name: x\n    balance: 10\n"))
	assert.ErrorIs(t, err, errs.ErrInvalidRequest)
}

func TestLoader_LoadFile(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte(seedYAML), 0o600))

	users := mockusecase.NewMockUserUseCase(t)
	statements := mockusecase.NewMockStatementUseCase(t)

	users.On("CreateUser", ctx, "Alice", "alice@example.com", "alice-secret").
		Return(&entity.User{ID: "alice-id"}, nil)
	users.On("CreateUser", ctx, "Bob", "bob@example.com", "bob-secret").
		Return(nil, errs.ErrDuplicateUser)
	statements.On("CreateStatement", ctx, "alice-id", entity.OperationDeposit,
		mock.MatchedBy(func(d decimal.Decimal) bool { return d.Equal(decimal.NewFromInt(100)) }),
		"Opening deposit").
		Return(&entity.Statement{ID: "st-1"}, nil)

	result, err := NewLoader(users, statements, logger.NewNoopLogger()).LoadFile(ctx, path)

	require.NoError(t, err)
	assert.Equal(t, &Result{Created: 1, Skipped: 1, Deposits: 1}, result)
}

func TestLoader_StopsOnFailure(t *testing.T) {
	ctx := context.Background()
	users := mockusecase.NewMockUserUseCase(t)
	statements := mockusecase.NewMockStatementUseCase(t)
	users.On("CreateUser", ctx, "Eve", "bad", "secret-value").Return(nil, errs.ErrInvalidUserData)

	file := &File{Users: []User{{Name: "Eve", Email: "bad", Password: "secret-value"}}}
	_, err := NewLoader(users, statements, logger.NewNoopLogger()).Apply(ctx, file)

	assert.ErrorIs(t, err, errs.ErrInvalidUserData)
}

func TestLoader_MissingFile(t *testing.T) {
	loader := NewLoader(mockusecase.NewMockUserUseCase(t), mockusecase.NewMockStatementUseCase(t), logger.NewNoopLogger())

	_, err := loader.LoadFile(context.Background(), filepath.Join(t.TempDir(), "absent.yaml"))

	assert.ErrorIs(t, err, os.ErrNotExist)
}
