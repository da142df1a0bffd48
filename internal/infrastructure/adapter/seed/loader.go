package seed

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/amirhossein-jamali/statement-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/statement-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/statement-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/statement-ledger/internal/domain/port/usecase"
)

// File is the layout of a seed YAML document
type File struct {
	Users []User `yaml:"users"`
}

// User is one bootstrap account with optional opening deposits
type User struct {
	Name     string    `yaml:"name"`
	Email    string    `yaml:"email"`
	Password string    `yaml:"password"`
	Deposits []Deposit `yaml:"deposits"`
}

// Deposit is an opening deposit; amounts are strings to keep exact decimals
type Deposit struct {
	Amount      string `yaml:"amount"`
	Description string `yaml:"description"`
}

// Result summarizes a seeding run
type Result struct {
	Created  int
	Skipped  int
	Deposits int
}

// Loader registers bootstrap users through the regular use cases
type Loader struct {
	users      usecase.UserUseCase
	statements usecase.StatementUseCase
	logger     core.Logger
}

// NewLoader creates a seed loader
func NewLoader(users usecase.UserUseCase, statements usecase.StatementUseCase, logger core.Logger) *Loader {
	return &Loader{users: users, statements: statements, logger: logger}
}

// Parse decodes a seed document, rejecting unknown fields
func Parse(data []byte) (*File, error) {
	var file File
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&file); err != nil {
		return nil, fmt.Errorf("%w: seed file: %w", errs.ErrInvalidRequest, err)
	}
	return &file, nil
}

// LoadFile reads and applies the seed file at path
func (l *Loader) LoadFile(ctx context.Context, path string) (*Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}

	file, err := Parse(data)
	if err != nil {
		return nil, err
	}

	return l.Apply(ctx, file)
}

// Apply registers every user not yet present. Deposits are recorded only
// for users created by this run so reseeding never duplicates them.
func (l *Loader) Apply(ctx context.Context, file *File) (*Result, error) {
	result := &Result{}

	for _, seedUser := range file.Users {
		user, err := l.users.CreateUser(ctx, seedUser.Name, seedUser.Email, seedUser.Password)
		if errors.Is(err, errs.ErrDuplicateUser) {
			result.Skipped++
			l.logger.Info("Seed user already exists", map[string]any{
				"email": seedUser.Email,
			})
			continue
		}
		if err != nil {
			return result, fmt.Errorf("seed user %s: %w", seedUser.Email, err)
		}
		result.Created++

		for _, deposit := range seedUser.Deposits {
			amount, err := entity.ParseAmount(deposit.Amount)
			if err != nil {
				return result, fmt.Errorf("seed deposit for %s: %w", seedUser.Email, err)
			}
			if _, err := l.statements.CreateStatement(ctx, user.ID, entity.OperationDeposit, amount, deposit.Description); err != nil {
				return result, fmt.Errorf("seed deposit for %s: %w", seedUser.Email, err)
			}
			result.Deposits++
		}
	}

	l.logger.Info("Seed users applied", map[string]any{
		"created":  result.Created,
		"skipped":  result.Skipped,
		"deposits": result.Deposits,
	})

	return result, nil
}
