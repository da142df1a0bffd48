package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/amirhossein-jamali/statement-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/statement-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/statement-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/statement-ledger/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/statement-ledger/internal/infrastructure/adapter/model"
)

// StatementRepository implements the StatementStore port using GORM.
// Statements are only ever inserted; there is no update or delete path.
type StatementRepository struct {
	db              *gorm.DB
	ids             coreport.IDGenerator
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewStatementRepository creates a new StatementRepository
func NewStatementRepository(db *gorm.DB, ids coreport.IDGenerator, timeProvider coreport.TimeProvider, logger coreport.Logger) *StatementRepository {
	return &StatementRepository{
		db:              db,
		ids:             ids,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

var _ persistence.StatementStore = (*StatementRepository)(nil)

func statementToEntity(m *model.Statement) *entity.Statement {
	return &entity.Statement{
		ID:          m.ID,
		UserID:      m.UserID,
		Type:        entity.OperationType(m.Type),
		Amount:      m.Amount,
		Description: m.Description,
		CreatedAt:   m.CreatedAt,
	}
}

func (r *StatementRepository) handleDatabaseError(operation string, err error, fields map[string]any) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.ErrStatementNotFound
	}

	fields["error"] = err.Error()
	r.logger.Error(fmt.Sprintf("Database error when %s", operation), fields)

	switch r.errorClassifier.Classify(err) {
	case ConstraintError:
		// the owning user row is missing
		return fmt.Errorf("%w: %w", errs.ErrUserNotFound, err)
	case LockError:
		return fmt.Errorf("%w: %w", errs.ErrUserLocked, err)
	default:
		return fmt.Errorf("%w: %w", errs.ErrDatabaseConnection, err)
	}
}

// Append inserts the statement with a generated ID and creation time
func (r *StatementRepository) Append(ctx context.Context, statement *entity.Statement) (*entity.Statement, error) {
	statementModel := model.Statement{
		ID:          r.ids.NewID(),
		UserID:      statement.UserID,
		Type:        string(statement.Type),
		Amount:      statement.Amount,
		Description: statement.Description,
		CreatedAt:   r.timeProvider.Now(),
	}

	result := r.db.WithContext(ctx).Omit("User").Create(&statementModel)
	if result.Error != nil {
		return nil, r.handleDatabaseError("appending statement", result.Error, map[string]any{
			"user_id": statement.UserID,
		})
	}

	return statementToEntity(&statementModel), nil
}

// ListByUser returns the user's statements in insertion order
func (r *StatementRepository) ListByUser(ctx context.Context, userID string) ([]*entity.Statement, error) {
	var rows []model.Statement
	result := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("seq ASC").Find(&rows)
	if result.Error != nil {
		return nil, r.handleDatabaseError("listing statements", result.Error, map[string]any{
			"user_id": userID,
		})
	}

	statements := make([]*entity.Statement, 0, len(rows))
	for i := range rows {
		statements = append(statements, statementToEntity(&rows[i]))
	}
	return statements, nil
}

// FindByID retrieves a statement regardless of owner
func (r *StatementRepository) FindByID(ctx context.Context, statementID string) (*entity.Statement, error) {
	var row model.Statement
	result := r.db.WithContext(ctx).Where("id = ?", statementID).Take(&row)
	if result.Error != nil {
		return nil, r.handleDatabaseError("getting statement", result.Error, map[string]any{
			"statement_id": statementID,
		})
	}
	return statementToEntity(&row), nil
}

// FindByUserAndID retrieves a statement in a single query on id and owner
func (r *StatementRepository) FindByUserAndID(ctx context.Context, userID, statementID string) (*entity.Statement, error) {
	var row model.Statement
	result := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", statementID, userID).Take(&row)
	if result.Error != nil {
		return nil, r.handleDatabaseError("getting statement", result.Error, map[string]any{
			"user_id":      userID,
			"statement_id": statementID,
		})
	}
	return statementToEntity(&row), nil
}
