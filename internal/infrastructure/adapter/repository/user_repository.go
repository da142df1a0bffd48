package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/amirhossein-jamali/statement-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/statement-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/statement-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/statement-ledger/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/statement-ledger/internal/infrastructure/adapter/model"
)

// UserRepository implements the UserDirectory port using GORM
type UserRepository struct {
	db              *gorm.DB
	ids             coreport.IDGenerator
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewUserRepository creates a new UserRepository instance
func NewUserRepository(db *gorm.DB, ids coreport.IDGenerator, timeProvider coreport.TimeProvider, logger coreport.Logger) *UserRepository {
	return &UserRepository{
		db:              db,
		ids:             ids,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

var _ persistence.UserDirectory = (*UserRepository)(nil)

func userToEntity(m *model.User) *entity.User {
	return &entity.User{
		ID:           m.ID,
		Name:         m.Name,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// handleDatabaseError standardizes database error handling
func (r *UserRepository) handleDatabaseError(operation string, err error, fields map[string]any) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.ErrUserNotFound
	}

	if r.errorClassifier.IsDuplicateKeyError(err) {
		return errs.ErrDuplicateUser
	}

	fields["error"] = err.Error()
	r.logger.Error(fmt.Sprintf("Database error when %s", operation), fields)

	if r.errorClassifier.IsLockError(err) {
		return fmt.Errorf("%w: %w", errs.ErrUserLocked, err)
	}

	return fmt.Errorf("%w: %w", errs.ErrDatabaseConnection, err)
}

// FindByID retrieves a user by ID
func (r *UserRepository) FindByID(ctx context.Context, userID string) (*entity.User, error) {
	var userModel model.User
	result := r.db.WithContext(ctx).Where("id = ?", userID).Take(&userModel)
	if result.Error != nil {
		return nil, r.handleDatabaseError("getting user", result.Error, map[string]any{"user_id": userID})
	}
	return userToEntity(&userModel), nil
}

// FindByEmail retrieves a user by normalized email
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userModel model.User
	result := r.db.WithContext(ctx).Where("email = ?", entity.NormalizeEmail(email)).Take(&userModel)
	if result.Error != nil {
		return nil, r.handleDatabaseError("getting user by email", result.Error, map[string]any{"email": email})
	}
	return userToEntity(&userModel), nil
}

// Exists checks if a user with the given ID exists
func (r *UserRepository) Exists(ctx context.Context, userID string) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&model.User{}).Where("id = ?", userID).Limit(1).Count(&count)
	if result.Error != nil {
		return false, r.handleDatabaseError("checking user", result.Error, map[string]any{"user_id": userID})
	}
	return count > 0, nil
}

// Create inserts a new user with a generated ID
func (r *UserRepository) Create(ctx context.Context, user *entity.User) (*entity.User, error) {
	now := r.timeProvider.Now()
	userModel := model.User{
		ID:           r.ids.NewID(),
		Name:         user.Name,
		Email:        entity.NormalizeEmail(user.Email),
		PasswordHash: user.PasswordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	result := r.db.WithContext(ctx).Create(&userModel)
	if result.Error != nil {
		return nil, r.handleDatabaseError("creating user", result.Error, map[string]any{"email": userModel.Email})
	}

	r.logger.Debug("User row inserted", map[string]any{
		"user_id": userModel.ID,
	})
	return userToEntity(&userModel), nil
}

// LockForUpdate takes an exclusive row lock on the user until the surrounding
// transaction ends. It must be called on a transaction-bound repository.
func (r *UserRepository) LockForUpdate(ctx context.Context, userID string) error {
	var userModel model.User
	result := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}).
		Select("id").
		Where("id = ?", userID).
		Take(&userModel)
	if result.Error != nil {
		return r.handleDatabaseError("locking user", result.Error, map[string]any{"user_id": userID})
	}
	return nil
}
