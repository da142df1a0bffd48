package memory

import (
	"context"
	"sync"

	"github.com/amirhossein-jamali/statement-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/statement-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/statement-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/statement-ledger/internal/domain/port/persistence"
)

// UserDirectory keeps users in process memory
type UserDirectory struct {
	mu      sync.RWMutex
	byID    map[string]*entity.User
	byEmail map[string]string
	ids     core.IDGenerator
	clock   core.TimeProvider
}

// NewUserDirectory creates an empty in-memory user directory
func NewUserDirectory(ids core.IDGenerator, clock core.TimeProvider) *UserDirectory {
	return &UserDirectory{
		byID:    make(map[string]*entity.User),
		byEmail: make(map[string]string),
		ids:     ids,
		clock:   clock,
	}
}

var _ persistence.UserDirectory = (*UserDirectory)(nil)

// FindByID retrieves a copy of the user with the given id
func (d *UserDirectory) FindByID(_ context.Context, userID string) (*entity.User, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	user, ok := d.byID[userID]
	if !ok {
		return nil, errs.ErrUserNotFound
	}
	clone := *user
	return &clone, nil
}

// FindByEmail retrieves a copy of the user registered with email
func (d *UserDirectory) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	d.mu.RLock()
	id, ok := d.byEmail[entity.NormalizeEmail(email)]
	d.mu.RUnlock()

	if !ok {
		return nil, errs.ErrUserNotFound
	}
	return d.FindByID(ctx, id)
}

// Exists checks if a user with the given id is registered
func (d *UserDirectory) Exists(_ context.Context, userID string) (bool, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	_, ok := d.byID[userID]
	return ok, nil
}

// Create stores the user under a fresh id
func (d *UserDirectory) Create(_ context.Context, user *entity.User) (*entity.User, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	email := entity.NormalizeEmail(user.Email)
	if _, taken := d.byEmail[email]; taken {
		return nil, errs.ErrDuplicateUser
	}

	now := d.clock.Now()
	stored := *user
	stored.ID = d.ids.NewID()
	stored.Email = email
	stored.CreatedAt = now
	stored.UpdatedAt = now

	d.byID[stored.ID] = &stored
	d.byEmail[email] = stored.ID

	clone := stored
	return &clone, nil
}
