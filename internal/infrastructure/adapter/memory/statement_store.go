package memory

import (
	"context"
	"sync"

	"github.com/amirhossein-jamali/statement-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/statement-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/statement-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/statement-ledger/internal/domain/port/persistence"
)

// StatementStore is an append-only in-memory statement log.
// Returned statements are copies; stored ones are never modified.
type StatementStore struct {
	mu     sync.RWMutex
	byID   map[string]*entity.Statement
	byUser map[string][]*entity.Statement
	ids    core.IDGenerator
	clock  core.TimeProvider
}

// NewStatementStore creates an empty in-memory statement store
func NewStatementStore(ids core.IDGenerator, clock core.TimeProvider) *StatementStore {
	return &StatementStore{
		byID:   make(map[string]*entity.Statement),
		byUser: make(map[string][]*entity.Statement),
		ids:    ids,
		clock:  clock,
	}
}

var _ persistence.StatementStore = (*StatementStore)(nil)

// Append stores a copy of the statement with a fresh id and timestamp
func (s *StatementStore) Append(_ context.Context, statement *entity.Statement) (*entity.Statement, error) {
	stored := *statement
	stored.ID = s.ids.NewID()
	stored.CreatedAt = s.clock.Now()

	s.mu.Lock()
	s.byID[stored.ID] = &stored
	s.byUser[stored.UserID] = append(s.byUser[stored.UserID], &stored)
	s.mu.Unlock()

	clone := stored
	return &clone, nil
}

// ListByUser returns the user's statements oldest first
func (s *StatementStore) ListByUser(_ context.Context, userID string) ([]*entity.Statement, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	history := s.byUser[userID]
	result := make([]*entity.Statement, 0, len(history))
	for _, statement := range history {
		clone := *statement
		result = append(result, &clone)
	}
	return result, nil
}

// FindByID retrieves a statement regardless of owner
func (s *StatementStore) FindByID(_ context.Context, statementID string) (*entity.Statement, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	statement, ok := s.byID[statementID]
	if !ok {
		return nil, errs.ErrStatementNotFound
	}
	clone := *statement
	return &clone, nil
}

// FindByUserAndID retrieves a statement only when userID owns it
func (s *StatementStore) FindByUserAndID(ctx context.Context, userID, statementID string) (*entity.Statement, error) {
	statement, err := s.FindByID(ctx, statementID)
	if err != nil {
		return nil, err
	}
	if statement.UserID != userID {
		return nil, errs.ErrStatementNotFound
	}
	return statement, nil
}

// Count returns the total number of stored statements
func (s *StatementStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.byID)
}
