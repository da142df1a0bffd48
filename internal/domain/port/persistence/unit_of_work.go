package persistence

import (
	"context"
)

// ScopedFunc runs inside a per-user exclusion scope with a store bound to it
type ScopedFunc func(ctx context.Context, store StatementStore) error

// UnitOfWork serializes read-validate-append sequences per user.
// Calls for different users never block each other.
type UnitOfWork interface {
	// WithUserLock runs fn while holding the exclusion scope for userID.
	// Writes made through store are committed only if fn returns nil.
	WithUserLock(ctx context.Context, userID string, fn ScopedFunc) error
}
