package identifier

import (
	"github.com/google/uuid"

	"github.com/amirhossein-jamali/statement-ledger/internal/domain/port/core"
)

// UUIDGenerator issues random (version 4) UUID strings
type UUIDGenerator struct{}

// NewUUIDGenerator creates a new UUID generator
func NewUUIDGenerator() core.IDGenerator {
	return UUIDGenerator{}
}

// NewID returns a new UUID string
func (UUIDGenerator) NewID() string {
	return uuid.NewString()
}

// IsValid reports whether id parses as a UUID
func IsValid(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
