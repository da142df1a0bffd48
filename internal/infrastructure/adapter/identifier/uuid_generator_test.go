package identifier

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUUIDGenerator(t *testing.T) {
	gen := NewUUIDGenerator()

	first, second := gen.NewID(), gen.NewID()

	assert.True(t, IsValid(first))
	assert.NotEqual(t, first, second)
	assert.False(t, IsValid("statement-1"))
}
