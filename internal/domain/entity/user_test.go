package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/amirhossein-jamali/statement-ledger/internal/domain/error"
)

func TestNewUser(t *testing.T) {
	u, err := NewUser(" Jane Doe ", " Jane@Example.COM ", "hash")
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", u.Name)
	assert.Equal(t, "jane@example.com", u.Email)
	assert.Empty(t, u.ID)

	_, err = NewUser("", "jane@example.com", "hash")
	assert.ErrorIs(t, err, errs.ErrInvalidUserData)

	_, err = NewUser("Jane", "jane.example.com", "hash")
	assert.ErrorIs(t, err, errs.ErrInvalidUserData)

	_, err = NewUser("Jane", "jane@example.com", "")
	assert.ErrorIs(t, err, errs.ErrInvalidUserData)
}

func TestUserProfile(t *testing.T) {
	now := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	u := &User{ID: "u-1", Name: "Jane", Email: "jane@example.com", PasswordHash: "secret", CreatedAt: now, UpdatedAt: now}

	profile := u.Profile()

	assert.Equal(t, UserProfile{ID: "u-1", Name: "Jane", Email: "jane@example.com", CreatedAt: now, UpdatedAt: now}, profile)
}
