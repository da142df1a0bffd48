package entity

import (
	"fmt"
	"strings"
	"time"

	errs "github.com/amirhossein-jamali/statement-ledger/internal/domain/error"
)

// User is an account holder. The secret is opaque to the ledger.
type User struct {
	ID           string    // Assigned by the user directory
	Name         string    // Display name
	Email        string    // Unique, stored lower-cased
	PasswordHash string    // Credential secret, never exposed in profiles
	CreatedAt    time.Time // When the user was registered
	UpdatedAt    time.Time // When the user was last updated
}

// UserProfile is the public view of a user
type UserProfile struct {
	ID        string
	Name      string
	Email     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewUser validates registration data and builds an unsaved user
func NewUser(name, email, passwordHash string) (*User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", errs.ErrInvalidUserData)
	}

	email = NormalizeEmail(email)
	if email == "" || !strings.Contains(email, "@") {
		return nil, fmt.Errorf("%w: invalid email %q", errs.ErrInvalidUserData, email)
	}

	if passwordHash == "" {
		return nil, fmt.Errorf("%w: credential secret is required", errs.ErrInvalidUserData)
	}

	return &User{
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
	}, nil
}

// NormalizeEmail trims and lower-cases an email for lookups
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Profile returns the user without the credential secret
func (u *User) Profile() UserProfile {
	return UserProfile{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
