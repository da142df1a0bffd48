package user

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/statement-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/statement-ledger/internal/domain/error"
	mockcore "github.com/amirhossein-jamali/statement-ledger/mocks/port/core"
	mockpersistence "github.com/amirhossein-jamali/statement-ledger/mocks/port/persistence"
)

func newQuietLogger(t *testing.T) *mockcore.MockLogger {
	logger := mockcore.NewMockLogger(t)
	logger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()
	return logger
}

func TestUserUseCase_CreateUser(t *testing.T) {
	ctx := context.Background()
	fixedTime := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

	t.Run("should hash secret and create user", func(t *testing.T) {
		users := mockpersistence.NewMockUserDirectory(t)
		hasher := mockcore.NewMockSecretHasher(t)

		users.On("FindByEmail", ctx, "jane@example.com").Return(nil, errs.ErrUserNotFound)
		hasher.On("Hash", "s3cret!").Return("$2a$hash", nil)
		users.On("Create", ctx, mock.MatchedBy(func(u *entity.User) bool {
			return u.Name == "Jane" && u.Email == "jane@example.com" && u.PasswordHash == "$2a$hash"
		})).Return(func(_ context.Context, u *entity.User) (*entity.User, error) {
			created := *u
			created.ID = "user-1"
			created.CreatedAt = fixedTime
			created.UpdatedAt = fixedTime
			return &created, nil
		})

		uc := NewUserUseCase(users, hasher, newQuietLogger(t))
		user, err := uc.CreateUser(ctx, " Jane ", "Jane@Example.com", "s3cret!")

		require.NoError(t, err)
		assert.Equal(t, "user-1", user.ID)
		assert.Equal(t, "jane@example.com", user.Email)
		assert.Equal(t, fixedTime, user.CreatedAt)
		assert.NotEqual(t, "s3cret!", user.PasswordHash)
	})

	t.Run("should reject already registered email", func(t *testing.T) {
		users := mockpersistence.NewMockUserDirectory(t)
		hasher := mockcore.NewMockSecretHasher(t)
		users.On("FindByEmail", ctx, "jane@example.com").Return(&entity.User{ID: "existing"}, nil)

		uc := NewUserUseCase(users, hasher, newQuietLogger(t))
		user, err := uc.CreateUser(ctx, "Jane", "jane@example.com", "s3cret!")

		assert.Nil(t, user)
		assert.ErrorIs(t, err, errs.ErrDuplicateUser)
		hasher.AssertNotCalled(t, "Hash", mock.Anything)
	})

	t.Run("should surface duplicate detected by the directory", func(t *testing.T) {
		users := mockpersistence.NewMockUserDirectory(t)
		hasher := mockcore.NewMockSecretHasher(t)
		users.On("FindByEmail", ctx, "jane@example.com").Return(nil, errs.ErrUserNotFound)
		hasher.On("Hash", mock.Anything).Return("hash", nil)
		users.On("Create", ctx, mock.Anything).Return(nil, errs.ErrDuplicateUser)

		uc := NewUserUseCase(users, hasher, newQuietLogger(t))
		_, err := uc.CreateUser(ctx, "Jane", "jane@example.com", "s3cret!")

		assert.ErrorIs(t, err, errs.ErrDuplicateUser)
	})

	t.Run("should validate registration data", func(t *testing.T) {
		testCases := []struct {
			name     string
			userName string
			email    string
			password string
		}{
			{"empty name", "  ", "a@b.c", "s3cret!"},
			{"invalid email", "Jane", "not-an-email", "s3cret!"},
			{"short password", "Jane", "a@b.c", "123"},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				users := mockpersistence.NewMockUserDirectory(t)
				hasher := mockcore.NewMockSecretHasher(t)

				uc := NewUserUseCase(users, hasher, newQuietLogger(t))
				_, err := uc.CreateUser(ctx, tc.userName, tc.email, tc.password)

				assert.ErrorIs(t, err, errs.ErrInvalidUserData)
				users.AssertNotCalled(t, "FindByEmail", mock.Anything, mock.Anything)
			})
		}
	})

	t.Run("should wrap hashing failures as internal errors", func(t *testing.T) {
		users := mockpersistence.NewMockUserDirectory(t)
		hasher := mockcore.NewMockSecretHasher(t)
		users.On("FindByEmail", ctx, "jane@example.com").Return(nil, errs.ErrUserNotFound)
		hasher.On("Hash", mock.Anything).Return("", errors.New("cost too high"))

		uc := NewUserUseCase(users, hasher, newQuietLogger(t))
		_, err := uc.CreateUser(ctx, "Jane", "jane@example.com", "s3cret!")

		assert.ErrorIs(t, err, errs.ErrInternalServer)
	})
}
