package user

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/statement-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/statement-ledger/internal/domain/error"
	mockcore "github.com/amirhossein-jamali/statement-ledger/mocks/port/core"
	mockpersistence "github.com/amirhossein-jamali/statement-ledger/mocks/port/persistence"
)

func TestUserUseCase_ShowUserProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("should return stored user", func(t *testing.T) {
		users := mockpersistence.NewMockUserDirectory(t)
		stored := &entity.User{ID: "user-1", Name: "Jane", Email: "jane@example.com"}
		users.On("FindByID", ctx, "user-1").Return(stored, nil)

		uc := NewUserUseCase(users, mockcore.NewMockSecretHasher(t), newQuietLogger(t))
		user, err := uc.ShowUserProfile(ctx, "user-1")

		require.NoError(t, err)
		assert.Equal(t, stored, user)
	})

	t.Run("should return user not found", func(t *testing.T) {
		users := mockpersistence.NewMockUserDirectory(t)
		users.On("FindByID", ctx, "ghost").Return(nil, errs.ErrUserNotFound)

		uc := NewUserUseCase(users, mockcore.NewMockSecretHasher(t), newQuietLogger(t))
		user, err := uc.ShowUserProfile(ctx, "ghost")

		assert.Nil(t, user)
		assert.ErrorIs(t, err, errs.ErrUserNotFound)
	})

	t.Run("should reject empty user id", func(t *testing.T) {
		uc := NewUserUseCase(mockpersistence.NewMockUserDirectory(t), mockcore.NewMockSecretHasher(t), newQuietLogger(t))

		_, err := uc.ShowUserProfile(ctx, "")

		assert.ErrorIs(t, err, errs.ErrInvalidUserID)
	})
}
