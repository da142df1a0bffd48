package user

import (
	"context"

	"github.com/amirhossein-jamali/statement-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/statement-ledger/internal/domain/error"
)

// ShowUserProfile returns the stored record for a user
func (u *UserUseCase) ShowUserProfile(ctx context.Context, userID string) (*entity.User, error) {
	if userID == "" {
		return nil, errs.ErrInvalidUserID
	}

	user, err := u.users.FindByID(ctx, userID)
	if err != nil {
		if errs.IsUserNotFoundError(err) {
			u.logger.Warn("Profile requested for non-existent user", map[string]any{
				"userId": userID,
			})
		} else {
			u.logger.Error("Failed to get user", map[string]any{
				"userId": userID,
				"error":  err.Error(),
			})
		}
		return nil, err
	}

	return user, nil
}
