package usecase

import (
	"context"

	"arfurnish/internal/domain/entity"
	"arfurnish/internal/domain/repository"
	"arfurnish/pkg/errors"
	"arfurnish/pkg/logger"
)

type UserUseCase struct {
	userRepo     repository.UserRepository
	wishlistRepo repository.WishlistRepository
	authProvider AuthProvider
}

func NewUserUseCase(userRepo repository.UserRepository, wishlistRepo repository.WishlistRepository, authProvider AuthProvider) *UserUseCase {
	return &UserUseCase{
		userRepo:     userRepo,
		wishlistRepo: wishlistRepo,
		authProvider: authProvider,
	}
}

type UpdateProfileInput struct {
	DisplayName string
	Phone       string
	CompanyName string
	PhotoURL    string
	Preferences *entity.UserPreferences
}

func (uc *UserUseCase) GetProfile(ctx context.Context, userID string) (*entity.User, error) {
	return uc.userRepo.GetByID(ctx, userID)
}

func (uc *UserUseCase) UpdateProfile(ctx context.Context, userID string, input UpdateProfileInput) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if input.DisplayName != "" {
		user.DisplayName = input.DisplayName
	}
	if input.Phone != "" {
		user.Phone = input.Phone
	}
	if input.CompanyName != "" {
		user.CompanyName = input.CompanyName
	}
	if input.PhotoURL != "" {
		user.PhotoURL = input.PhotoURL
	}
	if input.Preferences != nil {
		user.Preferences = *input.Preferences
	}

	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func (uc *UserUseCase) UpdatePassword(ctx context.Context, userID, currentPassword, newPassword string) error {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	if _, _, err := uc.authProvider.SignInWithEmailPassword(user.Email, currentPassword); err != nil {
		return errors.Unauthorized("Current password is incorrect", err)
	}

	if err := uc.authProvider.UpdateUserPassword(ctx, userID, newPassword); err != nil {
		return errors.Internal("Failed to update password", err)
	}

	return nil
}

// DeleteAccount removes the profile, its wishlist and the provider
// account. Self-service only; admin-driven removal goes through AdminUseCase.
func (uc *UserUseCase) DeleteAccount(ctx context.Context, userID string) error {
	if _, err := uc.userRepo.GetByID(ctx, userID); err != nil {
		return err
	}

	if err := uc.wishlistRepo.Delete(ctx, userID); err != nil {
		logger.Warn("Failed to delete wishlist for user %s: %v", userID, err)
	}

	if err := uc.userRepo.Delete(ctx, userID); err != nil {
		return err
	}

	if err := uc.authProvider.DeleteUser(ctx, userID); err != nil {
		logger.Warn("Failed to delete provider account for user %s: %v", userID, err)
	}

	return nil
}
