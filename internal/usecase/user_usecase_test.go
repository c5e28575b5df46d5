package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"arfurnish/internal/domain/entity"
	"arfurnish/pkg/errors"
)

func setupUserUseCase(t *testing.T) (*UserUseCase, *fakeUserRepo, *fakeWishlistRepo, *fakeAuthProvider) {
	t.Helper()

	userRepo := newFakeUserRepo()
	wishlistRepo := newFakeWishlistRepo()
	provider := newFakeAuthProvider()
	provider.seq = 1 // pretend one provider account already exists

	userRepo.users["client-1"] = &entity.User{
		ID:          "client-1",
		Email:       "client@example.com",
		DisplayName: "Client",
		Role:        entity.RoleClient,
	}

	return NewUserUseCase(userRepo, wishlistRepo, provider), userRepo, wishlistRepo, provider
}

func TestUpdateProfileMergesFields(t *testing.T) {
	uc, _, _, _ := setupUserUseCase(t)

	user, err := uc.UpdateProfile(context.Background(), "client-1", UpdateProfileInput{
		DisplayName: "Renamed",
		Preferences: &entity.UserPreferences{Currency: "EUR", MeasureUnit: "cm", Notifications: false},
	})
	require.NoError(t, err)

	assert.Equal(t, "Renamed", user.DisplayName)
	assert.Equal(t, "client@example.com", user.Email)
	assert.Equal(t, "EUR", user.Preferences.Currency)
	assert.False(t, user.Preferences.Notifications)
}

func TestUpdateProfileUnknownUser(t *testing.T) {
	uc, _, _, _ := setupUserUseCase(t)

	_, err := uc.UpdateProfile(context.Background(), "ghost", UpdateProfileInput{DisplayName: "X"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, "NOT_FOUND"))
}

func TestUpdatePassword(t *testing.T) {
	uc, _, _, provider := setupUserUseCase(t)

	err := uc.UpdatePassword(context.Background(), "client-1", "oldpass123", "newpass123")
	require.NoError(t, err)
	assert.Equal(t, "newpass123", provider.passwordSets["client-1"])
}

func TestUpdatePasswordWrongCurrent(t *testing.T) {
	uc, _, _, provider := setupUserUseCase(t)
	provider.seq = 0 // make the re-authentication fail

	err := uc.UpdatePassword(context.Background(), "client-1", "wrong", "newpass123")
	require.Error(t, err)
	assert.True(t, errors.Is(err, "UNAUTHENTICATED"))
	assert.Empty(t, provider.passwordSets)
}

func TestDeleteAccountCascades(t *testing.T) {
	uc, userRepo, wishlistRepo, provider := setupUserUseCase(t)

	wishlistRepo.wishlists["client-1"] = &entity.Wishlist{
		UserID:    "client-1",
		Items:     []entity.WishlistItem{{ProductID: "p1", AddedAt: time.Now()}},
		UpdatedAt: time.Now(),
	}

	require.NoError(t, uc.DeleteAccount(context.Background(), "client-1"))

	_, err := userRepo.GetByID(context.Background(), "client-1")
	assert.True(t, errors.Is(err, "NOT_FOUND"))
	assert.NotContains(t, wishlistRepo.wishlists, "client-1")
	assert.Contains(t, provider.deletedUIDs, "client-1")
}
