package usecase

import (
	"context"
	"time"

	"arfurnish/internal/domain/entity"
	"arfurnish/internal/domain/repository"
	"arfurnish/pkg/errors"
	"arfurnish/pkg/logger"
)

type AdminUseCase struct {
	userRepo     repository.UserRepository
	authProvider AuthProvider
}

func NewAdminUseCase(userRepo repository.UserRepository, authProvider AuthProvider) *AdminUseCase {
	return &AdminUseCase{
		userRepo:     userRepo,
		authProvider: authProvider,
	}
}

// EnsureDefaultAdmin provisions the first admin account at startup when
// none exists. Idempotent; replaces the old always-reachable bootstrap
// endpoint.
func (uc *AdminUseCase) EnsureDefaultAdmin(ctx context.Context, email, password, displayName string) error {
	count, err := uc.userRepo.CountByRole(ctx, entity.RoleAdmin)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	if email == "" || password == "" {
		logger.Warn("No admin exists and no bootstrap admin credentials configured")
		return nil
	}

	uid, err := uc.authProvider.CreateUser(ctx, email, password, displayName)
	if err != nil {
		return errors.Internal("Failed to create bootstrap admin in authentication provider", err)
	}

	now := time.Now()
	admin := &entity.User{
		ID:          uid,
		Email:       email,
		DisplayName: displayName,
		Role:        entity.RoleAdmin,
		Preferences: entity.UserPreferences{Notifications: true},
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := uc.userRepo.Create(ctx, admin); err != nil {
		return err
	}

	logger.Info("Bootstrap admin %s provisioned", email)
	return nil
}

type AdminCreateUserInput struct {
	Email       string
	Password    string
	DisplayName string
	Role        entity.Role
}

// CreateUser lets an admin create accounts of any role, including admin.
func (uc *AdminUseCase) CreateUser(ctx context.Context, input AdminCreateUserInput) (*entity.User, error) {
	if !input.Role.Valid() {
		return nil, errors.BadRequest("Invalid role", nil)
	}

	if existing, err := uc.userRepo.GetByEmail(ctx, input.Email); err == nil && existing != nil {
		return nil, errors.Conflict("Email already in use")
	}

	uid, err := uc.authProvider.CreateUser(ctx, input.Email, input.Password, input.DisplayName)
	if err != nil {
		return nil, errors.Internal("Failed to create user in authentication provider", err)
	}

	now := time.Now()
	user := &entity.User{
		ID:          uid,
		Email:       input.Email,
		DisplayName: input.DisplayName,
		Role:        input.Role,
		Preferences: entity.UserPreferences{Notifications: true},
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func (uc *AdminUseCase) ListUsers(ctx context.Context, role entity.Role, limit, offset int) ([]*entity.User, int64, error) {
	if role != "" && !role.Valid() {
		return nil, 0, errors.BadRequest("Invalid role filter", nil)
	}
	return uc.userRepo.List(ctx, role, limit, offset)
}

func (uc *AdminUseCase) ChangeRole(ctx context.Context, userID string, newRole entity.Role) (*entity.User, error) {
	if !newRole.Valid() {
		return nil, errors.BadRequest("Invalid role", nil)
	}

	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	user.Role = newRole
	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// DeleteUser removes a non-admin account. Admin accounts cannot be
// deleted through this path.
func (uc *AdminUseCase) DeleteUser(ctx context.Context, userID string) error {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	if user.Role == entity.RoleAdmin {
		return errors.Forbidden("Admin accounts cannot be deleted", nil)
	}

	if err := uc.userRepo.Delete(ctx, userID); err != nil {
		return err
	}

	if err := uc.authProvider.DeleteUser(ctx, userID); err != nil {
		logger.Warn("Failed to delete provider account for user %s: %v", userID, err)
	}

	return nil
}
