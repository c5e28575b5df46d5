package usecase

import (
	"context"
	"time"

	"arfurnish/internal/domain/entity"
	"arfurnish/internal/domain/repository"
	"arfurnish/pkg/errors"
	"arfurnish/pkg/logger"
)

type AuthUseCase struct {
	userRepo     repository.UserRepository
	authProvider AuthProvider
}

func NewAuthUseCase(userRepo repository.UserRepository, authProvider AuthProvider) *AuthUseCase {
	return &AuthUseCase{
		userRepo:     userRepo,
		authProvider: authProvider,
	}
}

type SignupInput struct {
	Email       string
	Password    string
	DisplayName string
	Role        entity.Role
	Phone       string
	CompanyName string
}

type AuthResult struct {
	User         *entity.User
	Token        string
	RefreshToken string
}

// Signup creates the identity-provider account and the profile record.
// Public signup is restricted to client and company roles; admins are
// provisioned at startup, never through this path.
func (uc *AuthUseCase) Signup(ctx context.Context, input SignupInput) (*AuthResult, error) {
	if !input.Role.In(entity.RoleClient, entity.RoleCompany) {
		return nil, errors.BadRequest("Role must be client or company", nil)
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
		Phone:       input.Phone,
		CompanyName: input.CompanyName,
		Preferences: entity.UserPreferences{Notifications: true},
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := uc.userRepo.Create(ctx, user); err != nil {
		// Best-effort cleanup so the provider account does not leak.
		if delErr := uc.authProvider.DeleteUser(ctx, uid); delErr != nil {
			logger.Warn("Failed to clean up provider account %s: %v", uid, delErr)
		}
		return nil, err
	}

	token, refreshToken, err := uc.authProvider.SignInWithEmailPassword(input.Email, input.Password)
	if err != nil {
		return nil, errors.Internal("Failed to generate authentication token", err)
	}

	return &AuthResult{
		User:         user,
		Token:        token,
		RefreshToken: refreshToken,
	}, nil
}

func (uc *AuthUseCase) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	token, refreshToken, err := uc.authProvider.SignInWithEmailPassword(email, password)
	if err != nil {
		return nil, errors.Unauthorized("Invalid credentials", err)
	}

	uid, err := uc.authProvider.VerifyToken(ctx, token)
	if err != nil {
		return nil, errors.Internal("Failed to verify token", err)
	}

	user, err := uc.userRepo.GetByID(ctx, uid)
	if err != nil {
		return nil, err
	}

	return &AuthResult{
		User:         user,
		Token:        token,
		RefreshToken: refreshToken,
	}, nil
}

func (uc *AuthUseCase) Refresh(ctx context.Context, refreshToken string) (*AuthResult, error) {
	token, newRefreshToken, err := uc.authProvider.RefreshIDToken(refreshToken)
	if err != nil {
		return nil, errors.Unauthorized("Invalid refresh token", err)
	}

	uid, err := uc.authProvider.VerifyToken(ctx, token)
	if err != nil {
		return nil, errors.Internal("Failed to verify refreshed token", err)
	}

	user, err := uc.userRepo.GetByID(ctx, uid)
	if err != nil {
		return nil, err
	}

	return &AuthResult{
		User:         user,
		Token:        token,
		RefreshToken: newRefreshToken,
	}, nil
}
