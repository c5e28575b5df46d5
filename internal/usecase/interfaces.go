package usecase

import (
	"context"
	"io"
)

// AuthProvider is the slice of the Firebase Auth client the usecases need.
type AuthProvider interface {
	CreateUser(ctx context.Context, email, password, displayName string) (string, error)
	VerifyToken(ctx context.Context, token string) (string, error)
	DeleteUser(ctx context.Context, uid string) error
	UpdateUserPassword(ctx context.Context, uid, newPassword string) error
	SignInWithEmailPassword(email, password string) (idToken, refreshToken string, err error)
	RefreshIDToken(refreshToken string) (idToken, newRefreshToken string, err error)
}

// FileUploader abstracts the object storage used for thumbnails and models.
type FileUploader interface {
	UploadFile(ctx context.Context, file io.Reader, contentType, folder string) (string, error)
}
