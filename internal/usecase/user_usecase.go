// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"vidtube/internal/domain/entity"

	"github.com/google/uuid"
)

// FileUpload points at a request file already spooled to local disk by the
// delivery layer. The usecase hands it to the media storage, which removes
// the local file when done.
type FileUpload struct {
	Path        string // Local temp path.
	ContentType string // Declared MIME type.
}

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	FullName string
	Email    string
	Username string
	Password string
	Avatar   FileUpload  // Required.
	Cover    *FileUpload // Optional.
}

// LoginInput defines the data required to log in. Either Username or Email
// carries the identifier.
type LoginInput struct {
	Username string
	Email    string
	Password string
}

// ChangePasswordInput carries an old/new password pair.
type ChangePasswordInput struct {
	UserID      uuid.UUID
	OldPassword string
	NewPassword string
}

// UpdateProfileInput carries the mutable profile text fields. Empty fields
// are left unchanged.
type UpdateProfileInput struct {
	UserID   uuid.UUID
	FullName string
	Email    string
}

// --- Output DTOs ---

// SessionOutput returns the token pair minted for a session, alongside the
// sanitized account.
type SessionOutput struct {
	AccessToken  string
	RefreshToken string
	User         *entity.User
}

// UserUsecase defines the interface for account-related business operations.
// This is the contract that the delivery layer (API handlers) will depend on.
type UserUsecase interface {
	Register(ctx context.Context, input RegisterInput) (*entity.User, error)
	Login(ctx context.Context, input LoginInput) (*SessionOutput, error)
	Logout(ctx context.Context, userID uuid.UUID) error
	RefreshSession(ctx context.Context, refreshToken string) (*SessionOutput, error)
	ChangePassword(ctx context.Context, input ChangePasswordInput) error
	UpdateProfile(ctx context.Context, input UpdateProfileInput) (*entity.User, error)
	UpdateAvatar(ctx context.Context, userID uuid.UUID, upload FileUpload) (*entity.User, error)
	UpdateCoverImage(ctx context.Context, userID uuid.UUID, upload FileUpload) (*entity.User, error)
	GetChannelDetails(ctx context.Context, username string, viewerID *uuid.UUID) (*entity.ChannelDetails, error)
}
