// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"brewclub/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new member.
type RegisterInput struct {
	Name     string
	Email    string
	Mobile   string
	Password string
}

// LoginInput defines the data required for a member to log in.
type LoginInput struct {
	Email    string
	Password string
}

// RefreshTokenInput carries the refresh token being exchanged.
type RefreshTokenInput struct {
	RefreshToken string
}

// ChangePasswordInput defines the data for a member changing their own password.
type ChangePasswordInput struct {
	UserID      uuid.UUID
	NewPassword string
}

// UpdateProfileInput defines the fields a member may edit on their own profile.
type UpdateProfileInput struct {
	UserID uuid.UUID
	Name   string
	Mobile string
}

// AdminUpdateUserInput defines the fields an administrator may edit on any member.
type AdminUpdateUserInput struct {
	UserID  uuid.UUID
	Name    string
	Mobile  string
	Fetcher bool
	Role    entity.Role
}

// --- Output DTOs ---

// RegisterOutput returns the newly created member's basic information.
type RegisterOutput struct {
	User *entity.User `json:"user"`
}

// LoginOutput returns the generated tokens after a successful login.
type LoginOutput struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	User         *entity.User `json:"user"`
}

// RefreshTokenOutput returns the freshly minted access token.
type RefreshTokenOutput struct {
	AccessToken string `json:"access_token"`
}

// UserUsecase defines the interface for member-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
	RefreshToken(ctx context.Context, input *RefreshTokenInput) (*RefreshTokenOutput, error)
	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error)
	UpdateProfile(ctx context.Context, input *UpdateProfileInput) (*entity.User, error)
	ChangePassword(ctx context.Context, input *ChangePasswordInput) error

	// Administrator operations. Accounts are never removed; an admin can
	// only edit them or reset their password.
	ListUsers(ctx context.Context) ([]*entity.User, error)
	AdminUpdateUser(ctx context.Context, input *AdminUpdateUserInput) (*entity.User, error)
	ResetPassword(ctx context.Context, userID uuid.UUID) error
}
