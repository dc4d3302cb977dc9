// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"whisper/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to sign up a new user.
type RegisterInput struct {
	FullName string `json:"fullName" validate:"required,min=2,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=128"`
}

// LoginInput defines the data required for a user to sign in.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UpdateProfileInput carries a new profile picture as a base64 data URI.
type UpdateProfileInput struct {
	ProfilePic string `json:"profilePic" validate:"required"`
}

// --- Output DTOs ---

// AuthOutput returns the authenticated user and their access token.
type AuthOutput struct {
	User        *entity.User `json:"user"`
	AccessToken string       `json:"accessToken"`
}

// UserUsecase defines the interface for account-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) depends on.
type UserUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*AuthOutput, error)
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)
	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error)
	UpdateProfilePic(ctx context.Context, userID uuid.UUID, input *UpdateProfileInput) (*entity.User, error)
	DeleteAccount(ctx context.Context, userID uuid.UUID) error

	// ListContacts returns every user except the caller, for the sidebar.
	ListContacts(ctx context.Context, userID uuid.UUID) ([]*entity.User, error)
}
