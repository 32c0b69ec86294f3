// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import "context"

// --- Input DTOs ---

// SignUpInput defines the data required to register a new account.
type SignUpInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// SignInInput defines the data required to authenticate.
type SignInInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ChangePasswordInput defines the data required to rotate a password.
type ChangePasswordInput struct {
	Password    string `json:"password"`
	NewPassword string `json:"newPassword"`
}

// --- Output DTOs ---

// SignInOutput returns the bearer token issued after a successful sign-in.
type SignInOutput struct {
	Token string `json:"token"`
}

// UserUsecase defines the interface for account-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	// SignUp hashes the credential and persists a new account. The created
	// record is deliberately not returned; the response carries no user data.
	SignUp(ctx context.Context, input *SignUpInput) error

	// SignIn resolves the account by email, verifies the password and issues
	// a signed bearer token.
	SignIn(ctx context.Context, input *SignInInput) (*SignInOutput, error)

	// ChangePassword verifies the current password for the authenticated user
	// and persists a hash of the new one.
	ChangePassword(ctx context.Context, userID int64, input *ChangePasswordInput) error
}
