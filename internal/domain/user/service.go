package user

import "context"

// UserService defines business logic for account management.
type UserService interface {
	// ListUsers returns all accounts (admin only)
	ListUsers(ctx context.Context) (ListUsersResponse, error)

	// CreateUser creates an account with its pay configuration (admin only)
	CreateUser(ctx context.Context, req CreateUserRequest) (UserResponse, error)

	// UpdateUser updates any field of an account (admin only)
	UpdateUser(ctx context.Context, req UpdateUserRequest) (UserResponse, error)

	// DeleteUser removes an account (admin only)
	DeleteUser(ctx context.Context, id string) error

	// GetProfile returns the authenticated user's own account
	GetProfile(ctx context.Context) (UserResponse, error)

	// UpdateProfile updates the authenticated user's monthly goal
	UpdateProfile(ctx context.Context, req UpdateProfileRequest) (UserResponse, error)

	// ChangePassword verifies the current password and stores a new hash
	ChangePassword(ctx context.Context, req ChangePasswordRequest) error
}
