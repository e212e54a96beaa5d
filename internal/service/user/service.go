package user

import (
	"context"
	"fmt"

	"github.com/attendly/attendance-backend-go/internal/compensation"
	"github.com/attendly/attendance-backend-go/internal/domain/user"
	"github.com/attendly/attendance-backend-go/internal/pkg/database"
	"github.com/go-chi/jwtauth/v5"
	"golang.org/x/crypto/bcrypt"
)

type UserServiceImpl struct {
	db *database.DB
	user.UserRepository
}

func NewUserService(db *database.DB, userRepo user.UserRepository) user.UserService {
	return &UserServiceImpl{
		db:             db,
		UserRepository: userRepo,
	}
}

func getClaimsFromContext(ctx context.Context) (userID string, err error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to get claims from context: %w", err)
	}

	userID, ok := claims["user_id"].(string)
	if !ok {
		return "", fmt.Errorf("user_id not found in claims")
	}

	return userID, nil
}

// ListUsers implements user.UserService.
func (s *UserServiceImpl) ListUsers(ctx context.Context) (user.ListUsersResponse, error) {
	users, err := s.UserRepository.List(ctx)
	if err != nil {
		return user.ListUsersResponse{}, fmt.Errorf("list users: %w", err)
	}

	resp := user.ListUsersResponse{
		Users: make([]user.UserResponse, 0, len(users)),
	}
	for _, u := range users {
		resp.Users = append(resp.Users, user.ToUserResponse(u))
	}
	return resp, nil
}

// CreateUser implements user.UserService.
func (s *UserServiceImpl) CreateUser(ctx context.Context, req user.CreateUserRequest) (user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	exists, err := s.UserRepository.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return user.UserResponse{}, fmt.Errorf("check email: %w", err)
	}
	if exists {
		return user.UserResponse{}, user.ErrEmailExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.UserResponse{}, fmt.Errorf("hash password: %w", err)
	}

	newUser := user.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         user.Role(req.Role),
		PayType:      compensation.PayType(req.PayType),
		PayRate:      req.PayRate,
		// New accounts start with the pay-type default goal.
		Goal: compensation.DefaultGoal(compensation.PayConfig{
			PayType: compensation.PayType(req.PayType),
			PayRate: req.PayRate,
		}),
	}

	created, err := s.UserRepository.Create(ctx, newUser)
	if err != nil {
		return user.UserResponse{}, fmt.Errorf("create user: %w", err)
	}

	return user.ToUserResponse(created), nil
}

// UpdateUser implements user.UserService.
func (s *UserServiceImpl) UpdateUser(ctx context.Context, req user.UpdateUserRequest) (user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	existing, err := s.UserRepository.GetByID(ctx, req.ID)
	if err != nil {
		return user.UserResponse{}, err
	}

	if req.Email != nil && *req.Email != existing.Email {
		exists, err := s.UserRepository.ExistsByEmail(ctx, *req.Email)
		if err != nil {
			return user.UserResponse{}, fmt.Errorf("check email: %w", err)
		}
		if exists {
			return user.UserResponse{}, user.ErrEmailExists
		}
		existing.Email = *req.Email
	}

	if req.Name != nil {
		existing.Name = *req.Name
	}
	if req.Role != nil {
		existing.Role = user.Role(*req.Role)
	}
	if req.PayType != nil {
		existing.PayType = compensation.PayType(*req.PayType)
	}
	if req.PayRate != nil {
		existing.PayRate = *req.PayRate
	}
	if req.Goal != nil {
		existing.Goal = *req.Goal
	}

	updated, err := s.UserRepository.Update(ctx, existing)
	if err != nil {
		return user.UserResponse{}, fmt.Errorf("update user: %w", err)
	}

	return user.ToUserResponse(updated), nil
}

// DeleteUser implements user.UserService.
func (s *UserServiceImpl) DeleteUser(ctx context.Context, id string) error {
	callerID, err := getClaimsFromContext(ctx)
	if err != nil {
		return err
	}
	if callerID == id {
		return user.ErrCannotDeleteSelf
	}

	if _, err := s.UserRepository.GetByID(ctx, id); err != nil {
		return err
	}

	return s.UserRepository.Delete(ctx, id)
}

// GetProfile implements user.UserService.
func (s *UserServiceImpl) GetProfile(ctx context.Context) (user.UserResponse, error) {
	userID, err := getClaimsFromContext(ctx)
	if err != nil {
		return user.UserResponse{}, err
	}

	account, err := s.UserRepository.GetByID(ctx, userID)
	if err != nil {
		return user.UserResponse{}, err
	}

	return user.ToUserResponse(account), nil
}

// UpdateProfile implements user.UserService.
func (s *UserServiceImpl) UpdateProfile(ctx context.Context, req user.UpdateProfileRequest) (user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	userID, err := getClaimsFromContext(ctx)
	if err != nil {
		return user.UserResponse{}, err
	}

	account, err := s.UserRepository.GetByID(ctx, userID)
	if err != nil {
		return user.UserResponse{}, err
	}

	account.Goal = req.Goal

	updated, err := s.UserRepository.Update(ctx, account)
	if err != nil {
		return user.UserResponse{}, fmt.Errorf("update profile: %w", err)
	}

	return user.ToUserResponse(updated), nil
}

// ChangePassword implements user.UserService.
func (s *UserServiceImpl) ChangePassword(ctx context.Context, req user.ChangePasswordRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	userID, err := getClaimsFromContext(ctx)
	if err != nil {
		return err
	}

	account, err := s.UserRepository.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(req.CurrentPassword)); err != nil {
		return user.ErrWrongPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	account.PasswordHash = string(hash)

	if _, err := s.UserRepository.Update(ctx, account); err != nil {
		return fmt.Errorf("update password: %w", err)
	}

	return nil
}
