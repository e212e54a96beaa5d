package user

import (
	"github.com/attendly/attendance-backend-go/internal/compensation"
	"github.com/attendly/attendance-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateUserRequest struct {
	Name     string          `json:"name"`
	Email    string          `json:"email"`
	Password string          `json:"password"`
	Role     string          `json:"role"`
	PayType  string          `json:"pay_type"`
	PayRate  decimal.Decimal `json:"pay_rate"`
}

func (r *CreateUserRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is required",
		})
	} else if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email must be a valid email address",
		})
	}

	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password is required",
		})
	} else if len(r.Password) < 8 {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password must be at least 8 characters",
		})
	}

	if !Role(r.Role).Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role must be one of: ADMIN, USER",
		})
	}

	if !compensation.PayType(r.PayType).Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "pay_type",
			Message: "pay_type must be one of: HOURLY, MONTHLY",
		})
	}

	if r.PayRate.Sign() <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "pay_rate",
			Message: "pay_rate must be greater than zero",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateUserRequest struct {
	ID      string           `json:"-"`
	Name    *string          `json:"name,omitempty"`
	Email   *string          `json:"email,omitempty"`
	Role    *string          `json:"role,omitempty"`
	PayType *string          `json:"pay_type,omitempty"`
	PayRate *decimal.Decimal `json:"pay_rate,omitempty"`
	Goal    *decimal.Decimal `json:"goal,omitempty"`
}

func (r *UpdateUserRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name cannot be empty",
		})
	}

	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email must be a valid email address",
		})
	}

	if r.Role != nil && !Role(*r.Role).Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role must be one of: ADMIN, USER",
		})
	}

	if r.PayType != nil && !compensation.PayType(*r.PayType).Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "pay_type",
			Message: "pay_type must be one of: HOURLY, MONTHLY",
		})
	}

	if r.PayRate != nil && r.PayRate.Sign() <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "pay_rate",
			Message: "pay_rate must be greater than zero",
		})
	}

	if r.Goal != nil && r.Goal.Sign() < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "goal",
			Message: "goal must be zero or greater",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// UpdateProfileRequest lets a user update their own monthly goal. Pay
// configuration is admin-managed and deliberately absent here.
type UpdateProfileRequest struct {
	Goal decimal.Decimal `json:"goal"`
}

func (r *UpdateProfileRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Goal.Sign() < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "goal",
			Message: "goal must be zero or greater",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

func (r *ChangePasswordRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.CurrentPassword) {
		errs = append(errs, validator.ValidationError{
			Field:   "current_password",
			Message: "current_password is required",
		})
	}

	if validator.IsEmpty(r.NewPassword) {
		errs = append(errs, validator.ValidationError{
			Field:   "new_password",
			Message: "new_password is required",
		})
	} else if len(r.NewPassword) < 8 {
		errs = append(errs, validator.ValidationError{
			Field:   "new_password",
			Message: "new_password must be at least 8 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UserResponse struct {
	ID      string          `json:"id"`
	Name    string          `json:"name"`
	Email   string          `json:"email"`
	Role    string          `json:"role"`
	PayType string          `json:"pay_type"`
	PayRate decimal.Decimal `json:"pay_rate"`
	Goal    decimal.Decimal `json:"goal"`
}

func ToUserResponse(u User) UserResponse {
	return UserResponse{
		ID:      u.ID,
		Name:    u.Name,
		Email:   u.Email,
		Role:    string(u.Role),
		PayType: string(u.PayType),
		PayRate: u.PayRate,
		Goal:    u.Goal,
	}
}

type ListUsersResponse struct {
	Users []UserResponse `json:"users"`
}
