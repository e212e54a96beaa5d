package user

import (
	"time"

	"github.com/attendly/attendance-backend-go/internal/compensation"
	"github.com/shopspring/decimal"
)

type Role string

const (
	RoleAdmin Role = "ADMIN"
	RoleUser  Role = "USER"
)

func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleUser
}

type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Role         Role
	PayType      compensation.PayType
	PayRate      decimal.Decimal
	Goal         decimal.Decimal
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// PayConfig is the snapshot handed to the compensation engine.
func (u User) PayConfig() compensation.PayConfig {
	return compensation.PayConfig{
		PayType: u.PayType,
		PayRate: u.PayRate,
		Goal:    u.Goal,
	}
}
