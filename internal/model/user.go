package model

import (
	"time"

	"school_manager/internal/validation"
)

const (
	StatusActive   = "active"
	StatusInactive = "inactive"
	StatusPending  = "pending"
)

// User represents a user in the system
type User struct {
	ID          int64     `json:"id"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	DNI         string    `json:"dni"`
	Email       string    `json:"email"`
	Password    string    `json:"-"` // bcrypt hash
	RoleID      Role      `json:"role_id"`
	Status      string    `json:"status"`
	SpecialtyID *int64    `json:"specialty_id"`
	CreatedAt   time.Time `json:"created_at"`
}

// CreateUserRequest is used for registering a user.
type CreateUserRequest struct {
	FirstName   string         `json:"first_name" validate:"required,min=2,max=50"`
	LastName    string         `json:"last_name" validate:"required,min=2,max=50"`
	DNI         string         `json:"dni" validate:"required,min=8,max=15"`
	Email       string         `json:"email" validate:"required,email"`
	Password    string         `json:"password" validate:"required,min=6,max=72"`
	RoleID      *Role          `json:"role_id" validate:"omitempty,oneof=1 2 3 4"`
	Status      *string        `json:"status" validate:"omitempty,oneof=active inactive pending"`
	SpecialtyID *validation.ID `json:"specialty_id" validate:"omitempty,gt=0"`
}

// UpdateUserRequest carries a partial update; nil fields keep their stored value.
type UpdateUserRequest struct {
	FirstName   *string        `json:"first_name" validate:"omitempty,min=2,max=50"`
	LastName    *string        `json:"last_name" validate:"omitempty,min=2,max=50"`
	DNI         *string        `json:"dni" validate:"omitempty,min=8,max=15"`
	Email       *string        `json:"email" validate:"omitempty,email"`
	Password    *string        `json:"password" validate:"omitempty,min=6,max=72"`
	RoleID      *Role          `json:"role_id" validate:"omitempty,oneof=1 2 3 4"`
	Status      *string        `json:"status" validate:"omitempty,oneof=active inactive pending"`
	SpecialtyID *validation.ID `json:"specialty_id" validate:"omitempty,gt=0"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=72"`
}
