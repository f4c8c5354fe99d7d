package auth

import "oceanbreeze/internal/domain"

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type RegisterRequest struct {
	Username     string          `json:"username" binding:"required" validate:"required"`
	Password     string          `json:"password" binding:"required" validate:"required"`
	Email        string          `json:"email" binding:"required,email" validate:"required,email"`
	FullName     string          `json:"fullName" binding:"required" validate:"required"`
	DateOfBirth  domain.Date     `json:"dateOfBirth"`
	ProfilePhoto string          `json:"profilePhoto"`
	Role         domain.UserRole `json:"-"`
}

// UpdateProfileRequest carries only the fields to change. Username, id and role are not editable.
type UpdateProfileRequest struct {
	Email        *string      `json:"email,omitempty" binding:"omitempty,email" validate:"omitempty,email"`
	FullName     *string      `json:"fullName,omitempty" binding:"omitempty,min=1"`
	DateOfBirth  *domain.Date `json:"dateOfBirth,omitempty"`
	ProfilePhoto *string      `json:"profilePhoto,omitempty"`
	Password     *string      `json:"password,omitempty" binding:"omitempty,min=1"`
}

type AuthResponse struct {
	User  domain.SessionUser `json:"user"`
	Token string             `json:"token"`
}
