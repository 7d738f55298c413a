package dto

import (
	"github.com/google/uuid"
)

// RegisterRequest represents the request to register a new user
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email" example:"user@example.com"`
	Password string `json:"password" binding:"required,min=8" example:"hunter2hunter2"`
	Name     string `json:"name" binding:"required" example:"Jane Doe"`
}

// LoginRequest represents the request to log in
type LoginRequest struct {
	Email    string `json:"email" binding:"required" example:"user@example.com"`
	Password string `json:"password" binding:"required" example:"hunter2hunter2"`
}

// UserResponse is the visible projection of a user; the password hash is
// never part of it
type UserResponse struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
	Name  string    `json:"name"`
}

// AuthResponse is returned by login and register
type AuthResponse struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
}
