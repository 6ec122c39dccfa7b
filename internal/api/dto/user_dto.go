package dto

import (
	"time"

	"github.com/spec-kit/task-tracker/internal/domain"
)

// RegisterRequest carries a new account's credentials.
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginRequest carries login credentials.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// ProfileUpdateRequest changes username and/or password; blank fields are
// ignored.
type ProfileUpdateRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AuthResponse returns an issued token.
type AuthResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// UserResponse is the wire form of an account.
type UserResponse struct {
	ID        string      `json:"id"`
	Username  string      `json:"username"`
	Role      domain.Role `json:"role"`
	CreatedAt time.Time   `json:"createdAt"`
}
