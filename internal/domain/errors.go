package domain

import "errors"

// Failure kinds surfaced by services and repositories. Call sites match on
// these with errors.Is instead of inspecting driver errors.
var (
	ErrTaskNotFound       = errors.New("task not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrDuplicateUsername  = errors.New("username already taken")
	ErrEmptyTitle         = errors.New("title is required")
	ErrInvalidCredentials = errors.New("invalid credentials")
)
