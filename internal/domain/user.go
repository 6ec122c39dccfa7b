package domain

import "time"

// Role labels a user's privilege level. Nothing branches on it beyond the
// startup seeder; it exists for parity with the account schema.
type Role string

const (
	RoleUser  Role = "ROLE_USER"
	RoleAdmin Role = "ROLE_ADMIN"
)

// User is the domain model for account holders. Username is globally unique;
// PasswordHash is the one-way digest, never the plaintext.
type User struct {
	ID           string
	Username     string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
