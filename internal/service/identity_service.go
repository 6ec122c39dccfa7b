package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/task-tracker/internal/auth"
	"github.com/spec-kit/task-tracker/internal/config"
	"github.com/spec-kit/task-tracker/internal/domain"
	"github.com/spec-kit/task-tracker/internal/events"
	"github.com/spec-kit/task-tracker/internal/repository"
)

// IdentityService owns account lifecycle and username uniqueness rules.
type IdentityService struct {
	users      repository.UserRepository
	tokenMgr   *auth.TokenManager
	revoker    auth.TokenRevoker
	dispatcher events.Dispatcher
	bcryptCost int
}

// IdentityDependencies encapsulates collaborators for the identity service.
type IdentityDependencies struct {
	UserRepo   repository.UserRepository
	Revoker    auth.TokenRevoker
	Dispatcher events.Dispatcher
}

// NewIdentityService builds the service.
func NewIdentityService(cfg config.Config, deps IdentityDependencies) *IdentityService {
	return &IdentityService{
		users:      deps.UserRepo,
		tokenMgr:   auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTLMinutes),
		revoker:    deps.Revoker,
		dispatcher: deps.Dispatcher,
		bcryptCost: cfg.Auth.BcryptCost,
	}
}

// Register creates a new account with the password stored as a one-way
// digest. Username uniqueness is enforced by the store's unique constraint;
// a violation surfaces as ErrDuplicateUsername.
func (s *IdentityService) Register(ctx context.Context, username, password string) (*domain.User, error) {
	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Username:     username,
		PasswordHash: hash,
		Role:         domain.RoleUser,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	s.publishEvent(ctx, events.Event{
		Type: events.EventUserRegistered,
		Payload: events.UserRegisteredPayload{
			UserID:   user.ID,
			Username: user.Username,
		},
	})
	return user, nil
}

// Login authenticates a user and issues a token.
func (s *IdentityService) Login(ctx context.Context, username, password string) (*domain.User, string, time.Time, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, "", time.Time{}, domain.ErrInvalidCredentials
		}
		return nil, "", time.Time{}, err
	}
	if err := auth.ComparePassword(user.PasswordHash, password); err != nil {
		return nil, "", time.Time{}, domain.ErrInvalidCredentials
	}
	token, exp, err := s.tokenMgr.GenerateToken(user.ID, user.Username)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	return user, token, exp, nil
}

// Logout revokes the presented token until its natural expiry.
func (s *IdentityService) Logout(ctx context.Context, claims *auth.Claims) error {
	if s.revoker == nil || claims == nil {
		return nil
	}
	return s.revoker.Revoke(ctx, claims.ID, time.Until(claims.ExpiresAt.Time))
}

// FindByUsername returns the identity or ErrUserNotFound.
func (s *IdentityService) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	return s.users.GetByUsername(ctx, username)
}

// UpdatePassword replaces the stored digest with the hash of newPassword.
func (s *IdentityService) UpdatePassword(ctx context.Context, username, newPassword string) error {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return err
	}
	hash, err := auth.HashPassword(newPassword, s.bcryptCost)
	if err != nil {
		return err
	}
	user.PasswordHash = hash
	return s.users.Update(ctx, user)
}

// UpdateUsername renames an account. The lookup of newUsername is a fast-path
// rejection only; two concurrent renames can both pass it, so the store's
// unique constraint is the authoritative guard and its violation also maps to
// ErrDuplicateUsername. The caller's current token is revoked on success,
// forcing a fresh login under the new name.
func (s *IdentityService) UpdateUsername(ctx context.Context, oldUsername, newUsername string, claims *auth.Claims) error {
	if _, err := s.users.GetByUsername(ctx, newUsername); err == nil {
		return domain.ErrDuplicateUsername
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return err
	}

	user, err := s.users.GetByUsername(ctx, oldUsername)
	if err != nil {
		return err
	}
	user.Username = newUsername
	if err := s.users.Update(ctx, user); err != nil {
		return err
	}

	if s.revoker != nil && claims != nil {
		_ = s.revoker.Revoke(ctx, claims.ID, time.Until(claims.ExpiresAt.Time))
	}
	s.publishEvent(ctx, events.Event{
		Type: events.EventUsernameChanged,
		Payload: events.UsernameChangedPayload{
			UserID:      user.ID,
			OldUsername: oldUsername,
			NewUsername: newUsername,
		},
	})
	return nil
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *IdentityService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}

func (s *IdentityService) publishEvent(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	_ = s.dispatcher.Publish(ctx, event)
}
