package bootstrap

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/spec-kit/task-tracker/internal/auth"
	"github.com/spec-kit/task-tracker/internal/config"
	"github.com/spec-kit/task-tracker/internal/domain"
	"github.com/spec-kit/task-tracker/internal/repository"
)

// Seeder ensures a default admin account exists and adopts tasks left
// ownerless by pre-ownership schema versions.
type Seeder struct {
	users      repository.UserRepository
	tasks      repository.TaskRepository
	logger     *zap.Logger
	cfg        config.SeedConfig
	bcryptCost int
}

// NewSeeder constructs the seeder.
func NewSeeder(users repository.UserRepository, tasks repository.TaskRepository, logger *zap.Logger, cfg config.SeedConfig, bcryptCost int) *Seeder {
	return &Seeder{users: users, tasks: tasks, logger: logger, cfg: cfg, bcryptCost: bcryptCost}
}

// Run performs the seeding steps. It is safe to run on every startup.
func (s *Seeder) Run(ctx context.Context) error {
	if !s.cfg.Enabled {
		return nil
	}

	admin, err := s.users.GetByUsername(ctx, s.cfg.AdminUsername)
	if errors.Is(err, domain.ErrUserNotFound) {
		hash, hashErr := auth.HashPassword(s.cfg.AdminPassword, s.bcryptCost)
		if hashErr != nil {
			return fmt.Errorf("hash admin password: %w", hashErr)
		}
		admin = &domain.User{
			Username:     s.cfg.AdminUsername,
			PasswordHash: hash,
			Role:         domain.RoleAdmin,
		}
		if createErr := s.users.Create(ctx, admin); createErr != nil {
			// a concurrent instance may have seeded it first
			if errors.Is(createErr, domain.ErrDuplicateUsername) {
				admin, err = s.users.GetByUsername(ctx, s.cfg.AdminUsername)
				if err != nil {
					return err
				}
			} else {
				return fmt.Errorf("seed admin: %w", createErr)
			}
		} else {
			s.logger.Info("seeded admin account", zap.String("username", admin.Username))
		}
	} else if err != nil {
		return err
	}

	adopted, err := s.tasks.AdoptOrphans(ctx, admin.ID)
	if err != nil {
		return fmt.Errorf("adopt orphan tasks: %w", err)
	}
	if adopted > 0 {
		s.logger.Info("migrated ownerless tasks to admin", zap.Int64("count", adopted))
	}
	return nil
}
