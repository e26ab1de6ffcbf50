package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/skillsnap/skillsnap-server/internal/domain/entity"
	"github.com/skillsnap/skillsnap-server/internal/domain/repository"
	"github.com/skillsnap/skillsnap-server/pkg/helpers"
)

// Sample data created at startup. Seeding is a convenience: every failure is
// logged and swallowed so the service boots regardless.
const (
	seedAdminEmail = "admin@skillsnap.local"
	seedUserEmail  = "user@skillsnap.local"
	seedPassword   = "Password123!"
)

// Seed ensures the fixed role set exists, creates the two sample accounts,
// and inserts sample portfolio items when the table is empty. Idempotent.
func Seed(ctx context.Context, db DB, logger *logrus.Logger) {
	users := NewUserRepository(db)
	items := NewPortfolioRepository(db)

	roleIDs := make(map[string]string)
	for _, name := range []string{entity.RoleAdmin, entity.RoleUser} {
		id, err := users.EnsureRole(ctx, name)
		if err != nil {
			logger.WithError(err).WithField("role", name).Warn("seed: ensure role failed")
			continue
		}
		roleIDs[name] = id
	}

	admin := seedUser(ctx, users, logger, seedAdminEmail, roleIDs[entity.RoleAdmin])
	user := seedUser(ctx, users, logger, seedUserEmail, roleIDs[entity.RoleUser])

	n, err := items.Count(ctx)
	if err != nil {
		logger.WithError(err).Warn("seed: count portfolio items failed")
		return
	}
	if n > 0 {
		return
	}

	now := time.Now().UTC()
	samples := []entity.PortfolioItem{
		{
			Title:       "Personal Website",
			Description: "A responsive personal website with user profiles.",
			UserID:      user,
			CreatedAt:   now.AddDate(0, 0, -10),
		},
		{
			Title:       "E-Commerce API",
			Description: "RESTful API backed by Postgres.",
			UserID:      admin,
			CreatedAt:   now.AddDate(0, 0, -5),
		},
		{
			Title:       "Mobile App",
			Description: "Cross-platform mobile application with user authentication.",
			UserID:      user,
			CreatedAt:   now.AddDate(0, 0, -2),
		},
	}
	for _, it := range samples {
		_, err := db.Exec(ctx, `
			INSERT INTO portfolio_items (title, description, user_id, created_at)
			VALUES ($1, $2, $3, $4)
		`, it.Title, it.Description, it.UserID, it.CreatedAt)
		if err != nil {
			logger.WithError(err).WithField("title", it.Title).Warn("seed: insert portfolio item failed")
			return
		}
	}
	logger.Info("seed: sample portfolio items created")
}

// seedUser creates the account if absent, assigns roleID, and returns the
// user id (nil when the account could not be resolved).
func seedUser(ctx context.Context, users *UserRepository, logger *logrus.Logger, email, roleID string) *string {
	u, err := users.GetByEmail(ctx, email)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		logger.WithError(err).WithField("email", email).Warn("seed: lookup user failed")
		return nil
	}
	if u == nil {
		hash, err := helpers.HashPassword(seedPassword)
		if err != nil {
			logger.WithError(err).Warn("seed: hash password failed")
			return nil
		}
		u = &entity.User{Email: email, Username: email, Password: hash}
		if err := users.Create(ctx, u); err != nil {
			logger.WithError(err).WithField("email", email).Warn("seed: create user failed")
			return nil
		}
		logger.WithField("email", email).Info("seed: sample user created")
	}
	if roleID != "" {
		if err := users.AssignRole(ctx, u.ID, roleID); err != nil {
			logger.WithError(err).WithField("email", email).Warn("seed: assign role failed")
		}
	}
	return &u.ID
}
