package identity

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"agora/internal/models"
)

// SeedDemo registers the three demo accounts (admin, moderator, and regular
// user, all with password "password123") and returns copies of them so
// callers can attribute seeded content. Seeding is a no-op if users already
// exist.
func (p *Provider) SeedDemo() ([]models.User, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if len(p.users) > 0 {
		slog.Info("identity registry already seeded, skipping")
		return p.snapshotUsers(), nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("seed demo users: %w", err)
	}

	seedUsers := []*models.User{
		{
			ID:             uuid.New(),
			Name:           "Admin User",
			Email:          "admin@example.com",
			PasswordHash:   string(hash),
			Role:           models.RoleAdmin,
			Avatar:         avatarURL("admin"),
			Bio:            "Platform administrator with full access to all features.",
			FollowersCount: 128,
			FollowingCount: 45,
			JoinDate:       time.Date(2022, 2, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:             uuid.New(),
			Name:           "Moderator User",
			Email:          "mod@example.com",
			PasswordHash:   string(hash),
			Role:           models.RoleModerator,
			Avatar:         avatarURL("moderator"),
			Bio:            "Community moderator responsible for content review.",
			FollowersCount: 87,
			FollowingCount: 32,
			JoinDate:       time.Date(2022, 3, 20, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:             uuid.New(),
			Name:           "Regular User",
			Email:          "user@example.com",
			PasswordHash:   string(hash),
			Role:           models.RoleUser,
			Avatar:         avatarURL("user"),
			Bio:            "Regular community member passionate about discussions.",
			FollowersCount: 42,
			FollowingCount: 56,
			JoinDate:       time.Date(2022, 5, 10, 0, 0, 0, 0, time.UTC),
		},
	}
	p.users = append(p.users, seedUsers...)

	slog.Info("identity registry seeded with demo users",
		"users", len(seedUsers),
		"password", "password123",
	)
	return p.snapshotUsers(), nil
}

// snapshotUsers copies the registry for return to callers.
// Callers must hold the lock.
func (p *Provider) snapshotUsers() []models.User {
	out := make([]models.User, 0, len(p.users))
	for _, u := range p.users {
		out = append(out, *u.Clone())
	}
	return out
}
