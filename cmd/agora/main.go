// Package main is the entry point for the agora forum core demo. It loads
// configuration, wires the identity provider and content store, seeds demo
// data, restores a previous session if a token is on disk, and runs a short
// walkthrough of the content operations.
package main

import (
	"log/slog"
	"os"
	"strings"

	"github.com/google/uuid"

	"agora/internal/config"
	"agora/internal/identity"
	"agora/internal/models"
	"agora/internal/store"
)

func main() {
	// Structured logger for the whole process.
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}
	slog.Info("configuration loaded", "env", cfg.Env, "seed", cfg.SeedDemo)

	provider := identity.NewProvider()
	contentStore := store.New()

	// Seed development data (no-op if data already exists).
	var authors []models.User
	if cfg.SeedDemo {
		authors, err = provider.SeedDemo()
		if err != nil {
			slog.Error("failed to seed demo users", "error", err)
			os.Exit(1)
		}
		ids := make([]uuid.UUID, 0, len(authors))
		for _, u := range authors {
			ids = append(ids, u.ID)
		}
		if err := contentStore.SeedDemo(ids); err != nil {
			slog.Error("failed to seed demo content", "error", err)
			os.Exit(1)
		}
	}

	// Restore the previous session if a token was persisted.
	if cfg.TokenFile != "" {
		if raw, err := os.ReadFile(cfg.TokenFile); err == nil {
			if user, err := provider.Restore(strings.TrimSpace(string(raw))); err != nil {
				slog.Warn("stored session token rejected", "error", err)
			} else {
				slog.Info("session restored", "user", user.Name)
			}
		}
	}

	// Without a restored session, log in as the demo admin.
	if provider.Current() == nil {
		if _, _, err := provider.Login("admin@example.com", "password123"); err != nil {
			slog.Error("demo login failed", "error", err)
			os.Exit(1)
		}
	}
	actor := provider.Current()

	// Walkthrough: create a post, comment on it, reply, react, and read the
	// thread back.
	post, err := contentStore.CreatePost(actor, store.PostInput{
		Title:      "Hello from the demo walkthrough",
		Content:    "<p>This post was created by <em>cmd/agora</em>.</p>",
		CategoryID: "1",
		Tags:       []string{"Discussion"},
		Visibility: models.VisibilityPublic,
	})
	if err != nil {
		slog.Error("create post failed", "error", err)
		os.Exit(1)
	}

	comment, err := contentStore.CreateComment(actor, post.ID, "First!", nil)
	if err != nil {
		slog.Error("create comment failed", "error", err)
		os.Exit(1)
	}
	if _, err := contentStore.CreateComment(actor, post.ID, "Replying to myself, as admins do.", &comment.ID); err != nil {
		slog.Error("create reply failed", "error", err)
		os.Exit(1)
	}
	if _, err := contentStore.ReactToPost(actor, post.ID, models.ReactionLike); err != nil {
		slog.Error("react failed", "error", err)
		os.Exit(1)
	}
	if err := contentStore.TrackView(post.ID); err != nil {
		slog.Error("track view failed", "error", err)
		os.Exit(1)
	}

	fresh := contentStore.PostByID(post.ID)
	slog.Info("walkthrough post",
		"title", fresh.Title,
		"comments", fresh.CommentsCount,
		"likes", len(fresh.Reactions[models.ReactionLike]),
		"views", fresh.ViewsCount,
	)
	for _, root := range contentStore.ThreadByPost(post.ID) {
		slog.Info("thread root", "content", root.Content, "replies", len(root.Replies))
	}

	visible := contentStore.FilterPosts(actor, store.Filter{})
	slog.Info("visible posts", "count", len(visible), "categories", len(contentStore.Categories()))

	// Persist the session token for the next run.
	if cfg.TokenFile != "" {
		if err := os.WriteFile(cfg.TokenFile, []byte(provider.Token()), 0o600); err != nil {
			slog.Warn("failed to persist session token", "error", err)
		}
	}
}
