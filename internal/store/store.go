// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package store owns the authoritative in-memory collections of posts and
// comments, the static category and tag registries, and every operation that
// mutates or queries them. All operations are atomic with respect to the
// collections: a single lock guards each transition, validation happens
// before any mutation, and returned entities are deep copies.
package store

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"agora/internal/models"
	"agora/internal/richtext"
)

// Sentinel errors returned by store operations. Callers match them with
// errors.Is.
var (
	// ErrUnauthenticated means the operation requires a bound actor and
	// none was supplied.
	ErrUnauthenticated = errors.New("not authenticated")

	// ErrNotFound means the referenced post or comment does not exist.
	ErrNotFound = errors.New("not found")

	// ErrForbidden means the actor is neither the author of the content
	// nor a moderator.
	ErrForbidden = errors.New("forbidden")

	// ErrInvalidParent means a comment's requested parent does not belong
	// to the same post, or does not exist at all.
	ErrInvalidParent = errors.New("parent comment does not belong to post")

	// ErrUnknownReaction means the reaction kind is not one of the fixed set.
	ErrUnknownReaction = errors.New("unknown reaction kind")

	// ErrInvalidInput wraps validation failures on user-supplied fields.
	ErrInvalidInput = errors.New("invalid input")
)

// Store is the content store. It is safe for concurrent use; every operation
// executes as a single serializable transaction over the collections.
type Store struct {
	mu         sync.RWMutex
	categories []models.Category
	tags       []string
	posts      []*models.Post    // most recent insertion first
	comments   []*models.Comment // insertion order

	sanitize func(string) string
	now      func() time.Time
}

// New creates a content store with the default category and tag registries
// and the UGC sanitizer for post bodies.
func New() *Store {
	return &Store{
		categories: defaultCategories(),
		tags:       defaultTags(),
		sanitize:   richtext.SanitizeHTML,
		now:        time.Now,
	}
}

// findPost returns the stored post with the given id, or nil.
// Callers must hold the lock.
func (s *Store) findPost(id uuid.UUID) *models.Post {
	for _, p := range s.posts {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// findComment returns the stored comment with the given id, or nil.
// Callers must hold the lock.
func (s *Store) findComment(id uuid.UUID) *models.Comment {
	for _, c := range s.comments {
		if c.ID == id {
			return c
		}
	}
	return nil
}

// canModify reports whether the actor may edit or delete content owned by
// authorID: the author themselves, or an admin/moderator.
func canModify(actor *models.Actor, authorID uuid.UUID) bool {
	return actor.ID == authorID || actor.Role.CanModerate()
}
