// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"

	"agora/internal/models"
)

// PostInput carries the caller-supplied fields for a new post.
type PostInput struct {
	Title      string            `json:"title"`
	Content    string            `json:"content"`
	CategoryID string            `json:"category_id"`
	Tags       []string          `json:"tags"`
	Visibility models.Visibility `json:"visibility"`
}

// PostPatch carries optional updates to an existing post. Nil fields are
// left untouched; a nil Tags slice leaves tags unchanged.
type PostPatch struct {
	Title      *string            `json:"title,omitempty"`
	Content    *string            `json:"content,omitempty"`
	CategoryID *string            `json:"category_id,omitempty"`
	Tags       []string           `json:"tags,omitempty"`
	Visibility *models.Visibility `json:"visibility,omitempty"`
}

// Filter is a conjunction of optional post criteria. Zero-value fields are
// not applied. When Visibility is nil, the default rule is used instead: a
// post is visible if it is public or the requesting actor is its author.
type Filter struct {
	CategoryID string
	Tag        string
	AuthorID   *uuid.UUID
	Visibility *models.Visibility
}

// CreatePost creates a post authored by the actor. The content body is
// sanitized before it is stored, visibility defaults to public, reaction
// sets start empty, and both counters start at zero. The new post is
// inserted at the head of the post list.
func (s *Store) CreatePost(actor *models.Actor, in PostInput) (*models.Post, error) {
	if actor == nil {
		return nil, ErrUnauthenticated
	}
	if msg := validatePostInput(in.Title, in.Content); msg != "" {
		return nil, fmt.Errorf("%w: %s", ErrInvalidInput, msg)
	}
	visibility := in.Visibility
	if visibility == "" {
		visibility = models.VisibilityPublic
	}
	if !visibility.Valid() {
		return nil, fmt.Errorf("%w: unknown visibility %q", ErrInvalidInput, in.Visibility)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	post := &models.Post{
		ID:         uuid.New(),
		Title:      strings.TrimSpace(in.Title),
		Content:    s.sanitize(in.Content),
		AuthorID:   actor.ID,
		CategoryID: in.CategoryID,
		Tags:       append([]string{}, in.Tags...),
		Visibility: visibility,
		CreatedAt:  now,
		UpdatedAt:  now,
		Reactions:  models.EmptyReactions(),
	}
	s.posts = append([]*models.Post{post}, s.posts...)
	return post.Clone(), nil
}

// UpdatePost merges the patch into an existing post and bumps UpdatedAt.
// Only the author or a moderator may update a post.
func (s *Store) UpdatePost(actor *models.Actor, postID uuid.UUID, patch PostPatch) (*models.Post, error) {
	if actor == nil {
		return nil, ErrUnauthenticated
	}
	if patch.Title != nil {
		if strings.TrimSpace(*patch.Title) == "" {
			return nil, fmt.Errorf("%w: title is required", ErrInvalidInput)
		}
	}
	if patch.Visibility != nil && !patch.Visibility.Valid() {
		return nil, fmt.Errorf("%w: unknown visibility %q", ErrInvalidInput, *patch.Visibility)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	post := s.findPost(postID)
	if post == nil {
		return nil, ErrNotFound
	}
	if !canModify(actor, post.AuthorID) {
		return nil, ErrForbidden
	}

	if patch.Title != nil {
		post.Title = strings.TrimSpace(*patch.Title)
	}
	if patch.Content != nil {
		post.Content = s.sanitize(*patch.Content)
	}
	if patch.CategoryID != nil {
		post.CategoryID = *patch.CategoryID
	}
	if patch.Tags != nil {
		post.Tags = append([]string{}, patch.Tags...)
	}
	if patch.Visibility != nil {
		post.Visibility = *patch.Visibility
	}
	post.UpdatedAt = s.now()
	return post.Clone(), nil
}

// DeletePost removes a post and cascades to every comment attached to it,
// regardless of depth. Deleting an already-removed post fails with
// ErrNotFound rather than crashing. Only the author or a moderator may
// delete a post.
func (s *Store) DeletePost(actor *models.Actor, postID uuid.UUID) error {
	if actor == nil {
		return ErrUnauthenticated
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	index := -1
	for i, p := range s.posts {
		if p.ID == postID {
			index = i
			break
		}
	}
	if index == -1 {
		return ErrNotFound
	}
	if !canModify(actor, s.posts[index].AuthorID) {
		return ErrForbidden
	}

	s.posts = append(s.posts[:index], s.posts[index+1:]...)

	kept := s.comments[:0]
	for _, c := range s.comments {
		if c.PostID != postID {
			kept = append(kept, c)
		}
	}
	s.comments = kept
	return nil
}

// ReactToPost toggles the actor's membership in the post's reaction set of
// the given kind: present becomes absent, absent becomes present. Kinds are
// independent, so one actor may hold several different reactions on the
// same post at once.
func (s *Store) ReactToPost(actor *models.Actor, postID uuid.UUID, kind models.ReactionKind) (*models.Post, error) {
	if actor == nil {
		return nil, ErrUnauthenticated
	}
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownReaction, kind)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	post := s.findPost(postID)
	if post == nil {
		return nil, ErrNotFound
	}

	users := post.Reactions[kind]
	removed := users[:0]
	found := false
	for _, id := range users {
		if id == actor.ID {
			found = true
			continue
		}
		removed = append(removed, id)
	}
	if found {
		post.Reactions[kind] = removed
	} else {
		post.Reactions[kind] = append(users, actor.ID)
	}
	return post.Clone(), nil
}

// TrackView increments the post's view counter. No authentication is
// required; anonymous readers count too.
func (s *Store) TrackView(postID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	post := s.findPost(postID)
	if post == nil {
		return ErrNotFound
	}
	post.ViewsCount++
	return nil
}

// PostByID returns a copy of the post, or nil if it does not exist.
func (s *Store) PostByID(postID uuid.UUID) *models.Post {
	s.mu.RLock()
	defer s.mu.RUnlock()

	post := s.findPost(postID)
	if post == nil {
		return nil
	}
	return post.Clone()
}

// FilterPosts returns the posts matching every criterion in the filter,
// sorted by creation date descending. The sort is stable, so posts sharing
// a timestamp keep their stored order. The actor may be nil; it only
// participates in the default visibility rule.
func (s *Store) FilterPosts(actor *models.Actor, f Filter) []models.Post {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.Post
	for _, p := range s.posts {
		if f.CategoryID != "" && p.CategoryID != f.CategoryID {
			continue
		}
		if f.Tag != "" && !p.HasTag(f.Tag) {
			continue
		}
		if f.AuthorID != nil && p.AuthorID != *f.AuthorID {
			continue
		}
		if f.Visibility != nil {
			if p.Visibility != *f.Visibility {
				continue
			}
		} else if !visibleTo(p, actor) {
			continue
		}
		out = append(out, *p.Clone())
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

// visibleTo implements the default visibility rule: public posts are visible
// to everyone, and authors always see their own posts. Followers-only posts
// are excluded for everyone else, since no follower graph exists to consult.
func visibleTo(p *models.Post, actor *models.Actor) bool {
	if p.Visibility == models.VisibilityPublic {
		return true
	}
	return actor != nil && p.AuthorID == actor.ID
}
