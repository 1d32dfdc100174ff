// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// Visibility is the post-level access policy controlling which actors may
// see a post in listing results.
type Visibility string

const (
	VisibilityPublic        Visibility = "public"
	VisibilityPrivate       Visibility = "private"
	VisibilityFollowersOnly Visibility = "followers-only"
)

// Valid reports whether v is one of the known visibility values.
func (v Visibility) Valid() bool {
	switch v {
	case VisibilityPublic, VisibilityPrivate, VisibilityFollowersOnly:
		return true
	}
	return false
}

// ReactionKind identifies one of the fixed reaction types a post accepts.
type ReactionKind string

const (
	ReactionLike        ReactionKind = "like"
	ReactionHeart       ReactionKind = "heart"
	ReactionCelebration ReactionKind = "celebration"
)

// ReactionKinds lists every supported reaction, in display order.
var ReactionKinds = []ReactionKind{ReactionLike, ReactionHeart, ReactionCelebration}

// Valid reports whether k is one of the known reaction kinds.
func (k ReactionKind) Valid() bool {
	switch k {
	case ReactionLike, ReactionHeart, ReactionCelebration:
		return true
	}
	return false
}

// Post represents a forum post. Reactions map each kind to the set of user
// ids currently holding that reaction, a membership set rather than a
// counter, so an actor appears at most once per kind.
type Post struct {
	ID            uuid.UUID                    `json:"id"`
	Title         string                       `json:"title"`
	Content       string                       `json:"content"` // sanitized rich-text HTML
	AuthorID      uuid.UUID                    `json:"author_id"`
	CategoryID    string                       `json:"category_id"`
	Tags          []string                     `json:"tags"`
	Visibility    Visibility                   `json:"visibility"`
	CreatedAt     time.Time                    `json:"created_at"`
	UpdatedAt     time.Time                    `json:"updated_at"`
	Reactions     map[ReactionKind][]uuid.UUID `json:"reactions"`
	CommentsCount int                          `json:"comments_count"`
	ViewsCount    int                          `json:"views_count"`
}

// EmptyReactions returns a reaction map with an empty membership set for
// every known kind.
func EmptyReactions() map[ReactionKind][]uuid.UUID {
	m := make(map[ReactionKind][]uuid.UUID, len(ReactionKinds))
	for _, k := range ReactionKinds {
		m[k] = []uuid.UUID{}
	}
	return m
}

// HasReaction reports whether the given user currently holds a reaction of
// the given kind on the post.
func (p *Post) HasReaction(kind ReactionKind, userID uuid.UUID) bool {
	for _, id := range p.Reactions[kind] {
		if id == userID {
			return true
		}
	}
	return false
}

// HasTag reports whether the post carries the given tag.
func (p *Post) HasTag(tag string) bool {
	for _, t := range p.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the post, so callers can never mutate the
// store's authoritative record through a returned value.
func (p *Post) Clone() *Post {
	c := *p
	c.Tags = append([]string(nil), p.Tags...)
	c.Reactions = make(map[ReactionKind][]uuid.UUID, len(p.Reactions))
	for kind, users := range p.Reactions {
		c.Reactions[kind] = append([]uuid.UUID{}, users...)
	}
	return &c
}
