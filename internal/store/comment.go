// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"fmt"

	"github.com/google/uuid"

	"agora/internal/models"
)

// CreateComment attaches a comment to a post, either top-level or as a reply
// to an existing comment of the same post. The owning post's CommentsCount
// is incremented in the same critical section, so the denormalized count
// never drifts from the live comment rows.
func (s *Store) CreateComment(actor *models.Actor, postID uuid.UUID, content string, parentID *uuid.UUID) (*models.Comment, error) {
	if actor == nil {
		return nil, ErrUnauthenticated
	}
	if msg := validateCommentInput(content); msg != "" {
		return nil, fmt.Errorf("%w: %s", ErrInvalidInput, msg)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	post := s.findPost(postID)
	if post == nil {
		return nil, ErrNotFound
	}
	if parentID != nil {
		parent := s.findComment(*parentID)
		if parent == nil || parent.PostID != postID {
			return nil, ErrInvalidParent
		}
	}

	comment := &models.Comment{
		ID:        uuid.New(),
		PostID:    postID,
		AuthorID:  actor.ID,
		Content:   content,
		CreatedAt: s.now(),
	}
	if parentID != nil {
		parent := *parentID
		comment.ParentID = &parent
	}

	s.comments = append(s.comments, comment)
	post.CommentsCount++
	return comment.Clone(), nil
}

// DeleteComment removes a comment together with every transitive reply, the
// full subtree under the parent relation, in one atomic step, and decrements
// the owning post's CommentsCount by the number removed. Only the comment's
// author or a moderator may delete it.
func (s *Store) DeleteComment(actor *models.Actor, commentID uuid.UUID) error {
	if actor == nil {
		return ErrUnauthenticated
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	target := s.findComment(commentID)
	if target == nil {
		return ErrNotFound
	}
	if !canModify(actor, target.AuthorID) {
		return ErrForbidden
	}

	doomed := s.collectSubtree(commentID)

	kept := s.comments[:0]
	for _, c := range s.comments {
		if !doomed[c.ID] {
			kept = append(kept, c)
		}
	}
	s.comments = kept

	if post := s.findPost(target.PostID); post != nil {
		post.CommentsCount -= len(doomed)
		if post.CommentsCount < 0 {
			// Should be unreachable while the count invariant holds.
			post.CommentsCount = 0
		}
	}
	return nil
}

// collectSubtree gathers the ids of the comment and all comments reachable
// from it through the parent relation. It walks with an explicit worklist
// and a visited set instead of recursing, which bounds stack depth on deep
// reply chains and terminates even if a cycle were ever introduced into the
// data.
func (s *Store) collectSubtree(root uuid.UUID) map[uuid.UUID]bool {
	children := make(map[uuid.UUID][]uuid.UUID)
	for _, c := range s.comments {
		if c.ParentID != nil {
			children[*c.ParentID] = append(children[*c.ParentID], c.ID)
		}
	}

	visited := make(map[uuid.UUID]bool)
	stack := []uuid.UUID{root}
	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited[current] {
			continue
		}
		visited[current] = true
		stack = append(stack, children[current]...)
	}
	return visited
}

// CommentsByPost returns copies of all comments for the post in insertion
// order. Callers reconstruct the reply tree (or use ThreadByPost) and impose
// any display depth cap themselves. An unknown post yields an empty slice.
func (s *Store) CommentsByPost(postID uuid.UUID) []models.Comment {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.Comment
	for _, c := range s.comments {
		if c.PostID == postID {
			out = append(out, *c.Clone())
		}
	}
	return out
}
