// store_test.go provides shared helpers for the content store tests: a
// store with a deterministic ticking clock and actor/content factories.
package store

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"agora/internal/models"
)

// newTestStore returns a store whose clock advances one second per call, so
// every created entity gets a distinct, ordered timestamp.
func newTestStore() *Store {
	s := New()
	base := time.Date(2026, 1, 2, 15, 0, 0, 0, time.UTC)
	tick := 0
	s.now = func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Second)
	}
	return s
}

// userActor returns a fresh actor with the regular user role.
func userActor() *models.Actor {
	return &models.Actor{ID: uuid.New(), Role: models.RoleUser}
}

// adminActor returns a fresh actor with the admin role.
func adminActor() *models.Actor {
	return &models.Actor{ID: uuid.New(), Role: models.RoleAdmin}
}

// mustCreatePost creates a post with sensible defaults, failing the test on
// error.
func mustCreatePost(t *testing.T, s *Store, actor *models.Actor, in PostInput) *models.Post {
	t.Helper()
	if in.Title == "" {
		in.Title = "Test Post"
	}
	if in.Content == "" {
		in.Content = "<p>body</p>"
	}
	post, err := s.CreatePost(actor, in)
	if err != nil {
		t.Fatalf("CreatePost: %v", err)
	}
	return post
}

// mustCreateComment creates a comment, failing the test on error.
func mustCreateComment(t *testing.T, s *Store, actor *models.Actor, postID uuid.UUID, content string, parentID *uuid.UUID) *models.Comment {
	t.Helper()
	comment, err := s.CreateComment(actor, postID, content, parentID)
	if err != nil {
		t.Fatalf("CreateComment: %v", err)
	}
	return comment
}

// checkCommentsCount asserts the denormalized CommentsCount matches the
// live comment rows for the post.
func checkCommentsCount(t *testing.T, s *Store, postID uuid.UUID) {
	t.Helper()
	post := s.PostByID(postID)
	if post == nil {
		t.Fatalf("post %s not found", postID)
	}
	live := len(s.CommentsByPost(postID))
	if post.CommentsCount != live {
		t.Errorf("CommentsCount = %d, want %d live comments", post.CommentsCount, live)
	}
}
