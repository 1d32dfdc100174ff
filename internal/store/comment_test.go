// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"

	"agora/internal/models"
)

// TestCreateCommentIncrementsCount verifies the owning post's CommentsCount
// is bumped together with the insertion, for top-level comments and replies
// alike.
func TestCreateCommentIncrementsCount(t *testing.T) {
	s := newTestStore()
	author := userActor()
	post := mustCreatePost(t, s, author, PostInput{})

	top := mustCreateComment(t, s, userActor(), post.ID, "hi", nil)
	checkCommentsCount(t, s, post.ID)

	reply := mustCreateComment(t, s, userActor(), post.ID, "hey", &top.ID)
	checkCommentsCount(t, s, post.ID)

	if got := s.PostByID(post.ID).CommentsCount; got != 2 {
		t.Errorf("CommentsCount = %d, want 2", got)
	}
	if reply.ParentID == nil || *reply.ParentID != top.ID {
		t.Error("reply not linked to its parent")
	}
	if reply.PostID != post.ID {
		t.Errorf("reply PostID = %s, want %s", reply.PostID, post.ID)
	}
}

// TestCreateCommentInvalidParent verifies cross-post parenting and unknown
// parents fail with ErrInvalidParent and create nothing.
func TestCreateCommentInvalidParent(t *testing.T) {
	s := newTestStore()
	actor := userActor()
	postA := mustCreatePost(t, s, actor, PostInput{Title: "A"})
	postB := mustCreatePost(t, s, actor, PostInput{Title: "B"})
	parentOnB := mustCreateComment(t, s, actor, postB.ID, "on B", nil)

	t.Run("parent on another post", func(t *testing.T) {
		_, err := s.CreateComment(actor, postA.ID, "cross-post reply", &parentOnB.ID)
		if !errors.Is(err, ErrInvalidParent) {
			t.Errorf("error = %v, want ErrInvalidParent", err)
		}
	})

	t.Run("parent does not exist", func(t *testing.T) {
		ghost := uuid.New()
		_, err := s.CreateComment(actor, postA.ID, "orphan reply", &ghost)
		if !errors.Is(err, ErrInvalidParent) {
			t.Errorf("error = %v, want ErrInvalidParent", err)
		}
	})

	// No comment was created and no count moved.
	if got := len(s.CommentsByPost(postA.ID)); got != 0 {
		t.Errorf("post A has %d comments, want 0", got)
	}
	if got := s.PostByID(postA.ID).CommentsCount; got != 0 {
		t.Errorf("post A CommentsCount = %d, want 0", got)
	}
}

// TestCreateCommentErrors covers the remaining failure modes.
func TestCreateCommentErrors(t *testing.T) {
	s := newTestStore()
	post := mustCreatePost(t, s, userActor(), PostInput{})

	if _, err := s.CreateComment(nil, post.ID, "hi", nil); !errors.Is(err, ErrUnauthenticated) {
		t.Errorf("nil actor error = %v, want ErrUnauthenticated", err)
	}
	if _, err := s.CreateComment(userActor(), uuid.New(), "hi", nil); !errors.Is(err, ErrNotFound) {
		t.Errorf("unknown post error = %v, want ErrNotFound", err)
	}
	if _, err := s.CreateComment(userActor(), post.ID, "   ", nil); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("blank content error = %v, want ErrInvalidInput", err)
	}
}

// TestDeleteCommentScenario walks the end-to-end scenario: a post starts at
// zero comments, gains a comment and a reply, and deleting the first comment
// removes both and returns the count to zero.
func TestDeleteCommentScenario(t *testing.T) {
	s := newTestStore()
	author := userActor()
	commenter := userActor()
	replier := userActor()

	post, err := s.CreatePost(author, PostInput{
		Title:      "T",
		Content:    "C",
		CategoryID: "1",
		Visibility: models.VisibilityPublic,
	})
	if err != nil {
		t.Fatalf("CreatePost: %v", err)
	}
	if post.CommentsCount != 0 {
		t.Fatalf("new post CommentsCount = %d, want 0", post.CommentsCount)
	}

	first := mustCreateComment(t, s, commenter, post.ID, "hi", nil)
	if got := s.PostByID(post.ID).CommentsCount; got != 1 {
		t.Fatalf("after comment: CommentsCount = %d, want 1", got)
	}

	mustCreateComment(t, s, replier, post.ID, "hey", &first.ID)
	if got := s.PostByID(post.ID).CommentsCount; got != 2 {
		t.Fatalf("after reply: CommentsCount = %d, want 2", got)
	}

	if err := s.DeleteComment(adminActor(), first.ID); err != nil {
		t.Fatalf("DeleteComment: %v", err)
	}
	if got := s.PostByID(post.ID).CommentsCount; got != 0 {
		t.Errorf("after subtree delete: CommentsCount = %d, want 0", got)
	}
	if got := len(s.CommentsByPost(post.ID)); got != 0 {
		t.Errorf("comments remaining = %d, want 0", got)
	}
}

// TestDeleteCommentSubtreeOnly verifies a subtree delete takes the target
// and all transitive replies but leaves every other comment untouched, and
// that deleting an already-removed id fails with ErrNotFound.
func TestDeleteCommentSubtreeOnly(t *testing.T) {
	s := newTestStore()
	actor := userActor()
	post := mustCreatePost(t, s, actor, PostInput{})

	doomedRoot := mustCreateComment(t, s, actor, post.ID, "doomed", nil)
	doomedChild := mustCreateComment(t, s, actor, post.ID, "doomed child", &doomedRoot.ID)
	mustCreateComment(t, s, actor, post.ID, "doomed grandchild", &doomedChild.ID)

	survivorRoot := mustCreateComment(t, s, actor, post.ID, "survivor", nil)
	survivorChild := mustCreateComment(t, s, actor, post.ID, "survivor child", &survivorRoot.ID)

	if err := s.DeleteComment(actor, doomedRoot.ID); err != nil {
		t.Fatalf("DeleteComment: %v", err)
	}

	remaining := s.CommentsByPost(post.ID)
	if len(remaining) != 2 {
		t.Fatalf("remaining comments = %d, want 2", len(remaining))
	}
	ids := map[uuid.UUID]bool{remaining[0].ID: true, remaining[1].ID: true}
	if !ids[survivorRoot.ID] || !ids[survivorChild.ID] {
		t.Error("subtree delete touched comments outside the subtree")
	}
	checkCommentsCount(t, s, post.ID)

	if err := s.DeleteComment(actor, doomedRoot.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("repeat delete error = %v, want ErrNotFound", err)
	}
	if err := s.DeleteComment(actor, doomedChild.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("deleting removed reply error = %v, want ErrNotFound", err)
	}
}

// TestDeleteCommentDeepChain verifies the worklist walk handles reply
// chains far deeper than any display layer would render.
func TestDeleteCommentDeepChain(t *testing.T) {
	s := newTestStore()
	actor := userActor()
	post := mustCreatePost(t, s, actor, PostInput{})

	root := mustCreateComment(t, s, actor, post.ID, "depth 0", nil)
	parent := root.ID
	for depth := 1; depth <= 200; depth++ {
		c := mustCreateComment(t, s, actor, post.ID, fmt.Sprintf("depth %d", depth), &parent)
		parent = c.ID
	}

	if err := s.DeleteComment(actor, root.ID); err != nil {
		t.Fatalf("DeleteComment: %v", err)
	}
	if got := len(s.CommentsByPost(post.ID)); got != 0 {
		t.Errorf("remaining comments = %d, want 0", got)
	}
	checkCommentsCount(t, s, post.ID)
}

// TestDeleteCommentCycleDefense corrupts the parent relation into a cycle
// and verifies the subtree walk still terminates, removes the cycle, and
// floors the count at zero instead of going negative.
func TestDeleteCommentCycleDefense(t *testing.T) {
	s := newTestStore()
	actor := userActor()
	post := mustCreatePost(t, s, actor, PostInput{})

	a := mustCreateComment(t, s, actor, post.ID, "a", nil)
	b := mustCreateComment(t, s, actor, post.ID, "b", &a.ID)

	// Corrupt the data: a becomes a child of b, closing a cycle. The store
	// never produces this itself.
	s.mu.Lock()
	bID := b.ID
	s.findComment(a.ID).ParentID = &bID
	s.mu.Unlock()

	if err := s.DeleteComment(actor, a.ID); err != nil {
		t.Fatalf("DeleteComment on cyclic data: %v", err)
	}
	if got := len(s.CommentsByPost(post.ID)); got != 0 {
		t.Errorf("remaining comments = %d, want 0", got)
	}
	if got := s.PostByID(post.ID).CommentsCount; got != 0 {
		t.Errorf("CommentsCount = %d, want 0 (never negative)", got)
	}
}

// TestDeleteCommentAuthorization verifies only the comment's author or a
// moderator may delete it.
func TestDeleteCommentAuthorization(t *testing.T) {
	s := newTestStore()
	author := userActor()
	post := mustCreatePost(t, s, author, PostInput{})
	comment := mustCreateComment(t, s, author, post.ID, "mine", nil)

	if err := s.DeleteComment(nil, comment.ID); !errors.Is(err, ErrUnauthenticated) {
		t.Errorf("nil actor error = %v, want ErrUnauthenticated", err)
	}
	if err := s.DeleteComment(userActor(), comment.ID); !errors.Is(err, ErrForbidden) {
		t.Errorf("stranger error = %v, want ErrForbidden", err)
	}

	moderator := &models.Actor{ID: uuid.New(), Role: models.RoleModerator}
	if err := s.DeleteComment(moderator, comment.ID); err != nil {
		t.Errorf("moderator delete failed: %v", err)
	}
}

// TestCommentsCountInvariant runs a mixed sequence of creates and subtree
// deletes and checks the denormalized count equals the live rows after
// every single mutation.
func TestCommentsCountInvariant(t *testing.T) {
	s := newTestStore()
	actor := adminActor()
	post := mustCreatePost(t, s, actor, PostInput{})

	var ids []uuid.UUID
	add := func(parent *uuid.UUID) {
		c := mustCreateComment(t, s, actor, post.ID, "c", parent)
		ids = append(ids, c.ID)
		checkCommentsCount(t, s, post.ID)
	}

	add(nil)
	add(&ids[0])
	add(&ids[1])
	add(nil)
	add(&ids[3])
	add(&ids[0])

	// Delete a mid-tree node, then a root, checking after each.
	if err := s.DeleteComment(actor, ids[1]); err != nil {
		t.Fatalf("DeleteComment: %v", err)
	}
	checkCommentsCount(t, s, post.ID)

	if err := s.DeleteComment(actor, ids[0]); err != nil {
		t.Fatalf("DeleteComment: %v", err)
	}
	checkCommentsCount(t, s, post.ID)

	if err := s.DeleteComment(actor, ids[3]); err != nil {
		t.Fatalf("DeleteComment: %v", err)
	}
	checkCommentsCount(t, s, post.ID)

	if got := s.PostByID(post.ID).CommentsCount; got != 0 {
		t.Errorf("final CommentsCount = %d, want 0", got)
	}
}

// TestCommentsByPost verifies insertion ordering and the empty result for
// unknown posts.
func TestCommentsByPost(t *testing.T) {
	s := newTestStore()
	actor := userActor()
	post := mustCreatePost(t, s, actor, PostInput{})

	first := mustCreateComment(t, s, actor, post.ID, "first", nil)
	second := mustCreateComment(t, s, actor, post.ID, "second", &first.ID)
	third := mustCreateComment(t, s, actor, post.ID, "third", nil)

	got := s.CommentsByPost(post.ID)
	if len(got) != 3 {
		t.Fatalf("got %d comments, want 3", len(got))
	}
	for i, want := range []uuid.UUID{first.ID, second.ID, third.ID} {
		if got[i].ID != want {
			t.Errorf("comments[%d] = %s, want %s (insertion order)", i, got[i].ID, want)
		}
	}

	if got := s.CommentsByPost(uuid.New()); len(got) != 0 {
		t.Errorf("unknown post yielded %d comments, want 0", len(got))
	}
}
