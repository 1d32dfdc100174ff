package store

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"agora/internal/models"
)

// SeedDemo populates the store with initial development data: three public
// posts with reactions and a small comment thread under each. The authors
// slice supplies the user ids to attribute content to (at least three,
// typically the demo users from the identity provider). Seeding is a no-op
// if posts already exist.
func (s *Store) SeedDemo(authors []uuid.UUID) error {
	if len(authors) < 3 {
		return fmt.Errorf("seed demo: need at least 3 author ids, got %d", len(authors))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.posts) > 0 {
		slog.Info("store already seeded, skipping")
		return nil
	}

	now := s.now()
	daysAgo := func(n int) time.Time { return now.Add(-time.Duration(n) * 24 * time.Hour) }
	hoursAgo := func(n int) time.Time { return now.Add(-time.Duration(n) * time.Hour) }

	welcome := s.seedPost(authors[0], "1", daysAgo(7), 185,
		"Welcome to the Community Forum",
		"<p>This is the beginning of our community journey. Welcome aboard! Feel free to explore and engage with other members.</p><p>Here are some guidelines to follow:</p><ul><li>Be respectful to others</li><li>Share knowledge freely</li><li>Ask questions when in doubt</li><li>Help others when you can</li></ul>",
		[]string{"Beginner", "Guide"})

	webdev := s.seedPost(authors[1], "2", daysAgo(5), 312,
		"Introduction to Modern Web Development",
		"<h2>Getting Started with Web Development</h2><p>Web development continues to evolve rapidly. Here is what you need to know:</p><ol><li>HTML/CSS fundamentals remain important</li><li>JavaScript is more powerful than ever</li><li>API knowledge is crucial</li></ol><p>What technologies are you most excited about?</p>",
		[]string{"Beginner", "Guide", "Discussion"})
	webdev.Reactions[models.ReactionLike] = []uuid.UUID{authors[2]}
	webdev.Reactions[models.ReactionHeart] = []uuid.UUID{authors[0]}

	health := s.seedPost(authors[2], "3", daysAgo(2), 147,
		"Healthy Eating Habits for Tech Professionals",
		"<p>Working in tech often means long hours at a desk. Here are some healthy eating tips:</p><ul><li>Prepare meals in advance</li><li>Stay hydrated throughout the day</li><li>Choose nutrient-dense snacks</li></ul><p>What are your strategies for healthy eating while working?</p>",
		[]string{"Tips", "Guide"})
	health.Reactions[models.ReactionLike] = []uuid.UUID{authors[0], authors[1]}
	health.Reactions[models.ReactionCelebration] = []uuid.UUID{authors[2]}

	s.seedComment(welcome, authors[1], nil, daysAgo(6),
		"Excited to be part of this community!")
	s.seedComment(welcome, authors[2], nil, daysAgo(5),
		"Looking forward to all the discussions.")

	typescript := s.seedComment(webdev, authors[0], nil, daysAgo(4),
		"Great overview! I would add that TypeScript is becoming essential too.")
	s.seedComment(webdev, authors[2], typescript, daysAgo(4),
		"I agree. TypeScript has saved me from so many bugs.")
	s.seedComment(webdev, authors[1], typescript, daysAgo(3),
		"Thanks for the feedback! You're absolutely right.")
	resources := s.seedComment(webdev, authors[2], nil, daysAgo(3),
		"Do you recommend any resources for learning modern web development?")
	s.seedComment(webdev, authors[1], resources, daysAgo(2),
		"MDN Web Docs, freeCodeCamp, and Frontend Masters are great places to start!")

	s.seedComment(health, authors[0], nil, daysAgo(1),
		"I've found that using a water tracking app helps me stay hydrated.")
	desks := s.seedComment(health, authors[1], nil, hoursAgo(12),
		"Standing desks have been a game-changer for me!")
	s.seedComment(health, authors[2], desks, hoursAgo(8),
		"Great suggestion! Which standing desk do you use?")

	slog.Info("store seeded with demo content",
		"posts", len(s.posts),
		"comments", len(s.comments),
	)
	return nil
}

// seedPost inserts a demo post at the head of the post list.
// Callers must hold the lock.
func (s *Store) seedPost(author uuid.UUID, categoryID string, created time.Time, views int, title, content string, tags []string) *models.Post {
	post := &models.Post{
		ID:         uuid.New(),
		Title:      title,
		Content:    s.sanitize(content),
		AuthorID:   author,
		CategoryID: categoryID,
		Tags:       tags,
		Visibility: models.VisibilityPublic,
		CreatedAt:  created,
		UpdatedAt:  created,
		Reactions:  models.EmptyReactions(),
		ViewsCount: views,
	}
	s.posts = append([]*models.Post{post}, s.posts...)
	return post
}

// seedComment appends a demo comment and keeps the post's count in step.
// Callers must hold the lock.
func (s *Store) seedComment(post *models.Post, author uuid.UUID, parent *models.Comment, created time.Time, content string) *models.Comment {
	comment := &models.Comment{
		ID:        uuid.New(),
		PostID:    post.ID,
		AuthorID:  author,
		Content:   content,
		CreatedAt: created,
	}
	if parent != nil {
		parentID := parent.ID
		comment.ParentID = &parentID
	}
	s.comments = append(s.comments, comment)
	post.CommentsCount++
	return comment
}
