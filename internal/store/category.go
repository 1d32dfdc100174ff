// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import "agora/internal/models"

// defaultCategories returns the static category registry. Categories are
// reference data: fixed ids, never user-mutable.
func defaultCategories() []models.Category {
	return []models.Category{
		{ID: "1", Name: "General Discussion", Slug: "general", Description: "For general topics and conversations", Icon: "message-square"},
		{ID: "2", Name: "Technology", Slug: "technology", Description: "Discuss the latest tech trends and innovations", Icon: "laptop"},
		{ID: "3", Name: "Health & Wellness", Slug: "health", Description: "Share tips and advice for healthy living", Icon: "heart"},
		{ID: "4", Name: "Education", Slug: "education", Description: "Resources and discussions about learning", Icon: "book-open"},
		{ID: "5", Name: "Entertainment", Slug: "entertainment", Description: "Movies, music, games and more", Icon: "film"},
	}
}

// defaultTags returns the fixed tag vocabulary posts may reference.
func defaultTags() []string {
	return []string{
		"Beginner", "Advanced", "Tutorial", "Question", "Discussion",
		"News", "Review", "Tips", "Guide", "Opinion",
	}
}

// Categories returns a copy of the category registry.
func (s *Store) Categories() []models.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Category{}, s.categories...)
}

// Tags returns a copy of the tag vocabulary.
func (s *Store) Tags() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string{}, s.tags...)
}
