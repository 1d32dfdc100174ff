package store

import (
	"strings"
	"unicode/utf8"
)

// Validation limits for post and comment fields.
const (
	maxTitleLen   = 300
	maxContentLen = 100_000
	maxCommentLen = 10_000
)

// validatePostInput checks post form inputs and returns the first problem
// found, or "" if the input is acceptable.
func validatePostInput(title, content string) string {
	if strings.TrimSpace(title) == "" {
		return "title is required"
	}
	if utf8.RuneCountInString(title) > maxTitleLen {
		return "title is too long (max 300 characters)"
	}
	if utf8.RuneCountInString(content) > maxContentLen {
		return "content is too long (max 100,000 characters)"
	}
	return ""
}

// validateCommentInput checks a comment body and returns the first problem
// found, or "" if the input is acceptable.
func validateCommentInput(content string) string {
	if strings.TrimSpace(content) == "" {
		return "comment is required"
	}
	if utf8.RuneCountInString(content) > maxCommentLen {
		return "comment is too long (max 10,000 characters)"
	}
	return ""
}
