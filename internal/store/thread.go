// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"github.com/google/uuid"

	"agora/internal/models"
	"agora/internal/richtext"
)

// CommentNode is one entry in a threaded comment view: the comment itself,
// its body rendered to sanitized HTML, and its direct replies in insertion
// order.
type CommentNode struct {
	models.Comment
	HTML    string         `json:"html"`
	Replies []*CommentNode `json:"replies,omitempty"`
}

// ThreadByPost assembles the post's comments into their reply forest. Roots
// appear in insertion order, replies are grouped under their parents, and
// every node carries display-ready HTML. Depth is unbounded here; a display
// layer may cap how deep it renders.
func (s *Store) ThreadByPost(postID uuid.UUID) []*CommentNode {
	comments := s.CommentsByPost(postID)

	nodes := make(map[uuid.UUID]*CommentNode, len(comments))
	for i := range comments {
		nodes[comments[i].ID] = &CommentNode{
			Comment: comments[i],
			HTML:    richtext.Comment(comments[i].Content),
		}
	}

	var roots []*CommentNode
	for i := range comments {
		node := nodes[comments[i].ID]
		if node.ParentID != nil {
			if parent, ok := nodes[*node.ParentID]; ok {
				parent.Replies = append(parent.Replies, node)
				continue
			}
		}
		roots = append(roots, node)
	}
	return roots
}
