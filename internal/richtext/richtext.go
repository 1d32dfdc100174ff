// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package richtext sanitizes user-authored HTML and renders markdown comment
// bodies for display. Post bodies arrive as HTML from a rich-text editor and
// are filtered through a UGC policy; comment bodies are plain text with
// optional markdown and are rendered before sanitation.
package richtext

import (
	"bytes"
	"html"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	ghtml "github.com/yuin/goldmark/renderer/html"
)

var (
	markdown = goldmark.New(
		goldmark.WithExtensions(extension.GFM, extension.Linkify),
		goldmark.WithRendererOptions(ghtml.WithHardWraps()),
	)
	ugcPolicy = bluemonday.UGCPolicy()
)

// SanitizeHTML filters user-supplied HTML through the UGC policy, dropping
// scripts, event handlers, and unknown elements while keeping the formatting
// a rich-text editor produces.
func SanitizeHTML(src string) string {
	return ugcPolicy.Sanitize(src)
}

// Comment renders a comment body (plain text or markdown) to sanitized HTML.
// If rendering fails the escaped source text is returned instead, so the
// caller always gets something safe to display.
func Comment(src string) string {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(src), &buf); err != nil {
		return "<p>" + html.EscapeString(src) + "</p>"
	}
	return ugcPolicy.Sanitize(buf.String())
}
