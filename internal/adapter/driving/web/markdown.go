package web

import (
	"bytes"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

var (
	mdRenderer = goldmark.New(
		goldmark.WithExtensions(extension.Linkify, extension.Strikethrough),
	)

	// Links in the intro leave the page, so they open in a new tab.
	introPolicy = bluemonday.UGCPolicy().AddTargetBlankToFullyQualifiedLinks(true)
)

// RenderMarkdown converts the page intro from markdown to sanitized HTML.
// Raw HTML in the source is dropped by the renderer and stripped again by the
// sanitizer. Returns empty string for empty input.
func RenderMarkdown(src string) string {
	if src == "" {
		return ""
	}

	var buf bytes.Buffer
	if err := mdRenderer.Convert([]byte(src), &buf); err != nil {
		return introPolicy.Sanitize(src)
	}

	return introPolicy.Sanitize(buf.String())
}
