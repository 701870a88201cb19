package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"

	vm "github.com/ericfisherdev/certpanel/internal/adapter/driving/web/viewmodel"
)

// Layout renders the full HTML document: head metadata, stylesheet, script
// and body content.
func Layout(meta vm.PageMetaViewModel, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := NewWriter(w)

		hw.Raw(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`)
		hw.Raw(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		hw.Raw(`<title>`)
		hw.Text(meta.Title)
		hw.Raw(`</title>`)

		hw.Raw(`<meta property="og:title"`)
		hw.Attr("content", meta.Title)
		hw.Raw(`>`)
		if meta.Description != "" {
			hw.Raw(`<meta name="description"`)
			hw.Attr("content", meta.Description)
			hw.Raw(`><meta property="og:description"`)
			hw.Attr("content", meta.Description)
			hw.Raw(`>`)
		}
		if meta.CanonicalURL != "" {
			hw.Raw(`<meta property="og:url"`)
			hw.Attr("content", meta.CanonicalURL)
			hw.Raw(`>`)
		}
		if meta.ImageURL != "" {
			hw.Raw(`<meta property="og:image"`)
			hw.Attr("content", meta.ImageURL)
			hw.Raw(`>`)
		}

		hw.Raw(`<link rel="stylesheet" href="/static/css/certpanel.css">`)
		hw.Raw(`<script src="/static/js/certpanel.js" defer></script>`)
		hw.Raw(`</head><body><main class="page">`)
		hw.Render(ctx, body)
		hw.Raw(`</main></body></html>`)

		return hw.Err()
	})
}
