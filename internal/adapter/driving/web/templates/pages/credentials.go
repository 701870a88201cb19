// Package pages holds the full-page templ components.
package pages

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/ericfisherdev/certpanel/internal/adapter/driving/web/templates"
	"github.com/ericfisherdev/certpanel/internal/adapter/driving/web/templates/components"
	vm "github.com/ericfisherdev/certpanel/internal/adapter/driving/web/viewmodel"
)

// SearchPlaceholder is the hint shown in the empty search box.
const SearchPlaceholder = "Search by name, issuer, or category..."

// Credentials renders the body of the certifications page: intro, search
// form, credential grid and, when open, the detail overlay.
func Credentials(page vm.PageViewModel) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := templates.NewWriter(w)

		if page.Tagline != "" {
			hw.Raw(`<p class="tagline">`)
			hw.Text(page.Tagline)
			hw.Raw(`</p>`)
		}

		// IntroHTML is sanitized by the markdown renderer.
		hw.Raw(`<div class="intro">`)
		hw.Raw(page.IntroHTML)
		hw.Raw(`</div>`)

		hw.Raw(`<h2>Certifications</h2>`)
		hw.Raw(`<form class="search" method="get" action="/" role="search">`)
		hw.Raw(`<input id="credential-search" class="search__input" type="text" name="q" autocomplete="off"`)
		hw.Attr("placeholder", SearchPlaceholder)
		hw.Attr("value", page.Grid.Query)
		hw.Raw(`></form>`)

		hw.Render(ctx, components.CredentialGrid(page.Grid))
		hw.Render(ctx, components.DetailOverlay(page.Detail))

		return hw.Err()
	})
}
