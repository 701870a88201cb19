package components

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/ericfisherdev/certpanel/internal/adapter/driving/web/templates"
	vm "github.com/ericfisherdev/certpanel/internal/adapter/driving/web/viewmodel"
)

// DetailOverlay renders the modal detail view for the selected credential.
// A nil detail renders an empty placeholder so the script has a stable target.
func DetailOverlay(detail *vm.DetailViewModel) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		hw := templates.NewWriter(w)

		if detail == nil {
			hw.Raw(`<div id="credential-detail"></div>`)
			return hw.Err()
		}

		hw.Raw(`<div id="credential-detail" class="overlay" role="dialog" aria-modal="true"`)
		hw.Attr("aria-label", detail.Name)
		hw.Raw(`><div class="overlay__panel credential-detail credential-detail--` + detail.StatusClass + `">`)

		hw.Raw(`<form method="post" action="/app/detail/close" class="overlay__close">`)
		hw.Raw(`<input type="hidden" name="csrf_token"`)
		hw.Attr("value", detail.CSRFToken)
		hw.Raw(`><button type="submit" aria-label="Close">&times;</button></form>`)

		hw.Raw(`<h3>`)
		hw.Text(detail.Name)
		hw.Raw(`</h3><p class="credential-detail__status">`)
		hw.Text(detail.StatusLabel)
		hw.Raw(`</p><dl>`)

		writeField(hw, "Issuer", detail.Issuer)
		writeField(hw, "Category", detail.Category)
		writeField(hw, "Location", detail.Location)
		writeField(hw, "Met on", detail.AchievedOn)

		hw.Raw(`</dl>`)

		if len(detail.Tags) > 0 {
			hw.Raw(`<ul class="credential-detail__tags">`)
			for _, tag := range detail.Tags {
				hw.Raw(`<li class="tag">`)
				hw.Text(tag)
				hw.Raw(`</li>`)
			}
			hw.Raw(`</ul>`)
		}

		if detail.CredentialURL != "" || detail.ProofURL != "" {
			hw.Raw(`<p class="credential-detail__links">`)
			writeLink(hw, detail.CredentialURL, "View credential")
			writeLink(hw, detail.ProofURL, "View proof")
			hw.Raw(`</p>`)
		}

		hw.Raw(`</div></div>`)
		return hw.Err()
	})
}

// writeField emits one definition-list entry; empty values are omitted.
func writeField(hw *templates.Writer, label, value string) {
	if value == "" {
		return
	}
	hw.Raw(`<dt>`)
	hw.Text(label)
	hw.Raw(`</dt><dd>`)
	hw.Text(value)
	hw.Raw(`</dd>`)
}

func writeLink(hw *templates.Writer, href, label string) {
	if href == "" {
		return
	}
	hw.Raw(`<a target="_blank" rel="noopener noreferrer" href="`)
	hw.URL(href)
	hw.Raw(`">`)
	hw.Text(label)
	hw.Raw(`</a>`)
}
