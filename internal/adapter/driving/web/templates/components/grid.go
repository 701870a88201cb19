// Package components holds the reusable fragments of the certifications page.
package components

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"

	"github.com/ericfisherdev/certpanel/internal/adapter/driving/web/templates"
	vm "github.com/ericfisherdev/certpanel/internal/adapter/driving/web/viewmodel"
)

// NoResultsMessage is shown in place of the grid when nothing matches.
const NoResultsMessage = "No certifications found."

// CredentialGrid renders the filtered credential cards. Each card carries its
// entrance timing as CSS custom properties; the grid's generation lets the
// browser script discard responses for superseded queries.
func CredentialGrid(grid vm.GridViewModel) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		hw := templates.NewWriter(w)

		hw.Raw(`<div id="credential-grid" class="credential-grid"`)
		hw.Attr("data-generation", strconv.FormatUint(grid.Generation, 10))
		hw.Attr("data-query", grid.Query)
		hw.Raw(`>`)

		if grid.IsEmpty() {
			hw.Raw(`<div class="no-results">`)
			hw.Text(NoResultsMessage)
			hw.Raw(`</div>`)
		}

		for _, card := range grid.Cards {
			writeCard(hw, card, grid.CSRFToken)
		}

		hw.Raw(`</div>`)
		return hw.Err()
	})
}

func writeCard(hw *templates.Writer, card vm.CardViewModel, csrf string) {
	hw.Raw(`<form class="credential-card-form" method="post" action="/app/select"`)
	hw.Attr("data-key", card.Key)
	hw.Attr("style", "--enter-delay:"+card.Delay+";--enter-duration:"+card.Duration+";--enter-offset:"+card.OffsetY)
	hw.Attr("data-stiffness", card.Stiffness)
	hw.Attr("data-easing", card.Easing)
	hw.Raw(`>`)

	hw.Raw(`<input type="hidden" name="csrf_token"`)
	hw.Attr("value", csrf)
	hw.Raw(`><input type="hidden" name="name"`)
	hw.Attr("value", card.Name)
	hw.Raw(`>`)

	hw.Raw(`<button type="submit" class="credential-card credential-card--` + card.StatusClass + `">`)
	hw.Raw(`<span class="credential-card__status">`)
	hw.Text(card.StatusLabel)
	hw.Raw(`</span><span class="credential-card__name">`)
	hw.Text(card.Name)
	hw.Raw(`</span><span class="credential-card__issuer">`)
	hw.Text(card.Issuer)
	hw.Raw(`</span><span class="credential-card__category">`)
	hw.Text(card.Category)
	hw.Raw(`</span>`)

	if len(card.Tags) > 0 {
		hw.Raw(`<span class="credential-card__tags">`)
		for _, tag := range card.Tags {
			hw.Raw(`<span class="tag">`)
			hw.Text(tag)
			hw.Raw(`</span>`)
		}
		hw.Raw(`</span>`)
	}

	hw.Raw(`</button></form>`)
}
