package web

import (
	"fmt"
	"strconv"
	"strings"

	vm "github.com/ericfisherdev/certpanel/internal/adapter/driving/web/viewmodel"
	"github.com/ericfisherdev/certpanel/internal/domain/model"
)

// toPageMetaViewModel converts the catalog page copy into head metadata.
// Site-relative image paths are made absolute with siteURL.
func toPageMetaViewModel(meta model.PageMeta, siteURL string) vm.PageMetaViewModel {
	imageURL := meta.Image
	if imageURL != "" && strings.HasPrefix(imageURL, "/") {
		imageURL = strings.TrimRight(siteURL, "/") + imageURL
	}

	return vm.PageMetaViewModel{
		Title:        meta.Title,
		Description:  meta.Description,
		CanonicalURL: meta.CanonicalURL,
		ImageURL:     imageURL,
	}
}

// toGridViewModel converts an animation plan into the grid's cards.
func toGridViewModel(query string, plan model.AnimationPlan, csrf string) vm.GridViewModel {
	cards := make([]vm.CardViewModel, 0, len(plan.Steps))
	for _, step := range plan.Steps {
		cards = append(cards, toCardViewModel(step))
	}

	return vm.GridViewModel{
		Query:      query,
		Generation: plan.Generation,
		Cards:      cards,
		CSRFToken:  csrf,
	}
}

// toCardViewModel converts one animation step into a grid card.
func toCardViewModel(step model.AnimationStep) vm.CardViewModel {
	r := step.Record

	tags := r.Tags
	if tags == nil {
		tags = []string{}
	}

	return vm.CardViewModel{
		Key:         fmt.Sprintf("%s-%d", r.Name, step.Index),
		Name:        r.Name,
		Category:    r.Category,
		Issuer:      r.Issuer,
		StatusLabel: r.Status.Label(),
		StatusClass: string(r.Status),
		Location:    r.Location,
		Tags:        tags,
		Delay:       cssSeconds(step.Delay.Seconds()),
		Duration:    cssSeconds(step.Duration.Seconds()),
		OffsetY:     strconv.FormatFloat(step.OffsetY, 'f', -1, 64) + "px",
		Stiffness:   strconv.FormatFloat(step.Stiffness, 'f', -1, 64),
		Easing:      step.Easing,
	}
}

// toDetailViewModel converts the selected record into the detail overlay.
// It returns nil when the selection is closed.
func toDetailViewModel(state model.SelectionState, csrf string) *vm.DetailViewModel {
	if !state.IsOpen || state.SelectedRecord == nil {
		return nil
	}
	r := *state.SelectedRecord

	tags := r.Tags
	if tags == nil {
		tags = []string{}
	}

	detail := &vm.DetailViewModel{
		Name:          r.Name,
		Category:      r.Category,
		Issuer:        r.Issuer,
		StatusLabel:   r.Status.Label(),
		StatusClass:   string(r.Status),
		Location:      r.Location,
		Tags:          tags,
		CredentialURL: r.CredentialURL,
		ProofURL:      r.ProofURL,
		CSRFToken:     csrf,
	}
	if r.AchievedOn != nil {
		detail.AchievedOn = r.AchievedOn.Format("January 2, 2006")
	}

	return detail
}

func cssSeconds(s float64) string {
	return strconv.FormatFloat(s, 'f', -1, 64) + "s"
}
