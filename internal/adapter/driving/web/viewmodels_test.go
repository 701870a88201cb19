package web

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ericfisherdev/certpanel/internal/domain/model"
)

func TestToPageMetaViewModel_AbsoluteImage(t *testing.T) {
	meta := model.PageMeta{Title: "T", Image: "/static/images/x.jpg"}

	got := toPageMetaViewModel(meta, "https://example.com/")

	assert.Equal(t, "https://example.com/static/images/x.jpg", got.ImageURL)
}

func TestToPageMetaViewModel_KeepsFullyQualifiedImage(t *testing.T) {
	meta := model.PageMeta{Image: "https://cdn.example.com/x.jpg"}

	got := toPageMetaViewModel(meta, "https://example.com")

	assert.Equal(t, "https://cdn.example.com/x.jpg", got.ImageURL)
}

func TestToCardViewModel_Timing(t *testing.T) {
	step := model.AnimationStep{
		Record:    model.CredentialRecord{Name: "A", Status: model.StatusDesired},
		Index:     3,
		Delay:     240 * time.Millisecond,
		Duration:  500 * time.Millisecond,
		Stiffness: 60,
		OffsetY:   40,
		Easing:    model.EasingSpring,
	}

	card := toCardViewModel(step)

	assert.Equal(t, "0.24s", card.Delay)
	assert.Equal(t, "0.5s", card.Duration)
	assert.Equal(t, "40px", card.OffsetY)
	assert.Equal(t, "60", card.Stiffness)
	assert.Equal(t, "spring", card.Easing)
	assert.Equal(t, "Want to Meet", card.StatusLabel)
	assert.Equal(t, "desired", card.StatusClass)
	assert.Equal(t, "A-3", card.Key)
	assert.NotNil(t, card.Tags)
}

func TestToGridViewModel(t *testing.T) {
	plan := model.AnimationPlan{
		Generation: 7,
		Steps: []model.AnimationStep{
			{Record: model.CredentialRecord{Name: "A"}, Index: 0},
			{Record: model.CredentialRecord{Name: "B"}, Index: 1},
		},
	}

	grid := toGridViewModel("q", plan, "tok")

	assert.Equal(t, uint64(7), grid.Generation)
	assert.Equal(t, "tok", grid.CSRFToken)
	require.Len(t, grid.Cards, 2)
	assert.Equal(t, "B", grid.Cards[1].Name)
	assert.False(t, grid.IsEmpty())
}

func TestToDetailViewModel_Closed(t *testing.T) {
	assert.Nil(t, toDetailViewModel(model.ClosedSelection(), "tok"))
}

func TestToDetailViewModel_Open(t *testing.T) {
	on := time.Date(2023, time.December, 10, 0, 0, 0, 0, time.UTC)
	record := model.CredentialRecord{
		Name:       "Google Data Analytics Professional Certificate",
		Status:     model.StatusAchieved,
		AchievedOn: &on,
		ProofURL:   "https://example.com/proof",
	}

	detail := toDetailViewModel(model.SelectionState{SelectedRecord: &record, IsOpen: true}, "tok")

	require.NotNil(t, detail)
	assert.Equal(t, "December 10, 2023", detail.AchievedOn)
	assert.Equal(t, "Met", detail.StatusLabel)
	assert.Equal(t, "https://example.com/proof", detail.ProofURL)
	assert.Empty(t, detail.CredentialURL)
}
