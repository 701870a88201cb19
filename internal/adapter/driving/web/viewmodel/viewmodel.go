// Package viewmodel defines presentation-ready structs for templ components.
// View models decouple template rendering from domain model types.
package viewmodel

// PageMetaViewModel holds the head metadata of the certifications page.
type PageMetaViewModel struct {
	Title        string
	Description  string
	CanonicalURL string
	ImageURL     string // Absolute URL for og:image; empty when the catalog has no image.
}

// CardViewModel holds presentation-ready data for one credential card in the grid,
// including its entrance animation timing.
type CardViewModel struct {
	Key         string
	Name        string
	Category    string
	Issuer      string
	StatusLabel string
	StatusClass string // "achieved" or "desired"; used as a CSS modifier.
	Location    string
	Tags        []string

	Delay     string // CSS time, e.g. "0.08s".
	Duration  string
	OffsetY   string // CSS length, e.g. "40px".
	Stiffness string
	Easing    string
}

// GridViewModel holds the filtered credential grid.
type GridViewModel struct {
	Query      string
	Generation uint64
	Cards      []CardViewModel
	CSRFToken  string
}

// IsEmpty returns true when the grid should show the no-results message.
func (g GridViewModel) IsEmpty() bool {
	return len(g.Cards) == 0
}

// DetailViewModel holds presentation-ready data for the detail overlay.
// Optional fields are empty strings when absent and are omitted from the overlay.
type DetailViewModel struct {
	Name          string
	Category      string
	Issuer        string
	StatusLabel   string
	StatusClass   string
	Location      string
	Tags          []string
	AchievedOn    string // Human-readable date, e.g. "January 15, 2024".
	CredentialURL string
	ProofURL      string
	CSRFToken     string
}

// PageViewModel holds all data needed to render the certifications page.
type PageViewModel struct {
	Meta      PageMetaViewModel
	Tagline   string
	IntroHTML string // Sanitized HTML.
	Grid      GridViewModel
	Detail    *DetailViewModel // Nil when the detail overlay is closed.
}
