package model

// PageMeta holds the metadata and intro copy of the certifications page.
type PageMeta struct {
	Title        string
	Description  string
	Tagline      string
	Image        string // Site-relative path of the share image.
	CanonicalURL string
	Intro        string // Markdown.
}

// Catalog is the full static content loaded at startup: the page copy and the
// ordered credential records.
type Catalog struct {
	Page    PageMeta
	Records []CredentialRecord
}
