package application

import (
	"strings"

	"github.com/ericfisherdev/certpanel/internal/domain/model"
)

// Filter returns the records whose name, issuer, or category contains query,
// compared case-insensitively. Tags and location are not searched. Matching
// records keep their relative order from records. An empty query matches
// everything; no match yields an empty, non-nil slice.
func Filter(records []model.CredentialRecord, query string) []model.CredentialRecord {
	out := make([]model.CredentialRecord, 0, len(records))
	if query == "" {
		return append(out, records...)
	}

	needle := strings.ToLower(query)
	for _, r := range records {
		if matchesQuery(r, needle) {
			out = append(out, r)
		}
	}
	return out
}

// matchesQuery reports whether the lowercased needle occurs in one of the
// searchable fields of r.
func matchesQuery(r model.CredentialRecord, needle string) bool {
	return strings.Contains(strings.ToLower(r.Name), needle) ||
		strings.Contains(strings.ToLower(r.Issuer), needle) ||
		strings.Contains(strings.ToLower(r.Category), needle)
}
