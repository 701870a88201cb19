package model

import "strings"

// CredentialStatus represents the lifecycle state of a credential record.
type CredentialStatus string

const (
	StatusAchieved CredentialStatus = "achieved" // Already obtained.
	StatusDesired  CredentialStatus = "desired"  // Target not yet obtained.
)

// Label returns the human-facing label used on the certifications page.
func (s CredentialStatus) Label() string {
	switch s {
	case StatusAchieved:
		return "Met"
	case StatusDesired:
		return "Want to Meet"
	default:
		return string(s)
	}
}

// ParseCredentialStatus maps catalog values onto a CredentialStatus. Both the
// canonical names and the page labels ("Met", "Want to Meet") are accepted,
// case-insensitively. The second return value is false for unknown input.
func ParseCredentialStatus(v string) (CredentialStatus, bool) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "achieved", "met":
		return StatusAchieved, true
	case "desired", "want to meet":
		return StatusDesired, true
	default:
		return "", false
	}
}
