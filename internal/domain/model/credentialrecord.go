package model

import "time"

// CredentialRecord represents one certification or credential entry shown on
// the certifications page. Records are loaded once at startup and never mutated.
type CredentialRecord struct {
	Name          string // Unique within the catalog; used as the display key.
	Category      string
	Issuer        string
	Status        CredentialStatus
	Tags          []string
	Location      string
	AchievedOn    *time.Time // Nil when the credential has not been obtained.
	CredentialURL string     // Empty when absent.
	ProofURL      string     // Empty when absent.
}

// IsAchieved returns true if the credential has already been obtained.
func (r CredentialRecord) IsAchieved() bool {
	return r.Status == StatusAchieved
}

// HasConsistentStatus reports whether AchievedOn and ProofURL are populated
// only for achieved records. The engine never enforces this; loaders use it
// to flag suspicious catalog entries.
func (r CredentialRecord) HasConsistentStatus() bool {
	if r.Status == StatusDesired {
		return r.AchievedOn == nil && r.ProofURL == ""
	}
	return true
}
