package application

import (
	"slices"

	"github.com/ericfisherdev/certpanel/internal/domain/model"
)

// RecordStore holds the canonical, read-only credential collection for the
// lifetime of the process. It has no mutation API.
type RecordStore struct {
	records []model.CredentialRecord
	byName  map[string]int
}

// NewRecordStore creates a RecordStore from records in authored order. The
// records are deep-copied so later changes by the caller are not observed.
func NewRecordStore(records []model.CredentialRecord) *RecordStore {
	copied := cloneRecords(records)

	byName := make(map[string]int, len(copied))
	for i, r := range copied {
		if _, ok := byName[r.Name]; !ok {
			byName[r.Name] = i
		}
	}

	return &RecordStore{records: copied, byName: byName}
}

// All returns every record exactly as authored. The returned records are
// copies; changing them does not affect the store.
func (s *RecordStore) All() []model.CredentialRecord {
	return cloneRecords(s.records)
}

// Len returns the number of records in the store.
func (s *RecordStore) Len() int {
	return len(s.records)
}

// ByName returns the record with the given name. The second return value is
// false when no such record exists.
func (s *RecordStore) ByName(name string) (model.CredentialRecord, bool) {
	i, ok := s.byName[name]
	if !ok {
		return model.CredentialRecord{}, false
	}
	return cloneRecord(s.records[i]), true
}

// cloneRecord copies r including its Tags backing array, the only
// reference-typed field a caller could write through. AchievedOn points at
// an immutable time.Time value and is shared.
func cloneRecord(r model.CredentialRecord) model.CredentialRecord {
	r.Tags = slices.Clone(r.Tags)
	return r
}

func cloneRecords(records []model.CredentialRecord) []model.CredentialRecord {
	out := make([]model.CredentialRecord, len(records))
	for i, r := range records {
		out[i] = cloneRecord(r)
	}
	return out
}
