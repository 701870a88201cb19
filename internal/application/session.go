// Package application contains the catalog browsing use cases: filtering,
// selection, entrance sequencing and the per-user session that ties them together.
package application

import "github.com/ericfisherdev/certpanel/internal/domain/model"

// Session is the state of one UI session: the current search query, the
// filtered sequence derived from it, its entrance plan, and the detail-view
// selection. Query and selection are independent of each other.
//
// A Session is not safe for concurrent use. Page layers must deliver events
// one at a time; SessionRegistry.Do does this for the web adapter.
type Session struct {
	store     *RecordStore
	sequencer *PresentationSequencer
	selection *SelectionController

	query      string
	filtered   []model.CredentialRecord
	steps      []model.AnimationStep
	generation uint64
}

// NewSession creates a session with an empty query (every record visible)
// and the detail view closed.
func NewSession(store *RecordStore, sequencer *PresentationSequencer) *Session {
	s := &Session{
		store:     store,
		sequencer: sequencer,
		selection: NewSelectionController(),
	}
	s.recompute()
	return s
}

// OnQueryChange replaces the query and recomputes the filtered sequence and
// its entrance plan. The plan is recomputed even when the query is unchanged.
func (s *Session) OnQueryChange(query string) {
	s.query = query
	s.recompute()
}

// OnRecordClick opens the detail view for record. Callers must only pass
// records obtained from the store or from FilteredRecords.
func (s *Session) OnRecordClick(record model.CredentialRecord) {
	s.selection.Select(record)
}

// OnDetailClose closes the detail view.
func (s *Session) OnDetailClose() {
	s.selection.Close()
}

// Query returns the current search query.
func (s *Session) Query() string {
	return s.query
}

// FilteredRecords returns the filtered sequence for the current query.
func (s *Session) FilteredRecords() []model.CredentialRecord {
	return cloneRecords(s.filtered)
}

// GetFilteredRecords filters the store with query without touching session state.
func (s *Session) GetFilteredRecords(query string) []model.CredentialRecord {
	return Filter(s.store.All(), query)
}

// SelectionState returns the current detail-view selection.
func (s *Session) SelectionState() model.SelectionState {
	return s.selection.State()
}

// AnimationPlan returns the entrance plan for the current filtered sequence.
func (s *Session) AnimationPlan() model.AnimationPlan {
	steps := make([]model.AnimationStep, len(s.steps))
	for i, step := range s.steps {
		step.Record = cloneRecord(step.Record)
		steps[i] = step
	}
	return model.AnimationPlan{Generation: s.generation, Steps: steps}
}

// Store returns the record store backing this session.
func (s *Session) Store() *RecordStore {
	return s.store
}

func (s *Session) recompute() {
	s.filtered = Filter(s.store.All(), s.query)
	s.steps = s.sequencer.Plan(s.filtered)
	s.generation++
}
