package model

// SelectionState describes whether the detail view is open and for which
// record. IsOpen implies SelectedRecord is non-nil.
type SelectionState struct {
	SelectedRecord *CredentialRecord
	IsOpen         bool
}

// ClosedSelection returns the initial state: nothing selected, detail closed.
func ClosedSelection() SelectionState {
	return SelectionState{}
}
