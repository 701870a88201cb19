package application

import "github.com/ericfisherdev/certpanel/internal/domain/model"

// SelectionController tracks which record's detail view is open. It has two
// states, Closed and Open(record), and starts Closed.
type SelectionController struct {
	selected *model.CredentialRecord
}

// NewSelectionController creates a controller in the Closed state.
func NewSelectionController() *SelectionController {
	return &SelectionController{}
}

// Select opens the detail view for record. Selecting while another record is
// open replaces the selection directly.
func (c *SelectionController) Select(record model.CredentialRecord) {
	record = cloneRecord(record)
	c.selected = &record
}

// Close returns the controller to Closed. Closing while already Closed is a no-op.
func (c *SelectionController) Close() {
	c.selected = nil
}

// State returns a snapshot of the current selection.
func (c *SelectionController) State() model.SelectionState {
	if c.selected == nil {
		return model.ClosedSelection()
	}
	record := cloneRecord(*c.selected)
	return model.SelectionState{SelectedRecord: &record, IsOpen: true}
}
