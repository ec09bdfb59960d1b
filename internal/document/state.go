// Package document holds the editor's document state and the dispatcher
// that applies events to it.
//
// Update is the only place state changes. It performs no I/O: work that
// touches the filesystem or a dialog is returned as a Task for the caller to
// run, and its outcome comes back as another Event.
package document

import (
	"github.com/willibrandon/tedit/internal/ui/components/textedit"
	"github.com/willibrandon/tedit/internal/ui/styles"
)

// State is the whole editor document.
type State struct {
	Buffer    *textedit.Content
	Path      string // "" when the document has never been loaded or saved
	Theme     styles.Theme
	IsDirty   bool
	LastError error

	// Baseline is the text of the last successful load or save.
	Baseline string
}

// NewState returns the startup state: an empty buffer with no path. The
// document starts dirty because nothing has been loaded yet.
func NewState(theme styles.Theme) *State {
	return &State{
		Buffer:  textedit.NewContent(),
		Theme:   theme,
		IsDirty: true,
	}
}

// Text returns the buffer contents.
func (s *State) Text() string {
	return s.Buffer.Text()
}

// HasUnsavedChanges reports whether the buffer differs from the baseline.
// Unlike IsDirty it becomes false again when edits are undone.
func (s *State) HasUnsavedChanges() bool {
	return s.Buffer.Text() != s.Baseline
}
