package document

import (
	"github.com/willibrandon/tedit/internal/ui/components/textedit"
	"github.com/willibrandon/tedit/internal/ui/styles"
)

// Event is anything that can change the document. Events come from user
// input and from completed tasks.
type Event interface {
	event()
}

// EditAction applies a text widget action to the buffer.
type EditAction struct {
	Action textedit.Action
}

// New clears the document.
type New struct{}

// Open asks the user for a file and loads it.
type Open struct{}

// Save writes the buffer to its path, asking for one when there is none.
type Save struct{}

// Load reads a known path without a dialog.
type Load struct {
	Path string
}

// FileOpened is the outcome of a load. Path and Text are set only when Err
// is nil.
type FileOpened struct {
	Path string
	Text string
	Err  error
}

// FileSaved is the outcome of a save. Text is what was written.
type FileSaved struct {
	Path string
	Text string
	Err  error
}

// ThemeSelected changes the highlight theme.
type ThemeSelected struct {
	Theme styles.Theme
}

func (EditAction) event()    {}
func (New) event()           {}
func (Open) event()          {}
func (Save) event()          {}
func (Load) event()          {}
func (FileOpened) event()    {}
func (FileSaved) event()     {}
func (ThemeSelected) event() {}
