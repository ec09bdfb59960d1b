package components

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/x/ansi"
	"github.com/dustin/go-humanize"

	"github.com/willibrandon/tedit/internal/document"
	"github.com/willibrandon/tedit/internal/ui/styles"
)

// StatusBar represents the status bar component
type StatusBar struct {
	width int

	// Document data
	path    string
	err     error
	dirty   bool
	size    int
	grammar string

	// Zero-based cursor position
	line, column int

	// Transient message, e.g. "copied line"
	message string

	styles styles.Styles
}

// NewStatusBar creates a new status bar component
func NewStatusBar() *StatusBar {
	return &StatusBar{}
}

// SetSize sets the width of the status bar
func (s *StatusBar) SetSize(width int) {
	s.width = width
}

// SetStyles sets the theme styles.
func (s *StatusBar) SetStyles(st styles.Styles) {
	s.styles = st
}

// SetDocument sets the document facts shown on the left.
func (s *StatusBar) SetDocument(path string, err error, dirty bool, size int, grammar string) {
	s.path = path
	s.err = err
	s.dirty = dirty
	s.size = size
	s.grammar = grammar
}

// SetCursor sets the zero-based cursor position.
func (s *StatusBar) SetCursor(line, column int) {
	s.line = line
	s.column = column
}

// SetMessage sets a transient message; empty clears it.
func (s *StatusBar) SetMessage(msg string) {
	s.message = msg
}

// Message returns the transient message.
func (s *StatusBar) Message() string {
	return s.message
}

// LeftText returns the main status text: the I/O error when there is one,
// otherwise the path. A cancelled dialog is not an error worth showing.
func (s *StatusBar) LeftText() string {
	if s.err != nil && !errors.Is(s.err, document.ErrDialogCancelled) {
		return s.err.Error()
	}
	if s.path == "" {
		return "new file"
	}
	return s.path
}

// Position returns the one-based "line:column" shown on the right.
func (s *StatusBar) Position() string {
	return fmt.Sprintf("%d:%d", s.line+1, s.column+1)
}

// View renders the status bar
func (s *StatusBar) View() string {
	st := s.styles

	var info string
	if s.dirty {
		info += st.StatusDirty.Render(" ● modified")
	}
	info += st.StatusDim.Render(fmt.Sprintf(" │ %s │ %s", humanize.IBytes(uint64(s.size)), s.grammar))
	if s.message != "" {
		info += st.StatusDim.Render(" │ " + s.message)
	}
	right := st.StatusPath.Render(s.Position())

	// Padding of the bar itself.
	inner := max(s.width-st.StatusBar.GetHorizontalPadding(), 0)

	leftStyle := st.StatusPath
	if s.err != nil && document.Kind(s.err) == document.KindIO {
		leftStyle = st.StatusError
	}

	// The main text gets whatever the position and info leave; info is
	// dropped first on narrow terminals.
	avail := inner - ansi.StringWidth(right) - 1
	if avail-ansi.StringWidth(info) < 10 {
		info = ""
	}
	avail -= ansi.StringWidth(info)

	text := s.LeftText()
	if s.err == nil || errors.Is(s.err, document.ErrDialogCancelled) {
		text = styles.TruncateLeft(text, avail)
	} else {
		text = styles.Truncate(text, avail)
	}
	left := leftStyle.Render(text) + info

	gap := max(inner-ansi.StringWidth(left)-ansi.StringWidth(right), 1)
	line := left + st.StatusPath.Render(fmt.Sprintf("%*s", gap, "")) + right

	return st.StatusBar.Width(max(s.width, 0)).MaxWidth(max(s.width, 1)).Render(line)
}
