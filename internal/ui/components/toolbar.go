package components

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/willibrandon/tedit/internal/ui/styles"
)

// Button identifies a toolbar control.
type Button int

const (
	ButtonNone Button = iota
	ButtonNew
	ButtonOpen
	ButtonSave
	ButtonTheme
)

func (b Button) String() string {
	switch b {
	case ButtonNew:
		return "New"
	case ButtonOpen:
		return "Open"
	case ButtonSave:
		return "Save"
	case ButtonTheme:
		return "Theme"
	}
	return ""
}

// Toolbar renders the top row: the document buttons on the left and the
// theme picker label on the right.
type Toolbar struct {
	width       int
	saveEnabled bool
	theme       styles.Theme
	styles      styles.Styles

	// Column ranges of the rendered controls, for mouse hit testing.
	spans []buttonSpan
}

type buttonSpan struct {
	button     Button
	start, end int // [start, end)
}

// NewToolbar creates a toolbar.
func NewToolbar() *Toolbar {
	return &Toolbar{}
}

// SetSize sets the toolbar width.
func (t *Toolbar) SetSize(width int) {
	t.width = width
}

// SetState updates what the toolbar shows.
func (t *Toolbar) SetState(saveEnabled bool, theme styles.Theme, st styles.Styles) {
	t.saveEnabled = saveEnabled
	t.theme = theme
	t.styles = st
}

// SaveEnabled reports whether the Save button accepts clicks.
func (t *Toolbar) SaveEnabled() bool {
	return t.saveEnabled
}

// View renders the toolbar.
func (t *Toolbar) View() string {
	return t.render()
}

// render draws the toolbar and records where each control landed.
func (t *Toolbar) render() string {
	t.spans = t.spans[:0]

	col := 0
	var left string
	for _, b := range []Button{ButtonNew, ButtonOpen, ButtonSave} {
		style := t.styles.Button
		if b == ButtonSave && !t.saveEnabled {
			style = t.styles.ButtonDisabled
		}
		r := style.Render(b.String())
		w := ansi.StringWidth(r)
		// The right margin is part of the rendered width but not the button.
		t.spans = append(t.spans, buttonSpan{button: b, start: col, end: col + w - style.GetMarginRight()})
		col += w
		left += r
	}

	label := t.styles.ThemeLabel.Render("Theme: " + t.theme.String() + " ▾")
	labelWidth := ansi.StringWidth(label)

	gap := t.width - col - labelWidth
	if gap < 1 {
		// Narrow terminal: drop the label rather than wrap.
		return t.styles.Toolbar.Width(max(t.width, col)).Render(left)
	}
	t.spans = append(t.spans, buttonSpan{button: ButtonTheme, start: col + gap, end: col + gap + labelWidth})

	return lipgloss.JoinHorizontal(lipgloss.Top,
		left,
		t.styles.Toolbar.Width(gap).Render(""),
		label,
	)
}

// HitTest returns the control at column x. A disabled Save button is
// reported as ButtonNone.
func (t *Toolbar) HitTest(x int) Button {
	t.render()
	for _, s := range t.spans {
		if x >= s.start && x < s.end {
			if s.button == ButtonSave && !t.saveEnabled {
				return ButtonNone
			}
			return s.button
		}
	}
	return ButtonNone
}
