package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/willibrandon/tedit/internal/ui/highlight"
)

// Styles holds every lipgloss style the UI renders with for one theme.
type Styles struct {
	Palette Palette

	// Toolbar
	Toolbar        lipgloss.Style
	Button         lipgloss.Style
	ButtonDisabled lipgloss.Style
	ThemeLabel     lipgloss.Style

	// Editor pane
	Text              lipgloss.Style
	Cursor            lipgloss.Style
	LineNumber        lipgloss.Style
	CurrentLineNumber lipgloss.Style

	// Status bar
	StatusBar   lipgloss.Style
	StatusPath  lipgloss.Style
	StatusError lipgloss.Style
	StatusDirty lipgloss.Style
	StatusDim   lipgloss.Style

	// Overlays
	Dialog      lipgloss.Style
	DialogTitle lipgloss.Style
	Selected    lipgloss.Style
	HelpKey     lipgloss.Style
	HelpDesc    lipgloss.Style
	Warning     lipgloss.Style
}

// For builds the styles for theme t. The editor pane takes its colours from
// the chroma style so the text background matches the highlighting.
func For(t Theme) Styles {
	p := PaletteFor(t)

	text := lipgloss.NewStyle()
	fg, bg := highlight.Colors(t.String())
	if fg != "" {
		text = text.Foreground(lipgloss.Color(fg))
	}
	if bg != "" {
		text = text.Background(lipgloss.Color(bg))
	}

	return Styles{
		Palette: p,

		Toolbar: lipgloss.NewStyle().
			Background(p.BackgroundAlt),
		Button: lipgloss.NewStyle().
			Foreground(p.TextBright).
			Background(p.Primary).
			Bold(true).
			Padding(0, 1).
			MarginRight(1),
		ButtonDisabled: lipgloss.NewStyle().
			Foreground(p.TextDim).
			Background(p.BackgroundBright).
			Padding(0, 1).
			MarginRight(1),
		ThemeLabel: lipgloss.NewStyle().
			Foreground(p.Accent).
			Background(p.BackgroundAlt).
			Padding(0, 1),

		Text:   text,
		Cursor: text.Reverse(true),
		LineNumber: text.
			Foreground(p.TextDim),
		CurrentLineNumber: text.
			Foreground(p.TextBright).
			Bold(true),

		StatusBar: lipgloss.NewStyle().
			Foreground(p.Text).
			Background(p.BackgroundAlt).
			Padding(0, 1),
		StatusPath: lipgloss.NewStyle().
			Foreground(p.Text).
			Background(p.BackgroundAlt),
		StatusError: lipgloss.NewStyle().
			Foreground(p.Error).
			Background(p.BackgroundAlt).
			Bold(true),
		StatusDirty: lipgloss.NewStyle().
			Foreground(p.Warning).
			Background(p.BackgroundAlt).
			Bold(true),
		StatusDim: lipgloss.NewStyle().
			Foreground(p.TextDim).
			Background(p.BackgroundAlt),

		Dialog: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.BorderActive).
			Padding(1, 2),
		DialogTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Primary).
			MarginBottom(1),
		Selected: lipgloss.NewStyle().
			Foreground(p.TextBright).
			Background(p.Primary).
			Bold(true),
		HelpKey: lipgloss.NewStyle().
			Foreground(p.Accent).
			Bold(true),
		HelpDesc: lipgloss.NewStyle().
			Foreground(p.TextDim),
		Warning: lipgloss.NewStyle().
			Foreground(p.Warning).
			Bold(true),
	}
}
