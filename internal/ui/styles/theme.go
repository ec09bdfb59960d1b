package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Palette is the set of colours used by the chrome around the editor pane.
type Palette struct {
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Accent    lipgloss.Color

	Success lipgloss.Color
	Warning lipgloss.Color
	Error   lipgloss.Color

	Text       lipgloss.Color
	TextDim    lipgloss.Color
	TextBright lipgloss.Color

	Background       lipgloss.Color
	BackgroundAlt    lipgloss.Color
	BackgroundBright lipgloss.Color

	Border       lipgloss.Color
	BorderActive lipgloss.Color
}

// DarkPalette is used with dark highlight themes.
var DarkPalette = Palette{
	Primary:   lipgloss.Color("#7D56F4"),
	Secondary: lipgloss.Color("#5F9EA0"),
	Accent:    lipgloss.Color("#FF69B4"),

	Success: lipgloss.Color("#04B575"),
	Warning: lipgloss.Color("#FFB86C"),
	Error:   lipgloss.Color("#FF5555"),

	Text:       lipgloss.Color("#FFFFFF"),
	TextDim:    lipgloss.Color("#6C7086"),
	TextBright: lipgloss.Color("#F8F8F2"),

	Background:       lipgloss.Color("#1E1E2E"),
	BackgroundAlt:    lipgloss.Color("#313244"),
	BackgroundBright: lipgloss.Color("#45475A"),

	Border:       lipgloss.Color("#6C7086"),
	BorderActive: lipgloss.Color("#7D56F4"),
}

// LightPalette is used with light highlight themes.
var LightPalette = Palette{
	Primary:   lipgloss.Color("#5B3CC4"),
	Secondary: lipgloss.Color("#2F6F73"),
	Accent:    lipgloss.Color("#C2185B"),

	Success: lipgloss.Color("#1B7F4B"),
	Warning: lipgloss.Color("#B35C00"),
	Error:   lipgloss.Color("#C62828"),

	Text:       lipgloss.Color("#24292F"),
	TextDim:    lipgloss.Color("#8C959F"),
	TextBright: lipgloss.Color("#000000"),

	Background:       lipgloss.Color("#FAFAFA"),
	BackgroundAlt:    lipgloss.Color("#E8E8EC"),
	BackgroundBright: lipgloss.Color("#D0D0D8"),

	Border:       lipgloss.Color("#A0A1A7"),
	BorderActive: lipgloss.Color("#5B3CC4"),
}

// PaletteFor returns the palette matching the brightness of t.
func PaletteFor(t Theme) Palette {
	if t.IsDark() {
		return DarkPalette
	}
	return LightPalette
}

// Truncate shortens text to maxWidth cells, ending in an ellipsis when cut.
// ANSI sequences in text are preserved.
func Truncate(text string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	return ansi.Truncate(text, maxWidth, "…")
}

// TruncateLeft keeps the rightmost maxWidth cells of text, which suits file
// paths where the name matters more than the directory.
func TruncateLeft(text string, maxWidth int) string {
	w := ansi.StringWidth(text)
	if maxWidth <= 0 {
		return ""
	}
	if w <= maxWidth {
		return text
	}
	return "…" + ansi.TruncateLeft(text, w-maxWidth+1, "")
}

// Center centers text within width.
func Center(text string, width int) string {
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, text)
}

// AlignRight right-aligns text within width.
func AlignRight(text string, width int) string {
	return lipgloss.PlaceHorizontal(width, lipgloss.Right, text)
}
