// Package highlight provides chroma-based syntax highlighting for the editor
// pane.
package highlight

import (
	"path/filepath"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/lipgloss"
)

// Span is a run of text drawn with a single style.
type Span struct {
	Text  string
	Style lipgloss.Style
}

// Line is one highlighted source line.
type Line []Span

// GrammarFor returns the chroma lexer name for path, chosen by file name and
// extension. When path is empty or unrecognised the fallback grammar is
// used, and plain text if the fallback is unknown too.
func GrammarFor(path, fallback string) string {
	if path != "" {
		if l := lexers.Match(filepath.Base(path)); l != nil {
			return l.Config().Name
		}
	}
	if l := lexers.Get(fallback); l != nil {
		return l.Config().Name
	}
	return lexers.Fallback.Config().Name
}

// Colors returns the default foreground and background colours of a chroma
// style as "#rrggbb" strings; either may be empty.
func Colors(theme string) (fg, bg string) {
	entry := styles.Get(theme).Get(chroma.Background)
	if entry.Colour.IsSet() {
		fg = entry.Colour.String()
	}
	if entry.Background.IsSet() {
		bg = entry.Background.String()
	}
	return fg, bg
}

// Highlighter tokenises whole documents and caches the most recent result,
// since the editor re-renders far more often than the text changes.
type Highlighter struct {
	text, grammar, theme string
	lines                []Line
}

// New creates a Highlighter.
func New() *Highlighter {
	return &Highlighter{}
}

// Lines returns text split into highlighted lines. The result always has
// exactly one entry per "\n"-separated line of text.
func (h *Highlighter) Lines(text, grammar, theme string) []Line {
	if h.lines != nil && h.text == text && h.grammar == grammar && h.theme == theme {
		return h.lines
	}
	h.text, h.grammar, h.theme = text, grammar, theme
	h.lines = tokenise(text, grammar, theme)
	return h.lines
}

func tokenise(text, grammar, theme string) []Line {
	want := strings.Count(text, "\n") + 1

	lexer := lexers.Get(grammar)
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)
	style := styles.Get(theme)

	out := make([]Line, 1, want)
	// Line endings are left alone so rows stay aligned with the buffer,
	// which splits on "\n" only.
	it, err := lexer.Tokenise(&chroma.TokeniseOptions{State: "root"}, text)
	if err != nil {
		return plain(text)
	}
	for tok := it(); tok != chroma.EOF; tok = it() {
		st := toLipgloss(style.Get(tok.Type))
		parts := strings.Split(tok.Value, "\n")
		for i, part := range parts {
			if i > 0 {
				out = append(out, nil)
			}
			if part != "" {
				out[len(out)-1] = append(out[len(out)-1], Span{Text: part, Style: st})
			}
		}
	}

	// Some lexers append a trailing newline to the input.
	for len(out) < want {
		out = append(out, nil)
	}
	return out[:want]
}

func plain(text string) []Line {
	parts := strings.Split(text, "\n")
	out := make([]Line, len(parts))
	for i, p := range parts {
		if p != "" {
			out[i] = Line{{Text: p, Style: lipgloss.NewStyle()}}
		}
	}
	return out
}

func toLipgloss(e chroma.StyleEntry) lipgloss.Style {
	s := lipgloss.NewStyle()
	if e.Colour.IsSet() {
		s = s.Foreground(lipgloss.Color(e.Colour.String()))
	}
	if e.Bold == chroma.Yes {
		s = s.Bold(true)
	}
	if e.Italic == chroma.Yes {
		s = s.Italic(true)
	}
	if e.Underline == chroma.Yes {
		s = s.Underline(true)
	}
	return s
}
