// Package styles provides centralized styling for the editor UI.
package styles

import (
	"fmt"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/styles"
)

func init() {
	styles.Register(InkTheme)
	styles.Register(PaperTheme)
}

// Theme is a supported syntax highlighting theme. The value is the chroma
// style name.
type Theme string

const (
	SolarizedDark       Theme = "solarized-dark"
	SolarizedLight      Theme = "solarized-light"
	Monokai             Theme = "monokai"
	Dracula             Theme = "dracula"
	GitHub              Theme = "github"
	Nord                Theme = "nord"
	CatppuccinMacchiato Theme = "catppuccin-macchiato"
	Gruvbox             Theme = "gruvbox"
	Ink                 Theme = "ink"
	Paper               Theme = "paper"
)

// AllThemes lists the themes offered by the theme picker, in display order.
var AllThemes = []Theme{
	SolarizedDark,
	SolarizedLight,
	Monokai,
	Dracula,
	GitHub,
	Nord,
	CatppuccinMacchiato,
	Gruvbox,
	Ink,
	Paper,
}

// DefaultTheme is used when no theme is configured.
const DefaultTheme = SolarizedDark

var lightThemes = map[Theme]bool{
	SolarizedLight: true,
	GitHub:         true,
	Paper:          true,
}

// String returns the chroma style name.
func (t Theme) String() string {
	return string(t)
}

// IsDark reports whether the theme has a dark background. It decides which
// UI palette the chrome around the editor pane uses.
func (t Theme) IsDark() bool {
	return !lightThemes[t]
}

// Index returns the position of t in AllThemes, or -1.
func (t Theme) Index() int {
	for i, th := range AllThemes {
		if th == t {
			return i
		}
	}
	return -1
}

// ParseTheme validates a theme name.
func ParseTheme(name string) (Theme, error) {
	t := Theme(name)
	if t.Index() < 0 {
		return "", fmt.Errorf("unknown theme %q (valid: %v)", name, AllThemes)
	}
	return t, nil
}

// InkTheme is a dark house theme tuned for general source code.
var InkTheme = chroma.MustNewStyle("ink", chroma.StyleEntries{
	chroma.Background: "#eaeaea bg:#1a1a2e",
	chroma.Text:       "#eaeaea",
	chroma.Error:      "#ff5555 bold",

	chroma.Keyword:          "bold #50fa7b",
	chroma.KeywordConstant:  "#bd93f9",
	chroma.KeywordNamespace: "bold #50fa7b",
	chroma.KeywordType:      "#8be9fd",

	chroma.String:       "#f1fa8c",
	chroma.StringEscape: "#ffb86c",

	chroma.Number: "#bd93f9",

	chroma.NameFunction: "#ff79c6",
	chroma.NameBuiltin:  "#ff79c6",
	chroma.NameClass:    "#8be9fd",
	chroma.NameConstant: "#bd93f9",
	chroma.NameTag:      "#ff79c6",

	chroma.Operator:     "#8be9fd",
	chroma.OperatorWord: "bold #ff79c6",

	chroma.Comment:         "italic #6272a4",
	chroma.CommentPreproc:  "#ff79c6",
	chroma.Punctuation:     "#f8f8f2",
	chroma.GenericDeleted:  "#ff5555",
	chroma.GenericInserted: "#50fa7b",
	chroma.GenericHeading:  "bold #f8f8f2",
	chroma.GenericEmph:     "italic",
	chroma.GenericStrong:   "bold",
})

// PaperTheme is the light counterpart of InkTheme.
var PaperTheme = chroma.MustNewStyle("paper", chroma.StyleEntries{
	chroma.Background: "#383a42 bg:#fafafa",
	chroma.Text:       "#383a42",

	chroma.Keyword:          "bold #a626a4",
	chroma.KeywordConstant:  "#986801",
	chroma.KeywordNamespace: "bold #a626a4",
	chroma.KeywordType:      "#0184bc",

	chroma.String:       "#50a14f",
	chroma.StringEscape: "#986801",

	chroma.Number: "#986801",

	chroma.NameFunction: "#4078f2",
	chroma.NameBuiltin:  "#4078f2",
	chroma.NameTag:      "#e45649",

	chroma.Operator:     "#383a42",
	chroma.OperatorWord: "bold #a626a4",

	chroma.Comment:         "italic #a0a1a7",
	chroma.CommentPreproc:  "#a626a4",
	chroma.Punctuation:     "#383a42",
	chroma.GenericDeleted:  "#e45649",
	chroma.GenericInserted: "#50a14f",
})
