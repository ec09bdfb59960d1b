package highlight

import (
	"strings"
	"testing"

	"github.com/alecthomas/chroma/v2/lexers"
)

func TestGrammarFor(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		fallback string
		want     string
	}{
		{"by extension", "/src/main.go", "python", "Go"},
		{"by file name", "/src/Makefile", "go", "Base Makefile"},
		{"no path uses fallback", "", "go", "Go"},
		{"unknown extension uses fallback", "/src/notes.zzz", "python", "Python"},
		{"unknown fallback", "", "no-such-grammar", lexers.Fallback.Config().Name},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GrammarFor(tt.path, tt.fallback); got != tt.want {
				t.Errorf("GrammarFor(%q, %q) = %q, want %q", tt.path, tt.fallback, got, tt.want)
			}
		})
	}
}

func lineText(l Line) string {
	var sb strings.Builder
	for _, s := range l {
		sb.WriteString(s.Text)
	}
	return sb.String()
}

func TestLines_OneEntryPerLine(t *testing.T) {
	texts := []string{
		"",
		"package main",
		"package main\n",
		"package main\n\nfunc main() {\n\tprintln(\"hi\")\n}\n",
		"/* multi\nline\ncomment */ x := 1",
	}

	for _, text := range texts {
		lines := New().Lines(text, "Go", "monokai")
		want := strings.Split(text, "\n")
		if len(lines) != len(want) {
			t.Fatalf("%q: expected %d lines, got %d", text, len(want), len(lines))
		}
		for i := range want {
			if got := lineText(lines[i]); got != want[i] {
				t.Errorf("%q line %d: expected %q, got %q", text, i, want[i], got)
			}
		}
	}
}

func TestLines_Cached(t *testing.T) {
	h := New()
	first := h.Lines("x := 1", "Go", "nord")
	second := h.Lines("x := 1", "Go", "nord")
	if &first[0] != &second[0] {
		t.Error("expected the cached result for unchanged input")
	}

	third := h.Lines("x := 1", "Go", "dracula")
	if &first[0] == &third[0] {
		t.Error("expected a new result after the theme changed")
	}
}

func TestLines_UnknownGrammarIsPlain(t *testing.T) {
	lines := New().Lines("a\nb", "no-such-grammar", "nord")
	if len(lines) != 2 || lineText(lines[0]) != "a" || lineText(lines[1]) != "b" {
		t.Errorf("unexpected lines: %+v", lines)
	}
}

func TestColors(t *testing.T) {
	if _, bg := Colors("monokai"); bg == "" {
		t.Error("expected monokai to define a background")
	}
}

func TestLines_CarriageReturnStaysOnItsLine(t *testing.T) {
	texts := []string{
		"x\ry\nz",
		"a\r\nb\r\nc",
		"\r\n\r",
	}

	for _, text := range texts {
		lines := New().Lines(text, "Go", "monokai")
		want := strings.Split(text, "\n")
		if len(lines) != len(want) {
			t.Fatalf("%q: expected %d lines, got %d", text, len(want), len(lines))
		}
		for i := range want {
			if got := lineText(lines[i]); got != want[i] {
				t.Errorf("%q line %d: expected %q, got %q", text, i, want[i], got)
			}
		}
	}
}
