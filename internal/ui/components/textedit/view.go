package textedit

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/willibrandon/tedit/internal/ui/highlight"
)

// RenderOptions controls how Render draws the visible window.
type RenderOptions struct {
	LineNumbers bool
	ShowCursor  bool

	Text              lipgloss.Style // base style, carries the pane background
	Cursor            lipgloss.Style
	LineNumber        lipgloss.Style
	CurrentLineNumber lipgloss.Style
}

// GutterWidth returns the width of the line-number gutter for a document
// with lineCount lines, including the separating space.
func GutterWidth(lineCount int) int {
	return max(len(fmt.Sprint(lineCount)), 3) + 1
}

// visualColumn returns the screen column of rune index col in line.
func visualColumn(line []rune, col, tabWidth int) int {
	v := 0
	for i, r := range line {
		if i >= col {
			break
		}
		v += runeCells(r, v, tabWidth)
	}
	return v
}

// ColumnAt converts a screen column within row to a rune index.
func (c *Content) ColumnAt(row, screenCol int) int {
	line := c.buf.line(row)
	v := 0
	for i, r := range line {
		w := runeCells(r, v, c.tabWidth)
		if screenCol < v+w {
			return i
		}
		v += w
	}
	return len(line)
}

func runeCells(r rune, col, tabWidth int) int {
	if r == '\t' {
		return tabWidth - col%tabWidth
	}
	if w := runewidth.RuneWidth(r); w > 0 {
		return w
	}
	return 1
}

// Render draws the visible window of c. lines must hold one highlighted
// entry per buffer line; missing entries are drawn unstyled.
func Render(c *Content, lines []highlight.Line, opts RenderOptions) string {
	gutter := 0
	if opts.LineNumbers {
		gutter = GutterWidth(c.buf.lineCount())
	}

	rows := make([]string, 0, c.height)
	for i := 0; i < c.height; i++ {
		row := c.top + i
		var sb strings.Builder
		if opts.LineNumbers {
			sb.WriteString(renderLineNumber(row, c, gutter, opts))
		}
		if row < c.buf.lineCount() {
			var hl highlight.Line
			if row < len(lines) {
				hl = lines[row]
			} else {
				hl = highlight.Line{{Text: string(c.buf.line(row))}}
			}
			cursorCol := -1
			if opts.ShowCursor && row == c.cursor.Row {
				cursorCol = c.cursor.Col
			}
			sb.WriteString(c.renderLine(hl, cursorCol, opts))
		} else {
			sb.WriteString(opts.Text.Render(strings.Repeat(" ", c.width)))
		}
		rows = append(rows, sb.String())
	}
	return strings.Join(rows, "\n")
}

func renderLineNumber(row int, c *Content, gutter int, opts RenderOptions) string {
	if row >= c.buf.lineCount() {
		return opts.LineNumber.Render(strings.Repeat(" ", gutter))
	}
	label := fmt.Sprintf("%*d ", gutter-1, row+1)
	if row == c.cursor.Row {
		return opts.CurrentLineNumber.Render(label)
	}
	return opts.LineNumber.Render(label)
}

// lineWriter accumulates runs of equally styled cells. Runs are keyed by
// an integer since lipgloss styles are not comparable.
type lineWriter struct {
	sb    strings.Builder
	run   strings.Builder
	style lipgloss.Style
	key   int
	cells int
}

const (
	keyCursor = -1
	keyPad    = -2
)

func (w *lineWriter) flush() {
	if w.run.Len() > 0 {
		w.sb.WriteString(w.style.Render(w.run.String()))
		w.run.Reset()
	}
}

func (w *lineWriter) write(s string, cells int, style lipgloss.Style, key int) {
	if w.run.Len() > 0 && w.key != key {
		w.flush()
	}
	w.style, w.key = style, key
	w.run.WriteString(s)
	w.cells += cells
}

func (c *Content) renderLine(hl highlight.Line, cursorCol int, opts RenderOptions) string {
	var w lineWriter
	right := c.left + c.width
	v, idx := 0, 0

	for si, span := range hl {
		st := span.Style.Inherit(opts.Text)
		for _, r := range span.Text {
			cells := runeCells(r, v, c.tabWidth)
			style, key := st, si
			if idx == cursorCol {
				style, key = opts.Cursor, keyCursor
			}
			switch {
			case v+cells <= c.left || v >= right:
			case v < c.left || v+cells > right || r == '\t':
				// Clipped wide runes and tabs are drawn as blanks.
				from, to := max(v, c.left), min(v+cells, right)
				w.write(strings.Repeat(" ", to-from), to-from, style, key)
			case unicode.IsControl(r):
				w.write("·", 1, style, key)
			default:
				w.write(string(r), cells, style, key)
			}
			v += cells
			idx++
		}
	}

	if cursorCol >= idx && v >= c.left && v < right {
		w.write(" ", 1, opts.Cursor, keyCursor)
	}
	if pad := c.width - w.cells; pad > 0 {
		w.write(strings.Repeat(" ", pad), pad, opts.Text, keyPad)
	}
	w.flush()
	return w.sb.String()
}
