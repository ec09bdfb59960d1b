package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	dmp "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/willibrandon/tedit/internal/ui/styles"
)

// DiffOp is the kind of a diff line.
type DiffOp int

const (
	DiffEqual DiffOp = iota
	DiffDelete
	DiffInsert
	DiffSkip // elided unchanged lines
)

// DiffLine is one line of a unified diff.
type DiffLine struct {
	Op   DiffOp
	Text string
}

// diffContext is the number of unchanged lines kept around each change.
const diffContext = 2

// LineDiff compares before and after line by line. Long unchanged runs are
// collapsed into a single DiffSkip line whose Text is the number of lines
// hidden.
func LineDiff(before, after string) []DiffLine {
	if before == after {
		return nil
	}

	d := dmp.New()
	a, b, lines := d.DiffLinesToChars(before, after)
	diffs := d.DiffCharsToLines(d.DiffMain(a, b, false), lines)

	var out []DiffLine
	for _, df := range diffs {
		op := DiffEqual
		switch df.Type {
		case dmp.DiffDelete:
			op = DiffDelete
		case dmp.DiffInsert:
			op = DiffInsert
		}
		for _, l := range splitLines(df.Text) {
			out = append(out, DiffLine{Op: op, Text: l})
		}
	}
	return collapse(out)
}

// splitLines splits text into lines, dropping the empty piece after a
// trailing newline.
func splitLines(text string) []string {
	lines := strings.Split(text, "\n")
	if len(lines) > 1 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

func collapse(lines []DiffLine) []DiffLine {
	keep := make([]bool, len(lines))
	for i, l := range lines {
		if l.Op == DiffEqual {
			continue
		}
		for j := max(i-diffContext, 0); j <= min(i+diffContext, len(lines)-1); j++ {
			keep[j] = true
		}
	}

	var out []DiffLine
	skipped := 0
	for i, l := range lines {
		if keep[i] {
			if skipped > 0 {
				out = append(out, DiffLine{Op: DiffSkip, Text: fmt.Sprint(skipped)})
				skipped = 0
			}
			out = append(out, l)
			continue
		}
		skipped++
	}
	if skipped > 0 {
		out = append(out, DiffLine{Op: DiffSkip, Text: fmt.Sprint(skipped)})
	}
	return out
}

// DiffView shows the unsaved changes in a scrollable overlay.
type DiffView struct {
	viewport      viewport.Model
	width, height int
	title         string
	styles        styles.Styles
}

// NewDiffView creates an empty diff view.
func NewDiffView() *DiffView {
	return &DiffView{viewport: viewport.New(80, 20)}
}

// SetSize sets the overlay size.
func (v *DiffView) SetSize(width, height int) {
	v.width = width
	v.height = height
	// Border, padding and title.
	v.viewport.Width = max(width-6, 10)
	v.viewport.Height = max(height-6, 3)
}

// SetStyles sets the theme styles.
func (v *DiffView) SetStyles(st styles.Styles) {
	v.styles = st
}

// SetContent renders the diff of before and after into the view.
func (v *DiffView) SetContent(name, before, after string) {
	v.title = "Changes: " + name

	lines := LineDiff(before, after)
	if len(lines) == 0 {
		v.viewport.SetContent(v.styles.HelpDesc.Render("No changes"))
		v.viewport.GotoTop()
		return
	}

	p := v.styles.Palette
	del := lipgloss.NewStyle().Foreground(p.Error)
	ins := lipgloss.NewStyle().Foreground(p.Success)
	faint := lipgloss.NewStyle().Foreground(p.TextDim)

	var sb strings.Builder
	for i, l := range lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		text := strings.ReplaceAll(l.Text, "\t", "    ")
		switch l.Op {
		case DiffDelete:
			sb.WriteString(del.Render("- " + text))
		case DiffInsert:
			sb.WriteString(ins.Render("+ " + text))
		case DiffSkip:
			sb.WriteString(faint.Render(fmt.Sprintf("@@ %s unchanged lines @@", l.Text)))
		default:
			sb.WriteString(faint.Render("  " + text))
		}
	}
	v.viewport.SetContent(sb.String())
	v.viewport.GotoTop()
}

// Update scrolls the view.
func (v *DiffView) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	v.viewport, cmd = v.viewport.Update(msg)
	return cmd
}

// View renders the overlay.
func (v *DiffView) View() string {
	content := lipgloss.JoinVertical(lipgloss.Left,
		v.styles.DialogTitle.Render(v.title),
		v.viewport.View(),
	)
	box := v.styles.Dialog.Padding(0, 1).Render(content)
	if v.width > 0 {
		box = lipgloss.Place(v.width, v.height, lipgloss.Center, lipgloss.Center, box)
	}
	return box
}
