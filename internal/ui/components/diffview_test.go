package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/willibrandon/tedit/internal/ui/styles"
)

func TestLineDiff_NoChanges(t *testing.T) {
	if got := LineDiff("a\nb\n", "a\nb\n"); got != nil {
		t.Errorf("expected no diff, got %v", got)
	}
}

func TestLineDiff_ChangedLine(t *testing.T) {
	got := LineDiff("a\nb\nc\n", "a\nB\nc\n")
	want := []DiffLine{
		{DiffEqual, "a"},
		{DiffDelete, "b"},
		{DiffInsert, "B"},
		{DiffEqual, "c"},
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d lines, got %d: %v", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d: expected %v, got %v", i, want[i], got[i])
		}
	}
}

func TestLineDiff_CollapsesUnchangedRuns(t *testing.T) {
	var before []string
	for i := 0; i < 20; i++ {
		before = append(before, "same")
	}
	after := append([]string{}, before...)
	after[10] = "changed"

	got := LineDiff(strings.Join(before, "\n"), strings.Join(after, "\n"))

	if got[0].Op != DiffSkip || got[0].Text != "8" {
		t.Errorf("expected leading skip of 8 lines, got %v", got[0])
	}
	last := got[len(got)-1]
	if last.Op != DiffSkip || last.Text != "7" {
		t.Errorf("expected trailing skip of 7 lines, got %v", last)
	}

	var changes int
	for _, l := range got {
		if l.Op == DiffDelete || l.Op == DiffInsert {
			changes++
		}
	}
	if changes != 2 {
		t.Errorf("expected one deletion and one insertion, got %d changes", changes)
	}
}

func TestDiffView_Render(t *testing.T) {
	v := NewDiffView()
	v.SetStyles(styles.For(styles.DefaultTheme))
	v.SetSize(60, 20)

	v.SetContent("a.txt", "hello\n", "hello\nworld\n")
	view := ansi.Strip(v.View())

	if !strings.Contains(view, "Changes: a.txt") {
		t.Errorf("expected title, got %q", view)
	}
	if !strings.Contains(view, "+ world") {
		t.Errorf("expected inserted line, got %q", view)
	}

	v.SetContent("a.txt", "same", "same")
	if view := ansi.Strip(v.View()); !strings.Contains(view, "No changes") {
		t.Errorf("expected no-changes notice, got %q", view)
	}
}
