package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/willibrandon/tedit/internal/ui/styles"
)

func newTestToolbar(saveEnabled bool) *Toolbar {
	tb := NewToolbar()
	tb.SetSize(80)
	tb.SetState(saveEnabled, styles.Monokai, styles.For(styles.Monokai))
	return tb
}

func TestToolbar_View(t *testing.T) {
	tb := newTestToolbar(true)

	view := ansi.Strip(tb.View())

	for _, want := range []string{"New", "Open", "Save", "Theme: monokai"} {
		if !strings.Contains(view, want) {
			t.Errorf("toolbar should contain %q, got: %q", want, view)
		}
	}
	if w := ansi.StringWidth(view); w != 80 {
		t.Errorf("expected toolbar width 80, got %d", w)
	}
}

func TestToolbar_HitTest(t *testing.T) {
	tb := newTestToolbar(true)
	view := ansi.Strip(tb.View())

	tests := []struct {
		label string
		want  Button
	}{
		{"New", ButtonNew},
		{"Open", ButtonOpen},
		{"Save", ButtonSave},
		{"monokai", ButtonTheme},
	}
	for _, tt := range tests {
		x := strings.Index(view, tt.label)
		if x < 0 {
			t.Fatalf("label %q not rendered", tt.label)
		}
		if got := tb.HitTest(x); got != tt.want {
			t.Errorf("HitTest(%d) on %q = %v, want %v", x, tt.label, got, tt.want)
		}
	}

	// The gap between the buttons and the label is inert.
	if got := tb.HitTest(40); got != ButtonNone {
		t.Errorf("expected no button in the gap, got %v", got)
	}
}

func TestToolbar_DisabledSaveIsInert(t *testing.T) {
	tb := newTestToolbar(false)
	view := ansi.Strip(tb.View())

	x := strings.Index(view, "Save")
	if got := tb.HitTest(x); got != ButtonNone {
		t.Errorf("disabled Save should not be clickable, got %v", got)
	}
	if tb.SaveEnabled() {
		t.Error("expected SaveEnabled to be false")
	}
}

func TestToolbar_NarrowDropsLabel(t *testing.T) {
	tb := newTestToolbar(true)
	tb.SetSize(20)

	view := ansi.Strip(tb.View())
	if strings.Contains(view, "Theme") {
		t.Errorf("narrow toolbar should drop the theme label, got %q", view)
	}
	if got := tb.HitTest(19); got == ButtonTheme {
		t.Error("theme label should not be clickable when hidden")
	}
}
