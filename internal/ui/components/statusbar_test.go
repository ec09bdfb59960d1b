package components

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/willibrandon/tedit/internal/document"
	"github.com/willibrandon/tedit/internal/ui/styles"
)

func newTestStatusBar() *StatusBar {
	s := NewStatusBar()
	s.SetSize(100)
	s.SetStyles(styles.For(styles.DefaultTheme))
	return s
}

func TestStatusBar_LeftText(t *testing.T) {
	ioErr := &document.IOError{Op: "read", Path: "/x", Err: &fs.PathError{Op: "open", Path: "/x", Err: fs.ErrNotExist}}

	tests := []struct {
		name string
		path string
		err  error
		want string
	}{
		{"new file", "", nil, "new file"},
		{"path", "/tmp/a.txt", nil, "/tmp/a.txt"},
		{"io error", "/tmp/a.txt", ioErr, "open /x: file does not exist"},
		{"cancel is silent", "/tmp/a.txt", document.ErrDialogCancelled, "/tmp/a.txt"},
		{"cancel on new file", "", document.ErrDialogCancelled, "new file"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestStatusBar()
			s.SetDocument(tt.path, tt.err, false, 0, "Go")
			if got := s.LeftText(); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestStatusBar_PositionIsOneBased(t *testing.T) {
	s := newTestStatusBar()
	s.SetCursor(0, 0)
	if got := s.Position(); got != "1:1" {
		t.Errorf("expected 1:1, got %s", got)
	}
	s.SetCursor(9, 4)
	if got := s.Position(); got != "10:5" {
		t.Errorf("expected 10:5, got %s", got)
	}
}

func TestStatusBar_View(t *testing.T) {
	s := newTestStatusBar()
	s.SetDocument("/tmp/a.txt", nil, true, 2048, "Go")
	s.SetCursor(2, 3)

	view := ansi.Strip(s.View())

	for _, want := range []string{"/tmp/a.txt", "modified", "2.0 KiB", "Go", "3:4"} {
		if !strings.Contains(view, want) {
			t.Errorf("status bar should contain %q, got %q", want, view)
		}
	}
	if !strings.HasSuffix(strings.TrimRight(view, " "), "3:4") {
		t.Errorf("position should be right-aligned, got %q", view)
	}
	if w := ansi.StringWidth(view); w != 100 {
		t.Errorf("expected width 100, got %d", w)
	}
}

func TestStatusBar_TruncatesLongPathFromTheLeft(t *testing.T) {
	s := newTestStatusBar()
	s.SetSize(40)
	s.SetDocument("/very/long/directory/structure/that/goes/on/main.go", nil, false, 10, "Go")

	view := ansi.Strip(s.View())

	if !strings.Contains(view, "main.go") {
		t.Errorf("file name should survive truncation, got %q", view)
	}
	if !strings.Contains(view, "…") {
		t.Errorf("expected an ellipsis, got %q", view)
	}
	if w := ansi.StringWidth(view); w != 40 {
		t.Errorf("expected width 40, got %d", w)
	}
}
