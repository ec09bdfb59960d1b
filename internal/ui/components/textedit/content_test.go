package textedit

import (
	"testing"
)

func TestWithText_RoundTrip(t *testing.T) {
	inputs := []string{
		"",
		"hello",
		"hello\n",
		"a\nb\nc",
		"windows\r\nline endings\r\n",
		"tabs\tand ünïcödé 世界\n\n",
	}
	for _, in := range inputs {
		c := WithText(in)
		if got := c.Text(); got != in {
			t.Errorf("round trip of %q produced %q", in, got)
		}
	}
}

func TestContent_InsertAtEnd(t *testing.T) {
	c := WithText("hello")
	c.Perform(Move(MotionDocumentEnd))
	c.Perform(Insert('x'))

	if got := c.Text(); got != "hellox" {
		t.Errorf("expected %q, got %q", "hellox", got)
	}
	line, col := c.CursorPosition()
	if line != 0 || col != 6 {
		t.Errorf("expected cursor 0:6, got %d:%d", line, col)
	}
}

func TestContent_EnterSplitsLine(t *testing.T) {
	c := WithText("foobar")
	c.Perform(Click(0, 3))
	c.Perform(Enter())

	if got := c.Text(); got != "foo\nbar" {
		t.Errorf("expected split line, got %q", got)
	}
	if cur := c.Cursor(); cur != (Cursor{Row: 1, Col: 0}) {
		t.Errorf("expected cursor at start of second line, got %+v", cur)
	}
}

func TestContent_BackspaceJoinsLines(t *testing.T) {
	c := WithText("foo\nbar")
	c.Perform(Click(1, 0))
	c.Perform(Backspace())

	if got := c.Text(); got != "foobar" {
		t.Errorf("expected joined line, got %q", got)
	}
	if cur := c.Cursor(); cur != (Cursor{Row: 0, Col: 3}) {
		t.Errorf("expected cursor 0:3, got %+v", cur)
	}
}

func TestContent_BackspaceAtStartIsNoop(t *testing.T) {
	c := WithText("abc")
	c.Perform(Backspace())
	if got := c.Text(); got != "abc" {
		t.Errorf("expected unchanged text, got %q", got)
	}
	if c.CanUndo() {
		t.Error("no-op backspace should not record history")
	}
}

func TestContent_DeleteForward(t *testing.T) {
	c := WithText("ab\ncd")
	c.Perform(Delete())
	if got := c.Text(); got != "b\ncd" {
		t.Errorf("expected %q, got %q", "b\ncd", got)
	}

	c.Perform(Move(MotionEnd))
	c.Perform(Delete())
	if got := c.Text(); got != "bcd" {
		t.Errorf("delete at end of line should join, got %q", got)
	}

	c.Perform(Move(MotionDocumentEnd))
	c.Perform(Delete())
	if got := c.Text(); got != "bcd" {
		t.Errorf("delete at end of document should be a no-op, got %q", got)
	}
}

func TestContent_DeleteLine(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		row    int
		want   string
		cursor Cursor
	}{
		{"first line", "a\nb\nc", 0, "b\nc", Cursor{Row: 0}},
		{"middle line", "a\nb\nc", 1, "a\nc", Cursor{Row: 1}},
		{"last line", "a\nb\nc", 2, "a\nb", Cursor{Row: 1}},
		{"only line", "abc", 0, "", Cursor{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := WithText(tt.text)
			c.Perform(Click(tt.row, 0))
			c.Perform(DeleteLine())
			if got := c.Text(); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
			if c.Cursor() != tt.cursor {
				t.Errorf("expected cursor %+v, got %+v", tt.cursor, c.Cursor())
			}
		})
	}
}

func TestContent_PasteMultiline(t *testing.T) {
	c := WithText("start end")
	c.Perform(Click(0, 6))
	c.Perform(Paste("one\ntwo\n"))

	if got := c.Text(); got != "start one\ntwo\nend" {
		t.Errorf("unexpected paste result %q", got)
	}
	if cur := c.Cursor(); cur != (Cursor{Row: 2, Col: 0}) {
		t.Errorf("expected cursor after pasted text, got %+v", cur)
	}
}

func TestContent_UndoRedo(t *testing.T) {
	c := WithText("abc")
	c.Perform(Move(MotionEnd))
	c.Perform(Insert('d'))
	c.Perform(Insert('e'))

	c.Perform(Undo())
	if got := c.Text(); got != "abcd" {
		t.Errorf("after undo expected %q, got %q", "abcd", got)
	}
	c.Perform(Undo())
	if got := c.Text(); got != "abc" {
		t.Errorf("after second undo expected %q, got %q", "abc", got)
	}
	if !c.CanRedo() {
		t.Fatal("expected redo history")
	}
	c.Perform(Redo())
	if got := c.Text(); got != "abcd" {
		t.Errorf("after redo expected %q, got %q", "abcd", got)
	}

	// A new edit drops the redo history.
	c.Perform(Insert('z'))
	if c.CanRedo() {
		t.Error("expected redo history to be cleared by a new edit")
	}
}

func TestContent_HistoryIsBounded(t *testing.T) {
	c := NewContent()
	for range maxHistory + 20 {
		c.Perform(Insert('x'))
	}
	if n := len(c.buf.undoStack); n != maxHistory {
		t.Errorf("expected %d undo entries, got %d", maxHistory, n)
	}
}

func TestContent_VerticalMovesKeepColumn(t *testing.T) {
	c := WithText("long line here\nab\nanother long line")
	c.Perform(Click(0, 10))
	c.Perform(Move(MotionDown))
	if cur := c.Cursor(); cur != (Cursor{Row: 1, Col: 2}) {
		t.Errorf("expected clamped column on short line, got %+v", cur)
	}
	c.Perform(Move(MotionDown))
	if cur := c.Cursor(); cur != (Cursor{Row: 2, Col: 10}) {
		t.Errorf("expected desired column restored, got %+v", cur)
	}
}

func TestContent_MotionsStayInBounds(t *testing.T) {
	c := WithText("one\ntwo")
	c.Perform(Move(MotionUp))
	if cur := c.Cursor(); cur != (Cursor{}) {
		t.Errorf("moving up from first line should go to origin, got %+v", cur)
	}
	c.Perform(Move(MotionLeft))
	if cur := c.Cursor(); cur != (Cursor{}) {
		t.Errorf("moving left at origin should stay, got %+v", cur)
	}
	c.Perform(Move(MotionPageDown))
	if cur := c.Cursor(); cur != (Cursor{Row: 1, Col: 3}) {
		t.Errorf("page down past end should land on document end, got %+v", cur)
	}
	c.Perform(Move(MotionRight))
	if cur := c.Cursor(); cur != (Cursor{Row: 1, Col: 3}) {
		t.Errorf("moving right at document end should stay, got %+v", cur)
	}
}

func TestContent_WordMotions(t *testing.T) {
	c := WithText("foo_bar, baz(qux)")

	c.Perform(Move(MotionWordRight))
	if col := c.Cursor().Col; col != 9 {
		t.Errorf("word right expected col 9, got %d", col)
	}
	c.Perform(Move(MotionWordRight))
	if col := c.Cursor().Col; col != 13 {
		t.Errorf("word right expected col 13, got %d", col)
	}
	c.Perform(Move(MotionWordLeft))
	if col := c.Cursor().Col; col != 9 {
		t.Errorf("word left expected col 9, got %d", col)
	}
	c.Perform(Move(MotionWordLeft))
	if col := c.Cursor().Col; col != 0 {
		t.Errorf("word left expected col 0, got %d", col)
	}
}

func TestContent_ScrollFollowsCursor(t *testing.T) {
	c := WithText("0\n1\n2\n3\n4\n5\n6\n7\n8\n9")
	c.SetViewport(10, 3)

	c.Perform(Click(5, 0))
	if top, _ := c.Viewport(); top != 3 {
		t.Errorf("expected top row 3, got %d", top)
	}
	c.Perform(Move(MotionDocumentStart))
	if top, _ := c.Viewport(); top != 0 {
		t.Errorf("expected top row 0, got %d", top)
	}
}

func TestContent_HorizontalScroll(t *testing.T) {
	c := WithText("abcdefghijklmnopqrstuvwxyz")
	c.SetViewport(5, 1)
	c.Perform(Move(MotionEnd))
	if _, left := c.Viewport(); left != 22 {
		t.Errorf("expected left column 22, got %d", left)
	}
}

func TestAction_IsEdit(t *testing.T) {
	tests := []struct {
		action Action
		edit   bool
	}{
		{Move(MotionLeft), false},
		{Move(MotionDocumentEnd), false},
		{Click(1, 1), false},
		{Insert('a'), true},
		{Paste("x"), true},
		{Enter(), true},
		{Backspace(), true},
		{Delete(), true},
		{DeleteLine(), true},
		{Undo(), true},
		{Redo(), true},
	}
	for _, tt := range tests {
		t.Run(tt.action.String(), func(t *testing.T) {
			if got := tt.action.IsEdit(); got != tt.edit {
				t.Errorf("IsEdit() = %v, want %v", got, tt.edit)
			}
		})
	}
}

func TestContent_SetTextResetsHistoryAndCursor(t *testing.T) {
	c := WithText("one")
	c.SetViewport(10, 5)
	c.Perform(Move(MotionEnd))
	c.Perform(Insert('!'))

	c.SetText("two\nthree")
	if got := c.Text(); got != "two\nthree" {
		t.Errorf("expected replaced text, got %q", got)
	}
	if c.Cursor() != (Cursor{}) {
		t.Errorf("expected cursor at origin, got %+v", c.Cursor())
	}
	if c.CanUndo() {
		t.Error("expected history to be cleared")
	}
}
