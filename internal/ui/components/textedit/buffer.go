package textedit

import (
	"slices"
	"strings"
)

// maxHistory bounds the undo stack.
const maxHistory = 100

// buffer stores the document as lines of runes with an undo/redo history.
// The newline separators are implicit: Text joins lines with "\n", so a
// loaded document is reproduced byte-for-byte.
type buffer struct {
	lines     [][]rune
	undoStack []snapshot
	redoStack []snapshot
}

// snapshot is a copy of the buffer taken before an edit.
type snapshot struct {
	lines  [][]rune
	cursor Cursor
}

func newBuffer(content string) *buffer {
	parts := strings.Split(content, "\n")
	lines := make([][]rune, len(parts))
	for i, p := range parts {
		lines[i] = []rune(p)
	}
	return &buffer{lines: lines}
}

func (b *buffer) text() string {
	var sb strings.Builder
	for i, line := range b.lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(string(line))
	}
	return sb.String()
}

func (b *buffer) lineCount() int {
	return len(b.lines)
}

// line returns the runes of line idx, or nil when out of range.
func (b *buffer) line(idx int) []rune {
	if idx < 0 || idx >= len(b.lines) {
		return nil
	}
	return b.lines[idx]
}

func (b *buffer) lineLength(idx int) int {
	return len(b.line(idx))
}

// insert places text at pos and returns the position just after it.
func (b *buffer) insert(pos Cursor, text string) Cursor {
	pos = pos.clamp(b)
	line := b.lines[pos.Row]
	head := slices.Clone(line[:pos.Col])
	tail := slices.Clone(line[pos.Col:])

	parts := strings.Split(text, "\n")
	if len(parts) == 1 {
		ins := []rune(text)
		b.lines[pos.Row] = append(append(head, ins...), tail...)
		return Cursor{Row: pos.Row, Col: pos.Col + len(ins)}
	}

	first := append(head, []rune(parts[0])...)
	last := []rune(parts[len(parts)-1])
	end := Cursor{Row: pos.Row + len(parts) - 1, Col: len(last)}

	added := make([][]rune, 0, len(parts))
	added = append(added, first)
	for _, mid := range parts[1 : len(parts)-1] {
		added = append(added, []rune(mid))
	}
	added = append(added, append(last, tail...))

	b.lines = slices.Replace(b.lines, pos.Row, pos.Row+1, added...)
	return end
}

// deleteRange removes the text in [start, end) and returns it.
func (b *buffer) deleteRange(start, end Cursor) string {
	start, end = start.clamp(b), end.clamp(b)
	if end.Before(start) {
		start, end = end, start
	}
	removed := b.textRange(start, end)

	if start.Row == end.Row {
		b.lines[start.Row] = slices.Delete(b.lines[start.Row], start.Col, end.Col)
		return removed
	}

	joined := append(slices.Clone(b.lines[start.Row][:start.Col]), b.lines[end.Row][end.Col:]...)
	b.lines = slices.Replace(b.lines, start.Row, end.Row+1, joined)
	return removed
}

// textRange returns the text in [start, end).
func (b *buffer) textRange(start, end Cursor) string {
	if start.Row == end.Row {
		return string(b.lines[start.Row][start.Col:end.Col])
	}
	var sb strings.Builder
	sb.WriteString(string(b.lines[start.Row][start.Col:]))
	for row := start.Row + 1; row < end.Row; row++ {
		sb.WriteByte('\n')
		sb.WriteString(string(b.lines[row]))
	}
	sb.WriteByte('\n')
	sb.WriteString(string(b.lines[end.Row][:end.Col]))
	return sb.String()
}

func (b *buffer) copyLines() [][]rune {
	out := make([][]rune, len(b.lines))
	for i, l := range b.lines {
		out[i] = slices.Clone(l)
	}
	return out
}

// saveUndoState records the buffer before an edit and drops the redo stack.
func (b *buffer) saveUndoState(cursor Cursor) {
	b.undoStack = append(b.undoStack, snapshot{lines: b.copyLines(), cursor: cursor})
	b.redoStack = nil
	if len(b.undoStack) > maxHistory {
		b.undoStack = b.undoStack[len(b.undoStack)-maxHistory:]
	}
}

// undo restores the previous snapshot. ok is false when there is nothing to
// undo.
func (b *buffer) undo(cursor Cursor) (Cursor, bool) {
	if len(b.undoStack) == 0 {
		return cursor, false
	}
	last := b.undoStack[len(b.undoStack)-1]
	b.undoStack = b.undoStack[:len(b.undoStack)-1]
	b.redoStack = append(b.redoStack, snapshot{lines: b.lines, cursor: cursor})
	b.lines = last.lines
	return last.cursor, true
}

// redo reapplies the most recently undone snapshot.
func (b *buffer) redo(cursor Cursor) (Cursor, bool) {
	if len(b.redoStack) == 0 {
		return cursor, false
	}
	last := b.redoStack[len(b.redoStack)-1]
	b.redoStack = b.redoStack[:len(b.redoStack)-1]
	b.undoStack = append(b.undoStack, snapshot{lines: b.lines, cursor: cursor})
	b.lines = last.lines
	return last.cursor, true
}
