package textedit

// Cursor represents a position in the buffer.
type Cursor struct {
	Row int // Zero-based line index
	Col int // Zero-based rune index within the line
}

// Before reports whether c sorts before o.
func (c Cursor) Before(o Cursor) bool {
	return c.Row < o.Row || (c.Row == o.Row && c.Col < o.Col)
}

// clamp keeps the cursor inside the buffer. The column may sit one past the
// last rune so text can be appended.
func (c Cursor) clamp(b *buffer) Cursor {
	if c.Row < 0 {
		c.Row = 0
	}
	if c.Row >= b.lineCount() {
		c.Row = b.lineCount() - 1
	}
	if c.Col < 0 {
		c.Col = 0
	}
	if n := b.lineLength(c.Row); c.Col > n {
		c.Col = n
	}
	return c
}
