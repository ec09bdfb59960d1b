package textedit

import "unicode"

// defaultPageSize is used for page motions until SetViewport is called.
const defaultPageSize = 20

// Content is the editable document together with its cursor and scroll
// window.
type Content struct {
	buf        *buffer
	cursor     Cursor
	desiredCol int // column kept across vertical moves

	// Scroll window in buffer rows / visual columns.
	top, left     int
	width, height int
	tabWidth      int
}

// NewContent returns an empty document.
func NewContent() *Content {
	return WithText("")
}

// WithText returns a document holding text with the cursor at the start.
func WithText(text string) *Content {
	return &Content{
		buf:      newBuffer(text),
		height:   defaultPageSize,
		tabWidth: 4,
	}
}

// SetText replaces the document, dropping its history. The viewport size and
// tab width are kept.
func (c *Content) SetText(text string) {
	c.buf = newBuffer(text)
	c.cursor = Cursor{}
	c.desiredCol = 0
	c.top, c.left = 0, 0
}

// Text returns the full document.
func (c *Content) Text() string {
	return c.buf.text()
}

// LineCount returns the number of lines; an empty document has one.
func (c *Content) LineCount() int {
	return c.buf.lineCount()
}

// Line returns line idx without its newline.
func (c *Content) Line(idx int) string {
	return string(c.buf.line(idx))
}

// CurrentLine returns the line under the cursor.
func (c *Content) CurrentLine() string {
	return c.Line(c.cursor.Row)
}

// Cursor returns the cursor.
func (c *Content) Cursor() Cursor {
	return c.cursor
}

// CursorPosition returns the zero-based line and column of the cursor.
func (c *Content) CursorPosition() (line, column int) {
	return c.cursor.Row, c.cursor.Col
}

// CanUndo reports whether there is history to undo.
func (c *Content) CanUndo() bool {
	return len(c.buf.undoStack) > 0
}

// CanRedo reports whether there is history to redo.
func (c *Content) CanRedo() bool {
	return len(c.buf.redoStack) > 0
}

// SetTabWidth sets the number of columns a tab advances to.
func (c *Content) SetTabWidth(n int) {
	if n > 0 {
		c.tabWidth = n
	}
}

// SetViewport sets the size of the visible text area and scrolls so the
// cursor stays inside it.
func (c *Content) SetViewport(width, height int) {
	c.width = max(width, 1)
	c.height = max(height, 1)
	c.ensureCursorVisible()
}

// Viewport returns the first visible row and visual column.
func (c *Content) Viewport() (top, left int) {
	return c.top, c.left
}

// Perform applies a to the document.
func (c *Content) Perform(a Action) {
	switch a.Kind {
	case ActionMove:
		c.move(a.Motion)
	case ActionClick:
		c.cursor = a.Pos.clamp(c.buf)
		c.desiredCol = c.cursor.Col
	case ActionInsert:
		c.insert(string(a.Rune))
	case ActionPaste:
		if a.Text != "" {
			c.insert(a.Text)
		}
	case ActionEnter:
		c.insert("\n")
	case ActionBackspace:
		c.backspace()
	case ActionDelete:
		c.deleteForward()
	case ActionDeleteLine:
		c.deleteLine()
	case ActionUndo:
		if cur, ok := c.buf.undo(c.cursor); ok {
			c.cursor = cur.clamp(c.buf)
		}
	case ActionRedo:
		if cur, ok := c.buf.redo(c.cursor); ok {
			c.cursor = cur.clamp(c.buf)
		}
	}
	if a.Kind != ActionMove || (a.Motion != MotionUp && a.Motion != MotionDown &&
		a.Motion != MotionPageUp && a.Motion != MotionPageDown) {
		c.desiredCol = c.cursor.Col
	}
	c.ensureCursorVisible()
}

func (c *Content) insert(text string) {
	c.buf.saveUndoState(c.cursor)
	c.cursor = c.buf.insert(c.cursor, text)
}

func (c *Content) backspace() {
	if c.cursor.Row == 0 && c.cursor.Col == 0 {
		return
	}
	c.buf.saveUndoState(c.cursor)
	if c.cursor.Col > 0 {
		start := Cursor{Row: c.cursor.Row, Col: c.cursor.Col - 1}
		c.buf.deleteRange(start, c.cursor)
		c.cursor = start
		return
	}
	start := Cursor{Row: c.cursor.Row - 1, Col: c.buf.lineLength(c.cursor.Row - 1)}
	c.buf.deleteRange(start, c.cursor)
	c.cursor = start
}

func (c *Content) deleteForward() {
	last := c.buf.lineCount() - 1
	n := c.buf.lineLength(c.cursor.Row)
	if c.cursor.Row == last && c.cursor.Col >= n {
		return
	}
	c.buf.saveUndoState(c.cursor)
	end := Cursor{Row: c.cursor.Row, Col: c.cursor.Col + 1}
	if c.cursor.Col >= n {
		end = Cursor{Row: c.cursor.Row + 1, Col: 0}
	}
	c.buf.deleteRange(c.cursor, end)
}

func (c *Content) deleteLine() {
	c.buf.saveUndoState(c.cursor)
	row := c.cursor.Row
	switch {
	case c.buf.lineCount() == 1:
		c.buf.lines[0] = nil
	case row < c.buf.lineCount()-1:
		c.buf.deleteRange(Cursor{Row: row}, Cursor{Row: row + 1})
	default:
		c.buf.deleteRange(Cursor{Row: row - 1, Col: c.buf.lineLength(row - 1)}, Cursor{Row: row, Col: c.buf.lineLength(row)})
		row--
	}
	c.cursor = Cursor{Row: row, Col: 0}.clamp(c.buf)
}

func (c *Content) move(m Motion) {
	cur := c.cursor
	switch m {
	case MotionLeft:
		if cur.Col > 0 {
			cur.Col--
		} else if cur.Row > 0 {
			cur.Row--
			cur.Col = c.buf.lineLength(cur.Row)
		}
	case MotionRight:
		if cur.Col < c.buf.lineLength(cur.Row) {
			cur.Col++
		} else if cur.Row < c.buf.lineCount()-1 {
			cur.Row++
			cur.Col = 0
		}
	case MotionUp:
		cur.Row--
		cur.Col = c.desiredCol
	case MotionDown:
		cur.Row++
		cur.Col = c.desiredCol
	case MotionPageUp:
		cur.Row -= c.height
		cur.Col = c.desiredCol
	case MotionPageDown:
		cur.Row += c.height
		cur.Col = c.desiredCol
	case MotionHome:
		cur.Col = 0
	case MotionEnd:
		cur.Col = c.buf.lineLength(cur.Row)
	case MotionDocumentStart:
		cur = Cursor{}
	case MotionDocumentEnd:
		cur.Row = c.buf.lineCount() - 1
		cur.Col = c.buf.lineLength(cur.Row)
	case MotionWordLeft:
		cur = c.wordLeft(cur)
	case MotionWordRight:
		cur = c.wordRight(cur)
	}
	if cur.Row < 0 {
		cur = Cursor{}
	}
	if last := c.buf.lineCount() - 1; cur.Row > last {
		cur = Cursor{Row: last, Col: c.buf.lineLength(last)}
	}
	c.cursor = cur.clamp(c.buf)
}

func (c *Content) wordLeft(cur Cursor) Cursor {
	if cur.Col == 0 {
		if cur.Row == 0 {
			return cur
		}
		return Cursor{Row: cur.Row - 1, Col: c.buf.lineLength(cur.Row - 1)}
	}
	line := c.buf.line(cur.Row)
	i := cur.Col - 1
	for i > 0 && !isWordRune(line[i]) {
		i--
	}
	for i > 0 && isWordRune(line[i-1]) {
		i--
	}
	return Cursor{Row: cur.Row, Col: i}
}

func (c *Content) wordRight(cur Cursor) Cursor {
	line := c.buf.line(cur.Row)
	if cur.Col >= len(line) {
		if cur.Row >= c.buf.lineCount()-1 {
			return cur
		}
		return Cursor{Row: cur.Row + 1}
	}
	i := cur.Col
	for i < len(line) && isWordRune(line[i]) {
		i++
	}
	for i < len(line) && !isWordRune(line[i]) {
		i++
	}
	return Cursor{Row: cur.Row, Col: i}
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// ensureCursorVisible scrolls the window so the cursor is inside it.
func (c *Content) ensureCursorVisible() {
	if c.cursor.Row < c.top {
		c.top = c.cursor.Row
	} else if c.cursor.Row >= c.top+c.height {
		c.top = c.cursor.Row - c.height + 1
	}
	if c.top < 0 {
		c.top = 0
	}

	if c.width <= 0 {
		return
	}
	col := visualColumn(c.buf.line(c.cursor.Row), c.cursor.Col, c.tabWidth)
	if col < c.left {
		c.left = col
	} else if col >= c.left+c.width {
		c.left = col - c.width + 1
	}
}
