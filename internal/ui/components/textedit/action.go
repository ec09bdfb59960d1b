package textedit

import "fmt"

// Motion is a cursor movement.
type Motion int

const (
	MotionLeft Motion = iota
	MotionRight
	MotionUp
	MotionDown
	MotionHome
	MotionEnd
	MotionWordLeft
	MotionWordRight
	MotionPageUp
	MotionPageDown
	MotionDocumentStart
	MotionDocumentEnd
)

func (m Motion) String() string {
	return [...]string{
		"left", "right", "up", "down", "home", "end",
		"word-left", "word-right", "page-up", "page-down",
		"document-start", "document-end",
	}[m]
}

// ActionKind identifies what an Action does.
type ActionKind int

const (
	ActionMove ActionKind = iota
	ActionClick
	ActionInsert
	ActionPaste
	ActionEnter
	ActionBackspace
	ActionDelete
	ActionDeleteLine
	ActionUndo
	ActionRedo
)

// Action is a single operation on a Content.
type Action struct {
	Kind   ActionKind
	Motion Motion // ActionMove
	Rune   rune   // ActionInsert
	Text   string // ActionPaste
	Pos    Cursor // ActionClick, buffer coordinates
}

// Move returns a cursor movement action.
func Move(m Motion) Action { return Action{Kind: ActionMove, Motion: m} }

// Click returns an action that places the cursor at a buffer position.
func Click(row, col int) Action { return Action{Kind: ActionClick, Pos: Cursor{Row: row, Col: col}} }

// Insert returns an action that types r at the cursor.
func Insert(r rune) Action { return Action{Kind: ActionInsert, Rune: r} }

// Paste returns an action that inserts text at the cursor.
func Paste(text string) Action { return Action{Kind: ActionPaste, Text: text} }

// Enter splits the line at the cursor.
func Enter() Action { return Action{Kind: ActionEnter} }

// Backspace deletes the rune before the cursor.
func Backspace() Action { return Action{Kind: ActionBackspace} }

// Delete deletes the rune under the cursor.
func Delete() Action { return Action{Kind: ActionDelete} }

// DeleteLine removes the cursor line.
func DeleteLine() Action { return Action{Kind: ActionDeleteLine} }

// Undo reverts the last edit.
func Undo() Action { return Action{Kind: ActionUndo} }

// Redo reapplies the last undone edit.
func Redo() Action { return Action{Kind: ActionRedo} }

// IsEdit reports whether the action may change the text. Cursor moves and
// clicks never do.
func (a Action) IsEdit() bool {
	return a.Kind != ActionMove && a.Kind != ActionClick
}

func (a Action) String() string {
	switch a.Kind {
	case ActionMove:
		return "move " + a.Motion.String()
	case ActionClick:
		return fmt.Sprintf("click %d:%d", a.Pos.Row, a.Pos.Col)
	case ActionInsert:
		return fmt.Sprintf("insert %q", a.Rune)
	case ActionPaste:
		return fmt.Sprintf("paste %d bytes", len(a.Text))
	case ActionEnter:
		return "enter"
	case ActionBackspace:
		return "backspace"
	case ActionDelete:
		return "delete"
	case ActionDeleteLine:
		return "delete-line"
	case ActionUndo:
		return "undo"
	case ActionRedo:
		return "redo"
	}
	return "unknown"
}
