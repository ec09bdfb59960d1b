package textedit

import tea "github.com/charmbracelet/bubbletea"

// ActionForKey translates a key press into an editing action. ok is false
// for keys the widget does not handle, which the caller may bind to
// application commands.
func ActionForKey(msg tea.KeyMsg) (a Action, ok bool) {
	switch msg.Type {
	case tea.KeyRunes:
		if msg.Alt {
			return Action{}, false
		}
		if msg.Paste || len(msg.Runes) > 1 {
			return Paste(string(msg.Runes)), true
		}
		if len(msg.Runes) == 1 {
			return Insert(msg.Runes[0]), true
		}
		return Action{}, false
	case tea.KeySpace:
		return Insert(' '), true
	case tea.KeyTab:
		return Insert('\t'), true
	case tea.KeyEnter:
		return Enter(), true
	case tea.KeyBackspace:
		return Backspace(), true
	case tea.KeyDelete:
		return Delete(), true
	case tea.KeyCtrlK:
		return DeleteLine(), true
	case tea.KeyCtrlZ:
		return Undo(), true
	case tea.KeyCtrlR:
		return Redo(), true

	case tea.KeyLeft:
		return Move(MotionLeft), true
	case tea.KeyRight:
		return Move(MotionRight), true
	case tea.KeyUp:
		return Move(MotionUp), true
	case tea.KeyDown:
		return Move(MotionDown), true
	case tea.KeyHome, tea.KeyCtrlA:
		return Move(MotionHome), true
	case tea.KeyEnd, tea.KeyCtrlE:
		return Move(MotionEnd), true
	case tea.KeyCtrlLeft:
		return Move(MotionWordLeft), true
	case tea.KeyCtrlRight:
		return Move(MotionWordRight), true
	case tea.KeyPgUp:
		return Move(MotionPageUp), true
	case tea.KeyPgDown:
		return Move(MotionPageDown), true
	case tea.KeyCtrlHome:
		return Move(MotionDocumentStart), true
	case tea.KeyCtrlEnd:
		return Move(MotionDocumentEnd), true
	}
	return Action{}, false
}
