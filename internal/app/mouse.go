package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/willibrandon/tedit/internal/document"
	"github.com/willibrandon/tedit/internal/ui/components"
	"github.com/willibrandon/tedit/internal/ui/components/textedit"
)

// handleMouse processes mouse input. Row 0 is the toolbar, the rows below
// it are the editor pane.
func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if m.overlay != overlayNone {
		return m.updateOverlay(msg)
	}

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		return m.dispatch(document.EditAction{Action: textedit.Move(textedit.MotionUp)})
	case tea.MouseButtonWheelDown:
		return m.dispatch(document.EditAction{Action: textedit.Move(textedit.MotionDown)})
	case tea.MouseButtonLeft:
		if msg.Action != tea.MouseActionPress {
			return nil
		}
		if msg.Y == 0 {
			return m.clickToolbar(msg.X)
		}
		if msg.Y <= m.paneHeight() {
			return m.clickPane(msg.X, msg.Y-1)
		}
	}
	return nil
}

func (m *Model) clickToolbar(x int) tea.Cmd {
	switch m.toolbar.HitTest(x) {
	case components.ButtonNew:
		return m.dispatch(document.New{})
	case components.ButtonOpen:
		return m.dispatch(document.Open{})
	case components.ButtonSave:
		return m.dispatch(document.Save{})
	case components.ButtonTheme:
		m.themePicker = components.NewThemePicker(m.state.Theme, m.keys)
		m.openOverlay(overlayTheme)
	}
	return nil
}

// clickPane moves the cursor to the cell at screen column x of pane row y.
func (m *Model) clickPane(x, y int) tea.Cmd {
	buf := m.state.Buffer
	top, left := buf.Viewport()

	row := min(top+y, buf.LineCount()-1)
	col := 0
	if gutter := m.gutterWidth(); x >= gutter {
		col = buf.ColumnAt(row, x-gutter+left)
	}
	return m.dispatch(document.EditAction{Action: textedit.Click(row, col)})
}
