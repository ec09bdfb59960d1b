package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/willibrandon/tedit/internal/logger"
	"github.com/willibrandon/tedit/internal/ui/components/textedit"
)

// View renders the application UI
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if !m.ready {
		return "Initializing..."
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.toolbar.View(),
		m.renderBody(),
		m.renderStatusBar(),
	)
}

// renderBody renders the active overlay, or the editor pane.
func (m Model) renderBody() string {
	switch m.overlay {
	case overlayHelp:
		return m.help.View()
	case overlayTheme:
		return m.themePicker.View()
	case overlayOpen:
		return m.openPicker.View()
	case overlaySave:
		return m.savePrompt.View()
	case overlayDiff:
		return m.diffView.View()
	case overlayPreview:
		return m.preview.View()
	case overlayQuit:
		return m.confirm.View()
	}
	return m.renderPane()
}

// renderPane renders the highlighted buffer.
func (m Model) renderPane() string {
	lines := m.highlighter.Lines(m.state.Text(), m.grammar(), m.state.Theme.String())
	return textedit.Render(m.state.Buffer, lines, textedit.RenderOptions{
		LineNumbers:       m.config.Editor.LineNumbers,
		ShowCursor:        true,
		Text:              m.styles.Text,
		Cursor:            m.styles.Cursor,
		LineNumber:        m.styles.LineNumber,
		CurrentLineNumber: m.styles.CurrentLineNumber,
	})
}

// renderStatusBar renders the status bar, with warning counters in debug
// mode.
func (m Model) renderStatusBar() string {
	if logger.IsDebugEnabled() {
		warn, errs := logger.GetCounts()
		if warn > 0 || errs > 0 {
			var parts []string
			if warn > 0 {
				parts = append(parts, fmt.Sprintf("⚠ %d", warn))
			}
			if errs > 0 {
				parts = append(parts, fmt.Sprintf("✕ %d", errs))
			}
			msg := strings.Join(parts, " ")
			if cur := m.statusBar.Message(); cur != "" {
				msg = cur + " │ " + msg
			}
			// Rendered from a copy so the counters never stick to the
			// transient message.
			sb := *m.statusBar
			sb.SetMessage(msg)
			return sb.View()
		}
	}
	return m.statusBar.View()
}
