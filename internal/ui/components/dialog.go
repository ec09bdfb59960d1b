package components

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/willibrandon/tedit/internal/ui"
	"github.com/willibrandon/tedit/internal/ui/styles"
)

// ConfirmDialog asks before discarding unsaved changes on quit.
type ConfirmDialog struct {
	width  int
	height int
	path   string
	keys   ui.KeyMap
	styles styles.Styles
}

// NewConfirmDialog creates a quit confirmation for the document at path.
func NewConfirmDialog(path string, keys ui.KeyMap) *ConfirmDialog {
	return &ConfirmDialog{path: path, keys: keys}
}

// SetSize sets the dialog dimensions.
func (d *ConfirmDialog) SetSize(width, height int) {
	d.width = width
	d.height = height
}

// SetStyles sets the theme styles.
func (d *ConfirmDialog) SetStyles(st styles.Styles) {
	d.styles = st
}

// Update handles y/n. Yes reports QuitConfirmedMsg; no or Esc reports
// CloseOverlayMsg.
func (d *ConfirmDialog) Update(msg tea.Msg) tea.Cmd {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch {
	case key.Matches(km, d.keys.Yes):
		return func() tea.Msg { return ui.QuitConfirmedMsg{} }
	case key.Matches(km, d.keys.No):
		return func() tea.Msg { return ui.CloseOverlayMsg{} }
	}
	return nil
}

// View renders the confirmation dialog.
func (d *ConfirmDialog) View() string {
	name := d.path
	if name == "" {
		name = "new file"
	}
	name = styles.TruncateLeft(name, 50)

	content := lipgloss.JoinVertical(
		lipgloss.Left,
		d.styles.DialogTitle.Render("Quit"),
		name+" has unsaved changes.",
		d.styles.Warning.MarginTop(1).Render("Quitting now discards them."),
		lipgloss.NewStyle().MarginTop(1).Bold(true).Render("[y] Quit  [n] Cancel"),
	)

	dialogStyle := d.styles.Dialog.
		BorderForeground(d.styles.Palette.Warning).
		Width(60)

	box := dialogStyle.Render(content)
	if d.width > 0 {
		box = lipgloss.Place(d.width, d.height, lipgloss.Center, lipgloss.Center, box)
	}
	return box
}
