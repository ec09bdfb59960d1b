package components

import (
	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/willibrandon/tedit/internal/ui"
	"github.com/willibrandon/tedit/internal/ui/styles"
)

// OpenPicker is the in-terminal open dialog, used when native dialogs are
// disabled.
type OpenPicker struct {
	picker        filepicker.Model
	width, height int
	keys          ui.KeyMap
	styles        styles.Styles
}

// NewOpenPicker creates a picker browsing dir.
func NewOpenPicker(dir string, keys ui.KeyMap) *OpenPicker {
	fp := filepicker.New()
	fp.CurrentDirectory = dir
	fp.AutoHeight = false
	fp.ShowHidden = false
	fp.ShowPermissions = false
	fp.ShowSize = true
	fp.DirAllowed = false
	fp.FileAllowed = true
	return &OpenPicker{picker: fp, keys: keys}
}

// Init reads the starting directory.
func (o *OpenPicker) Init() tea.Cmd {
	return o.picker.Init()
}

// SetSize sets the area the picker is centred in.
func (o *OpenPicker) SetSize(width, height int) {
	o.width = width
	o.height = height
	// Border, padding, title and hint lines.
	o.picker.Height = max(height-10, 3)
}

// SetStyles sets the theme styles.
func (o *OpenPicker) SetStyles(st styles.Styles) {
	o.styles = st
	o.picker.Styles.Selected = st.Selected
	o.picker.Styles.Cursor = st.HelpKey
	o.picker.Styles.Directory = st.HelpKey.Bold(false)
}

// Update forwards msg to the file list. Picking a file reports
// OpenChosenMsg; Esc reports DialogCancelledMsg.
func (o *OpenPicker) Update(msg tea.Msg) tea.Cmd {
	if km, ok := msg.(tea.KeyMsg); ok && key.Matches(km, o.keys.CloseDialog) {
		return func() tea.Msg { return ui.DialogCancelledMsg{} }
	}

	var cmd tea.Cmd
	o.picker, cmd = o.picker.Update(msg)
	if ok, path := o.picker.DidSelectFile(msg); ok {
		return func() tea.Msg { return ui.OpenChosenMsg{Path: path} }
	}
	return cmd
}

// View renders the dialog.
func (o *OpenPicker) View() string {
	content := lipgloss.JoinVertical(lipgloss.Left,
		o.styles.DialogTitle.Render("choose a file..."),
		o.styles.HelpDesc.Render(styles.TruncateLeft(o.picker.CurrentDirectory, max(o.width-10, 10))),
		o.picker.View(),
		o.styles.HelpDesc.Render("enter open • ←/→ directory • esc cancel"),
	)
	box := o.styles.Dialog.Width(max(o.width-4, 20)).Render(content)
	if o.width > 0 {
		box = lipgloss.Place(o.width, o.height, lipgloss.Center, lipgloss.Center, box)
	}
	return box
}
