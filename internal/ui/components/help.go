package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/mitchellh/go-wordwrap"

	"github.com/willibrandon/tedit/internal/ui"
	"github.com/willibrandon/tedit/internal/ui/styles"
)

// keyColumnWidth is the width of the key column in the help screen.
const keyColumnWidth = 16

var helpSections = []string{"Document", "Clipboard", "Editing", "Movement", "Views"}

// HelpText represents the help component
type HelpText struct {
	width  int
	height int
	keys   ui.KeyMap
	styles styles.Styles
}

// NewHelp creates a new help component
func NewHelp(keys ui.KeyMap) *HelpText {
	return &HelpText{keys: keys}
}

// SetSize sets the size of the help component
func (h *HelpText) SetSize(width, height int) {
	h.width = width
	h.height = height
}

// SetStyles sets the theme styles.
func (h *HelpText) SetStyles(st styles.Styles) {
	h.styles = st
}

// View renders the help screen
func (h *HelpText) View() string {
	var b strings.Builder

	b.WriteString(h.styles.DialogTitle.Render("Keyboard Shortcuts"))
	b.WriteString("\n")

	descWidth := uint(max(min(h.width-keyColumnWidth-10, 50), 20))
	for i, group := range h.keys.FullHelp() {
		if i > 0 {
			b.WriteString("\n")
		}
		if i < len(helpSections) {
			b.WriteString(h.styles.Warning.Render(helpSections[i]))
			b.WriteString("\n")
		}
		for _, binding := range group {
			b.WriteString(h.formatShortcut(binding, descWidth))
		}
	}
	b.WriteString("\n")
	b.WriteString(h.styles.HelpDesc.Render("Typing edits the text. Press F1 or Esc to close."))

	dialog := h.styles.Dialog.Render(b.String())

	if h.width > 0 {
		dialog = lipgloss.Place(
			h.width,
			h.height,
			lipgloss.Center,
			lipgloss.Center,
			dialog,
		)
	}

	return dialog
}

// formatShortcut formats a key binding with its description wrapped to
// width, continuation lines aligned under the description.
func (h *HelpText) formatShortcut(b key.Binding, width uint) string {
	keyStyle := h.styles.HelpKey.
		Width(keyColumnWidth).
		Align(lipgloss.Left)

	help := b.Help()
	lines := strings.Split(wordwrap.WrapString(help.Desc, width), "\n")

	var sb strings.Builder
	for i, l := range lines {
		k := ""
		if i == 0 {
			k = help.Key
		}
		sb.WriteString(keyStyle.Render(k))
		sb.WriteString(h.styles.HelpDesc.Render(l))
		sb.WriteString("\n")
	}
	return sb.String()
}

// ShortHelp returns a one-line, unstyled summary of the main bindings.
func (h *HelpText) ShortHelp() string {
	parts := make([]string, 0, 4)
	for _, b := range h.keys.ShortHelp() {
		word := strings.TrimRight(strings.Fields(b.Help().Desc)[0], ",;")
		parts = append(parts, b.Help().Key+" "+word)
	}
	return strings.Join(parts, " • ")
}
