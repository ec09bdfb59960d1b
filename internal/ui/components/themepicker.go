package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/willibrandon/tedit/internal/ui"
	"github.com/willibrandon/tedit/internal/ui/styles"
)

// ThemePicker is the drop-down list of highlight themes.
type ThemePicker struct {
	width, height int
	selected      int
	keys          ui.KeyMap
	styles        styles.Styles
}

// NewThemePicker creates a picker with current preselected.
func NewThemePicker(current styles.Theme, keys ui.KeyMap) *ThemePicker {
	return &ThemePicker{selected: max(current.Index(), 0), keys: keys}
}

// SetSize sets the area the picker is centred in.
func (p *ThemePicker) SetSize(width, height int) {
	p.width = width
	p.height = height
}

// SetStyles sets the theme styles.
func (p *ThemePicker) SetStyles(st styles.Styles) {
	p.styles = st
}

// Selected returns the highlighted theme.
func (p *ThemePicker) Selected() styles.Theme {
	return styles.AllThemes[p.selected]
}

// Update handles navigation. Enter reports ThemeChosenMsg; Esc reports
// CloseOverlayMsg.
func (p *ThemePicker) Update(msg tea.Msg) tea.Cmd {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch {
	case key.Matches(km, p.keys.Up):
		p.selected = (p.selected - 1 + len(styles.AllThemes)) % len(styles.AllThemes)
	case key.Matches(km, p.keys.Down), km.Type == tea.KeyTab:
		p.selected = (p.selected + 1) % len(styles.AllThemes)
	case key.Matches(km, p.keys.Confirm):
		th := p.Selected()
		return func() tea.Msg { return ui.ThemeChosenMsg{Theme: th} }
	case key.Matches(km, p.keys.CloseDialog):
		return func() tea.Msg { return ui.CloseOverlayMsg{} }
	}
	return nil
}

// View renders the list.
func (p *ThemePicker) View() string {
	var b strings.Builder
	b.WriteString(p.styles.DialogTitle.Render("Theme"))
	b.WriteString("\n")
	for i, th := range styles.AllThemes {
		line := "  " + th.String()
		if i == p.selected {
			line = p.styles.Selected.Render("▸ " + th.String())
		}
		b.WriteString(line)
		if i < len(styles.AllThemes)-1 {
			b.WriteString("\n")
		}
	}
	b.WriteString("\n\n")
	b.WriteString(p.styles.HelpDesc.Render("↑/↓ choose • enter apply • esc close"))

	box := p.styles.Dialog.Render(b.String())
	if p.width > 0 {
		box = lipgloss.Place(p.width, p.height, lipgloss.Center, lipgloss.Center, box)
	}
	return box
}
