package components

import (
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/willibrandon/tedit/internal/ui"
	"github.com/willibrandon/tedit/internal/ui/styles"
)

// IsMarkdown reports whether path names a markdown file.
func IsMarkdown(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown":
		return true
	}
	return false
}

// RenderMarkdown renders markdown for a terminal width. A fixed standard
// style is used so no terminal background query is made.
func RenderMarkdown(width int, dark bool, content string) (string, error) {
	style := "dark"
	if !dark {
		style = "light"
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", err
	}
	out, err := r.Render(content)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// RenderPreviewCmd renders content off the event loop.
func RenderPreviewCmd(width int, dark bool, content string) tea.Cmd {
	return func() tea.Msg {
		out, err := RenderMarkdown(width, dark, content)
		return ui.PreviewRenderedMsg{Content: out, Err: err}
	}
}

// Preview shows rendered markdown in a scrollable overlay.
type Preview struct {
	viewport      viewport.Model
	width, height int
	loading       bool
	styles        styles.Styles
}

// NewPreview creates a preview waiting for its content.
func NewPreview() *Preview {
	return &Preview{viewport: viewport.New(80, 20), loading: true}
}

// SetSize sets the overlay size.
func (p *Preview) SetSize(width, height int) {
	p.width = width
	p.height = height
	p.viewport.Width = max(width-6, 10)
	p.viewport.Height = max(height-6, 3)
}

// ContentWidth is the wrap width the markdown should be rendered at.
func (p *Preview) ContentWidth() int {
	return p.viewport.Width
}

// SetStyles sets the theme styles.
func (p *Preview) SetStyles(st styles.Styles) {
	p.styles = st
}

// SetRendered shows the result of RenderPreviewCmd.
func (p *Preview) SetRendered(msg ui.PreviewRenderedMsg) {
	p.loading = false
	if msg.Err != nil {
		p.viewport.SetContent(p.styles.StatusError.UnsetBackground().Render("preview failed: " + msg.Err.Error()))
		return
	}
	p.viewport.SetContent(msg.Content)
	p.viewport.GotoTop()
}

// Update scrolls the view.
func (p *Preview) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	p.viewport, cmd = p.viewport.Update(msg)
	return cmd
}

// View renders the overlay.
func (p *Preview) View() string {
	body := p.viewport.View()
	if p.loading {
		body = p.styles.HelpDesc.Render("rendering…")
	}
	content := lipgloss.JoinVertical(lipgloss.Left,
		p.styles.DialogTitle.Render("Preview"),
		body,
	)
	box := p.styles.Dialog.Padding(0, 1).Render(content)
	if p.width > 0 {
		box = lipgloss.Place(p.width, p.height, lipgloss.Center, lipgloss.Center, box)
	}
	return box
}
