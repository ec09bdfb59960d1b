package components

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/willibrandon/tedit/internal/ui"
	"github.com/willibrandon/tedit/internal/ui/styles"
)

var userHomeDir = os.UserHomeDir

// SavePrompt is the in-terminal save-as dialog: a single file name input.
type SavePrompt struct {
	input         textinput.Model
	dir           string
	width, height int
	keys          ui.KeyMap
	styles        styles.Styles
}

// NewSavePrompt creates a prompt; relative names resolve against dir.
func NewSavePrompt(dir string, keys ui.KeyMap) *SavePrompt {
	ti := textinput.New()
	ti.Placeholder = "file name"
	ti.Prompt = "› "
	ti.CharLimit = 4096
	ti.Focus()
	return &SavePrompt{input: ti, dir: dir, keys: keys}
}

// Init starts the cursor blinking.
func (p *SavePrompt) Init() tea.Cmd {
	return textinput.Blink
}

// SetSize sets the area the prompt is centred in.
func (p *SavePrompt) SetSize(width, height int) {
	p.width = width
	p.height = height
	p.input.Width = max(min(width-12, 60), 10)
}

// SetStyles sets the theme styles.
func (p *SavePrompt) SetStyles(st styles.Styles) {
	p.styles = st
	p.input.PromptStyle = st.HelpKey
}

// Value returns the typed name.
func (p *SavePrompt) Value() string {
	return p.input.Value()
}

// Update handles typing. Enter with a non-blank name reports SaveChosenMsg
// with the resolved path; Esc reports DialogCancelledMsg.
func (p *SavePrompt) Update(msg tea.Msg) tea.Cmd {
	if km, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(km, p.keys.CloseDialog):
			return func() tea.Msg { return ui.DialogCancelledMsg{Save: true} }
		case key.Matches(km, p.keys.Confirm):
			path := p.resolve()
			if path == "" {
				return nil
			}
			return func() tea.Msg { return ui.SaveChosenMsg{Path: path} }
		}
	}

	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return cmd
}

func (p *SavePrompt) resolve() string {
	name := strings.TrimSpace(p.input.Value())
	if name == "" {
		return ""
	}
	if strings.HasPrefix(name, "~/") {
		// Expanded by hand; the shell is not involved.
		if home, err := userHomeDir(); err == nil {
			name = filepath.Join(home, name[2:])
		}
	}
	if !filepath.IsAbs(name) && p.dir != "" {
		name = filepath.Join(p.dir, name)
	}
	return filepath.Clean(name)
}

// View renders the dialog.
func (p *SavePrompt) View() string {
	content := lipgloss.JoinVertical(lipgloss.Left,
		p.styles.DialogTitle.Render("choose file name"),
		p.input.View(),
		"",
		p.styles.HelpDesc.Render("enter save • esc cancel"),
	)
	box := p.styles.Dialog.Render(content)
	if p.width > 0 {
		box = lipgloss.Place(p.width, p.height, lipgloss.Center, lipgloss.Center, box)
	}
	return box
}
