// Package app is the editor's Bubble Tea program: it feeds input and task
// results through the document dispatcher, runs the tasks it returns, and
// renders the toolbar, editor pane and status bar.
package app

import (
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/afero"

	"github.com/willibrandon/tedit/internal/config"
	"github.com/willibrandon/tedit/internal/document"
	"github.com/willibrandon/tedit/internal/fileio"
	"github.com/willibrandon/tedit/internal/logger"
	"github.com/willibrandon/tedit/internal/ui"
	"github.com/willibrandon/tedit/internal/ui/components"
	"github.com/willibrandon/tedit/internal/ui/components/textedit"
	"github.com/willibrandon/tedit/internal/ui/highlight"
	"github.com/willibrandon/tedit/internal/ui/styles"
)

// WindowTitle is the terminal title set at startup.
const WindowTitle = "TextEditor"

// overlay is the dialog currently covering the editor pane.
type overlay int

const (
	overlayNone overlay = iota
	overlayHelp
	overlayTheme
	overlayOpen
	overlaySave
	overlayDiff
	overlayPreview
	overlayQuit
)

// Options are the collaborators of the application model.
type Options struct {
	// InitialFile overrides editor.default_file.
	InitialFile string
	// Fs is the filesystem documents live on; nil means the OS filesystem.
	Fs afero.Fs
	// Picker shows file dialogs. When nil the in-terminal open picker and
	// save prompt are used.
	Picker fileio.Picker
	// Clipboard defaults to the system clipboard.
	Clipboard *ui.Clipboard
}

// Model represents the main Bubbletea application model
type Model struct {
	// Configuration
	config *config.Config

	// Document
	state       *document.State
	store       *fileio.Store
	picker      fileio.Picker
	initialFile string

	// UI state
	width  int
	height int
	ready  bool

	// Keyboard bindings
	keys ui.KeyMap

	// Rendering
	highlighter *highlight.Highlighter
	styles      styles.Styles
	stylesFor   styles.Theme

	// UI components
	toolbar   *components.Toolbar
	statusBar *components.StatusBar
	help      *components.HelpText

	// Overlays
	overlay     overlay
	themePicker *components.ThemePicker
	openPicker  *components.OpenPicker
	savePrompt  *components.SavePrompt
	diffView    *components.DiffView
	preview     *components.Preview
	confirm     *components.ConfirmDialog

	// Text waiting for a name in the save prompt
	pendingSave string

	clipboard  *ui.Clipboard
	messageSeq int
	quitting   bool
}

// New creates a new application model
func New(cfg *config.Config, opts Options) *Model {
	initial := opts.InitialFile
	if initial == "" {
		initial = cfg.Editor.DefaultFile
	}
	cb := opts.Clipboard
	if cb == nil {
		cb = ui.NewClipboard()
	}

	state := document.NewState(cfg.Theme())
	state.Buffer.SetTabWidth(cfg.Editor.TabWidth)

	keys := ui.DefaultKeyMap()
	m := &Model{
		config:      cfg,
		state:       state,
		store:       fileio.NewStore(opts.Fs),
		picker:      opts.Picker,
		initialFile: initial,
		keys:        keys,
		highlighter: highlight.New(),
		toolbar:     components.NewToolbar(),
		statusBar:   components.NewStatusBar(),
		help:        components.NewHelp(keys),
		clipboard:   cb,
	}
	m.sync()
	m.statusBar.SetMessage(m.help.ShortHelp())

	logger.Info("app: started",
		"file", initial,
		"theme", state.Theme.String(),
		"native_dialogs", opts.Picker != nil,
		"clipboard", cb.Backend(),
	)
	return m
}

// State returns the document state.
func (m Model) State() *document.State {
	return m.state
}

// Init sets the window title and starts loading the initial file.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{tea.SetWindowTitle(WindowTitle)}
	if m.initialFile != "" {
		cmds = append(cmds, m.dispatch(document.Load{Path: m.initialFile}))
	}
	return tea.Batch(cmds...)
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := m.update(msg)
	m.sync()
	return m, cmd
}

func (m *Model) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.resize()
		return nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case document.Event:
		return m.dispatch(msg)

	// Dialog results only count while their dialog is open; a second
	// Enter queued behind the first must not act on a closed prompt.
	case ui.OpenChosenMsg:
		if m.overlay != overlayOpen {
			return nil
		}
		m.closeOverlay()
		return m.dispatch(document.Load{Path: msg.Path})

	case ui.SaveChosenMsg:
		if m.overlay != overlaySave {
			return nil
		}
		m.closeOverlay()
		text := m.pendingSave
		m.pendingSave = ""
		return saveFile(m.store, m.picker, msg.Path, text)

	case ui.DialogCancelledMsg:
		want := overlayOpen
		if msg.Save {
			want = overlaySave
		}
		if m.overlay != want {
			return nil
		}
		m.closeOverlay()
		m.pendingSave = ""
		if msg.Save {
			return m.dispatch(document.FileSaved{Err: document.ErrDialogCancelled})
		}
		return m.dispatch(document.FileOpened{Err: document.ErrDialogCancelled})

	case ui.ThemeChosenMsg:
		if m.overlay != overlayTheme {
			return nil
		}
		m.closeOverlay()
		return m.dispatch(document.ThemeSelected{Theme: msg.Theme})

	case ui.CloseOverlayMsg:
		m.closeOverlay()
		return nil

	case ui.QuitConfirmedMsg:
		if m.overlay != overlayQuit {
			return nil
		}
		return m.quit()

	case ui.PreviewRenderedMsg:
		if m.overlay == overlayPreview {
			m.preview.SetRendered(msg)
		}
		return nil

	case pasteMsg:
		if msg.Text == "" {
			return nil
		}
		return m.dispatch(document.EditAction{Action: textedit.Paste(msg.Text)})

	case clipboardWrittenMsg:
		if msg.Err != nil {
			return m.flash(msg.What + " to editor only: " + msg.Err.Error())
		}
		return m.flash(msg.What + " line")

	case clearMessageMsg:
		if msg.Seq == m.messageSeq {
			m.statusBar.SetMessage("")
		}
		return nil
	}

	// Everything else belongs to the active overlay: directory listings,
	// cursor blinks and the like.
	return m.updateOverlay(msg)
}

// dispatch applies ev to the document and starts the task it returns.
func (m *Model) dispatch(ev document.Event) tea.Cmd {
	task := document.Update(m.state, ev)
	if task == nil {
		return nil
	}
	return m.runTask(task)
}

// runTask turns a document task into a command. Without a native picker,
// dialogs are shown as overlays and the command starts once the user has
// chosen.
func (m *Model) runTask(task document.Task) tea.Cmd {
	logger.Debug("app: task", "task", fmt.Sprintf("%T", task))

	switch t := task.(type) {
	case document.LoadTask:
		return loadFile(m.store, t.Path)

	case document.PickAndLoadTask:
		if m.picker != nil {
			return pickAndLoadFile(m.store, m.picker)
		}
		m.openPicker = components.NewOpenPicker(m.startDir(), m.keys)
		m.openOverlay(overlayOpen)
		return m.openPicker.Init()

	case document.SaveTask:
		if t.Path != "" || m.picker != nil {
			return saveFile(m.store, m.picker, t.Path, t.Text)
		}
		m.pendingSave = t.Text
		m.savePrompt = components.NewSavePrompt(m.startDir(), m.keys)
		m.openOverlay(overlaySave)
		return m.savePrompt.Init()
	}
	return nil
}

// startDir is where file dialogs begin: the current file's directory, or
// the configured start directory.
func (m *Model) startDir() string {
	if m.state.Path != "" {
		return filepath.Dir(fileio.Abs(m.state.Path))
	}
	return fileio.Abs(m.config.Dialogs.StartDir)
}

// handleKeyPress processes keyboard input
func (m *Model) handleKeyPress(msg tea.KeyMsg) tea.Cmd {
	if m.overlay != overlayNone {
		return m.updateOverlay(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		if m.state.IsDirty && m.state.HasUnsavedChanges() {
			m.confirm = components.NewConfirmDialog(m.state.Path, m.keys)
			m.openOverlay(overlayQuit)
			return nil
		}
		return m.quit()

	case key.Matches(msg, m.keys.New):
		return m.dispatch(document.New{})

	case key.Matches(msg, m.keys.Open):
		return m.dispatch(document.Open{})

	case key.Matches(msg, m.keys.Save):
		// Save is inert while there is nothing to save.
		if !m.state.IsDirty {
			return nil
		}
		return m.dispatch(document.Save{})

	case key.Matches(msg, m.keys.Theme):
		m.themePicker = components.NewThemePicker(m.state.Theme, m.keys)
		m.openOverlay(overlayTheme)
		return nil

	case key.Matches(msg, m.keys.Help):
		m.openOverlay(overlayHelp)
		return nil

	case key.Matches(msg, m.keys.Diff):
		m.diffView = components.NewDiffView()
		m.openOverlay(overlayDiff)
		m.diffView.SetContent(m.documentName(), m.state.Baseline, m.state.Text())
		return nil

	case key.Matches(msg, m.keys.Preview):
		if !components.IsMarkdown(m.state.Path) {
			return m.flash("preview needs a .md file")
		}
		m.preview = components.NewPreview()
		m.openOverlay(overlayPreview)
		return components.RenderPreviewCmd(m.preview.ContentWidth(), m.state.Theme.IsDark(), m.state.Text())

	case key.Matches(msg, m.keys.Copy):
		return copyToClipboard(m.clipboard, "copied", m.state.Buffer.CurrentLine()+"\n")

	case key.Matches(msg, m.keys.Cut):
		line := m.state.Buffer.CurrentLine() + "\n"
		return tea.Batch(
			m.dispatch(document.EditAction{Action: textedit.DeleteLine()}),
			copyToClipboard(m.clipboard, "cut", line),
		)

	case key.Matches(msg, m.keys.Paste):
		return readClipboard(m.clipboard)
	}

	if action, ok := textedit.ActionForKey(msg); ok {
		return m.dispatch(document.EditAction{Action: action})
	}
	return nil
}

// updateOverlay forwards msg to the active overlay.
func (m *Model) updateOverlay(msg tea.Msg) tea.Cmd {
	km, isKey := msg.(tea.KeyMsg)

	switch m.overlay {
	case overlayHelp:
		if isKey && (key.Matches(km, m.keys.Help) || key.Matches(km, m.keys.CloseDialog)) {
			m.closeOverlay()
		}
		return nil
	case overlayTheme:
		return m.themePicker.Update(msg)
	case overlayOpen:
		return m.openPicker.Update(msg)
	case overlaySave:
		return m.savePrompt.Update(msg)
	case overlayDiff:
		if isKey && (key.Matches(km, m.keys.CloseDialog) || key.Matches(km, m.keys.Diff)) {
			m.closeOverlay()
			return nil
		}
		return m.diffView.Update(msg)
	case overlayPreview:
		if isKey && (key.Matches(km, m.keys.CloseDialog) || key.Matches(km, m.keys.Preview)) {
			m.closeOverlay()
			return nil
		}
		return m.preview.Update(msg)
	case overlayQuit:
		return m.confirm.Update(msg)
	}
	return nil
}

func (m *Model) openOverlay(o overlay) {
	m.overlay = o
	m.resize()
}

func (m *Model) closeOverlay() {
	m.overlay = overlayNone
}

func (m *Model) quit() tea.Cmd {
	m.quitting = true
	return tea.Quit
}

// flash shows a transient status message.
func (m *Model) flash(text string) tea.Cmd {
	m.messageSeq++
	m.statusBar.SetMessage(text)
	return clearMessageAfter(m.messageSeq)
}

// paneHeight is the number of rows between the toolbar and the status bar.
func (m *Model) paneHeight() int {
	return max(m.height-2, 1)
}

// gutterWidth is the width of the line-number gutter, zero when disabled.
func (m *Model) gutterWidth() int {
	if !m.config.Editor.LineNumbers {
		return 0
	}
	return textedit.GutterWidth(m.state.Buffer.LineCount())
}

// resize propagates the window size to every component.
func (m *Model) resize() {
	if !m.ready {
		return
	}
	h := m.paneHeight()
	m.toolbar.SetSize(m.width)
	m.statusBar.SetSize(m.width)
	m.help.SetSize(m.width, h)
	if m.themePicker != nil {
		m.themePicker.SetSize(m.width, h)
	}
	if m.openPicker != nil {
		m.openPicker.SetSize(m.width, h)
	}
	if m.savePrompt != nil {
		m.savePrompt.SetSize(m.width, h)
	}
	if m.diffView != nil {
		m.diffView.SetSize(m.width, h)
	}
	if m.preview != nil {
		m.preview.SetSize(m.width, h)
	}
	if m.confirm != nil {
		m.confirm.SetSize(m.width, h)
	}
	m.syncStyles(true)
}

// sync pushes document state into the widgets after every update.
func (m *Model) sync() {
	m.syncStyles(false)

	if m.ready {
		m.state.Buffer.SetViewport(max(m.width-m.gutterWidth(), 1), m.paneHeight())
	}

	m.toolbar.SetState(m.state.IsDirty, m.state.Theme, m.styles)
	m.statusBar.SetDocument(
		m.state.Path,
		m.state.LastError,
		m.state.IsDirty,
		len(m.state.Text()),
		m.grammar(),
	)
	m.statusBar.SetCursor(m.state.Buffer.CursorPosition())
}

// syncStyles rebuilds the styles when the theme changed, and hands them to
// the components when they were rebuilt or force is set.
func (m *Model) syncStyles(force bool) {
	if m.stylesFor != m.state.Theme {
		m.styles = styles.For(m.state.Theme)
		m.stylesFor = m.state.Theme
		force = true
	}
	if !force {
		return
	}
	m.statusBar.SetStyles(m.styles)
	m.help.SetStyles(m.styles)
	if m.themePicker != nil {
		m.themePicker.SetStyles(m.styles)
	}
	if m.openPicker != nil {
		m.openPicker.SetStyles(m.styles)
	}
	if m.savePrompt != nil {
		m.savePrompt.SetStyles(m.styles)
	}
	if m.diffView != nil {
		m.diffView.SetStyles(m.styles)
	}
	if m.preview != nil {
		m.preview.SetStyles(m.styles)
	}
	if m.confirm != nil {
		m.confirm.SetStyles(m.styles)
	}
}

// grammar is the highlight grammar for the current path.
func (m *Model) grammar() string {
	return highlight.GrammarFor(m.state.Path, m.config.Editor.DefaultGrammar)
}

// documentName is the short name used in overlay titles.
func (m *Model) documentName() string {
	if m.state.Path == "" {
		return "new file"
	}
	return filepath.Base(m.state.Path)
}

// Cleanup performs cleanup operations before the application exits
func (m *Model) Cleanup() {
	logger.Info("app: exiting",
		"path", m.state.Path,
		"unsaved", m.state.IsDirty && m.state.HasUnsavedChanges(),
	)
}
