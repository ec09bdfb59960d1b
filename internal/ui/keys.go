package ui

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines the application key bindings. Text editing keys are
// handled by the textedit widget and only listed here for help.
type KeyMap struct {
	// Document
	New  key.Binding
	Open key.Binding
	Save key.Binding
	Quit key.Binding

	// Clipboard
	Copy  key.Binding
	Cut   key.Binding
	Paste key.Binding

	// Overlays
	Theme       key.Binding
	Diff        key.Binding
	Preview     key.Binding
	Help        key.Binding
	CloseDialog key.Binding

	// Overlay navigation
	Up      key.Binding
	Down    key.Binding
	Confirm key.Binding
	Yes     key.Binding
	No      key.Binding

	// Editing, for help only
	Undo       key.Binding
	Redo       key.Binding
	DeleteLine key.Binding
	LineStart  key.Binding
	LineEnd    key.Binding
	WordMove   key.Binding
	DocBounds  key.Binding
}

// DefaultKeyMap returns the default keyboard bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		New: key.NewBinding(
			key.WithKeys("ctrl+n"),
			key.WithHelp("ctrl+n", "new document"),
		),
		Open: key.NewBinding(
			key.WithKeys("ctrl+o"),
			key.WithHelp("ctrl+o", "open a file"),
		),
		Save: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "save; asks for a file name when the document has none"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+q"),
			key.WithHelp("ctrl+q", "quit, confirming when there are unsaved changes"),
		),

		Copy: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "copy the current line"),
		),
		Cut: key.NewBinding(
			key.WithKeys("ctrl+x"),
			key.WithHelp("ctrl+x", "cut the current line"),
		),
		Paste: key.NewBinding(
			key.WithKeys("ctrl+v"),
			key.WithHelp("ctrl+v", "paste from the clipboard"),
		),

		Theme: key.NewBinding(
			key.WithKeys("ctrl+t"),
			key.WithHelp("ctrl+t", "choose a highlight theme"),
		),
		Diff: key.NewBinding(
			key.WithKeys("ctrl+d"),
			key.WithHelp("ctrl+d", "show changes since the last load or save"),
		),
		Preview: key.NewBinding(
			key.WithKeys("ctrl+p"),
			key.WithHelp("ctrl+p", "preview markdown"),
		),
		Help: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("f1", "help"),
		),
		CloseDialog: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close dialog"),
		),

		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "confirm"),
		),
		Yes: key.NewBinding(
			key.WithKeys("y", "Y"),
			key.WithHelp("y", "yes"),
		),
		No: key.NewBinding(
			key.WithKeys("n", "N", "esc"),
			key.WithHelp("n", "no"),
		),

		Undo: key.NewBinding(
			key.WithKeys("ctrl+z"),
			key.WithHelp("ctrl+z", "undo"),
		),
		Redo: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "redo"),
		),
		DeleteLine: key.NewBinding(
			key.WithKeys("ctrl+k"),
			key.WithHelp("ctrl+k", "delete the current line"),
		),
		LineStart: key.NewBinding(
			key.WithKeys("home", "ctrl+a"),
			key.WithHelp("home/ctrl+a", "start of line"),
		),
		LineEnd: key.NewBinding(
			key.WithKeys("end", "ctrl+e"),
			key.WithHelp("end/ctrl+e", "end of line"),
		),
		WordMove: key.NewBinding(
			key.WithKeys("ctrl+left", "ctrl+right"),
			key.WithHelp("ctrl+←/→", "previous / next word"),
		),
		DocBounds: key.NewBinding(
			key.WithKeys("ctrl+home", "ctrl+end"),
			key.WithHelp("ctrl+home/end", "start / end of document"),
		),
	}
}

// ShortHelp returns a quick help view for the key bindings
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Save, k.Open, k.Quit, k.Help}
}

// FullHelp returns the full help view for all key bindings
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.New, k.Open, k.Save, k.Quit},
		{k.Copy, k.Cut, k.Paste},
		{k.Undo, k.Redo, k.DeleteLine},
		{k.LineStart, k.LineEnd, k.WordMove, k.DocBounds},
		{k.Theme, k.Diff, k.Preview, k.Help, k.CloseDialog},
	}
}
