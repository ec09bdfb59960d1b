package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/willibrandon/tedit/internal/document"
	"github.com/willibrandon/tedit/internal/fileio"
	"github.com/willibrandon/tedit/internal/logger"
	"github.com/willibrandon/tedit/internal/ui"
)

// messageTimeout is how long transient status messages stay visible.
var messageTimeout = 3 * time.Second

// loadFile creates a command that reads path and reports FileOpened.
func loadFile(store *fileio.Store, path string) tea.Cmd {
	return func() tea.Msg {
		loaded, err := store.Load(path)
		if err != nil {
			return document.FileOpened{Err: err}
		}
		logger.Debug("app: file loaded", "path", loaded.Path, "bytes", len(loaded.Text))
		return document.FileOpened{Path: loaded.Path, Text: loaded.Text}
	}
}

// pickAndLoadFile creates a command that shows the open dialog, then reads
// the chosen file.
func pickAndLoadFile(store *fileio.Store, picker fileio.Picker) tea.Cmd {
	return func() tea.Msg {
		loaded, err := store.PickThenLoad(picker)
		if err != nil {
			return document.FileOpened{Err: err}
		}
		logger.Debug("app: file loaded", "path", loaded.Path, "bytes", len(loaded.Text))
		return document.FileOpened{Path: loaded.Path, Text: loaded.Text}
	}
}

// saveFile creates a command that writes text, asking picker for a path
// when path is empty, and reports FileSaved.
func saveFile(store *fileio.Store, picker fileio.Picker, path, text string) tea.Cmd {
	return func() tea.Msg {
		written, err := store.SaveBuffer(picker, path, text)
		if err != nil {
			return document.FileSaved{Err: err}
		}
		logger.Debug("app: file saved", "path", written, "bytes", len(text))
		return document.FileSaved{Path: written, Text: text}
	}
}

// copyToClipboard creates a command that writes text to the clipboard.
func copyToClipboard(cb *ui.Clipboard, what, text string) tea.Cmd {
	return func() tea.Msg {
		err := cb.Write(text)
		if err != nil {
			logger.Warn("app: clipboard write failed", "backend", cb.Backend(), "error", err)
		}
		return clipboardWrittenMsg{What: what, Err: err}
	}
}

// readClipboard creates a command that reads the clipboard for a paste.
func readClipboard(cb *ui.Clipboard) tea.Cmd {
	return func() tea.Msg {
		text, err := cb.Read()
		if err != nil {
			logger.Warn("app: clipboard read failed", "backend", cb.Backend(), "error", err)
		}
		return pasteMsg{Text: text, Err: err}
	}
}

// clearMessageAfter creates a command that expires transient message seq.
func clearMessageAfter(seq int) tea.Cmd {
	return tea.Tick(messageTimeout, func(time.Time) tea.Msg {
		return clearMessageMsg{Seq: seq}
	})
}
