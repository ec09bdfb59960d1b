// Package dialog provides the operating system's file dialogs as a
// fileio.Picker.
package dialog

import (
	"errors"
	"fmt"

	"github.com/sqweek/dialog"

	"github.com/willibrandon/tedit/internal/document"
)

// Native shows the OS open and save dialogs.
type Native struct {
	// StartDir is the directory the dialogs open in. Empty means the
	// platform default.
	StartDir string
}

// NewNative returns a Native picker starting in dir.
func NewNative(dir string) *Native {
	return &Native{StartDir: dir}
}

// PickOpen asks for an existing file.
func (n *Native) PickOpen() (string, error) {
	path, err := n.builder("choose a file...").Load()
	return path, mapErr("open dialog", err)
}

// PickSave asks for a file name to save to.
func (n *Native) PickSave() (string, error) {
	path, err := n.builder("choose file name").Save()
	return path, mapErr("save dialog", err)
}

func (n *Native) builder(title string) *dialog.FileBuilder {
	b := dialog.File().Title(title)
	if n.StartDir != "" {
		b = b.SetStartDir(n.StartDir)
	}
	return b
}

func mapErr(what string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, dialog.ErrCancelled):
		return document.ErrDialogCancelled
	default:
		return fmt.Errorf("%s: %w", what, err)
	}
}
