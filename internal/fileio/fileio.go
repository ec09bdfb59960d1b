// Package fileio performs the editor's file operations: loading a document,
// asking the user for a file, and writing the buffer back.
//
// The functions block and are meant to run inside a tea.Cmd.
package fileio

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/spf13/afero"

	"github.com/willibrandon/tedit/internal/document"
)

// Picker asks the user for a file path. Both methods return
// document.ErrDialogCancelled when the user backs out.
type Picker interface {
	PickOpen() (string, error)
	PickSave() (string, error)
}

// Loaded is a successfully read document.
type Loaded struct {
	Path string
	Text string
}

// Store reads and writes documents on a filesystem.
type Store struct {
	fs afero.Fs
}

// NewStore returns a Store on fs. A nil fs means the OS filesystem.
func NewStore(fs afero.Fs) *Store {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &Store{fs: fs}
}

// Fs returns the underlying filesystem.
func (s *Store) Fs() afero.Fs {
	return s.fs
}

// Load reads path as text. The bytes are returned unchanged, so writing the
// text back reproduces the file exactly; files that are not valid UTF-8 are
// refused for the same reason.
func (s *Store) Load(path string) (Loaded, error) {
	data, err := afero.ReadFile(s.fs, path)
	if err != nil {
		return Loaded{}, &document.IOError{Op: "read", Path: path, Err: err}
	}
	if !utf8.Valid(data) {
		return Loaded{}, &document.IOError{
			Op:   "read",
			Path: path,
			Err:  fmt.Errorf("%s: %w", path, ErrNotText),
		}
	}
	return Loaded{Path: path, Text: string(data)}, nil
}

// ErrNotText is wrapped by Load for files that are not valid UTF-8.
var ErrNotText = errors.New("file is not valid UTF-8 text")

// PickThenLoad asks p for a file and loads it.
func (s *Store) PickThenLoad(p Picker) (Loaded, error) {
	path, err := p.PickOpen()
	if err != nil {
		return Loaded{}, err
	}
	if path == "" {
		return Loaded{}, document.ErrDialogCancelled
	}
	return s.Load(path)
}

// SaveBuffer writes text to path, asking p for a path first when path is
// empty. It returns the path written.
func (s *Store) SaveBuffer(p Picker, path, text string) (string, error) {
	if path == "" {
		picked, err := p.PickSave()
		if err != nil {
			return "", err
		}
		if picked == "" {
			return "", document.ErrDialogCancelled
		}
		path = picked
	}

	perm := os.FileMode(0o644)
	if info, err := s.fs.Stat(path); err == nil {
		perm = info.Mode().Perm()
	}
	if err := afero.WriteFile(s.fs, path, []byte(text), perm); err != nil {
		return "", &document.IOError{Op: "write", Path: path, Err: err}
	}
	return path, nil
}

// Abs resolves path against the working directory for display and dialogs.
// It returns path unchanged when it cannot be resolved.
func Abs(path string) string {
	if path == "" {
		return ""
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return abs
}
