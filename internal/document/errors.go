package document

import (
	"errors"
	"fmt"
)

// ErrDialogCancelled is returned when the user dismisses a file dialog
// without choosing a file.
var ErrDialogCancelled = errors.New("dialog cancelled")

// IOError is a failed read or write. Error renders the underlying OS error
// text unchanged.
type IOError struct {
	Op   string // "open", "read", "write"
	Path string
	Err  error
}

func (e *IOError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s %s: unknown error", e.Op, e.Path)
	}
	return e.Err.Error()
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// ErrorKind classifies a document error.
type ErrorKind int

const (
	KindNone ErrorKind = iota
	KindDialogCancelled
	KindIO
)

func (k ErrorKind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindDialogCancelled:
		return "dialog-cancelled"
	case KindIO:
		return "io"
	}
	return "unknown"
}

// Kind classifies err. Errors that are neither a cancellation nor an
// IOError are reported as KindIO, since any failure of a file task is an
// I/O failure from the user's point of view.
func Kind(err error) ErrorKind {
	if err == nil {
		return KindNone
	}
	if errors.Is(err, ErrDialogCancelled) {
		return KindDialogCancelled
	}
	return KindIO
}
