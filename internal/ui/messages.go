// Package ui provides the shared Bubble Tea pieces of the editor: key
// bindings, clipboard access and overlay messages.
package ui

import (
	"github.com/willibrandon/tedit/internal/ui/styles"
)

// Overlay messages. Overlays report the user's choice with these and the
// app turns them into document events.

// OpenChosenMsg carries the file picked in the in-terminal open dialog.
type OpenChosenMsg struct {
	Path string
}

// SaveChosenMsg carries the file name typed in the save prompt.
type SaveChosenMsg struct {
	Path string
}

// DialogCancelledMsg reports that the open picker or save prompt was
// dismissed.
type DialogCancelledMsg struct {
	Save bool // true for the save prompt
}

// ThemeChosenMsg carries the theme picked in the theme list.
type ThemeChosenMsg struct {
	Theme styles.Theme
}

// QuitConfirmedMsg is sent when the user confirms quitting.
type QuitConfirmedMsg struct{}

// CloseOverlayMsg asks the app to close the active overlay.
type CloseOverlayMsg struct{}

// PreviewRenderedMsg carries the rendered markdown preview.
type PreviewRenderedMsg struct {
	Content string
	Err     error
}
