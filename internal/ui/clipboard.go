package ui

import (
	"sync"

	atotto "github.com/atotto/clipboard"
	"golang.design/x/clipboard"
)

// clipboardBackend is a source and sink of clipboard text.
type clipboardBackend interface {
	name() string
	read() (string, error)
	write(text string) error
}

// Clipboard provides clipboard access with graceful degradation: the native
// clipboard when it initialises, then the platform clipboard tools, and
// finally a register local to this process so copy and paste still work
// inside the editor.
type Clipboard struct {
	mu       sync.Mutex
	backend  clipboardBackend
	register string
}

var (
	nativeOnce sync.Once
	nativeErr  error
)

// NewClipboard picks the best available backend.
func NewClipboard() *Clipboard {
	nativeOnce.Do(func() { nativeErr = clipboard.Init() })
	switch {
	case nativeErr == nil:
		return &Clipboard{backend: nativeClipboard{}}
	case !atotto.Unsupported:
		return &Clipboard{backend: toolClipboard{}}
	default:
		return &Clipboard{}
	}
}

// Backend names the clipboard in use, for logging.
func (c *Clipboard) Backend() string {
	if c.backend == nil {
		return "register"
	}
	return c.backend.name()
}

// Write stores text. The local register is always updated, so a failing
// system clipboard never loses the copy.
func (c *Clipboard) Write(text string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.register = text
	if c.backend == nil {
		return nil
	}
	return c.backend.write(text)
}

// Read returns the clipboard text, falling back to the local register when
// the system clipboard is empty or unreadable.
func (c *Clipboard) Read() (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.backend == nil {
		return c.register, nil
	}
	text, err := c.backend.read()
	if err != nil || text == "" {
		return c.register, err
	}
	return text, nil
}

type nativeClipboard struct{}

func (nativeClipboard) name() string { return "native" }

func (nativeClipboard) read() (string, error) {
	return string(clipboard.Read(clipboard.FmtText)), nil
}

func (nativeClipboard) write(text string) error {
	clipboard.Write(clipboard.FmtText, []byte(text))
	return nil
}

type toolClipboard struct{}

func (toolClipboard) name() string { return "system" }

func (toolClipboard) read() (string, error) {
	return atotto.ReadAll()
}

func (toolClipboard) write(text string) error {
	return atotto.WriteAll(text)
}
