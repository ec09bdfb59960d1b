package app

// pasteMsg carries text read from the clipboard.
type pasteMsg struct {
	Text string
	Err  error
}

// clipboardWrittenMsg reports the outcome of a copy or cut.
type clipboardWrittenMsg struct {
	What string // "copied" or "cut"
	Err  error
}

// clearMessageMsg clears the transient status message if it is still the
// one identified by Seq.
type clearMessageMsg struct {
	Seq int
}
