/*
Package textedit provides the text buffer widget used by the editor pane.

A Content owns the document lines, the cursor, an undo/redo history and the
scroll window. It is driven exclusively through Actions:

	c := textedit.WithText("hello")
	c.Perform(textedit.Move(textedit.MotionDocumentEnd))
	c.Perform(textedit.Insert('x'))
	c.Text() // "hellox"

Actions split into cursor moves, which never change the text, and edits,
which do. Action.IsEdit reports which is which so callers can track
unsaved changes without inspecting the buffer.

Keyboard input is translated with ActionForKey and the visible window is
drawn with Render.
*/
package textedit
