package document

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/willibrandon/tedit/internal/ui/components/textedit"
	"github.com/willibrandon/tedit/internal/ui/styles"
)

func loaded(t *testing.T, path, text string) *State {
	t.Helper()
	s := NewState(styles.DefaultTheme)
	require.Nil(t, Update(s, FileOpened{Path: path, Text: text}))
	require.False(t, s.IsDirty)
	return s
}

func TestNewState(t *testing.T) {
	s := NewState(styles.Nord)

	assert.Equal(t, "", s.Path)
	assert.Equal(t, "", s.Text())
	assert.True(t, s.IsDirty, "initial document is dirty until the first load")
	assert.NoError(t, s.LastError)
	assert.Equal(t, styles.Nord, s.Theme)
}

func TestUpdate_MovesNeverChangeDirty(t *testing.T) {
	moves := []textedit.Action{
		textedit.Move(textedit.MotionLeft),
		textedit.Move(textedit.MotionRight),
		textedit.Move(textedit.MotionUp),
		textedit.Move(textedit.MotionDown),
		textedit.Move(textedit.MotionHome),
		textedit.Move(textedit.MotionEnd),
		textedit.Move(textedit.MotionWordLeft),
		textedit.Move(textedit.MotionWordRight),
		textedit.Move(textedit.MotionPageUp),
		textedit.Move(textedit.MotionPageDown),
		textedit.Move(textedit.MotionDocumentStart),
		textedit.Move(textedit.MotionDocumentEnd),
		textedit.Click(1, 2),
	}

	for _, dirty := range []bool{false, true} {
		for _, a := range moves {
			t.Run(fmt.Sprintf("%s/dirty=%v", a, dirty), func(t *testing.T) {
				s := loaded(t, "/tmp/a.txt", "one\ntwo\nthree")
				s.IsDirty = dirty

				task := Update(s, EditAction{Action: a})

				assert.Nil(t, task)
				assert.Equal(t, dirty, s.IsDirty)
				assert.Equal(t, "one\ntwo\nthree", s.Text())
			})
		}
	}
}

func TestUpdate_EditsAlwaysSetDirty(t *testing.T) {
	edits := []textedit.Action{
		textedit.Insert('x'),
		textedit.Paste("pasted"),
		textedit.Enter(),
		textedit.Backspace(),
		textedit.Delete(),
		textedit.DeleteLine(),
		textedit.Undo(),
		textedit.Redo(),
	}

	for _, dirty := range []bool{false, true} {
		for _, a := range edits {
			t.Run(fmt.Sprintf("%s/dirty=%v", a, dirty), func(t *testing.T) {
				s := loaded(t, "/tmp/a.txt", "hello")
				s.IsDirty = dirty

				Update(s, EditAction{Action: a})

				assert.True(t, s.IsDirty)
			})
		}
	}
}

func TestUpdate_New(t *testing.T) {
	s := loaded(t, "/tmp/a.txt", "hello")
	s.LastError = &IOError{Op: "write", Path: "/tmp/a.txt", Err: fs.ErrPermission}

	task := Update(s, New{})

	assert.Nil(t, task)
	assert.Equal(t, "", s.Path)
	assert.Equal(t, "", s.Text())
	assert.NoError(t, s.LastError)
}

func TestUpdate_TasksCarryState(t *testing.T) {
	s := loaded(t, "/tmp/a.txt", "hello")

	assert.Equal(t, PickAndLoadTask{}, Update(s, Open{}))
	assert.Equal(t, LoadTask{Path: "/tmp/c.txt"}, Update(s, Load{Path: "/tmp/c.txt"}))
	assert.Equal(t, SaveTask{Path: "/tmp/a.txt", Text: "hello"}, Update(s, Save{}))

	Update(s, New{})
	assert.Equal(t, SaveTask{Path: "", Text: ""}, Update(s, Save{}),
		"save without a path must ask for one")
}

func TestUpdate_TaskEventsLeaveStateAlone(t *testing.T) {
	s := loaded(t, "/tmp/a.txt", "hello")

	for _, ev := range []Event{Open{}, Save{}, Load{Path: "/x"}} {
		Update(s, ev)
		assert.Equal(t, "/tmp/a.txt", s.Path)
		assert.Equal(t, "hello", s.Text())
		assert.False(t, s.IsDirty)
	}
}

func TestUpdate_FileOpenedOK(t *testing.T) {
	// Start with an empty buffer while the initial load is in flight.
	s := NewState(styles.DefaultTheme)
	require.True(t, s.IsDirty)

	Update(s, FileOpened{Path: "/tmp/a.txt", Text: "hello"})

	assert.Equal(t, "/tmp/a.txt", s.Path)
	assert.Equal(t, "hello", s.Text())
	assert.False(t, s.IsDirty)
	assert.NoError(t, s.LastError)
	assert.Equal(t, "hello", s.Baseline)
}

func TestUpdate_FileOpenedRoundTrip(t *testing.T) {
	texts := []string{"", "a\n", "crlf\r\nlines\r\n", "tab\there 世界\n\n\n"}
	for _, text := range texts {
		s := loaded(t, "/tmp/a.txt", text)
		task := Update(s, Save{})
		assert.Equal(t, SaveTask{Path: "/tmp/a.txt", Text: text}, task)
	}
}

func TestUpdate_TypeAfterLoad(t *testing.T) {
	s := loaded(t, "/tmp/a.txt", "hello")

	Update(s, EditAction{Action: textedit.Move(textedit.MotionEnd)})
	Update(s, EditAction{Action: textedit.Insert('x')})

	assert.Equal(t, "hellox", s.Text())
	assert.True(t, s.IsDirty)
	assert.True(t, s.HasUnsavedChanges())
}

func TestUpdate_FileSavedOK(t *testing.T) {
	s := NewState(styles.DefaultTheme)
	Update(s, EditAction{Action: textedit.Insert('x')})

	Update(s, FileSaved{Path: "/tmp/b.txt", Text: "x"})

	assert.Equal(t, "/tmp/b.txt", s.Path)
	assert.False(t, s.IsDirty)
	assert.NoError(t, s.LastError)
	assert.Equal(t, "x", s.Baseline)
	assert.False(t, s.HasUnsavedChanges())
}

func TestUpdate_FailuresKeepDocument(t *testing.T) {
	cancelled := ErrDialogCancelled
	ioErr := &IOError{Op: "read", Path: "/nope", Err: fs.ErrNotExist}

	tests := []struct {
		name string
		ev   Event
		kind ErrorKind
	}{
		{"open cancelled", FileOpened{Err: cancelled}, KindDialogCancelled},
		{"save cancelled", FileSaved{Err: cancelled}, KindDialogCancelled},
		{"open failed", FileOpened{Path: "/nope", Err: ioErr}, KindIO},
		{"save failed", FileSaved{Path: "/nope", Err: ioErr}, KindIO},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := loaded(t, "/tmp/a.txt", "hello")
			Update(s, EditAction{Action: textedit.Insert('!')})

			task := Update(s, tt.ev)

			assert.Nil(t, task)
			assert.Equal(t, "/tmp/a.txt", s.Path)
			assert.Equal(t, "!hello", s.Text())
			assert.True(t, s.IsDirty)
			assert.Equal(t, tt.kind, Kind(s.LastError))
		})
	}
}

func TestUpdate_SaveWithoutPathCancelled(t *testing.T) {
	s := NewState(styles.DefaultTheme)

	task := Update(s, Save{})
	require.Equal(t, SaveTask{}, task)

	Update(s, FileSaved{Err: ErrDialogCancelled})

	assert.Equal(t, "", s.Path)
	assert.True(t, s.IsDirty)
	assert.ErrorIs(t, s.LastError, ErrDialogCancelled)
}

func TestUpdate_SuccessClearsError(t *testing.T) {
	s := loaded(t, "/tmp/a.txt", "hello")
	Update(s, FileSaved{Err: ErrDialogCancelled})
	require.Error(t, s.LastError)

	Update(s, FileSaved{Path: "/tmp/a.txt", Text: "hello"})
	assert.NoError(t, s.LastError)
}

func TestUpdate_ThemeSelected(t *testing.T) {
	s := loaded(t, "/tmp/a.txt", "hello")

	Update(s, ThemeSelected{Theme: styles.Gruvbox})

	assert.Equal(t, styles.Gruvbox, s.Theme)
	assert.False(t, s.IsDirty)
}

func TestKind(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorKind
	}{
		{"nil", nil, KindNone},
		{"cancelled", ErrDialogCancelled, KindDialogCancelled},
		{"wrapped cancel", fmt.Errorf("save: %w", ErrDialogCancelled), KindDialogCancelled},
		{"io", &IOError{Op: "read", Err: fs.ErrNotExist}, KindIO},
		{"other", errors.New("boom"), KindIO},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Kind(tt.err))
		})
	}
}

func TestIOError_RendersOSErrorVerbatim(t *testing.T) {
	osErr := &fs.PathError{Op: "open", Path: "/tmp/x", Err: fs.ErrNotExist}
	err := &IOError{Op: "read", Path: "/tmp/x", Err: osErr}

	assert.Equal(t, osErr.Error(), err.Error())
	assert.ErrorIs(t, err, fs.ErrNotExist)
}
