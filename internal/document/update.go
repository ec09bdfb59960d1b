package document

// Update applies ev to s and returns the follow-up task, or nil.
func Update(s *State, ev Event) Task {
	switch ev := ev.(type) {
	case EditAction:
		s.IsDirty = s.IsDirty || ev.Action.IsEdit()
		s.Buffer.Perform(ev.Action)

	case New:
		s.Path = ""
		s.Buffer.SetText("")
		s.LastError = nil

	case Open:
		return PickAndLoadTask{}

	case Load:
		return LoadTask{Path: ev.Path}

	case Save:
		return SaveTask{Path: s.Path, Text: s.Buffer.Text()}

	case FileOpened:
		if ev.Err != nil {
			s.LastError = ev.Err
			return nil
		}
		s.Path = ev.Path
		s.Buffer.SetText(ev.Text)
		s.Baseline = ev.Text
		s.IsDirty = false
		s.LastError = nil

	case FileSaved:
		if ev.Err != nil {
			s.LastError = ev.Err
			return nil
		}
		s.Path = ev.Path
		s.Baseline = ev.Text
		s.IsDirty = false
		s.LastError = nil

	case ThemeSelected:
		s.Theme = ev.Theme
	}
	return nil
}
