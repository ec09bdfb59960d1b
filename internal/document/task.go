package document

// Task is asynchronous work requested by Update. Each task completes with
// exactly one event: FileOpened for loads and FileSaved for saves.
type Task interface {
	task()
}

// PickAndLoadTask shows an open dialog and loads the chosen file.
type PickAndLoadTask struct{}

// LoadTask loads Path.
type LoadTask struct {
	Path string
}

// SaveTask writes Text to Path. An empty Path means the user must pick one
// first.
type SaveTask struct {
	Path string
	Text string
}

func (PickAndLoadTask) task() {}
func (LoadTask) task()        {}
func (SaveTask) task()        {}
