package actions

import "sync"

// Entry is a single message captured by Recorder.
type Entry struct {
	Level   Level
	Message string
}

// Recorder is an in-memory Logger for tests.
type Recorder struct {
	mu      sync.Mutex
	entries []Entry
	groups  []string
	open    int
	outputs map[string]string

	// OutputErr, when set, is returned by SetOutput.
	OutputErr error
}

// NewRecorder returns an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{outputs: make(map[string]string)}
}

var _ Logger = (*Recorder)(nil)

func (r *Recorder) StartGroup(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.groups = append(r.groups, name)
	r.open++
}

func (r *Recorder) EndGroup() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.open--
}

func (r *Recorder) Info(msg string)    { r.add(LevelInfo, msg) }
func (r *Recorder) Warning(msg string) { r.add(LevelWarning, msg) }
func (r *Recorder) Error(msg string)   { r.add(LevelError, msg) }

func (r *Recorder) SetOutput(name, value string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.OutputErr != nil {
		return r.OutputErr
	}
	r.outputs[name] = value
	return nil
}

func (r *Recorder) add(level Level, msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, Entry{Level: level, Message: msg})
}

// Entries returns every captured entry in order.
func (r *Recorder) Entries() []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Messages returns the messages captured at level, in order.
func (r *Recorder) Messages(level Level) []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []string
	for _, e := range r.entries {
		if e.Level == level {
			out = append(out, e.Message)
		}
	}
	return out
}

// Groups returns the names of all started groups.
func (r *Recorder) Groups() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.groups))
	copy(out, r.groups)
	return out
}

// OpenGroups reports how many groups were started but not ended.
func (r *Recorder) OpenGroups() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.open
}

// Output returns a published output value.
func (r *Recorder) Output(name string) (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	v, ok := r.outputs[name]
	return v, ok
}
