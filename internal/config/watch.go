package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/cespare/xxhash/v2"
)

// UnknownJob is reported while no player is present.
const UnknownJob = "UNKNOWN"

// JobObserver turns a value polled once per frame into change notifications.
type JobObserver struct {
	current string
}

// NewJobObserver starts observing from initial.
func NewJobObserver(initial string) *JobObserver {
	return &JobObserver{current: initial}
}

// Observe records job and returns it with true when it differs from the
// previous observation.
func (o *JobObserver) Observe(job string) (string, bool) {
	if job == o.current {
		return "", false
	}
	o.current = job
	return job, true
}

// Current returns the last observed job.
func (o *JobObserver) Current() string { return o.current }

// Watcher re-reads a configuration file every few frames and reports a new
// Configuration only when the file's content hash changes.
type Watcher struct {
	path  string
	every int
	frame int
	sum   uint64
	bad   uint64
	read  func(string) ([]byte, error)
}

// NewWatcher polls path once every `every` calls to Poll.
func NewWatcher(path string, every int) *Watcher {
	if every < 1 {
		every = 1
	}
	return &Watcher{path: path, every: every, read: os.ReadFile}
}

// Load reads the file now and remembers its hash. A missing file yields
// Default and a zero hash.
func (w *Watcher) Load() (*Configuration, error) {
	data, err := w.read(w.path)
	if errors.Is(err, os.ErrNotExist) {
		w.sum = 0
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", w.path, err)
	}
	c, err := Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", w.path, err)
	}
	w.sum = xxhash.Sum64(data)
	return c, nil
}

// Poll is called once per frame. It returns a configuration and true when
// the file was re-read and its content changed. A missing file is not an
// error. A file that fails to parse is reported once and then ignored
// until its content changes again.
func (w *Watcher) Poll() (*Configuration, bool, error) {
	w.frame++
	if w.frame%w.every != 0 {
		return nil, false, nil
	}
	data, err := w.read(w.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("read %s: %w", w.path, err)
	}
	sum := xxhash.Sum64(data)
	if sum == w.sum || sum == w.bad {
		return nil, false, nil
	}
	c, err := Unmarshal(data)
	if err != nil {
		w.bad = sum
		return nil, false, fmt.Errorf("reload %s: %w", w.path, err)
	}
	w.sum = sum
	return c, true, nil
}
