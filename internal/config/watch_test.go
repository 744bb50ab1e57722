package config

import (
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJobObserver_ReportsOnlyChanges(t *testing.T) {
	o := NewJobObserver(UnknownJob)

	_, changed := o.Observe(UnknownJob)
	assert.False(t, changed)

	job, changed := o.Observe("DRG")
	assert.True(t, changed)
	assert.Equal(t, "DRG", job)

	_, changed = o.Observe("DRG")
	assert.False(t, changed)
	assert.Equal(t, "DRG", o.Current())

	job, changed = o.Observe(UnknownJob)
	assert.True(t, changed)
	assert.Equal(t, UnknownJob, job)
}

// fakeFile stands in for the file system behind a Watcher.
type fakeFile struct {
	data  []byte
	err   error
	reads int
}

func (f *fakeFile) read(string) ([]byte, error) {
	f.reads++
	return f.data, f.err
}

func newFakeWatcher(t *testing.T, every int, c *Configuration) (*Watcher, *fakeFile) {
	t.Helper()
	data, err := Marshal(c)
	require.NoError(t, err)
	f := &fakeFile{data: data}
	w := NewWatcher("resonant.yaml", every)
	w.read = f.read
	return w, f
}

func TestWatcher_PollsOnInterval(t *testing.T) {
	w, f := newFakeWatcher(t, 3, Default())
	_, err := w.Load()
	require.NoError(t, err)
	f.reads = 0

	for i := 0; i < 9; i++ {
		_, changed, err := w.Poll()
		require.NoError(t, err)
		assert.False(t, changed)
	}
	assert.Equal(t, 3, f.reads)
}

func TestWatcher_ReportsContentChange(t *testing.T) {
	c := Default()
	w, f := newFakeWatcher(t, 1, c)
	_, err := w.Load()
	require.NoError(t, err)

	c.Debug = true
	f.data, err = Marshal(c)
	require.NoError(t, err)

	got, changed, err := w.Poll()
	require.NoError(t, err)
	require.True(t, changed)
	assert.True(t, got.Debug)

	_, changed, err = w.Poll()
	require.NoError(t, err)
	assert.False(t, changed, "same bytes are not reported twice")
}

func TestWatcher_BadEditReportedOnce(t *testing.T) {
	w, f := newFakeWatcher(t, 1, Default())
	_, err := w.Load()
	require.NoError(t, err)

	f.data = []byte("profiles: [\n")
	_, changed, err := w.Poll()
	assert.Error(t, err)
	assert.False(t, changed)

	_, changed, err = w.Poll()
	assert.NoError(t, err)
	assert.False(t, changed)
}

func TestWatcher_MissingFile(t *testing.T) {
	w, f := newFakeWatcher(t, 1, Default())
	f.err = os.ErrNotExist

	c, err := w.Load()
	require.NoError(t, err)
	assert.Len(t, c.Profiles, 1)

	_, changed, err := w.Poll()
	assert.NoError(t, err)
	assert.False(t, changed)

	f.err = errors.New("permission denied")
	_, _, err = w.Poll()
	assert.Error(t, err)
}
