package watch

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/lumen-lang/lumen/internal/config"
	"github.com/lumen-lang/lumen/internal/project"
)

func newTestProject(t *testing.T) (string, *config.Config) {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, project.Scaffold(dir, "watched"))

	cfg, err := config.Load(dir)
	require.NoError(t, err)
	cfg.Watch.DebounceMillis = 20

	return dir, cfg
}

func waitForEvent(t *testing.T, w *Watcher) Event {
	t.Helper()

	select {
	case ev := <-w.Events():
		return ev
	case <-time.After(5 * time.Second):
		t.Fatalf("timed out waiting for a rebuild event")
		return Event{}
	}
}

func TestWatcherRebuildsOnWrite(t *testing.T) {
	dir, cfg := newTestProject(t)

	w, err := New(dir, cfg, zap.NewNop())
	require.NoError(t, err)
	w.Start()
	defer w.Stop()

	src := filepath.Join(dir, "src", "main.lm")
	require.NoError(t, os.WriteFile(src, []byte("pure function one() -> int {\n    return 1\n}\n"), 0o644))

	ev := waitForEvent(t, w)
	require.NoError(t, ev.Err)
	assert.Equal(t, src, ev.Source)
	assert.FileExists(t, ev.Output)

	output, err := os.ReadFile(ev.Output)
	require.NoError(t, err)
	assert.Contains(t, string(output), "public static int one()")
}

func TestWatcherReportsCompileFailure(t *testing.T) {
	dir, cfg := newTestProject(t)

	w, err := New(dir, cfg, zap.NewNop())
	require.NoError(t, err)
	w.Start()
	defer w.Stop()

	src := filepath.Join(dir, "src", "main.lm")
	require.NoError(t, os.WriteFile(src, []byte("function oops( -> int { return 1 }"), 0o644))

	ev := waitForEvent(t, w)
	require.Error(t, ev.Err)
	assert.Contains(t, ev.Err.Error(), "parsing failed")
}

func TestWatcherIgnoresOtherExtensions(t *testing.T) {
	dir, cfg := newTestProject(t)

	w, err := New(dir, cfg, zap.NewNop())
	require.NoError(t, err)
	w.Start()
	defer w.Stop()

	other := filepath.Join(dir, "src", "notes.txt")
	require.NoError(t, os.WriteFile(other, []byte("not source"), 0o644))

	select {
	case ev := <-w.Events():
		t.Fatalf("unexpected rebuild for %s", ev.Source)
	case <-time.After(200 * time.Millisecond):
	}
}

func TestDebounceDefaultsWhenUnset(t *testing.T) {
	dir, cfg := newTestProject(t)
	cfg.Watch.DebounceMillis = 0

	w, err := New(dir, cfg, zap.NewNop())
	require.NoError(t, err)
	w.Start()
	defer w.Stop()

	assert.Equal(t, 200*time.Millisecond, w.debounce)
}
