package ratetable

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type hookLog struct {
	mu     sync.Mutex
	errors int
}

func (h *hookLog) record(_ string, err error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if err != nil {
		h.errors++
	}
}

func (h *hookLog) failures() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.errors
}

func TestWatcherReloadsChangedFiles(t *testing.T) {
	dir := t.TempDir()
	registry, err := NewRegistry(2026, Guyana2026())
	require.NoError(t, err)

	var hooks hookLog
	w := NewWatcher(dir, registry, nil, hooks.record)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = w.Run(ctx) }()

	// Give fsnotify time to register the directory.
	time.Sleep(100 * time.Millisecond)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.yaml"), []byte("fiscalYear: 2028\n"), 0o600))

	next := Guyana2026()
	next.FiscalYear = 2027
	out, err := EncodeYAML(next)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "2027.yaml"), out, 0o600))

	assert.Eventually(t, func() bool { return registry.Has(2027) }, 3*time.Second, 20*time.Millisecond)
	assert.Eventually(t, func() bool { return hooks.failures() > 0 }, 3*time.Second, 20*time.Millisecond)
	assert.False(t, registry.Has(2028))
	assert.Equal(t, 2026, registry.DefaultYear())
}
