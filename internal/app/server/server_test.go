package server

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gytax/internal/domain/ratetable"
	"gytax/internal/platform/config"
)

func testConfig() config.Config {
	return config.Config{
		Addr:               "127.0.0.1:0",
		Environment:        "test",
		LogFormat:          "json",
		MaxBodyBytes:       65536,
		RateLimitPerMinute: 100,
		ShutdownTimeout:    time.Second,
	}
}

func writeTable(t *testing.T, dir string, set ratetable.Set) {
	t.Helper()
	out, err := ratetable.EncodeYAML(set)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, set.Name+".yaml"), out, 0o600))
}

func TestNewUsesBuiltInTable(t *testing.T) {
	app, err := New(context.Background(), testConfig(), nil)
	require.NoError(t, err)
	defer app.Close()

	assert.Equal(t, []int{2026}, app.Rates.Years())
	assert.Nil(t, app.DB)
	assert.Nil(t, app.Jobs)
	assert.Nil(t, app.Watcher)
}

func TestNewLayersRateTableDir(t *testing.T) {
	dir := t.TempDir()
	next := ratetable.Guyana2026()
	next.FiscalYear = 2027
	next.Name = "budget-2027"
	writeTable(t, dir, next)

	cfg := testConfig()
	cfg.RateTablesDir = dir
	cfg.RateTablesWatch = true
	cfg.DefaultFiscalYear = 2026

	app, err := New(context.Background(), cfg, nil)
	require.NoError(t, err)
	defer app.Close()

	assert.Equal(t, []int{2026, 2027}, app.Rates.Years())
	assert.Equal(t, 2026, app.Rates.DefaultYear())
	assert.NotNil(t, app.Watcher)
}

func TestNewRejectsUnknownDefaultYear(t *testing.T) {
	cfg := testConfig()
	cfg.DefaultFiscalYear = 2030

	_, err := New(context.Background(), cfg, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "2030")
}

func TestNewRejectsInvalidRateTableFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.yaml"), []byte("fiscalYear: 2027\n"), 0o600))

	cfg := testConfig()
	cfg.RateTablesDir = dir
	_, err := New(context.Background(), cfg, nil)
	assert.Error(t, err)
}

func TestRunStopsOnCancel(t *testing.T) {
	app, err := New(context.Background(), testConfig(), nil)
	require.NoError(t, err)
	defer app.Close()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- app.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("server did not shut down")
	}
}
