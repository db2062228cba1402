package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zappabad/pulse/internal/token"
)

func TestLoadDefaults(t *testing.T) {
	chdir(t, t.TempDir()) // no stray .env

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "INFO", cfg.LogLevel)
	assert.True(t, cfg.EnableTUI)
	assert.Empty(t, cfg.MetricsAddr)
	assert.Equal(t, 2*time.Second, cfg.FeedMinInterval)
	assert.Equal(t, 5*time.Second, cfg.FeedMaxInterval)
	assert.Equal(t, 20, cfg.MaxColumnLen)

	svc := cfg.Service()
	want := map[token.Category][2]int{
		token.CategoryNewPairs:     {15, 0},
		token.CategoryFinalStretch: {12, 20},
		token.CategoryMigrated:     {18, 40},
	}
	for _, col := range svc.Initial.Columns {
		assert.Equal(t, want[col.Category], [2]int{col.Size, col.Offset}, "category %s", col.Category)
	}
}

func TestLoadFromEnv(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("PULSE_LOG_LEVEL", "debug")
	t.Setenv("PULSE_ENABLE_TUI", "false")
	t.Setenv("PULSE_SEED", "1234")
	t.Setenv("PULSE_FEED_MIN_INTERVAL_MS", "100")
	t.Setenv("PULSE_FEED_MAX_INTERVAL_MS", "200")
	t.Setenv("PULSE_NEW_PAIRS", "30")
	t.Setenv("PULSE_METRICS_ADDR", ":9102")

	cfg, err := Load()
	require.NoError(t, err)

	assert.False(t, cfg.EnableTUI)
	assert.Equal(t, int64(1234), cfg.Seed)
	assert.Equal(t, ":9102", cfg.MetricsAddr)
	assert.Equal(t, 100*time.Millisecond, cfg.Feed().MinInterval)
	assert.Equal(t, 200*time.Millisecond, cfg.Feed().MaxInterval)

	// The new-pairs range grows past the default final-stretch offset.
	svc := cfg.Service()
	require.NoError(t, svc.Initial.Validate())
	assert.Equal(t, 30, svc.Initial.Columns[1].Offset)
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"bad log level", map[string]string{"PULSE_LOG_LEVEL": "LOUD"}},
		{"inverted interval", map[string]string{"PULSE_FEED_MIN_INTERVAL_MS": "500", "PULSE_FEED_MAX_INTERVAL_MS": "100"}},
		{"zero batch", map[string]string{"PULSE_FEED_MIN_BATCH": "0"}},
		{"inverted batch", map[string]string{"PULSE_FEED_MIN_BATCH": "3", "PULSE_FEED_MAX_BATCH": "2"}},
		{"zero column", map[string]string{"PULSE_MIGRATED": "0"}},
		{"zero cap", map[string]string{"PULSE_MAX_COLUMN_LEN": "0"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chdir(t, t.TempDir())
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load()
			assert.Error(t, err)
		})
	}
}

// chdir changes the working directory for the duration of the test,
// equivalent to testing.T.Chdir (Go 1.24+).
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}
