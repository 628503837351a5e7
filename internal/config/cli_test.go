package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFlagSet(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterCLIFlags(fs)
	require.NoError(t, fs.Parse(args))
	return fs
}

func TestLoadCLI_Defaults(t *testing.T) {
	cfg, err := LoadCLI(newFlagSet(t))
	require.NoError(t, err)

	assert.Equal(t, DefaultStateFile(), cfg.StateFile)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Empty(t, cfg.LogFile)
	assert.Equal(t, 2*time.Second, cfg.FetchLatency)
	assert.Equal(t, 200*time.Millisecond, cfg.ProgressTick)
	assert.Equal(t, DefaultHistoryLimit, cfg.HistoryLimit)
	assert.False(t, cfg.Headless)
}

func TestLoadCLI_NilFlagSet(t *testing.T) {
	cfg, err := LoadCLI(nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultHistoryLimit, cfg.HistoryLimit)
}

func TestLoadCLI_Flags(t *testing.T) {
	state := filepath.Join(t.TempDir(), "state.yaml")
	fs := newFlagSet(t,
		"--state-file", state,
		"-l", "debug",
		"--fetch-latency", "10ms",
		"--progress-tick", "60ms",
		"--history-limit", "5",
		"--headless",
	)

	cfg, err := LoadCLI(fs)
	require.NoError(t, err)

	assert.Equal(t, state, cfg.StateFile)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 10*time.Millisecond, cfg.FetchLatency)
	assert.Equal(t, 60*time.Millisecond, cfg.ProgressTick)
	assert.Equal(t, 5, cfg.HistoryLimit)
	assert.True(t, cfg.Headless)
}

func TestLoadCLI_Env(t *testing.T) {
	t.Setenv("VIDEOSAVER_LOG_LEVEL", "error")
	t.Setenv("VIDEOSAVER_HISTORY_LIMIT", "7")

	cfg, err := LoadCLI(newFlagSet(t))
	require.NoError(t, err)

	assert.Equal(t, "error", cfg.LogLevel)
	assert.Equal(t, 7, cfg.HistoryLimit)
}

func TestLoadCLI_FlagBeatsEnv(t *testing.T) {
	t.Setenv("VIDEOSAVER_LOG_LEVEL", "error")

	cfg, err := LoadCLI(newFlagSet(t, "--log-level", "info"))
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadCLI_ConfigFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "video-saver.yaml")
	content := "log-level: debug\nhistory-limit: 20\nprogress-tick: 100ms\n"
	require.NoError(t, os.WriteFile(file, []byte(content), 0o644))

	cfg, err := LoadCLI(newFlagSet(t, "--config", file))
	require.NoError(t, err)

	assert.Equal(t, file, cfg.ConfigFile)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 20, cfg.HistoryLimit)
	assert.Equal(t, 100*time.Millisecond, cfg.ProgressTick)
}

func TestLoadCLI_MissingExplicitConfig(t *testing.T) {
	_, err := LoadCLI(newFlagSet(t, "--config", filepath.Join(t.TempDir(), "absent.yaml")))
	assert.Error(t, err)
}

func TestLoadCLI_Clamps(t *testing.T) {
	cfg, err := LoadCLI(newFlagSet(t,
		"--progress-tick", "1ms",
		"--history-limit", "0",
		"--fetch-latency", "1h",
	))
	require.NoError(t, err)

	assert.Equal(t, MinProgressTickMS*time.Millisecond, cfg.ProgressTick)
	assert.Equal(t, MinHistoryLimit, cfg.HistoryLimit)
	assert.Equal(t, MaxFetchLatencyMS*time.Millisecond, cfg.FetchLatency)
}
