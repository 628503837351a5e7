package main

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/ytget/video-saver/internal/fetch"
	"github.com/ytget/video-saver/internal/model"
)

type result struct {
	code   int
	stdout string
	stderr string
}

// runCLI executes one command against stateFile with fast timings
func runCLI(t *testing.T, ctx context.Context, stateFile string, args ...string) result {
	t.Helper()
	var out, errOut bytes.Buffer
	a := newApp(&out, &errOut)

	if len(args) > 0 && args[0] != "help" {
		args = append(args,
			"--state-file", stateFile,
			"--fetch-latency", "0s",
			"--progress-tick", "50ms",
			"--headless",
		)
	}
	code := a.run(ctx, args)
	return result{code: code, stdout: out.String(), stderr: errOut.String()}
}

func stateFile(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "state.yaml")
}

func TestRun_NoArgs(t *testing.T) {
	r := runCLI(t, context.Background(), "")
	assert.Equal(t, exitUsage, r.code)
	assert.Contains(t, r.stderr, "Usage of video-saver")
}

func TestRun_UnknownCommand(t *testing.T) {
	r := runCLI(t, context.Background(), stateFile(t), "upload", "x")
	assert.Equal(t, exitUsage, r.code)
	assert.Contains(t, r.stderr, `unknown command "upload"`)
}

func TestRun_Help(t *testing.T) {
	r := runCLI(t, context.Background(), "", "help")
	assert.Equal(t, exitOK, r.code)
	assert.Contains(t, r.stderr, "Command download")
	assert.Contains(t, r.stderr, "--quality")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name  string
		url   string
		code  int
		shape string
	}{
		{"video page", "https://www.facebook.com/user/videos/123456", exitOK, "video_page"},
		{"short link", "  https://fb.watch/abc123  ", exitOK, "short_link"},
		{"watch", "https://facebook.com/watch/?v=987", exitOK, "watch"},
		{"other site", "https://example.com/video", exitError, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := runCLI(t, context.Background(), stateFile(t), "validate", tt.url)
			assert.Equal(t, tt.code, r.code)
			if tt.shape != "" {
				assert.True(t, strings.HasPrefix(r.stdout, tt.shape+"\t"), r.stdout)
			} else {
				assert.Contains(t, r.stderr, "Error:")
			}
		})
	}
}

func TestValidate_MissingArgument(t *testing.T) {
	r := runCLI(t, context.Background(), stateFile(t), "validate")
	assert.Equal(t, exitError, r.code)
	assert.Contains(t, r.stderr, "Command validate")
}

func TestDownload_RecordsHistory(t *testing.T) {
	state := stateFile(t)

	r := runCLI(t, context.Background(), state, "download", "--quality", "SD (480p)", "https://fb.watch/abc123")
	require.Equal(t, exitOK, r.code, r.stderr)
	assert.Contains(t, r.stdout, fetch.SampleTitle+" (3:45)")
	assert.Contains(t, r.stdout, fetch.SampleTitle+" (SD (480p)) has been saved to your device.")

	r = runCLI(t, context.Background(), state, "history", "list", "--yaml")
	require.Equal(t, exitOK, r.code, r.stderr)

	var records []model.DownloadRecord
	require.NoError(t, yaml.Unmarshal([]byte(r.stdout), &records))
	require.Len(t, records, 1)
	assert.Equal(t, "SD (480p)", records[0].Quality)
	assert.Equal(t, "28.7 MB", records[0].Size)
	assert.Equal(t, fetch.SampleTitle, records[0].Title)
}

func TestDownload_DefaultQuality(t *testing.T) {
	state := stateFile(t)

	r := runCLI(t, context.Background(), state, "download", "https://www.facebook.com/watch/?v=1")
	require.Equal(t, exitOK, r.code, r.stderr)
	assert.Contains(t, r.stdout, "(HD (720p)) has been saved")
}

func TestDownload_InvalidQuality(t *testing.T) {
	state := stateFile(t)

	r := runCLI(t, context.Background(), state, "download", "-q", "4K", "https://fb.watch/abc123")
	assert.Equal(t, exitError, r.code)
	assert.Contains(t, r.stderr, "HD (720p), SD (480p), Low (360p)")

	r = runCLI(t, context.Background(), state, "history", "list")
	require.Equal(t, exitOK, r.code)
	assert.Contains(t, r.stdout, "No downloads yet")
}

func TestDownload_InvalidURL(t *testing.T) {
	r := runCLI(t, context.Background(), stateFile(t), "download", "not a link")
	assert.Equal(t, exitError, r.code)
	assert.NotContains(t, r.stdout, fetch.SampleTitle)
}

func TestDownload_Cancelled(t *testing.T) {
	state := stateFile(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := runCLI(t, ctx, state, "download", "https://fb.watch/abc123")
	assert.Equal(t, exitError, r.code)
	assert.Contains(t, r.stderr, "context canceled")

	r = runCLI(t, context.Background(), state, "history", "list")
	assert.Contains(t, r.stdout, "No downloads yet")
}

func TestHistory_RemoveAndClear(t *testing.T) {
	state := stateFile(t)
	for _, q := range []string{"HD (720p)", "Low (360p)"} {
		r := runCLI(t, context.Background(), state, "download", "-q", q, "https://fb.watch/abc123")
		require.Equal(t, exitOK, r.code, r.stderr)
	}

	r := runCLI(t, context.Background(), state, "history", "list", "--yaml")
	require.Equal(t, exitOK, r.code)
	var records []model.DownloadRecord
	require.NoError(t, yaml.Unmarshal([]byte(r.stdout), &records))
	require.Len(t, records, 2)
	assert.Equal(t, "Low (360p)", records[0].Quality, "newest first")

	r = runCLI(t, context.Background(), state, "history", "list")
	require.Equal(t, exitOK, r.code)
	assert.Contains(t, r.stdout, "QUALITY")
	assert.Contains(t, r.stdout, records[1].ID)

	r = runCLI(t, context.Background(), state, "history", "remove", records[0].ID)
	require.Equal(t, exitOK, r.code, r.stderr)
	assert.Contains(t, r.stdout, "removed "+records[0].ID)

	r = runCLI(t, context.Background(), state, "history", "remove", records[0].ID)
	assert.Equal(t, exitOK, r.code, r.stderr)
	assert.Contains(t, r.stdout, "nothing removed")

	r = runCLI(t, context.Background(), state, "history", "clear")
	require.Equal(t, exitOK, r.code)
	assert.Contains(t, r.stdout, "removed 1 records")

	r = runCLI(t, context.Background(), state, "history", "list")
	assert.Contains(t, r.stdout, "No downloads yet")
}

func TestHistory_Limit(t *testing.T) {
	state := stateFile(t)
	for i := 0; i < 3; i++ {
		r := runCLI(t, context.Background(), state, "download", "--history-limit", "2", "https://fb.watch/abc123")
		require.Equal(t, exitOK, r.code, r.stderr)
	}

	r := runCLI(t, context.Background(), state, "history", "list", "--yaml")
	var records []model.DownloadRecord
	require.NoError(t, yaml.Unmarshal([]byte(r.stdout), &records))
	assert.Len(t, records, 2)
}

func TestHistory_UnknownSubcommand(t *testing.T) {
	r := runCLI(t, context.Background(), stateFile(t), "history", "purge")
	assert.Equal(t, exitError, r.code)
	assert.Contains(t, r.stderr, `unknown history command "purge"`)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcd…", truncate("abcdefgh", 5))
}
