package logging

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func restoreDefault(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })
}

func TestSetupDisabledByDefault(t *testing.T) {
	restoreDefault(t)
	dir := t.TempDir()

	f, err := Setup(Params{Dir: dir})
	require.NoError(t, err)
	require.Nil(t, f)

	_, err = os.Stat(filepath.Join(dir, logFileName))
	require.True(t, os.IsNotExist(err), "log file must not be created when debug is off")
}

func TestSetupEnabledWithDebug(t *testing.T) {
	restoreDefault(t)
	dir := t.TempDir()

	f, err := Setup(Params{Debug: true, Dir: dir, Process: "test"})
	require.NoError(t, err)
	require.NotNil(t, f)
	defer f.Close()

	slog.Debug("frame", "n", 1)

	data, err := os.ReadFile(filepath.Join(dir, logFileName))
	require.NoError(t, err)
	require.Contains(t, string(data), "DEBUG: frame")
	require.Contains(t, string(data), "process=test")
	require.Contains(t, string(data), "n=1")
}

func TestSetupRotation(t *testing.T) {
	restoreDefault(t)
	dir := t.TempDir()

	path := filepath.Join(dir, logFileName)
	require.NoError(t, os.WriteFile(path, make([]byte, maxLogSize+1), 0o644))

	f, err := Setup(Params{Debug: true, Dir: dir})
	require.NoError(t, err)
	defer f.Close()

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)

	rotated := false
	for _, e := range entries {
		if e.Name() != logFileName && filepath.Ext(e.Name()) == ".log" {
			rotated = true
		}
	}
	require.True(t, rotated, "expected rotated log file")

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Less(t, info.Size(), int64(maxLogSize))
}

func TestHandlerLineFormat(t *testing.T) {
	var buf bytes.Buffer
	l := slog.New(NewHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))

	l.Debug("hidden")
	l.With("area", "registry").Info("promote", "staged", 3)

	out := buf.String()
	require.NotContains(t, out, "hidden")
	require.Equal(t, 1, strings.Count(out, "\n"))
	require.Contains(t, out, "INFO: promote")
	require.Contains(t, out, "area=registry")
	require.Contains(t, out, "staged=3")
	require.NotContains(t, out, "msg=")
}

func TestHandlerColor(t *testing.T) {
	var buf bytes.Buffer
	l := slog.New(NewHandler(&buf, nil, WithColor()))
	l.Warn("careful")
	require.Contains(t, buf.String(), "\033[")
}
