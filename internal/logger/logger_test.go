package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInit_WritesToRotatingFile(t *testing.T) {
	dir := t.TempDir()
	t.Cleanup(func() { Logger = nil })

	require.NoError(t, Init(Config{Debug: true, ConfigDir: dir}))
	Debug("lookup started", "username", "octocat")

	data, err := os.ReadFile(filepath.Join(dir, "logs", "ghpulse.log"))
	require.NoError(t, err)
	require.True(t, strings.Contains(string(data), "lookup started"))
	require.True(t, strings.Contains(string(data), "octocat"))
}

func TestInit_WarnLevelDropsDebug(t *testing.T) {
	dir := t.TempDir()
	t.Cleanup(func() { Logger = nil })

	require.NoError(t, Init(Config{ConfigDir: dir}))
	Debug("hidden")
	Warn("shown")

	data, err := os.ReadFile(filepath.Join(dir, "logs", "ghpulse.log"))
	require.NoError(t, err)
	require.NotContains(t, string(data), "hidden")
	require.Contains(t, string(data), "shown")
}

func TestHelpers_NilLoggerIsNoop(t *testing.T) {
	Logger = nil
	Debug("x")
	Info("x")
	Warn("x")
	Error("x")
}
