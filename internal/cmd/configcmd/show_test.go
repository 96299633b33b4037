package configcmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/open-cli-collective/markdown-directives/internal/config"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, v := range config.EnvVars {
		t.Setenv(v, "")
	}
}

func TestRunShow_WithConfigFile(t *testing.T) {
	clearEnv(t)
	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmpDir)

	cfg := &config.Config{
		OutputFormat:  "json",
		Standalone:    true,
		TipIDs:        config.TipIDsNone,
		WatchDebounce: "500ms",
		CacheTTL:      "-1s",
	}
	xdgDir := filepath.Join(tmpDir, "mdd")
	require.NoError(t, os.MkdirAll(xdgDir, 0755))
	require.NoError(t, cfg.Save(filepath.Join(xdgDir, "config.yml")))

	err := runShow(true)
	require.NoError(t, err)
}

func TestRunShow_NoConfigFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	err := runShow(true)
	require.NoError(t, err)
}

func TestRunShow_EnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("MDD_OUTPUT_FORMAT", "plain")
	t.Setenv("NO_COLOR", "1")

	err := runShow(true)
	require.NoError(t, err)
}
