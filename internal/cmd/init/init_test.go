package init

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/open-cli-collective/markdown-directives/internal/config"
)

func TestVerifyRendering(t *testing.T) {
	tests := []struct {
		name string
		cfg  *config.Config
	}{
		{name: "defaults", cfg: &config.Config{}},
		{name: "no gfm", cfg: &config.Config{DisableGFM: true}},
		{name: "no tip ids", cfg: &config.Config{TipIDs: config.TipIDsNone}},
		{name: "unsafe html", cfg: &config.Config{UnsafeHTML: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NoError(t, verifyRendering(tt.cfg))
		})
	}
}

func TestValidateDebounce(t *testing.T) {
	tests := []struct {
		input      string
		wantErr    bool
		errContain string
	}{
		{input: "", wantErr: false},
		{input: "200ms", wantErr: false},
		{input: "1s", wantErr: false},
		{input: "soon", wantErr: true, errContain: "not a duration"},
		{input: "0s", wantErr: true, errContain: "positive"},
		{input: "-5ms", wantErr: true, errContain: "positive"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			err := validateDebounce(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContain)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestConfigFilePermissions(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yml")

	cfg := config.Config{
		OutputFormat: "json",
		TipIDs:       config.TipIDsNone,
	}

	err := cfg.Save(configPath)
	require.NoError(t, err)

	info, err := os.Stat(configPath)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0644), info.Mode().Perm())
}

func TestConfigFilePermissions_DirectoryCreation(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "nested", "deeply", "config.yml")

	cfg := config.Config{OutputFormat: "plain"}

	// Save should create the directory structure
	err := cfg.Save(configPath)
	require.NoError(t, err)

	_, err = os.Stat(configPath)
	require.NoError(t, err)

	dirInfo, err := os.Stat(filepath.Dir(configPath))
	require.NoError(t, err)
	assert.True(t, dirInfo.IsDir())
}

func TestNewCmdInit_Flags(t *testing.T) {
	cmd := NewCmdInit()

	assert.Equal(t, "init", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.NotEmpty(t, cmd.Long)

	outputFlag := cmd.Flags().Lookup("output-format")
	require.NotNil(t, outputFlag)
	assert.Equal(t, "", outputFlag.DefValue)

	noVerifyFlag := cmd.Flags().Lookup("no-verify")
	require.NotNil(t, noVerifyFlag)
	assert.Equal(t, "false", noVerifyFlag.DefValue)
}
