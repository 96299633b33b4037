package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
		errMsg  string
	}{
		{
			name:    "empty config",
			config:  Config{},
			wantErr: false,
		},
		{
			name: "fully populated",
			config: Config{
				OutputFormat:  "json",
				TipIDs:        TipIDsNone,
				WatchDebounce: "150ms",
				CacheTTL:      "5m",
			},
			wantErr: false,
		},
		{
			name:    "bad output format",
			config:  Config{OutputFormat: "xml"},
			wantErr: true,
			errMsg:  "output_format must be one of",
		},
		{
			name:    "bad tip ids",
			config:  Config{TipIDs: "sequential"},
			wantErr: true,
			errMsg:  "tip_ids must be",
		},
		{
			name:    "unparseable debounce",
			config:  Config{WatchDebounce: "soon"},
			wantErr: true,
			errMsg:  "watch_debounce",
		},
		{
			name:    "zero debounce",
			config:  Config{WatchDebounce: "0s"},
			wantErr: true,
			errMsg:  "watch_debounce must be positive",
		},
		{
			name:    "unparseable cache ttl",
			config:  Config{CacheTTL: "forever"},
			wantErr: true,
			errMsg:  "cache_ttl",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestConfig_Durations(t *testing.T) {
	assert.Equal(t, DefaultWatchDebounce, (&Config{}).Debounce())
	assert.Equal(t, DefaultWatchDebounce, (&Config{WatchDebounce: "-1s"}).Debounce())
	assert.Equal(t, 50*time.Millisecond, (&Config{WatchDebounce: "50ms"}).Debounce())

	assert.Equal(t, DefaultCacheTTL, (&Config{}).CacheExpiration())
	assert.Equal(t, time.Minute, (&Config{CacheTTL: "1m"}).CacheExpiration())
	assert.Equal(t, -time.Second, (&Config{CacheTTL: "-1s"}).CacheExpiration())
}

func TestConfig_LoadFromEnv(t *testing.T) {
	t.Run("loads all env vars", func(t *testing.T) {
		t.Setenv("MDD_OUTPUT_FORMAT", "json")
		t.Setenv("MDD_TIP_IDS", "none")
		t.Setenv("MDD_WATCH_DEBOUNCE", "1s")
		t.Setenv("MDD_CACHE_TTL", "2m")
		t.Setenv("MDD_STANDALONE", "true")
		t.Setenv("MDD_DISABLE_GFM", "1")
		t.Setenv("MDD_UNSAFE_HTML", "true")
		t.Setenv("MDD_NO_COLOR", "true")

		cfg := &Config{}
		cfg.LoadFromEnv()

		assert.Equal(t, "json", cfg.OutputFormat)
		assert.Equal(t, "none", cfg.TipIDs)
		assert.Equal(t, "1s", cfg.WatchDebounce)
		assert.Equal(t, "2m", cfg.CacheTTL)
		assert.True(t, cfg.Standalone)
		assert.True(t, cfg.DisableGFM)
		assert.True(t, cfg.UnsafeHTML)
		assert.True(t, cfg.NoColor)
	})

	t.Run("empty env vars keep existing values", func(t *testing.T) {
		t.Setenv("MDD_OUTPUT_FORMAT", "")
		t.Setenv("MDD_STANDALONE", "")
		t.Setenv("MDD_NO_COLOR", "")
		t.Setenv("NO_COLOR", "")

		cfg := &Config{OutputFormat: "plain", Standalone: true}
		cfg.LoadFromEnv()

		assert.Equal(t, "plain", cfg.OutputFormat)
		assert.True(t, cfg.Standalone)
		assert.False(t, cfg.NoColor)
	})

	t.Run("unparseable bool ignored", func(t *testing.T) {
		t.Setenv("MDD_UNSAFE_HTML", "maybe")

		cfg := &Config{UnsafeHTML: true}
		cfg.LoadFromEnv()

		assert.True(t, cfg.UnsafeHTML)
	})

	t.Run("explicit false overrides file value", func(t *testing.T) {
		t.Setenv("MDD_STANDALONE", "false")

		cfg := &Config{Standalone: true}
		cfg.LoadFromEnv()

		assert.False(t, cfg.Standalone)
	})
}

func TestConfig_LoadFromEnv_NoColorFallback(t *testing.T) {
	t.Run("NO_COLOR used when MDD_NO_COLOR not set", func(t *testing.T) {
		t.Setenv("MDD_NO_COLOR", "")
		t.Setenv("NO_COLOR", "1")

		cfg := &Config{}
		cfg.LoadFromEnv()
		assert.True(t, cfg.NoColor)
	})

	t.Run("any NO_COLOR value disables color", func(t *testing.T) {
		t.Setenv("MDD_NO_COLOR", "")
		t.Setenv("NO_COLOR", "yes please")

		cfg := &Config{}
		cfg.LoadFromEnv()
		assert.True(t, cfg.NoColor)
	})

	t.Run("MDD_NO_COLOR takes precedence", func(t *testing.T) {
		t.Setenv("MDD_NO_COLOR", "false")
		t.Setenv("NO_COLOR", "1")

		cfg := &Config{}
		cfg.LoadFromEnv()
		assert.False(t, cfg.NoColor)
	})
}

func TestGetEnvWithFallback(t *testing.T) {
	t.Run("returns primary when set", func(t *testing.T) {
		t.Setenv("TEST_PRIMARY", "primary-value")
		t.Setenv("TEST_FALLBACK", "fallback-value")
		assert.Equal(t, "primary-value", getEnvWithFallback("TEST_PRIMARY", "TEST_FALLBACK"))
	})

	t.Run("returns fallback when primary empty", func(t *testing.T) {
		t.Setenv("TEST_PRIMARY", "")
		t.Setenv("TEST_FALLBACK", "fallback-value")
		assert.Equal(t, "fallback-value", getEnvWithFallback("TEST_PRIMARY", "TEST_FALLBACK"))
	})

	t.Run("returns empty when both empty", func(t *testing.T) {
		t.Setenv("TEST_PRIMARY", "")
		t.Setenv("TEST_FALLBACK", "")
		assert.Equal(t, "", getEnvWithFallback("TEST_PRIMARY", "TEST_FALLBACK"))
	})
}

func TestDefaultConfigPath(t *testing.T) {
	t.Run("XDG_CONFIG_HOME", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
		assert.Equal(t, filepath.Join("/tmp/xdg", "mdd", "config.yml"), DefaultConfigPath())
	})

	t.Run("home fallback", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", "")
		path := DefaultConfigPath()

		home, err := os.UserHomeDir()
		require.NoError(t, err)

		assert.True(t, strings.HasPrefix(path, home))
		assert.Contains(t, path, "mdd")
		assert.Equal(t, ".yml", filepath.Ext(path))
	})
}

func TestConfig_Save_and_Load(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "nested", "config.yml")

	original := Config{
		OutputFormat:  "json",
		Standalone:    true,
		UnsafeHTML:    true,
		TipIDs:        TipIDsNone,
		WatchDebounce: "300ms",
	}

	err := original.Save(configPath)
	require.NoError(t, err)

	loaded, err := Load(configPath)
	require.NoError(t, err)

	assert.Equal(t, original, *loaded)
}

func TestLoad_FileNotFound(t *testing.T) {
	_, err := Load("/nonexistent/path/config.yml")
	require.Error(t, err)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("output_format: [unclosed"), 0644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config file")
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Setenv("MDD_OUTPUT_FORMAT", "plain")

	cfg, err := LoadWithEnv(filepath.Join(t.TempDir(), "missing.yml"))
	require.NoError(t, err)
	assert.Equal(t, "plain", cfg.OutputFormat)
}
