package configcmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/open-cli-collective/markdown-directives/internal/config"
)

// NewCmdShow creates the config show command.
func NewCmdShow() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Display current configuration",
		Long:  `Display the effective mdd configuration with the source of each value.`,
		Example: `  # Show current config
  mdd config show`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			noColor, _ := cmd.Flags().GetBool("no-color")
			return runShow(noColor)
		},
	}

	return cmd
}

func runShow(noColor bool) error {
	if noColor {
		color.NoColor = true
	}

	configPath := config.DefaultConfigPath()

	// Load file config (may not exist)
	fileCfg, fileErr := config.Load(configPath)
	if fileErr != nil {
		fileCfg = &config.Config{}
	}

	// Load full config with env overrides
	cfg, _ := config.LoadWithEnv(configPath)

	bold := color.New(color.Bold)
	dim := color.New(color.Faint)

	printField := func(label, value string, fromFile bool, envVars ...string) {
		_, _ = bold.Printf("%-16s", label+":")
		fmt.Print(value)

		source := "default"
		if fromFile {
			source = "config"
		}
		for _, envVar := range envVars {
			if os.Getenv(envVar) != "" {
				source = envVar
				break
			}
		}

		_, _ = dim.Printf("  (source: %s)\n", source)
	}

	printField("Output format", outputFormatOrDefault(cfg), fileCfg.OutputFormat != "", "MDD_OUTPUT_FORMAT")
	printField("Standalone", strconv.FormatBool(cfg.Standalone), fileCfg.Standalone, "MDD_STANDALONE")
	printField("GFM", strconv.FormatBool(!cfg.DisableGFM), fileCfg.DisableGFM, "MDD_DISABLE_GFM")
	printField("Unsafe HTML", strconv.FormatBool(cfg.UnsafeHTML), fileCfg.UnsafeHTML, "MDD_UNSAFE_HTML")
	printField("Tip ids", tipIDsOrDefault(cfg), fileCfg.TipIDs != "", "MDD_TIP_IDS")
	printField("Watch debounce", cfg.Debounce().String(), fileCfg.WatchDebounce != "", "MDD_WATCH_DEBOUNCE")
	printField("Cache TTL", cacheTTLString(cfg), fileCfg.CacheTTL != "", "MDD_CACHE_TTL")
	printField("No color", strconv.FormatBool(cfg.NoColor), fileCfg.NoColor, "MDD_NO_COLOR", "NO_COLOR")

	fmt.Println()
	_, _ = dim.Printf("Config file: %s\n", configPath)
	if fileErr != nil {
		_, _ = dim.Println("(file not found)")
	}

	return nil
}

func outputFormatOrDefault(cfg *config.Config) string {
	if cfg.OutputFormat == "" {
		return "table"
	}
	return cfg.OutputFormat
}

func tipIDsOrDefault(cfg *config.Config) string {
	if cfg.TipIDs == "" {
		return config.TipIDsUUID
	}
	return cfg.TipIDs
}

func cacheTTLString(cfg *config.Config) string {
	if ttl := cfg.CacheExpiration(); ttl >= 0 {
		return ttl.String()
	}
	return "never expires"
}
