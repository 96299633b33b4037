package configcmd

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/open-cli-collective/markdown-directives/internal/config"
)

// NewCmdClear creates the config clear command.
func NewCmdClear() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove stored configuration",
		Long: `Delete the mdd configuration file and list the settings that change as a
result. Each one falls back to its built-in default, or to an environment
variable when one is set.`,
		Example: `  # Clear config
  mdd config clear`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			noColor, _ := cmd.Flags().GetBool("no-color")
			return runClear(cmd.OutOrStdout(), noColor)
		},
	}

	return cmd
}

func runClear(w io.Writer, noColor bool) error {
	if noColor {
		color.NoColor = true
	}

	configPath := config.DefaultConfigPath()

	// An unreadable file is still removed, there is just nothing to compare.
	fileCfg, loadErr := config.Load(configPath)

	err := os.Remove(configPath)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove config file: %w", err)
	}

	green := color.New(color.FgGreen)
	bold := color.New(color.Bold)
	dim := color.New(color.Faint)

	if os.IsNotExist(err) {
		_, _ = green.Fprintf(w, "✓ No config file to remove\n")
		return nil
	}
	_, _ = green.Fprintf(w, "✓ Configuration cleared from %s\n", configPath)

	if loadErr != nil {
		return nil
	}

	changes := revertedSettings(fileCfg)
	if len(changes) == 0 {
		_, _ = dim.Fprintln(w, "The file set nothing; effective settings are unchanged.")
		return nil
	}

	_, _ = fmt.Fprintln(w, "\nSettings that changed:")
	for _, c := range changes {
		_, _ = bold.Fprintf(w, "  %-16s", c.Key)
		_, _ = fmt.Fprintf(w, "%s → %s", c.From, c.To)
		_, _ = dim.Fprintf(w, "  (source: %s)\n", c.Source)
	}

	return nil
}

// revertedSetting is a value the removed file set and what replaces it.
type revertedSetting struct {
	Key    string
	From   string
	To     string
	Source string
}

// revertedSettings lists every setting file holds with the value it takes
// once the file is gone: the environment override if set, else the default.
func revertedSettings(file *config.Config) []revertedSetting {
	next := &config.Config{}
	next.LoadFromEnv()

	var out []revertedSetting
	add := func(key string, set bool, from, to string, envVars ...string) {
		if !set {
			return
		}
		source := "default"
		for _, v := range envVars {
			if os.Getenv(v) != "" {
				source = v
				break
			}
		}
		out = append(out, revertedSetting{Key: key, From: from, To: to, Source: source})
	}

	add("output_format", file.OutputFormat != "", file.OutputFormat, outputFormatOrDefault(next), "MDD_OUTPUT_FORMAT")
	add("standalone", file.Standalone, "true", strconv.FormatBool(next.Standalone), "MDD_STANDALONE")
	add("disable_gfm", file.DisableGFM, "true", strconv.FormatBool(next.DisableGFM), "MDD_DISABLE_GFM")
	add("unsafe_html", file.UnsafeHTML, "true", strconv.FormatBool(next.UnsafeHTML), "MDD_UNSAFE_HTML")
	add("tip_ids", file.TipIDs != "", file.TipIDs, tipIDsOrDefault(next), "MDD_TIP_IDS")
	add("watch_debounce", file.WatchDebounce != "", file.WatchDebounce, next.Debounce().String(), "MDD_WATCH_DEBOUNCE")
	add("cache_ttl", file.CacheTTL != "", file.CacheTTL, cacheTTLString(next), "MDD_CACHE_TTL")
	add("no_color", file.NoColor, "true", strconv.FormatBool(next.NoColor), "MDD_NO_COLOR", "NO_COLOR")

	return out
}
