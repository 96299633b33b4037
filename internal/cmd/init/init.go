// Package init provides the init command for mdd.
package init

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/open-cli-collective/markdown-directives/internal/config"
	"github.com/open-cli-collective/markdown-directives/internal/pipeline"
)

// NewCmdInit creates the init command.
func NewCmdInit() *cobra.Command {
	var (
		output   string
		noVerify bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize mdd configuration",
		Long: `Initialize mdd with your rendering preferences.

This command will guide you through choosing the default output format,
whether rendered HTML is a standalone page, Markdown extensions, raw HTML
handling and tooltip ids. The configuration will be saved to
~/.config/mdd/config.yml.`,
		Example: `  # Interactive setup
  mdd init

  # Pre-select JSON output for scan and params
  mdd init --output-format json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			if configPath == "" {
				configPath = config.DefaultConfigPath()
			}
			return runInit(configPath, output, noVerify)
		},
	}

	cmd.Flags().StringVar(&output, "output-format", "", "Default output format (table, json, plain)")
	cmd.Flags().BoolVar(&noVerify, "no-verify", false, "Skip rendering the sample document")

	return cmd
}

func runInit(configPath, prefillOutput string, noVerify bool) error {
	// Check if config already exists
	if _, err := os.Stat(configPath); err == nil {
		var overwrite bool
		err := huh.NewConfirm().
			Title("Configuration already exists").
			Description(fmt.Sprintf("Overwrite %s?", configPath)).
			Value(&overwrite).
			Run()
		if err != nil {
			return err
		}
		if !overwrite {
			fmt.Println("Initialization cancelled.")
			return nil
		}
	}

	cfg := &config.Config{
		OutputFormat:  "table",
		TipIDs:        config.TipIDsUUID,
		WatchDebounce: config.DefaultWatchDebounce.String(),
	}
	if prefillOutput != "" {
		cfg.OutputFormat = prefillOutput
	}

	enableGFM := !cfg.DisableGFM

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Output format").
				Description("Used by scan and params").
				Options(huh.NewOptions("table", "json", "plain")...).
				Value(&cfg.OutputFormat),

			huh.NewConfirm().
				Title("Standalone pages").
				Description("Wrap rendered HTML in a full page with the stylesheet and client script").
				Value(&cfg.Standalone),

			huh.NewConfirm().
				Title("GitHub Flavored Markdown").
				Description("Tables, strikethrough, task lists and autolinks").
				Value(&enableGFM),

			huh.NewConfirm().
				Title("Allow raw HTML").
				Description("Pass HTML written in the source through unchanged").
				Value(&cfg.UnsafeHTML),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Tooltip ids").
				Description("uuid adds a unique data-tip-id to every tooltip").
				Options(huh.NewOptions(config.TipIDsUUID, config.TipIDsNone)...).
				Value(&cfg.TipIDs),

			huh.NewInput().
				Title("Watch debounce").
				Description("Delay before re-rendering in --watch mode").
				Placeholder("200ms").
				Value(&cfg.WatchDebounce).
				Validate(validateDebounce),
		),
	)

	if err := form.Run(); err != nil {
		return err
	}
	cfg.DisableGFM = !enableGFM

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	// Verify rendering unless skipped
	if !noVerify {
		fmt.Print("Rendering sample document... ")
		if err := verifyRendering(cfg); err != nil {
			fmt.Println("failed!")
			return fmt.Errorf("render verification failed: %w", err)
		}
		fmt.Println("success!")
	}

	if err := cfg.Save(configPath); err != nil {
		return err
	}

	fmt.Printf("\nConfiguration saved to %s\n", configPath)
	fmt.Println("\nYou're all set! Try running:")
	fmt.Println("  mdd render notes.md --standalone --out notes.html")
	fmt.Println("  mdd scan notes.md")

	return nil
}

func validateDebounce(s string) error {
	if s == "" {
		return nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("not a duration: %s", s)
	}
	if d <= 0 {
		return errors.New("debounce must be positive")
	}
	return nil
}

// verifyRendering runs the pipeline self test with cfg.
func verifyRendering(cfg *config.Config) error {
	return pipeline.FirstFailure(pipeline.New(pipeline.OptionsFromConfig(cfg)).SelfTest())
}
