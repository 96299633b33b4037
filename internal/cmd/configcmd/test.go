package configcmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/open-cli-collective/markdown-directives/internal/config"
	"github.com/open-cli-collective/markdown-directives/internal/pipeline"
)

// NewCmdTest creates the config test command.
func NewCmdTest() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "test",
		Short: "Render a sample document with the current configuration",
		Long: `Render a document containing every directive family with the current
configuration and check that each widget, the render cache and export work.`,
		Example: `  # Test configuration
  mdd config test`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			noColor, _ := cmd.Flags().GetBool("no-color")
			return runTest(noColor)
		},
	}

	return cmd
}

func runTest(noColor bool, cfgs ...*config.Config) error {
	if noColor {
		color.NoColor = true
	}

	var cfg *config.Config
	if len(cfgs) > 0 && cfgs[0] != nil {
		cfg = cfgs[0]
	} else {
		var err error
		cfg, err = config.LoadWithEnv(config.DefaultConfigPath())
		if err != nil {
			return fmt.Errorf("failed to load config: %w (run 'mdd init' to configure)", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w (run 'mdd init' to configure)", err)
	}

	green := color.New(color.FgGreen)
	red := color.New(color.FgRed)

	fmt.Println("Rendering sample document...")

	checks := pipeline.New(pipeline.OptionsFromConfig(cfg)).SelfTest()
	for _, c := range checks {
		if c.OK() {
			_, _ = green.Printf("✓ %s\n", c.Name)
		} else {
			_, _ = red.Printf("✗ %s: %v\n", c.Name, c.Err)
		}
	}

	if err := pipeline.FirstFailure(checks); err != nil {
		fmt.Println("\nCheck your settings with: mdd config show")
		fmt.Println("Reconfigure with: mdd init")
		return fmt.Errorf("self test failed: %w", err)
	}

	return nil
}
