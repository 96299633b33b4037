// Package root provides the root command for the mdd CLI.
package root

import (
	"github.com/spf13/cobra"

	"github.com/open-cli-collective/markdown-directives/internal/cmd/completion"
	"github.com/open-cli-collective/markdown-directives/internal/cmd/configcmd"
	"github.com/open-cli-collective/markdown-directives/internal/cmd/export"
	initcmd "github.com/open-cli-collective/markdown-directives/internal/cmd/init"
	"github.com/open-cli-collective/markdown-directives/internal/cmd/params"
	"github.com/open-cli-collective/markdown-directives/internal/cmd/render"
	"github.com/open-cli-collective/markdown-directives/internal/cmd/scan"
	"github.com/open-cli-collective/markdown-directives/internal/cmd/script"
	"github.com/open-cli-collective/markdown-directives/internal/version"
)

// NewCmdRoot creates the root command for mdd.
func NewCmdRoot() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mdd",
		Short: "Render markdown with folding, hidden and tooltip directives",
		Long: `mdd renders markdown extended with container and inline directives:

  :::folding [open] [#color]   collapsible panel, first line is the title
  :::hidden [display=...]      content behind a one-shot reveal button
  {hide}...{/hide}             inline reveal
  {tip text=... content=...}{/tip}  tooltip

Get started by running: mdd init`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version.Version,
	}

	// Global flags
	cmd.PersistentFlags().StringP("config", "c", "", "config file (default: ~/.config/mdd/config.yml)")
	cmd.PersistentFlags().StringP("output", "o", "table", "output format: table, json, plain")
	cmd.PersistentFlags().Bool("no-color", false, "disable colored output")

	cmd.SetVersionTemplate(version.String() + "\n")

	// Subcommands
	cmd.AddCommand(initcmd.NewCmdInit())
	cmd.AddCommand(configcmd.NewCmdConfig())
	cmd.AddCommand(render.NewCmdRender())
	cmd.AddCommand(scan.NewCmdScan())
	cmd.AddCommand(params.NewCmdParams())
	cmd.AddCommand(export.NewCmdExport())
	cmd.AddCommand(script.NewCmdScript())
	cmd.AddCommand(completion.NewCmdCompletion())

	return cmd
}
