// Package script provides the script command.
package script

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/open-cli-collective/markdown-directives/internal/cmd/cmdutil"
	"github.com/open-cli-collective/markdown-directives/pkg/md"
)

type scriptOptions struct {
	css    bool
	out    string
	stdout io.Writer
}

// NewCmdScript creates the script command.
func NewCmdScript() *cobra.Command {
	opts := &scriptOptions{}

	cmd := &cobra.Command{
		Use:   "script",
		Short: "Print the client script or stylesheet for rendered fragments",
		Long: `Print the browser script that drives folding, reveal buttons and tooltips
in rendered HTML. Pages produced with --standalone already include it; use
this command when embedding fragments into your own templates.`,
		Example: `  # Write the client script
  mdd script --out directives.js

  # Write the stylesheet
  mdd script --css --out directives.css`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts.stdout = cmd.OutOrStdout()
			return runScript(opts)
		},
	}

	cmd.Flags().BoolVar(&opts.css, "css", false, "Print the stylesheet instead of the script")
	cmd.Flags().StringVar(&opts.out, "out", "", "Write to this file instead of stdout")

	return cmd
}

func runScript(opts *scriptOptions) error {
	content := md.ClientScript()
	if opts.css {
		content = md.Stylesheet()
	}
	return cmdutil.WriteResult(opts.out, opts.stdout, content)
}
