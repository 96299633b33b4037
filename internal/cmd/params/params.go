// Package params provides the params command.
package params

import (
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/open-cli-collective/markdown-directives/internal/cmd/cmdutil"
	"github.com/open-cli-collective/markdown-directives/internal/view"
	"github.com/open-cli-collective/markdown-directives/pkg/md"
)

type paramsOptions struct {
	output  string
	noColor bool
	stdout  io.Writer
}

// NewCmdParams creates the params command.
func NewCmdParams() *cobra.Command {
	opts := &paramsOptions{}

	cmd := &cobra.Command{
		Use:   "params <text>...",
		Short: "Show how a directive parameter string is tokenized",
		Long: `Tokenize a directive parameter string the same way the renderer does and
print the resulting key/value pairs in order.

Arguments are joined with single spaces. Quote the whole string to keep
quoting intact for the tokenizer.`,
		Example: `  # Inspect tooltip parameters
  mdd params 'text="Hello World" content=tip position=bottom'

  # As JSON
  mdd params -o json 'display=Reveal bg=#ff0'`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := cmdutil.LoadGlobals(cmd)
			if err != nil {
				return err
			}
			opts.output = g.Output
			opts.noColor = g.NoColor
			opts.stdout = cmd.OutOrStdout()
			return runParams(opts, strings.Join(args, " "))
		},
	}

	return cmd
}

func runParams(opts *paramsOptions, input string) error {
	renderer := view.NewRenderer(view.Format(opts.output), opts.noColor)
	renderer.SetWriter(opts.stdout)
	return renderer.RenderParams(md.Tokenize(input))
}
