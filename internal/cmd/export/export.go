// Package export provides the export command.
package export

import (
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/open-cli-collective/markdown-directives/internal/cmd/cmdutil"
	"github.com/open-cli-collective/markdown-directives/internal/config"
	"github.com/open-cli-collective/markdown-directives/internal/pipeline"
	"github.com/open-cli-collective/markdown-directives/pkg/md"
)

type exportOptions struct {
	file     string
	out      string
	tooltips bool

	cfg    *config.Config
	stdin  io.Reader
	stdout io.Writer
}

// NewCmdExport creates the export command.
func NewCmdExport() *cobra.Command {
	opts := &exportOptions{}

	cmd := &cobra.Command{
		Use:   "export [file]",
		Short: "Convert directives to portable markdown",
		Long: `Render a document and convert the result back to plain markdown that any
renderer understands. Folding titles become bold paragraphs, hidden content is
shown inline, and tooltips keep their visible text.`,
		Example: `  # Flatten directives
  mdd export notes.md

  # Keep tooltip content in parentheses
  mdd export notes.md --tooltips --out README.md`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := cmdutil.LoadGlobals(cmd)
			if err != nil {
				return err
			}
			if len(args) == 1 {
				opts.file = args[0]
			}
			opts.cfg = g.Config
			opts.stdin = cmd.InOrStdin()
			opts.stdout = cmd.OutOrStdout()
			return runExport(opts)
		},
	}

	cmd.Flags().StringVar(&opts.out, "out", "", "Write markdown to this file instead of stdout")
	cmd.Flags().BoolVar(&opts.tooltips, "tooltips", false, "Append tooltip content in parentheses")

	return cmd
}

func runExport(opts *exportOptions) error {
	src, err := cmdutil.ReadSource(opts.file, opts.stdin)
	if err != nil {
		return err
	}

	out, err := pipeline.New(pipeline.OptionsFromConfig(opts.cfg)).
		Export(src, md.ExportOptions{ShowTooltips: opts.tooltips})
	if err != nil {
		return err
	}
	if !strings.HasSuffix(out, "\n") {
		out += "\n"
	}

	return cmdutil.WriteResult(opts.out, opts.stdout, out)
}
