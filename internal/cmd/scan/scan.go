// Package scan provides the scan command.
package scan

import (
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/open-cli-collective/markdown-directives/internal/cmd/cmdutil"
	"github.com/open-cli-collective/markdown-directives/internal/config"
	"github.com/open-cli-collective/markdown-directives/internal/pipeline"
	"github.com/open-cli-collective/markdown-directives/internal/view"
)

type scanOptions struct {
	file    string
	summary bool
	strict  bool
	output  string
	noColor bool

	cfg    *config.Config
	stdin  io.Reader
	stdout io.Writer
}

// NewCmdScan creates the scan command.
func NewCmdScan() *cobra.Command {
	opts := &scanOptions{}

	cmd := &cobra.Command{
		Use:   "scan [file]",
		Short: "List the directives in a markdown document",
		Long: `List every directive in a document with its line range, syntax and
parameters, including directives nested inside container bodies.

Openers that look like directives but never close are reported as warnings.`,
		Example: `  # List directives
  mdd scan notes.md

  # Count directives per tag
  mdd scan notes.md --summary

  # Fail when an opener is left unclosed
  mdd scan notes.md --strict

  # Machine-readable output
  mdd scan notes.md -o json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := cmdutil.LoadGlobals(cmd)
			if err != nil {
				return err
			}
			if len(args) == 1 {
				opts.file = args[0]
			}
			opts.output = g.Output
			opts.noColor = g.NoColor
			opts.cfg = g.Config
			opts.stdin = cmd.InOrStdin()
			opts.stdout = cmd.OutOrStdout()
			return runScan(opts)
		},
	}

	cmd.Flags().BoolVar(&opts.summary, "summary", false, "Print directive counts per tag instead of the full list")
	cmd.Flags().BoolVar(&opts.strict, "strict", false, "Exit with an error when the scan produced warnings")

	return cmd
}

func runScan(opts *scanOptions) error {
	src, err := cmdutil.ReadSource(opts.file, opts.stdin)
	if err != nil {
		return err
	}

	result := pipeline.New(pipeline.OptionsFromConfig(opts.cfg)).Scan(src)

	renderer := view.NewRenderer(view.Format(opts.output), opts.noColor)
	renderer.SetWriter(opts.stdout)

	if opts.summary {
		counts := result.Count()
		tags := make([]string, 0, len(counts))
		for tag := range counts {
			tags = append(tags, tag)
		}
		sort.Strings(tags)

		rows := make([][]string, 0, len(tags))
		for _, tag := range tags {
			rows = append(rows, []string{tag, strconv.Itoa(counts[tag])})
		}
		renderer.RenderTable([]string{"TAG", "COUNT"}, rows)
	} else if err := renderer.RenderDirectives(result); err != nil {
		return err
	}

	if opts.strict && len(result.Warnings) > 0 {
		return fmt.Errorf("scan found %d warning(s)", len(result.Warnings))
	}
	return nil
}
