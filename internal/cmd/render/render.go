// Package render provides the render command.
package render

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/open-cli-collective/markdown-directives/internal/cmd/cmdutil"
	"github.com/open-cli-collective/markdown-directives/internal/config"
	"github.com/open-cli-collective/markdown-directives/internal/pipeline"
	"github.com/open-cli-collective/markdown-directives/internal/view"
	"github.com/open-cli-collective/markdown-directives/internal/watch"
)

type renderOptions struct {
	file       string
	out        string
	title      string
	standalone bool
	watch      bool
	noColor    bool

	cfg    *config.Config
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

// NewCmdRender creates the render command.
func NewCmdRender() *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render markdown with directives to HTML",
		Long: `Render markdown containing folding, hidden, hide and tip directives to HTML.

The source is read from the given file, or from stdin when no file is given.
Output goes to stdout unless --out is set. With --standalone the fragment is
wrapped in a complete page that inlines the stylesheet and client script the
widgets need.`,
		Example: `  # Render a fragment to stdout
  mdd render notes.md

  # Render a standalone page
  mdd render notes.md --standalone --out notes.html

  # Re-render on every save
  mdd render notes.md --standalone --out notes.html --watch

  # Render from stdin
  echo ':::hidden\nsecret\n:::' | mdd render`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := cmdutil.LoadGlobals(cmd)
			if err != nil {
				return err
			}
			if len(args) == 1 {
				opts.file = args[0]
			}
			if !cmd.Flags().Changed("standalone") {
				opts.standalone = g.Config.Standalone
			}
			opts.noColor = g.NoColor
			opts.cfg = g.Config
			opts.stdin = cmd.InOrStdin()
			opts.stdout = cmd.OutOrStdout()
			opts.stderr = cmd.ErrOrStderr()

			if opts.watch {
				ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
				defer stop()
				return runWatch(ctx, opts)
			}
			return runRender(opts, pipeline.New(pipeline.OptionsFromConfig(opts.cfg)))
		},
	}

	cmd.Flags().StringVar(&opts.out, "out", "", "Write HTML to this file instead of stdout")
	cmd.Flags().StringVarP(&opts.title, "title", "t", "", "Page title for --standalone (default: file name)")
	cmd.Flags().BoolVarP(&opts.standalone, "standalone", "s", false, "Emit a complete HTML page")
	cmd.Flags().BoolVarP(&opts.watch, "watch", "w", false, "Re-render whenever the file changes")

	return cmd
}

func runRender(opts *renderOptions, p *pipeline.Pipeline) error {
	src, err := cmdutil.ReadSource(opts.file, opts.stdin)
	if err != nil {
		return err
	}

	var html string
	if opts.standalone {
		html, err = p.RenderPage(pageTitle(opts), src)
	} else {
		html, err = p.Render(src)
	}
	if err != nil {
		return err
	}

	return cmdutil.WriteResult(opts.out, opts.stdout, html)
}

func pageTitle(opts *renderOptions) string {
	if opts.title != "" {
		return opts.title
	}
	if opts.file != "" && opts.file != "-" {
		return filepath.Base(opts.file)
	}
	return "Document"
}

// runWatch renders once, then again after every debounced change, until ctx
// is done. Render failures are reported and watching continues.
func runWatch(ctx context.Context, opts *renderOptions) error {
	if opts.file == "" || opts.file == "-" {
		return errors.New("--watch needs a file argument")
	}

	status := view.NewRenderer(view.FormatTable, opts.noColor)
	status.SetWriter(opts.stderr)

	p := pipeline.New(pipeline.OptionsFromConfig(opts.cfg))
	render := func() {
		if err := runRender(opts, p); err != nil {
			status.Error(err.Error())
			return
		}
		if opts.out != "" {
			status.Success(fmt.Sprintf("Rendered %s to %s", opts.file, opts.out))
		}
	}

	w, err := watch.New(watch.Config{Path: opts.file, DebounceDur: opts.cfg.Debounce()})
	if err != nil {
		return err
	}
	defer func() { _ = w.Stop() }()

	onChange, err := w.Start()
	if err != nil {
		return err
	}

	render()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-onChange:
			render()
		}
	}
}
