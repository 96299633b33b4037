// Package cmdutil holds helpers shared by mdd's subcommands.
package cmdutil

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/open-cli-collective/markdown-directives/internal/config"
	"github.com/open-cli-collective/markdown-directives/internal/view"
)

// ErrNoInput is returned when no file is given and stdin is a terminal.
var ErrNoInput = errors.New("no input: pass a file or pipe markdown on stdin")

// Globals are the root persistent flags merged with the loaded configuration.
type Globals struct {
	Config  *config.Config
	Output  string
	NoColor bool
}

// LoadGlobals reads the --config, --output and --no-color flags and the
// configuration they point at. Flags set on the command line win over the
// configuration file and environment.
func LoadGlobals(cmd *cobra.Command) (*Globals, error) {
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = config.DefaultConfigPath()
	}

	cfg, err := config.LoadWithEnv(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w (run 'mdd init' to configure)", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w (run 'mdd init' to configure)", err)
	}

	g := &Globals{Config: cfg}

	g.Output, _ = cmd.Flags().GetString("output")
	if !cmd.Flags().Changed("output") && cfg.OutputFormat != "" {
		g.Output = cfg.OutputFormat
	}
	if g.Output != "" {
		if err := view.ValidateFormat(g.Output); err != nil {
			return nil, err
		}
	}

	g.NoColor, _ = cmd.Flags().GetBool("no-color")
	g.NoColor = g.NoColor || cfg.NoColor

	return g, nil
}

// ReadSource reads markdown from file, or from stdin when file is empty or
// "-". A terminal on stdin is rejected rather than waited on.
func ReadSource(file string, stdin io.Reader) ([]byte, error) {
	if file != "" && file != "-" {
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("failed to read file: %w", err)
		}
		return data, nil
	}

	if f, ok := stdin.(*os.File); ok {
		stat, err := f.Stat()
		if err != nil || stat.Mode()&os.ModeCharDevice != 0 {
			return nil, ErrNoInput
		}
	}

	data, err := io.ReadAll(stdin)
	if err != nil {
		return nil, fmt.Errorf("failed to read stdin: %w", err)
	}
	return data, nil
}

// WriteResult writes s to path, or to w when path is empty or "-".
func WriteResult(path string, w io.Writer, s string) error {
	if path == "" || path == "-" {
		_, err := io.WriteString(w, s)
		return err
	}
	if err := os.WriteFile(path, []byte(s), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
