// Package completion provides shell completion generation commands.
package completion

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

type shell struct {
	name    string
	install string
	gen     func(root *cobra.Command, w io.Writer) error
}

var shells = []shell{
	{
		name: "bash",
		install: `  # Linux
  mdd completion bash > /etc/bash_completion.d/mdd

  # macOS (requires bash-completion)
  mdd completion bash > $(brew --prefix)/etc/bash_completion.d/mdd`,
		gen: func(root *cobra.Command, w io.Writer) error { return root.GenBashCompletion(w) },
	},
	{
		name: "zsh",
		install: `  # Ensure compinit is loaded in ~/.zshrc, then
  mdd completion zsh > "${fpath[1]}/_mdd"`,
		gen: func(root *cobra.Command, w io.Writer) error { return root.GenZshCompletion(w) },
	},
	{
		name:    "fish",
		install: `  mdd completion fish > ~/.config/fish/completions/mdd.fish`,
		gen:     func(root *cobra.Command, w io.Writer) error { return root.GenFishCompletion(w, true) },
	},
	{
		name: "powershell",
		install: `  # Add the output to your profile
  mdd completion powershell >> $PROFILE`,
		gen: func(root *cobra.Command, w io.Writer) error { return root.GenPowerShellCompletionWithDesc(w) },
	},
}

// NewCmdCompletion creates the completion command.
func NewCmdCompletion() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for mdd.

These scripts enable tab-completion for commands, flags, and arguments.
See each sub-command's help for installation instructions.`,
	}

	for _, sh := range shells {
		cmd.AddCommand(newShellCmd(sh))
	}

	return cmd
}

func newShellCmd(sh shell) *cobra.Command {
	return &cobra.Command{
		Use:   sh.name,
		Short: fmt.Sprintf("Generate %s completion script", sh.name),
		Long: fmt.Sprintf(`Generate %[1]s completion script for mdd.

To load completions in your current shell session:

  source <(mdd completion %[1]s)

To load completions for every new session:

%[2]s`, sh.name, sh.install),
		Example:               fmt.Sprintf("  mdd completion %s", sh.name),
		Args:                  cobra.NoArgs,
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return sh.gen(cmd.Root(), cmd.OutOrStdout())
		},
	}
}
