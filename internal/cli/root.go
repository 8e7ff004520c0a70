package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"aicli.dev/aicli/internal/config"
	"aicli.dev/aicli/internal/errors"
)

// NewRootCmd creates the root cobra command
func NewRootCmd(version, commit, date string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "ai-cli",
		Short: "AI-powered CLI Git Assistant (Minimal Version)",
		Long: `AI-powered CLI Git Assistant (Minimal Version).

Generates commit messages and explains changes. This build prints canned
AI output: no repository is read, no model is called and no commit is made.`,
		Example: `  # Generate a commit message
  ai-cli commit

  # Use your own message
  ai-cli commit -m "fix: handle empty input"

  # Explain a specific commit
  ai-cli explain --hash abc123`,
		Version: config.DisplayVersion(version, commit, date),
		Args:    usageArgs(cobra.NoArgs),
		// Usage is printed by Execute, for usage errors only
		SilenceUsage: true,

		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return errors.NewUsageError(cmd.CommandPath(), fmt.Errorf("a subcommand is required"))
		},
	}

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return errors.NewUsageError(cmd.CommandPath(), err)
	})

	// Add subcommands
	rootCmd.AddCommand(newCommitCmd())
	rootCmd.AddCommand(newExplainCmd())
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

// Execute runs rootCmd and prints the failing command's usage after a usage error
func Execute(rootCmd *cobra.Command) error {
	cmd, err := rootCmd.ExecuteC()
	if cmd == nil {
		cmd = rootCmd
	}
	if err != nil && errors.ExitCode(err) == errors.ExitUsage {
		cmd.PrintErrln(cmd.UsageString())
	}
	return err
}

// usageArgs wraps a positional argument validator so its failures are usage errors
func usageArgs(validate cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := validate(cmd, args); err != nil {
			return errors.NewUsageError(cmd.CommandPath(), err)
		}
		return nil
	}
}
