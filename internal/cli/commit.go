package cli

import (
	"github.com/spf13/cobra"

	"aicli.dev/aicli/internal/actions"
	"aicli.dev/aicli/internal/cli/helpers"
	"aicli.dev/aicli/internal/command"
	"aicli.dev/aicli/internal/runtime"
)

// newCommitCmd creates the commit command
func newCommitCmd() *cobra.Command {
	var (
		message string
	)

	cmd := &cobra.Command{
		Use:   "commit",
		Short: "Generate a commit message (mock version)",
		Long: `Generate a commit message for the staged changes.

This is a mock: it prints a canned message, or the message given with
--message, and does not create a commit.`,
		Args: usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			inv := command.NewCommit(message, cmd.Flags().Changed("message"))
			return helpers.Run(cmd, func(ctx *runtime.Context) error {
				return actions.CommitAction(ctx, inv)
			})
		},
	}

	cmd.Flags().StringVarP(&message, "message", "m", "", "Use the given commit message instead of generating one")

	return cmd
}
