package cli

import (
	"github.com/spf13/cobra"

	"aicli.dev/aicli/internal/actions"
	"aicli.dev/aicli/internal/cli/helpers"
	"aicli.dev/aicli/internal/command"
	"aicli.dev/aicli/internal/runtime"
)

// newExplainCmd creates the explain command
func newExplainCmd() *cobra.Command {
	var (
		hash string
	)

	cmd := &cobra.Command{
		Use:   "explain",
		Short: "Explain changes (mock version)",
		Long: `Explain the staged changes, or a specific commit with --hash.

This is a mock: the analysis printed is canned.`,
		Args: usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			inv := command.NewExplain(hash, cmd.Flags().Changed("hash"))
			return helpers.Run(cmd, func(ctx *runtime.Context) error {
				return actions.ExplainAction(ctx, inv)
			})
		},
	}

	cmd.Flags().StringVar(&hash, "hash", "", "Commit hash to explain instead of the staged changes")

	return cmd
}
