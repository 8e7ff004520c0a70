package cli

import (
	"github.com/spf13/cobra"

	"aicli.dev/aicli/internal/actions"
	"aicli.dev/aicli/internal/cli/helpers"
	"aicli.dev/aicli/internal/command"
	"aicli.dev/aicli/internal/runtime"
)

// newConfigCmd creates the config command
func newConfigCmd() *cobra.Command {
	var (
		verbose bool
	)

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show configuration",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return helpers.Run(cmd, func(ctx *runtime.Context) error {
				return actions.ConfigAction(ctx, command.NewConfig(verbose))
			})
		},
	}

	cmd.Flags().BoolVar(&verbose, "verbose", false, "Show version, features and build status")

	return cmd
}
