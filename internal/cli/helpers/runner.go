package helpers

import (
	"github.com/spf13/cobra"

	"aicli.dev/aicli/internal/config"
	"aicli.dev/aicli/internal/runtime"
)

// Run is a helper that provides a runtime context to a command's execution function.
// A context already attached to the command is used as is and left open for its owner.
// Otherwise one is created from the command's writers and closed once fn returns.
func Run(cmd *cobra.Command, fn func(ctx *runtime.Context) error) (err error) {
	if ctx, getErr := runtime.GetContext(cmd.Context()); getErr == nil {
		return fn(ctx)
	}

	ctx, err := runtime.NewContext(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), config.GetLogConfig())
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := ctx.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()
	return fn(ctx)
}
