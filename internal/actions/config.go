package actions

import (
	"fmt"

	"aicli.dev/aicli/internal/command"
	"aicli.dev/aicli/internal/runtime"
)

const configBanner = "⚙️  AI CLI Configuration (Minimal Version)"

// ConfigAction prints the tool configuration, with build details when verbose
func ConfigAction(ctx *runtime.Context, inv command.Config) error {
	return Dispatch(ctx, inv)
}

func configLines(inv command.Config, content Content) []Line {
	lines := []Line{banner(configBanner)}
	if !inv.Verbose() {
		return lines
	}
	build := content.Build
	return append(lines,
		detail(fmt.Sprintf("  Version: %s", build.Version)),
		detail(fmt.Sprintf("  Features: %s", build.Features)),
		detail(fmt.Sprintf("  Status: %s", build.Status)),
	)
}
