package actions

import (
	"aicli.dev/aicli/internal/command"
	"aicli.dev/aicli/internal/runtime"
)

const (
	commitBanner          = "🤖 AI is generating your commit message..."
	commitProvidedPrefix  = "Using provided message: "
	commitGeneratedPrefix = "✨ Generated message: "
	commitSuccess         = "✅ Commit successful! (Mock version)"
)

// CommitAction reports a mock commit. No commit is created.
func CommitAction(ctx *runtime.Context, inv command.Commit) error {
	return Dispatch(ctx, inv)
}

func commitLines(inv command.Commit, content Content) []Line {
	lines := []Line{banner(commitBanner)}
	if msg, ok := inv.Message(); ok {
		lines = append(lines, detail(commitProvidedPrefix+msg))
	} else {
		lines = append(lines, detail(commitGeneratedPrefix+content.CommitMessage))
	}
	return append(lines, result(commitSuccess))
}
