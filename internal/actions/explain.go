package actions

import (
	"aicli.dev/aicli/internal/command"
	"aicli.dev/aicli/internal/runtime"
)

const (
	explainBanner         = "🔍 AI is analyzing the changes..."
	explainCommitPrefix   = "Analyzing commit: "
	explainStaged         = "Analyzing staged changes..."
	explainAnalysisPrefix = "📄 Analysis: "
)

// ExplainAction reports a mock analysis of a commit or of the staged changes
func ExplainAction(ctx *runtime.Context, inv command.Explain) error {
	return Dispatch(ctx, inv)
}

func explainLines(inv command.Explain, content Content) []Line {
	lines := []Line{banner(explainBanner)}
	if hash, ok := inv.Hash(); ok {
		lines = append(lines, detail(explainCommitPrefix+hash))
	} else {
		lines = append(lines, detail(explainStaged))
	}
	return append(lines, result(explainAnalysisPrefix+content.Analysis))
}
