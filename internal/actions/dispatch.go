package actions

import (
	"fmt"

	"aicli.dev/aicli/internal/command"
	"aicli.dev/aicli/internal/config"
	"aicli.dev/aicli/internal/errors"
	"aicli.dev/aicli/internal/runtime"
	"aicli.dev/aicli/internal/tui"
)

// Line is a single line of command output
type Line struct {
	Role tui.Role
	Text string
}

func banner(text string) Line { return Line{Role: tui.RoleBanner, Text: text} }
func detail(text string) Line { return Line{Role: tui.RoleDetail, Text: text} }
func result(text string) Line { return Line{Role: tui.RoleResult, Text: text} }

// Content holds the generated and build text rendered into command output
type Content struct {
	Build         config.BuildInfo
	CommitMessage string
	Analysis      string
}

// Lines renders the output of inv from content
func Lines(inv command.Invocation, content Content) ([]Line, error) {
	switch inv := inv.(type) {
	case command.Commit:
		return commitLines(inv, content), nil
	case command.Explain:
		return explainLines(inv, content), nil
	case command.Config:
		return configLines(inv, content), nil
	case nil:
		return nil, errors.NewUnknownInvocationError("")
	default:
		return nil, errors.NewUnknownInvocationError(inv.Name())
	}
}

// Dispatch writes the output of inv through the context's logger
func Dispatch(ctx *runtime.Context, inv command.Invocation) error {
	if inv == nil {
		return errors.NewUnknownInvocationError("")
	}

	content, err := generate(ctx, inv)
	if err != nil {
		return err
	}

	lines, err := Lines(inv, content)
	if err != nil {
		return err
	}

	ctx.Splog.Debug("dispatching %s (%d lines)", inv.Name(), len(lines))
	for _, line := range lines {
		ctx.Splog.Emit(line.Role, line.Text)
	}
	return nil
}

// generate asks the AI client for the text inv needs
func generate(ctx *runtime.Context, inv command.Invocation) (Content, error) {
	content := Content{Build: ctx.Build}

	switch inv := inv.(type) {
	case command.Commit:
		if _, ok := inv.Message(); ok {
			break
		}
		msg, err := ctx.AI.GenerateCommitMessage(ctx)
		if err != nil {
			return content, fmt.Errorf("failed to generate commit message: %w", err)
		}
		content.CommitMessage = msg
	case command.Explain:
		hash, _ := inv.Hash()
		analysis, err := ctx.AI.ExplainChanges(ctx, hash)
		if err != nil {
			return content, fmt.Errorf("failed to explain changes: %w", err)
		}
		content.Analysis = analysis
	}

	return content, nil
}
