// Package ai provides the AI-backed content for ai-cli commands.
//
// Only a canned implementation ships: it returns fixed text and never
// calls a model.
package ai

import (
	"context"
)

// Client defines the interface for AI-generated command content.
type Client interface {
	// GenerateCommitMessage returns a commit message for the staged changes.
	GenerateCommitMessage(ctx context.Context) (string, error)

	// ExplainChanges returns an analysis of a commit, or of the staged
	// changes when hash is empty.
	ExplainChanges(ctx context.Context, hash string) (string, error)
}
