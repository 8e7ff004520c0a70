package ai

import (
	"context"
)

// Canned responses returned by CannedClient
const (
	CannedCommitMessage = "feat: add new feature implementation"
	CannedAnalysis      = "This change adds new functionality to improve user experience."
)

// CannedClient implements Client with fixed responses
type CannedClient struct{}

// NewCannedClient creates a new CannedClient
func NewCannedClient() *CannedClient {
	return &CannedClient{}
}

// GenerateCommitMessage implements Client
func (c *CannedClient) GenerateCommitMessage(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return CannedCommitMessage, nil
}

// ExplainChanges implements Client. The analysis does not depend on hash.
func (c *CannedClient) ExplainChanges(ctx context.Context, _ string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return CannedAnalysis, nil
}
