package ai

import (
	"context"
	"fmt"
	"sync"
)

// MockClient is a mock implementation of Client for testing purposes.
// It allows setting predefined responses and errors.
type MockClient struct {
	mu                sync.Mutex
	mockCommitMessage string
	mockAnalysis      string
	mockCommitError   error
	mockExplainError  error
	commitCallCount   int
	explainCallCount  int
	lastHash          string
}

// NewMockClient creates a new MockClient instance.
func NewMockClient() *MockClient {
	return &MockClient{}
}

// GenerateCommitMessage implements Client.
// Returns the mock commit message if set, otherwise returns an error.
func (m *MockClient) GenerateCommitMessage(_ context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.commitCallCount++

	if m.mockCommitError != nil {
		return "", m.mockCommitError
	}

	if m.mockCommitMessage == "" {
		return "", fmt.Errorf("no mock commit message set, use SetMockCommitMessage()")
	}

	return m.mockCommitMessage, nil
}

// ExplainChanges implements Client.
// Returns the mock analysis if set, otherwise returns an error.
func (m *MockClient) ExplainChanges(_ context.Context, hash string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.explainCallCount++
	m.lastHash = hash

	if m.mockExplainError != nil {
		return "", m.mockExplainError
	}

	if m.mockAnalysis == "" {
		return "", fmt.Errorf("no mock analysis set, use SetMockAnalysis()")
	}

	return m.mockAnalysis, nil
}

// SetMockCommitMessage sets the mock commit message to return for GenerateCommitMessage.
func (m *MockClient) SetMockCommitMessage(message string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.mockCommitMessage = message
	m.mockCommitError = nil
}

// SetMockCommitError sets the mock error to return for GenerateCommitMessage.
func (m *MockClient) SetMockCommitError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.mockCommitError = err
	m.mockCommitMessage = ""
}

// SetMockAnalysis sets the mock analysis to return for ExplainChanges.
func (m *MockClient) SetMockAnalysis(analysis string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.mockAnalysis = analysis
	m.mockExplainError = nil
}

// SetMockExplainError sets the mock error to return for ExplainChanges.
func (m *MockClient) SetMockExplainError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.mockExplainError = err
	m.mockAnalysis = ""
}

// CommitCallCount returns the number of times GenerateCommitMessage has been called.
func (m *MockClient) CommitCallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.commitCallCount
}

// ExplainCallCount returns the number of times ExplainChanges has been called.
func (m *MockClient) ExplainCallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.explainCallCount
}

// LastHash returns the last hash passed to ExplainChanges.
func (m *MockClient) LastHash() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastHash
}
