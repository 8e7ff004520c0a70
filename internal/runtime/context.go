package runtime

import (
	"context"
	"fmt"
	"io"

	"aicli.dev/aicli/internal/ai"
	"aicli.dev/aicli/internal/config"
	"aicli.dev/aicli/internal/tui"
)

// Context provides access to output, AI content and build information for commands
type Context struct {
	context.Context
	Splog *tui.Splog
	AI    ai.Client
	Build config.BuildInfo
}

// NewContext creates a new context writing command output to w and console
// debug messages to debugW, with logging configured by cfg
func NewContext(parent context.Context, w, debugW io.Writer, cfg config.LogConfig) (*Context, error) {
	splog, err := tui.NewSplogWithConfig(w, debugW, cfg)
	if err != nil {
		return nil, err
	}

	if parent == nil {
		parent = context.Background()
	}

	return &Context{
		Context: parent,
		Splog:   splog,
		AI:      ai.NewCannedClient(),
		Build:   config.GetBuildInfo(),
	}, nil
}

// Close releases resources held by the context
func (c *Context) Close() error {
	return c.Splog.Close()
}

type contextKey struct{}

// WithContext returns a copy of parent carrying rctx
func WithContext(parent context.Context, rctx *Context) context.Context {
	return context.WithValue(parent, contextKey{}, rctx)
}

// GetContext returns the runtime context stored in ctx
func GetContext(ctx context.Context) (*Context, error) {
	if ctx == nil {
		return nil, fmt.Errorf("runtime context not initialized")
	}
	rctx, ok := ctx.Value(contextKey{}).(*Context)
	if !ok || rctx == nil {
		return nil, fmt.Errorf("runtime context not initialized")
	}
	return rctx, nil
}
