package cli

import (
	"bytes"
	"context"
	stderrors "errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"aicli.dev/aicli/internal/ai"
	"aicli.dev/aicli/internal/config"
	"aicli.dev/aicli/internal/errors"
	"aicli.dev/aicli/internal/runtime"
)

// execute runs the root command in-process with logging env cleared and returns stdout and stderr
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("AICLI_LOG_FILE", "")
	t.Setenv("DEBUG", "")
	return run(t, context.Background(), args...)
}

// run executes the root command under ctx without touching the environment
func run(t *testing.T, ctx context.Context, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	cmd := NewRootCmd("dev", "none", "unknown")
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetContext(ctx)
	if args == nil {
		// cobra falls back to os.Args for a nil slice
		args = []string{}
	}
	cmd.SetArgs(args)

	err := Execute(cmd)
	return stdout.String(), stderr.String(), err
}

func TestCommitCommand(t *testing.T) {
	t.Run("generates a message when none is given", func(t *testing.T) {
		out, _, err := execute(t, "commit")
		require.NoError(t, err)
		require.Equal(t,
			"🤖 AI is generating your commit message...\n"+
				"✨ Generated message: feat: add new feature implementation\n"+
				"✅ Commit successful! (Mock version)\n",
			out)
	})

	t.Run("uses the short message flag", func(t *testing.T) {
		out, _, err := execute(t, "commit", "-m", "foo")
		require.NoError(t, err)
		require.Contains(t, out, "Using provided message: foo\n")
		require.Contains(t, out, "✅ Commit successful! (Mock version)\n")
		require.NotContains(t, out, "Generated message")
	})

	t.Run("uses the long message flag", func(t *testing.T) {
		out, _, err := execute(t, "commit", "--message", "docs: update readme")
		require.NoError(t, err)
		require.Contains(t, out, "Using provided message: docs: update readme\n")
	})

	t.Run("empty message counts as provided", func(t *testing.T) {
		out, _, err := execute(t, "commit", "--message=")
		require.NoError(t, err)
		require.Contains(t, out, "Using provided message: \n")
		require.NotContains(t, out, "Generated message")
	})

	t.Run("message is printed verbatim", func(t *testing.T) {
		out, _, err := execute(t, "commit", "-m", "100% done {{.x}}")
		require.NoError(t, err)
		require.Contains(t, out, "Using provided message: 100% done {{.x}}\n")
	})
}

func TestExplainCommand(t *testing.T) {
	t.Run("analyzes staged changes by default", func(t *testing.T) {
		out, _, err := execute(t, "explain")
		require.NoError(t, err)
		require.Equal(t,
			"🔍 AI is analyzing the changes...\n"+
				"Analyzing staged changes...\n"+
				"📄 Analysis: This change adds new functionality to improve user experience.\n",
			out)
	})

	t.Run("analyzes the given commit", func(t *testing.T) {
		out, _, err := execute(t, "explain", "--hash", "abc123")
		require.NoError(t, err)
		require.Equal(t,
			"🔍 AI is analyzing the changes...\n"+
				"Analyzing commit: abc123\n"+
				"📄 Analysis: This change adds new functionality to improve user experience.\n",
			out)
	})
}

func TestConfigCommand(t *testing.T) {
	t.Run("prints only the banner", func(t *testing.T) {
		out, _, err := execute(t, "config")
		require.NoError(t, err)
		require.Equal(t, "⚙️  AI CLI Configuration (Minimal Version)\n", out)
	})

	t.Run("verbose prints build details in order", func(t *testing.T) {
		out, _, err := execute(t, "config", "--verbose")
		require.NoError(t, err)
		require.Equal(t,
			"⚙️  AI CLI Configuration (Minimal Version)\n"+
				"  Version: 0.1.0-minimal\n"+
				"  Features: Basic CLI structure\n"+
				"  Status: ✅ Build working!\n",
			out)
	})
}

func TestUsageErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"no subcommand", nil},
		{"unknown subcommand", []string{"push"}},
		{"unknown flag", []string{"commit", "--amend"}},
		{"missing flag value", []string{"explain", "--hash"}},
		{"unexpected argument", []string{"config", "extra"}},
		{"verbose takes no short form", []string{"config", "-v"}},
		{"completion is not a command", []string{"completion", "bash"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, stderr, err := execute(t, tt.args...)
			require.Error(t, err)
			require.Contains(t, stderr, "Usage:")
			require.ErrorIs(t, err, errors.ErrUsage)
			require.Equal(t, errors.ExitUsage, errors.ExitCode(err))
			require.NotContains(t, out, "AI is")
		})
	}
}

func TestVersionFlag(t *testing.T) {
	out, _, err := execute(t, "--version")
	require.NoError(t, err)
	require.Equal(t, "ai-cli version 0.1.0-minimal\n", out)
}

func TestHelp(t *testing.T) {
	out, _, err := execute(t, "--help")
	require.NoError(t, err)
	require.Contains(t, out, "commit")
	require.Contains(t, out, "explain")
	require.Contains(t, out, "config")
}

func TestOutputHasNoEscapeSequences(t *testing.T) {
	for _, args := range [][]string{{"commit"}, {"explain"}, {"config", "--verbose"}} {
		out, _, err := execute(t, args...)
		require.NoError(t, err)
		require.NotContains(t, out, "\x1b[")
	}
}

func TestDebugStaysOffStdout(t *testing.T) {
	t.Setenv("AICLI_LOG_FILE", "")
	t.Setenv("DEBUG", "1")

	out, stderr, err := run(t, context.Background(), "config")
	require.NoError(t, err)
	require.Equal(t, "⚙️  AI CLI Configuration (Minimal Version)\n", out)
	require.Contains(t, stderr, "dispatching config")
}

func TestRuntimeErrorsSkipUsage(t *testing.T) {
	rctx, err := runtime.NewContext(context.Background(), io.Discard, io.Discard, config.DefaultLogConfig())
	require.NoError(t, err)
	defer func() { require.NoError(t, rctx.Close()) }()

	mock := ai.NewMockClient()
	mock.SetMockCommitError(stderrors.New("model unavailable"))
	rctx.AI = mock

	_, stderr, err := run(t, runtime.WithContext(context.Background(), rctx), "commit")
	require.Error(t, err)
	require.Equal(t, errors.ExitFailure, errors.ExitCode(err))
	require.Contains(t, stderr, "model unavailable")
	require.NotContains(t, stderr, "Usage:")
}

func TestLogSetupFailure(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0600))
	t.Setenv("AICLI_LOG_FILE", filepath.Join(blocker, "logs", "ai-cli.log"))
	t.Setenv("DEBUG", "")

	t.Run("command reports the failure without usage", func(t *testing.T) {
		_, stderr, err := run(t, context.Background(), "config")
		require.Error(t, err)
		require.Equal(t, errors.ExitFailure, errors.ExitCode(err))
		require.Contains(t, stderr, "failed to create log directory")
		require.NotContains(t, stderr, "Usage:")
	})

	t.Run("missing subcommand never sets up logging", func(t *testing.T) {
		_, stderr, err := run(t, context.Background())
		require.ErrorIs(t, err, errors.ErrUsage)
		require.NotContains(t, stderr, "failed to create log directory")
	})
}
