// Package actions provides the behavior behind each ai-cli command.
//
// Each action corresponds to an ai-cli subcommand (commit, explain, config)
// and renders a fixed sequence of output lines for it. The AI output is
// canned: no repository is read and no model is called.
//
// Key patterns:
//   - Actions accept runtime.Context which provides Splog and build information
//   - Rendering (Lines) is pure and separate from writing (Dispatch)
package actions
