// Package tui provides terminal output for ai-cli.
//
// It handles:
//   - Structured logging and status reporting (Splog)
//   - Optional rotating file logs (using lumberjack)
//   - Terminal styling (using lipgloss, only when writing to a terminal)
package tui
