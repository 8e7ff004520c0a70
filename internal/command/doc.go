// Package command defines the parsed form of an ai-cli invocation.
//
// An Invocation is one of three variants:
//   - Commit, carrying an optional commit message
//   - Explain, carrying an optional commit hash
//   - Config, carrying the verbose switch
//
// Values are immutable once constructed and live only for the duration of
// a single process run.
package command
