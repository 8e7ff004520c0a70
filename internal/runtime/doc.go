// Package runtime provides the execution context for ai-cli commands.
//
// It encapsulates shared dependencies needed by actions, such as the
// output logger, the AI client and the build information.
package runtime
