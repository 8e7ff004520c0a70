// Package config provides ai-cli configuration.
//
// It handles:
//   - Build information reported by the config command and --version
//   - Logging configuration read from the environment
//
// Nothing in this package reads or writes configuration files.
package config
