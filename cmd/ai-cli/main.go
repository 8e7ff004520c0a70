package main

import (
	"os"

	"aicli.dev/aicli/internal/cli"
	"aicli.dev/aicli/internal/errors"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	rootCmd := cli.NewRootCmd(version, commit, date)
	if err := cli.Execute(rootCmd); err != nil {
		os.Exit(errors.ExitCode(err))
	}
}
