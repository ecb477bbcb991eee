// Package main is the entry point for the srccheck CLI.
package main

import (
	"errors"
	"os"

	"github.com/yaklabco/srccheck/internal/cli"
	"github.com/yaklabco/srccheck/internal/logging"

	// Import rules package to register built-in rules via init().
	_ "github.com/yaklabco/srccheck/pkg/check/rules"
)

// Build-time variables set by GoReleaser via ldflags.
//
//nolint:gochecknoglobals // Version variables must be package-level for ldflags injection
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	info := cli.BuildInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
	}

	rootCmd := cli.NewRootCommand(info)

	err := rootCmd.Execute()
	if err != nil && !errors.Is(err, cli.ErrIssuesFound) {
		// ErrIssuesFound is just a signal for the exit code.
		logger := logging.Default()
		logger.Error("command failed", logging.FieldError, err)
	}

	return cli.ExitCode(err)
}
