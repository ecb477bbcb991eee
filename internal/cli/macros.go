package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/srccheck/internal/logging"
	"github.com/yaklabco/srccheck/pkg/macros"
)

type macrosFlags struct {
	output string
}

func newMacrosCommand() *cobra.Command {
	flags := &macrosFlags{}

	cmd := &cobra.Command{
		Use:   "macros <file>",
		Short: "Analyze macro definitions in an assembler source file",
		Long: `Scan an assembler source file for DEFINE macro definitions and report
each macro's name, parameters, body size, and usage count.

The file must pass source encoding validation first; malformed input is
refused rather than analyzed.

Examples:
  srccheck macros boot.asm                      Print macro summary
  srccheck macros boot.asm --output macros.json Write a JSON manifest`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMacros(cmd, args[0], flags)
		},
	}

	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "Write a JSON manifest to this path")

	return cmd
}

func runMacros(cmd *cobra.Command, path string, flags *macrosFlags) error {
	ctx := cmd.Context()

	defs, err := macros.AnalyzeFile(ctx, path)
	if err != nil {
		return NewExitError(ExitIOError, fmt.Errorf("analyze macros: %w", err))
	}

	logger := logging.NewInteractive()

	if len(defs) == 0 {
		logger.Info("no macro definitions found", logging.FieldPath, path)
	} else {
		logger.Info("macro definitions", logging.FieldPath, path, logging.FieldMacros, len(defs))

		for _, def := range defs {
			logger.Info(def.Name,
				"parameters", len(def.Parameters),
				"lines", def.Lines(),
				"usages", def.Usages,
			)
		}
	}

	if flags.output != "" {
		if err := macros.WriteManifest(ctx, flags.output, defs); err != nil {
			return NewExitError(ExitIOError, fmt.Errorf("write manifest: %w", err))
		}
		logger.Info("wrote manifest", logging.FieldManifest, flags.output)
	}

	return nil
}
