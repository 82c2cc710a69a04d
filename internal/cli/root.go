package cli

import (
	"fmt"
	"os"
	"time"

	"log/slog"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"
)

// Execute runs the cuppa CLI.
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd constructs the root command so tests can exercise the CLI easily.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "cuppa",
		Short:         "Generate native Swift, Kotlin, and TypeScript code from spec documents",
		Long:          "cuppa turns JSON Schema, OpenAPI, design-token, component, and plugin specs into native source code for iOS, Android, and web targets.",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			setupLogging(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	// Convert Cobra flag errors (like unknown flags) into friendly usage errors
	// that also show the command's help text.
	flagErr := func(c *cobra.Command, err error) error {
		return newUsageError(fmt.Sprintf("%v\n\n%s", err, c.UsageString()))
	}
	cmd.SetFlagErrorFunc(flagErr)

	cmd.PersistentFlags().StringP("config", "c", "", "Manifest file path (default: ./cuppa.config.json when present)")
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging output")

	for _, sub := range []*cobra.Command{
		newInitCmd(),
		newGenerateCmd(),
		newComponentCmd(),
		newPluginCmd(),
		newCreateCmd(),
		newAddCmd(),
		newValidateCmd(),
	} {
		sub.SetFlagErrorFunc(flagErr)
		cmd.AddCommand(sub)
	}

	return cmd
}

// setupLogging installs the console handler; --verbose lowers the level to
// debug. Parsers and generators never log, so this only shapes command-layer
// warnings and progress lines.
func setupLogging(cmd *cobra.Command) {
	level := slog.LevelInfo
	if verbose, err := cmd.Flags().GetBool("verbose"); err == nil && verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
	})))
}
