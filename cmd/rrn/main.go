package main

import (
	"fmt"
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/rijkslab/rrn/cmd/rrn/commands"
	"github.com/rijkslab/rrn/config"
	"github.com/rijkslab/rrn/display"
	"github.com/rijkslab/rrn/errors"
	"github.com/rijkslab/rrn/logger"
)

var rootCmd = &cobra.Command{
	Use:   "rrn",
	Short: "rrn - Belgian national register number toolkit",
	Long: `rrn - Validate, inspect, format, and generate Belgian national register numbers.

A register number encodes a birth date, a sequence number whose parity
carries the holder's registered sex, and a mod 97 checksum. rrn accepts
numbers in any common notation (bare digits, dotted-dashed, or loosely
punctuated) and normalizes before checking.

Available commands:
  validate - Check candidate numbers and report verdicts
  generate - Generate valid register numbers for test fixtures
  inspect  - Break a number into its fields
  format   - Render numbers in the dotted-dashed display form
  config   - Manage rrn configuration
  version  - Show rrn version information

Examples:
  rrn validate 90.02.27-421.91     # Validate a single number
  rrn generate --count 10          # Generate ten random numbers
  rrn inspect 90022742191          # Show birth date, sex, checksum
  cat numbers.txt | rrn validate   # Read candidates from stdin
  rrn config show                  # Show current configuration`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Configured output preferences apply unless flags override them.
		if cfg, err := config.Load(); err == nil {
			if !cmd.Flags().Changed("json") && cfg.GetOutputFormat() == "json" {
				cmd.Root().PersistentFlags().Set("json", "true")
			}
			if !cfg.Output.Color {
				pterm.DisableColor()
			}
		}

		// Initialize the global logger before any command runs
		verbosity, err := cmd.Flags().GetCount("verbose")
		if err != nil {
			verbosity = 0
		}
		jsonOutput := display.ShouldOutputJSON(cmd)

		if err := logger.Initialize(jsonOutput, verbosity); err != nil {
			return errors.Wrap(err, "failed to initialize logger")
		}

		logger.Debugw("logging configured",
			"level", logger.LevelName(verbosity),
			"detail", logger.VerbosityDescription(verbosity))
		return nil
	},
}

func init() {
	// Add global flags
	rootCmd.PersistentFlags().CountP("verbose", "v", "Increase output verbosity (repeat for more detail: -v, -vv, -vvv)")
	rootCmd.PersistentFlags().Bool("json", false, "Output results in JSON format")

	// Add commands
	rootCmd.AddCommand(commands.ValidateCmd)
	rootCmd.AddCommand(commands.GenerateCmd)
	rootCmd.AddCommand(commands.InspectCmd)
	rootCmd.AddCommand(commands.FormatCmd)
	rootCmd.AddCommand(commands.ConfigCmd)
	rootCmd.AddCommand(commands.VersionCmd)
}

func main() {
	err := rootCmd.Execute()
	logger.Cleanup()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
