package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rijkslab/rrn"
	"github.com/rijkslab/rrn/display"
	"github.com/rijkslab/rrn/errors"
)

// FormatCmd represents the format command
var FormatCmd = &cobra.Command{
	Use:   "format [NUMBER...]",
	Short: "Punctuate register numbers for display",
	Long: `format — Punctuate register numbers for display

Rewrites 11-character inputs into the conventional YY.MM.DD-XXX.CC form.
Anything that is not exactly 11 characters long passes through unchanged;
formatting never judges validity.

Candidates come from arguments, or from stdin (one per line) when no
arguments are given.

Examples:
  rrn format 90022742191                  # -> 90.02.27-421.91
  rrn generate --count 5 | rrn format     # Punctuate generated numbers`,
	RunE: runFormat,
}

func init() {
	FormatCmd.Flags().Bool("json", false, "Output results in JSON format")
}

type formatResult struct {
	Input     string `json:"input"`
	Formatted string `json:"formatted"`
}

func runFormat(cmd *cobra.Command, args []string) error {
	inputs := args
	if len(inputs) == 0 {
		stdin, err := readLines(cmd.InOrStdin())
		if err != nil {
			return errors.Wrap(err, "failed to read input from stdin")
		}
		inputs = stdin
	}
	if len(inputs) == 0 {
		return errors.New("nothing to format (pass numbers as arguments or on stdin)")
	}

	if display.ShouldOutputJSON(cmd) {
		results := make([]formatResult, 0, len(inputs))
		for _, input := range inputs {
			results = append(results, formatResult{Input: input, Formatted: rrn.Format(input)})
		}
		return display.OutputJSON(results)
	}

	for _, input := range inputs {
		fmt.Println(rrn.Format(input))
	}
	return nil
}
