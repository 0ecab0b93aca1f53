package commands

import (
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/rijkslab/rrn"
	"github.com/rijkslab/rrn/display"
	"github.com/rijkslab/rrn/errors"
	"github.com/rijkslab/rrn/logger"
)

var validateQuiet bool

// ValidateCmd represents the validate command
var ValidateCmd = &cobra.Command{
	Use:   "validate [NUMBER...]",
	Short: "Check register numbers",
	Long: `validate — Check register numbers

Checks each candidate the way the register does: punctuation is stripped,
the leading digits must form a plausible birth date, and the check digits
must match under the pre-2000 or the post-1999 century interpretation.

Candidates come from arguments, or from stdin (one per line) when no
arguments are given. The exit status is non-zero when any candidate fails.

Examples:
  rrn validate 90.02.27-421.91            # Single punctuated candidate
  rrn validate 90022742191 00010100105    # Multiple bare candidates
  cat numbers.txt | rrn validate          # Bulk check from stdin
  rrn validate --quiet 90022742191        # Exit status only, no output`,
	RunE: runValidate,
}

func init() {
	ValidateCmd.Flags().BoolVarP(&validateQuiet, "quiet", "q", false, "Suppress per-candidate output, report via exit status")
	ValidateCmd.Flags().Bool("json", false, "Output results in JSON format")
}

type validationResult struct {
	Candidate  string `json:"candidate"`
	Normalized string `json:"normalized"`
	Valid      bool   `json:"valid"`
}

func runValidate(cmd *cobra.Command, args []string) error {
	candidates := args
	if len(candidates) == 0 {
		stdin, err := readLines(cmd.InOrStdin())
		if err != nil {
			return errors.Wrap(err, "failed to read candidates from stdin")
		}
		candidates = stdin
	}
	if len(candidates) == 0 {
		return errors.New("no candidates given (pass numbers as arguments or on stdin)")
	}

	useJSON := display.ShouldOutputJSON(cmd)
	verbosity, _ := cmd.Flags().GetCount("verbose")
	log := logger.ComponentLogger("cli.validate")
	start := time.Now()

	results := make([]validationResult, 0, len(candidates))
	invalid := 0
	for _, candidate := range candidates {
		result := validationResult{
			Candidate:  candidate,
			Normalized: rrn.Normalize(candidate),
			Valid:      rrn.IsValid(candidate),
		}
		if !result.Valid {
			invalid++
		}
		results = append(results, result)

		log.Debugw("candidate checked",
			logger.FieldCandidate, result.Candidate,
			"normalized", result.Normalized,
			logger.FieldValid, result.Valid)
	}

	elapsed := time.Since(start)
	log.Infow("validation complete",
		logger.FieldCount, len(results),
		logger.FieldValid, len(results)-invalid,
		logger.FieldDurationMS, elapsed.Milliseconds())

	switch {
	case useJSON:
		if err := display.OutputJSON(results); err != nil {
			return err
		}
	case !validateQuiet:
		for _, result := range results {
			if result.Valid {
				pterm.Success.Println(result.Candidate)
			} else {
				pterm.Error.Println(result.Candidate)
			}
			if logger.ShouldOutput(verbosity, logger.OutputCandidates) {
				pterm.Printf("  normalized: %s\n", result.Normalized)
			}
		}
		if logger.ShouldOutput(verbosity, logger.OutputTiming) {
			pterm.Info.Printf("Checked %d candidates in %s\n", len(results), elapsed.Round(time.Millisecond))
		}
	}

	if invalid > 0 {
		return errors.Newf("%d of %d candidates invalid", invalid, len(candidates))
	}
	return nil
}
