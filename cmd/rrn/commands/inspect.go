package commands

import (
	"fmt"
	"strconv"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/rijkslab/rrn"
	"github.com/rijkslab/rrn/display"
	"github.com/rijkslab/rrn/logger"
)

// InspectCmd represents the inspect command
var InspectCmd = &cobra.Command{
	Use:   "inspect <number>",
	Short: "Decode the fields of a register number",
	Long: `inspect — Decode the fields of a register number

Shows everything the digits encode: the birth date with the century the
checksum selects, the sex read from the sequence parity, the sequence
and check fields, and the conventional display form.

Field extraction does not require a valid checksum, so inspect decodes
as much as it can even for candidates that fail validation.

Examples:
  rrn inspect 90022742191
  rrn inspect 90.02.27-421.91
  rrn inspect 90022742191 --json`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func init() {
	InspectCmd.Flags().Bool("json", false, "Output results in JSON format")
}

type inspection struct {
	Input      string `json:"input"`
	Normalized string `json:"normalized"`
	Valid      bool   `json:"valid"`
	BirthDate  string `json:"birth_date,omitempty"`
	Century    int    `json:"century,omitempty"`
	Sex        string `json:"sex,omitempty"`
	Sequence   string `json:"sequence,omitempty"`
	Checksum   string `json:"checksum,omitempty"`
	Formatted  string `json:"formatted,omitempty"`
}

func runInspect(cmd *cobra.Command, args []string) error {
	candidate := args[0]
	normalized := rrn.Normalize(candidate)
	verbosity, _ := cmd.Flags().GetCount("verbose")

	info := inspection{
		Input:      candidate,
		Normalized: normalized,
		Valid:      rrn.IsValid(candidate),
	}

	if sex, ok := rrn.ExtractSex(normalized); ok {
		info.Sex = sex.String()
	}
	if birth, ok := rrn.ExtractBirthDate(normalized); ok {
		info.BirthDate = birth.Format("2006-01-02")
		info.Century = 1900
		if birth.Year() >= 2000 {
			info.Century = 2000
		}
	}
	if len(normalized) == 11 {
		info.Sequence = normalized[6:9]
		info.Checksum = normalized[9:11]
		info.Formatted = rrn.Format(normalized)
	}

	logger.ComponentLogger("cli.inspect").Debugw("candidate inspected",
		logger.FieldCandidate, candidate,
		"normalized", normalized,
		logger.FieldValid, info.Valid)

	if display.ShouldOutputJSON(cmd) {
		return display.OutputJSON(info)
	}

	if info.Valid {
		pterm.Success.Println(info.Normalized)
	} else {
		pterm.Error.Printf("%s (not a valid register number)\n", candidate)
	}

	fmt.Printf("  Input:      %s\n", info.Input)
	fmt.Printf("  Normalized: %s\n", info.Normalized)
	if info.BirthDate != "" {
		fmt.Printf("  Birth date: %s (century %d)\n", info.BirthDate, info.Century)
	}
	if info.Sex != "" {
		fmt.Printf("  Sex:        %s\n", info.Sex)
	}
	if info.Sequence != "" {
		fmt.Printf("  Sequence:   %s\n", info.Sequence)
		fmt.Printf("  Checksum:   %s\n", info.Checksum)
		fmt.Printf("  Formatted:  %s\n", info.Formatted)
	}

	if logger.ShouldOutput(verbosity, logger.OutputChecksumDetail) && len(normalized) == 11 {
		printChecksumDetail(normalized)
	}

	return nil
}

// printChecksumDetail shows the check digits both century interpretations
// would produce, next to the digits actually present.
func printChecksumDetail(digits string) {
	leading, err := strconv.ParseInt(digits[:9], 10, 64)
	if err != nil {
		return
	}
	pre := 97 - leading%97
	post := 97 - (2_000_000_000+leading)%97

	fmt.Printf("  Check for 1900s: %02d\n", pre)
	fmt.Printf("  Check for 2000s: %02d\n", post)
	fmt.Printf("  Check present:   %s\n", digits[9:])
}
