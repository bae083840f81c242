package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/pll_trainer/internal/analysis"
	"github.com/SeamusWaldron/pll_trainer/internal/notation"
	"github.com/SeamusWaldron/pll_trainer/pkg/types"
)

var parseCmd = &cobra.Command{
	Use:   "parse <algorithm>",
	Short: "Check an algorithm's notation",
	Long: `Parse an algorithm and report the first problem with its notation.

Examples:
  plltrainer parse "R U R' U'"
  plltrainer parse "(R U2) r' F"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runParse,
}

var normalizeCmd = &cobra.Command{
	Use:   "normalize <algorithm>",
	Short: "Rewrite an algorithm without rotations or wide moves",
	Long: `Push every whole cube rotation through the algorithm and replace wide moves
by the opposite face turn, so the result turns the same layers with the cube
held still.

Examples:
  plltrainer normalize "y R U R'"
  plltrainer normalize "r U R' U'"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runNormalize,
}

var describe bool

func init() {
	parseCmd.Flags().BoolVarP(&describe, "describe", "d", false, "Describe each turn in words")

	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(normalizeCmd)
}

// parseArgs parses the algorithm given as one or more arguments. Parse
// errors are shown with a marker under the offending token.
func parseArgs(out io.Writer, args []string) (types.Algorithm, error) {
	input := strings.Join(args, " ")
	alg, err := notation.Parse(input)
	if err != nil {
		printParseError(out, input, err)
		return types.Algorithm{}, err
	}
	return alg, nil
}

func printParseError(out io.Writer, input string, err error) {
	var perr *notation.Error
	if !errors.As(err, &perr) {
		fmt.Fprintln(out, errorStyle.Render(err.Error()))
		return
	}

	fmt.Fprintln(out, errorStyle.Render(fmt.Sprintf("%s: %s", perr.Kind, perr.Message())))
	if perr.Token != "" {
		fmt.Fprintln(out, "  "+input)
		fmt.Fprintln(out, "  "+strings.Repeat(" ", perr.Offset)+strings.Repeat("^", len(perr.Token)))
	}
}

func runParse(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	alg, err := parseArgs(out, args)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, label("Algorithm", notation.Format(alg)))
	fmt.Fprintln(out, label("Turns", fmt.Sprint(alg.FaceTurnCount())))

	triggers := analysis.FindTriggers(alg)
	for _, m := range triggers.Matches {
		fmt.Fprintln(out, label("Trigger", fmt.Sprintf("%s (turns %d-%d)", m.Name, m.StartIndex+1, m.EndIndex+1)))
	}

	if describe {
		fmt.Fprintln(out, label("Spoken", notation.DescribeAlgorithm(alg)))
		fmt.Fprintln(out)
		for i, d := range notation.DescribeTurns(alg.Turns()) {
			fmt.Fprintf(out, "  %2d. %s\n", i+1, d)
		}
	}
	return nil
}

func runNormalize(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	alg, err := parseArgs(out, args)
	if err != nil {
		return err
	}

	normalized := notation.Normalize(alg)
	fmt.Fprintln(out, label("Normalized", normalized.String()))
	fmt.Fprintln(out, label("Turns", fmt.Sprint(len(normalized.Elements))))

	if report := analysis.AnalyzeRepetitions(normalized); report.WastedTurns > 0 {
		simplified := analysis.Simplify(normalized)
		fmt.Fprintln(out, label("Simplified", simplified.String()))
		fmt.Fprintln(out, label("Wasted turns", fmt.Sprint(report.WastedTurns)))
	}
	return nil
}
