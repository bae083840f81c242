package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	plltrainer "github.com/SeamusWaldron/pll_trainer"
	"github.com/SeamusWaldron/pll_trainer/internal/pll"
	"github.com/SeamusWaldron/pll_trainer/internal/stats"
	"github.com/SeamusWaldron/pll_trainer/internal/storage"
)

var (
	attemptWrong bool
	historyLimit int
	historyPLL   string
)

var pickCmd = &cobra.Command{
	Use:   "pick <pll> <algorithm>",
	Short: "Pick the algorithm you solve a PLL with",
	Long: `Pick the algorithm you solve a PLL with. The algorithm must solve the PLL;
rotations and AUFs around it are fine.

Examples:
  plltrainer pick T "R U R' U' R' F R2 U' R' U' R U R' F'"
  plltrainer pick Ua "M2 U M U2 M' U M2"`,
	Args: cobra.MinimumNArgs(2),
	RunE: runPick,
}

var attemptCmd = &cobra.Command{
	Use:   "attempt <preAUF> <pll> <postAUF> <time-ms>",
	Short: "Record a timed attempt at a case",
	Long: `Record how long an attempt at a case took, in milliseconds. Use --wrong if
the cube was not solved at the end.

Examples:
  plltrainer attempt U T none 4350
  plltrainer attempt U2 Ja "U'" 6100 --wrong`,
	Args: cobra.ExactArgs(4),
	RunE: runAttempt,
}

var nextCmd = &cobra.Command{
	Use:   "next",
	Short: "Show the case to practice next",
	Args:  cobra.NoArgs,
	RunE:  runNext,
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show your statistics and worst cases",
	Args:  cobra.NoArgs,
	RunE:  runStats,
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded attempts",
	Args:  cobra.NoArgs,
	RunE:  runHistory,
}

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Forget all algorithms, attempts and statistics",
	Args:  cobra.NoArgs,
	RunE:  runReset,
}

func init() {
	rootCmd.AddCommand(pickCmd)
	rootCmd.AddCommand(attemptCmd)
	rootCmd.AddCommand(nextCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(resetCmd)

	attemptCmd.Flags().BoolVar(&attemptWrong, "wrong", false, "The cube was not solved at the end of the attempt")
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 10, "Number of attempts to show")
	historyCmd.Flags().StringVar(&historyPLL, "pll", "", "Only show attempts at this PLL, oldest first")
}

func runPick(cmd *cobra.Command, args []string) error {
	p, err := pll.ParsePLL(args[0])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	alg, err := parseArgs(out, args[1:])
	if err != nil {
		return err
	}

	session, closeDB, err := openSession(cmd.Context())
	if err != nil {
		return err
	}
	defer closeDB()

	m, err := session.PickAlgorithm(cmd.Context(), p, alg.String())
	if err != nil {
		return err
	}

	fmt.Fprintln(out, goodStyle.Render(fmt.Sprintf("Picked %s for %s-perm", alg, p.Letters())))
	fmt.Fprintln(out, label("preAUF", m.Pre.String()))
	fmt.Fprintln(out, label("postAUF", m.Post.String()))
	return nil
}

func runAttempt(cmd *cobra.Command, args []string) error {
	c, err := parseCase(args[0], args[1], args[2])
	if err != nil {
		return err
	}

	timeMs, err := strconv.ParseInt(args[3], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid time %q: %w", args[3], err)
	}

	outcome := stats.Correct
	if attemptWrong {
		outcome = stats.Wrong
	}

	session, closeDB, err := openSession(cmd.Context())
	if err != nil {
		return err
	}
	defer closeDB()

	report, err := session.Attempt(cmd.Context(), c, timeMs, outcome)
	if err != nil {
		return err
	}

	printReport(cmd, report)
	return nil
}

func printReport(cmd *cobra.Command, report plltrainer.AttemptReport) {
	out := cmd.OutOrStdout()
	a := report.Attempt

	fmt.Fprintln(out, titleStyle.Render(a.Case.String()))
	fmt.Fprintln(out, label("Time", stats.FormatTime(float64(a.TimeMs))))
	fmt.Fprintln(out, label("Target", stats.FormatTime(report.TargetTimeMs)))
	fmt.Fprintln(out, label("Turns", fmt.Sprintf("%d (%s)", a.Turns, stats.FormatTPS(a.TPS()))))
	fmt.Fprintln(out, label("Outcome", a.Outcome.String()))

	if report.Classification.IsNewCase {
		fmt.Fprintln(out, caseStyle.Render("New case!"))
	}
	if report.Classification.NeedsDrill {
		fmt.Fprintln(out, errorStyle.Render("This case needs drilling"))
	}
	switch {
	case report.DrillFinished:
		fmt.Fprintln(out, goodStyle.Render("Drill complete"))
	case report.Drill != nil:
		fmt.Fprintln(out, label("Drill", fmt.Sprintf("%d more of %s", report.Drill.Driller.Remaining, report.Drill.Case)))
	}
}

func runNext(cmd *cobra.Command, args []string) error {
	session, closeDB, err := openSession(cmd.Context())
	if err != nil {
		return err
	}
	defer closeDB()

	out := cmd.OutOrStdout()
	c, ok := session.Trainer().NextCase()
	if !ok {
		fmt.Fprintln(out, goodStyle.Render("You have seen every case. Keep practicing your worst cases."))
		return nil
	}

	fmt.Fprintln(out, label("Next case", caseStyle.Render(c.String())))
	if _, _, err := session.Trainer().Algorithm(c.PLL); err != nil {
		fmt.Fprintln(out, helpStyle.Render(fmt.Sprintf("Pick an algorithm first: plltrainer pick %s <algorithm>", c.PLL.Letters())))
	}
	return nil
}

func runStats(cmd *cobra.Command, args []string) error {
	session, closeDB, err := openSession(cmd.Context())
	if err != nil {
		return err
	}
	defer closeDB()

	out := cmd.OutOrStdout()
	trainer := session.Trainer()
	summary := trainer.Summary()
	g := summary.Global

	fmt.Fprintln(out, titleStyle.Render("Statistics"))
	if g.AveragedCases > 0 {
		fmt.Fprintln(out, label("Average", fmt.Sprintf("%s %s over %d cases",
			stats.FormatTime(g.AverageTimeMs), stats.FormatTPS(g.AverageTPS), g.AveragedCases)))
	} else {
		fmt.Fprintln(out, label("Average", "-"))
	}
	fmt.Fprintln(out, label("Cases tried", fmt.Sprintf("%d/%d (%d not yet tried)", g.CasesTried, g.TotalCases, g.CasesNotYetTried)))

	if len(summary.Cases) == 0 {
		fmt.Fprintln(out, helpStyle.Render("No attempts yet. Run plltrainer next to get started."))
		return nil
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, titleStyle.Render("Worst cases"))
	for _, c := range trainer.WorstCases() {
		fmt.Fprintln(out, "  "+stats.CaseLine(c))
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, titleStyle.Render("All cases"))
	for _, c := range summary.Cases {
		times := make([]string, len(c.Results))
		for i, a := range c.Results {
			times[i] = stats.FormatTime(float64(a.TimeMs))
			if a.Outcome == stats.Wrong {
				times[i] = errorStyle.Render(times[i] + "!")
			}
		}
		fmt.Fprintf(out, "  %s  [%s]\n", stats.CaseLine(c), strings.Join(times, " "))
	}
	return nil
}

func runHistory(cmd *cobra.Command, args []string) error {
	session, closeDB, err := openSession(cmd.Context())
	if err != nil {
		return err
	}
	defer closeDB()

	var records []storage.AttemptRecord
	if historyPLL != "" {
		p, err := pll.ParsePLL(historyPLL)
		if err != nil {
			return err
		}
		records, err = session.CaseHistory(cmd.Context(), p)
		if err != nil {
			return err
		}
	} else {
		records, err = session.History(cmd.Context(), historyLimit)
		if err != nil {
			return err
		}
	}

	out := cmd.OutOrStdout()
	if len(records) == 0 {
		fmt.Fprintln(out, helpStyle.Render("No attempts recorded"))
		return nil
	}

	for _, r := range records {
		a := r.Attempt
		line := fmt.Sprintf("%4d  %-22s %8s  %s", r.Seq, a.Case, stats.FormatTime(float64(a.TimeMs)), a.Outcome)
		if r.IsNewCase {
			line += "  new"
		}
		fmt.Fprintln(out, line)
	}
	return nil
}

func runReset(cmd *cobra.Command, args []string) error {
	session, closeDB, err := openSession(cmd.Context())
	if err != nil {
		return err
	}
	defer closeDB()

	if err := session.Reset(cmd.Context()); err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), goodStyle.Render("All training data removed"))
	return nil
}
