package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/pll_trainer/internal/analysis"
	"github.com/SeamusWaldron/pll_trainer/internal/stats"
)

var trendsLast int

var trendsCmd = &cobra.Command{
	Use:   "trends",
	Short: "Show how your times develop",
	Long: `Analyze the attempt log: average times, improvement from the first to the
last quarter of the attempts, consistency and rolling averages, overall and
per PLL. Only correct attempts count towards times.

Examples:
  plltrainer trends
  plltrainer trends --last 0`,
	Args: cobra.NoArgs,
	RunE: runTrends,
}

func init() {
	trendsCmd.Flags().IntVar(&trendsLast, "last", 100, "Number of recent attempts to analyze, 0 for all")
	rootCmd.AddCommand(trendsCmd)
}

func runTrends(cmd *cobra.Command, args []string) error {
	session, closeDB, err := openSession(cmd.Context())
	if err != nil {
		return err
	}
	defer closeDB()

	limit := trendsLast
	if limit <= 0 {
		limit = -1 // no limit in SQLite
	}
	records, err := session.History(cmd.Context(), limit)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(records) == 0 {
		fmt.Fprintln(out, helpStyle.Render("No attempts recorded"))
		return nil
	}

	report := analysis.AnalyzeTrends(records)

	fmt.Fprintln(out, titleStyle.Render("Trends"))
	fmt.Fprintln(out, label("Attempts", fmt.Sprintf("%d (%d correct)", report.TotalAttempts, report.CorrectAttempts)))
	if report.CorrectAttempts > 0 {
		fmt.Fprintln(out, label("Average", stats.FormatTime(report.AvgTimeMs)+" "+stats.FormatTPS(report.AvgTPS)))
		fmt.Fprintln(out, label("Best", fmt.Sprintf("%s %s", stats.FormatTime(float64(report.BestAttempt.TimeMs)), report.BestAttempt.Case)))
		fmt.Fprintln(out, label("Worst", fmt.Sprintf("%s %s", stats.FormatTime(float64(report.WorstAttempt.TimeMs)), report.WorstAttempt.Case)))
	}
	fmt.Fprintln(out, label("Improvement", fmt.Sprintf("%.1f%%", report.ImprovementPct)))
	fmt.Fprintln(out, label("Consistency", fmt.Sprintf("%.0f/100", report.ConsistencyScore)))

	for _, n := range analysis.RollingWindows {
		if avg, ok := report.RollingAvgs[n]; ok {
			fmt.Fprintln(out, label(fmt.Sprintf("Last %d", n), stats.FormatTime(avg)))
		}
	}

	keys := make([]string, 0, len(report.PLLTrends))
	for k := range report.PLLTrends {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	fmt.Fprintln(out)
	for _, k := range keys {
		tr := report.PLLTrends[k]
		fmt.Fprintf(out, "  %-3s %3d attempts  %3.0f%% correct  %s  %+.1f%%\n",
			caseStyle.Render(tr.PLL), tr.Attempts, tr.SuccessRate*100, stats.FormatTime(tr.AvgTimeMs), tr.ImprovementPct)
	}
	return nil
}
