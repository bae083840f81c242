package stats

import (
	"sort"

	"github.com/SeamusWaldron/pll_trainer/internal/pll"
)

// DefaultWorstCases is how many cases the worst cases view shows.
const DefaultWorstCases = 3

// CaseSummary is the derived statistics of one tried PLL.
type CaseSummary struct {
	PLL           pll.PLL   `json:"pll"`
	AverageTimeMs float64   `json:"average_time_ms"`
	AverageTPS    float64   `json:"average_tps"`
	DNF           bool      `json:"dnf"`
	Results       []Attempt `json:"results"`

	discovered int
	lastWrong  int
}

// GlobalSummary aggregates over all PLLs.
type GlobalSummary struct {
	// Averages are the mean of the per case averages of cases that are not DNF.
	AverageTimeMs    float64 `json:"average_time_ms"`
	AverageTPS       float64 `json:"average_tps"`
	AveragedCases    int     `json:"averaged_cases"`
	CasesTried       int     `json:"cases_tried"`
	CasesNotYetTried int     `json:"cases_not_yet_tried"`
	TotalCases       int     `json:"total_cases"`
}

// Summary is everything derived from Stats.
type Summary struct {
	Cases  []CaseSummary `json:"cases"` // tried cases in discovery order
	Global GlobalSummary `json:"global"`
}

// Summarize derives the per case and global statistics.
func Summarize(s Stats) Summary {
	var cases []CaseSummary
	for _, p := range pll.All {
		cs := s.Cases[p]
		if !cs.Tried() {
			continue
		}
		cases = append(cases, summarizeCase(p, cs))
	}
	sort.SliceStable(cases, func(i, j int) bool {
		return cases[i].discovered < cases[j].discovered
	})

	global := GlobalSummary{
		CasesTried: len(cases),
		TotalCases: pll.Count,
	}
	global.CasesNotYetTried = global.TotalCases - global.CasesTried

	var timeSum, tpsSum float64
	for _, c := range cases {
		if c.DNF {
			continue
		}
		timeSum += c.AverageTimeMs
		tpsSum += c.AverageTPS
		global.AveragedCases++
	}
	if global.AveragedCases > 0 {
		global.AverageTimeMs = timeSum / float64(global.AveragedCases)
		global.AverageTPS = tpsSum / float64(global.AveragedCases)
	}

	return Summary{Cases: cases, Global: global}
}

func summarizeCase(p pll.PLL, cs CaseStats) CaseSummary {
	results := cs.Recent.Slice()
	summary := CaseSummary{
		PLL:        p,
		DNF:        cs.DNF(),
		Results:    results,
		discovered: cs.Discovered,
		lastWrong:  cs.LastWrong,
	}
	if summary.DNF || len(results) == 0 {
		return summary
	}

	var timeSum, tpsSum float64
	for _, a := range results {
		timeSum += float64(a.TimeMs)
		tpsSum += a.TPS()
	}
	summary.AverageTimeMs = timeSum / float64(len(results))
	summary.AverageTPS = tpsSum / float64(len(results))
	return summary
}

// WorstCases returns up to n cases from worst to best. DNF cases come first,
// the most recently failed first; the rest follow by descending average
// time, equal averages in discovery order.
func WorstCases(summary Summary, n int) []CaseSummary {
	cases := make([]CaseSummary, len(summary.Cases))
	copy(cases, summary.Cases)

	sort.SliceStable(cases, func(i, j int) bool {
		a, b := cases[i], cases[j]
		if a.DNF != b.DNF {
			return a.DNF
		}
		if a.DNF {
			return a.lastWrong > b.lastWrong
		}
		if a.AverageTimeMs != b.AverageTimeMs {
			return a.AverageTimeMs > b.AverageTimeMs
		}
		return a.discovered < b.discovered
	})

	if n >= 0 && len(cases) > n {
		cases = cases[:n]
	}
	return cases
}
