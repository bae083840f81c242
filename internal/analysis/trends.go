package analysis

import (
	"math"
	"sort"
	"time"

	"github.com/SeamusWaldron/pll_trainer/internal/stats"
	"github.com/SeamusWaldron/pll_trainer/internal/storage"
)

// TrendReport contains trend analysis across the attempt log.
type TrendReport struct {
	TotalAttempts   int       `json:"total_attempts"`
	CorrectAttempts int       `json:"correct_attempts"`
	DateRange       DateRange `json:"date_range"`

	// Over correct attempts only
	AvgTimeMs float64 `json:"avg_time_ms"`
	AvgTPS    float64 `json:"avg_tps"`

	BestAttempt  AttemptStats `json:"best_attempt"`
	WorstAttempt AttemptStats `json:"worst_attempt"`

	ImprovementPct   float64 `json:"improvement_pct"`
	ConsistencyScore float64 `json:"consistency_score"`

	// Rolling averages of the last 5, 10, 25 and 50 correct attempts
	RollingAvgs map[int]float64 `json:"rolling_averages"`

	// Keyed by PLL letters
	PLLTrends map[string]PLLTrend `json:"pll_trends"`
}

// DateRange represents a date range.
type DateRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// AttemptStats represents a single attempt in trend context.
type AttemptStats struct {
	AttemptID string  `json:"attempt_id"`
	Timestamp string  `json:"timestamp"`
	Case      string  `json:"case"`
	TimeMs    int64   `json:"time_ms"`
	Turns     int     `json:"turns"`
	TPS       float64 `json:"tps"`
}

// PLLTrend represents trends for one PLL.
type PLLTrend struct {
	PLL            string  `json:"pll"`
	Attempts       int     `json:"attempts"`
	SuccessRate    float64 `json:"success_rate"`
	AvgTimeMs      float64 `json:"avg_time_ms"`
	AvgTPS         float64 `json:"avg_tps"`
	ImprovementPct float64 `json:"improvement_pct"`
}

// RollingWindows are the rolling average sizes reported by AnalyzeTrends.
var RollingWindows = []int{5, 10, 25, 50}

// AnalyzeTrends analyzes how the user's times develop over the given
// records. The input slice is not modified.
func AnalyzeTrends(records []storage.AttemptRecord) *TrendReport {
	report := &TrendReport{
		TotalAttempts: len(records),
		RollingAvgs:   make(map[int]float64),
		PLLTrends:     make(map[string]PLLTrend),
	}

	if len(records) == 0 {
		return report
	}

	sorted := make([]storage.AttemptRecord, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Seq < sorted[j].Seq
	})

	report.DateRange = DateRange{
		Start: sorted[0].RecordedAt.Format(time.RFC3339),
		End:   sorted[len(sorted)-1].RecordedAt.Format(time.RFC3339),
	}

	correct := correctOnly(sorted)
	report.CorrectAttempts = len(correct)

	if len(correct) > 0 {
		report.AvgTimeMs, report.AvgTPS = averages(correct)

		best, worst := correct[0], correct[0]
		for _, r := range correct[1:] {
			if r.Attempt.TimeMs < best.Attempt.TimeMs {
				best = r
			}
			if r.Attempt.TimeMs > worst.Attempt.TimeMs {
				worst = r
			}
		}
		report.BestAttempt = attemptStats(best)
		report.WorstAttempt = attemptStats(worst)
	}

	report.ImprovementPct = calculateImprovement(correct)
	report.ConsistencyScore = calculateConsistency(correct)

	for _, n := range RollingWindows {
		if len(correct) >= n {
			avg, _ := averages(correct[len(correct)-n:])
			report.RollingAvgs[n] = avg
		}
	}

	report.PLLTrends = analyzePLLTrends(sorted)

	return report
}

func correctOnly(records []storage.AttemptRecord) []storage.AttemptRecord {
	correct := make([]storage.AttemptRecord, 0, len(records))
	for _, r := range records {
		if r.Attempt.Outcome == stats.Correct {
			correct = append(correct, r)
		}
	}
	return correct
}

func averages(records []storage.AttemptRecord) (timeMs, tps float64) {
	if len(records) == 0 {
		return 0, 0
	}
	var totalTime int64
	var totalTPS float64
	for _, r := range records {
		totalTime += r.Attempt.TimeMs
		totalTPS += r.Attempt.TPS()
	}
	n := float64(len(records))
	return float64(totalTime) / n, totalTPS / n
}

func attemptStats(r storage.AttemptRecord) AttemptStats {
	return AttemptStats{
		AttemptID: r.AttemptID,
		Timestamp: r.RecordedAt.Format(time.RFC3339),
		Case:      r.Attempt.Case.String(),
		TimeMs:    r.Attempt.TimeMs,
		Turns:     r.Attempt.Turns,
		TPS:       r.Attempt.TPS(),
	}
}

// calculateImprovement calculates improvement percentage from the first to
// the last quarter of the records. Positive means faster.
func calculateImprovement(records []storage.AttemptRecord) float64 {
	if len(records) < 4 {
		return 0
	}

	quarterSize := len(records) / 4
	firstAvg, _ := averages(records[:quarterSize])
	lastAvg, _ := averages(records[len(records)-quarterSize:])

	if firstAvg <= 0 {
		return 0
	}

	return ((firstAvg - lastAvg) / firstAvg) * 100
}

// calculateConsistency calculates a consistency score (0-100, higher = more
// consistent) from the coefficient of variation of the times.
func calculateConsistency(records []storage.AttemptRecord) float64 {
	if len(records) < 2 {
		return 100
	}

	mean, _ := averages(records)
	if mean <= 0 {
		return 100
	}

	var sumSquares float64
	for _, r := range records {
		diff := float64(r.Attempt.TimeMs) - mean
		sumSquares += diff * diff
	}
	cv := math.Sqrt(sumSquares/float64(len(records))) / mean

	// CV of 0 = 100, CV of 0.5 = 50, CV of 1+ = 0
	score := 100 - (cv * 100)
	return math.Max(0, math.Min(100, score))
}

// analyzePLLTrends groups the records by PLL.
func analyzePLLTrends(records []storage.AttemptRecord) map[string]PLLTrend {
	trends := make(map[string]PLLTrend)

	byPLL := make(map[string][]storage.AttemptRecord)
	for _, r := range records {
		key := r.Attempt.Case.PLL.Letters()
		byPLL[key] = append(byPLL[key], r)
	}

	for key, all := range byPLL {
		correct := correctOnly(all)
		avgTime, avgTPS := averages(correct)
		trends[key] = PLLTrend{
			PLL:            key,
			Attempts:       len(all),
			SuccessRate:    float64(len(correct)) / float64(len(all)),
			AvgTimeMs:      avgTime,
			AvgTPS:         avgTPS,
			ImprovementPct: calculateImprovement(correct),
		}
	}

	return trends
}
