package analysis

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SeamusWaldron/pll_trainer/internal/notation"
	"github.com/SeamusWaldron/pll_trainer/internal/pll"
	"github.com/SeamusWaldron/pll_trainer/internal/stats"
	"github.com/SeamusWaldron/pll_trainer/internal/storage"
	"github.com/SeamusWaldron/pll_trainer/pkg/types"
)

// seq builds an algorithm token by token, so that repeated turnables which
// the parser rejects can still be expressed.
func seq(s string) types.Algorithm {
	var turns []types.Turn
	for _, tok := range strings.Fields(s) {
		turns = append(turns, notation.MustParse(tok).Turns()...)
	}
	return types.NewAlgorithm(turns...)
}

func TestSimplify(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"R U R' U'", "R U R' U'"},
		{"R R", "R2"},
		{"R R'", ""},
		{"R2 R", "R'"},
		{"R U U' R", "R2"},
		{"R U U U R'", "R U' R'"},
		{"M2 M2 x x'", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, Simplify(seq(tt.input)).String())
		})
	}
}

func TestSimplifyAfterNormalize(t *testing.T) {
	alg := notation.Normalize(notation.MustParse("R y F"))
	assert.Equal(t, "R R", alg.String())
	assert.Equal(t, "R2", Simplify(alg).String())
}

func TestSimplifyFlattensGroups(t *testing.T) {
	alg := notation.MustParse("(R U) (R' U')")
	got := Simplify(alg)
	assert.Equal(t, "R U R' U'", got.String())
	for _, e := range got.Elements {
		assert.False(t, e.IsGroup())
	}
}

func TestAnalyzeRepetitions(t *testing.T) {
	report := AnalyzeRepetitions(seq("R U U' R R"))

	require.Len(t, report.Cancellations, 1)
	assert.Equal(t, Cancellation{Index1: 1, Index2: 2, Turn1: "U", Turn2: "U'"}, report.Cancellations[0])

	require.Len(t, report.MergeOpportunities, 1)
	assert.Equal(t, "R2", report.MergeOpportunities[0].MergedTurn)
	assert.Equal(t, 3, report.MergeOpportunities[0].Index1)

	assert.Equal(t, 3, report.WastedTurns)
}

func TestAnalyzeRepetitionsClean(t *testing.T) {
	report := AnalyzeRepetitions(notation.MustParse("R U R' U' R' F R2 U' R' U' R U R' F'"))
	assert.Empty(t, report.Cancellations)
	assert.Empty(t, report.MergeOpportunities)
	assert.Zero(t, report.WastedTurns)
}

func TestEfficiency(t *testing.T) {
	assert.Equal(t, 1.0, Efficiency(types.Algorithm{}))
	assert.Equal(t, 1.0, Efficiency(notation.MustParse("R U R'")))
	assert.Equal(t, 0.25, Efficiency(seq("R U U' R")))
}

func TestFindTriggers(t *testing.T) {
	tests := []struct {
		name      string
		alg       string
		want      []TriggerMatch
		unmatched int
	}{
		{
			name:      "T-perm",
			alg:       "R U R' U' R' F R2 U' R' U' R U R' F'",
			want:      []TriggerMatch{{Name: "Sexy move", StartIndex: 0, EndIndex: 3}},
			unmatched: 10,
		},
		{
			name: "Y-perm",
			alg:  "F R U' R' U' R U R' F' R U R' U' R' F R F'",
			want: []TriggerMatch{
				{Name: "Sexy move", StartIndex: 9, EndIndex: 12},
				{Name: "Sledgehammer", StartIndex: 13, EndIndex: 16},
			},
			unmatched: 9,
		},
		{
			name:      "sune over sexy",
			alg:       "R U R' U R U2 R'",
			want:      []TriggerMatch{{Name: "Sune", StartIndex: 0, EndIndex: 6}},
			unmatched: 0,
		},
		{
			name:      "after a rotation",
			alg:       "y R U R' U'",
			want:      []TriggerMatch{{Name: "Sexy move", StartIndex: 1, EndIndex: 4}},
			unmatched: 1,
		},
		{
			name:      "H-perm",
			alg:       "M2 U M2 U2 M2 U M2",
			want:      []TriggerMatch{},
			unmatched: 7,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := FindTriggers(notation.MustParse(tt.alg))
			assert.Equal(t, tt.want, report.Matches)
			assert.Equal(t, tt.unmatched, report.UnmatchedTurns)
			for _, m := range tt.want {
				assert.Positive(t, report.Counts[m.Name])
			}
		})
	}
}

func record(seq int, p pll.PLL, ms int64, outcome stats.Outcome) storage.AttemptRecord {
	return storage.AttemptRecord{
		AttemptID:  fmt.Sprintf("a%d", seq),
		Seq:        seq,
		RecordedAt: time.Date(2026, 3, 1, 12, 0, seq, 0, time.UTC),
		Attempt: stats.Attempt{
			Case:    pll.NewCase(pll.None, p, pll.None),
			TimeMs:  ms,
			Turns:   8,
			Outcome: outcome,
		},
	}
}

func trendRecords() []storage.AttemptRecord {
	var records []storage.AttemptRecord
	for i, ms := range []int64{8000, 8000, 7000, 7000, 6000, 6000, 4000, 4000} {
		records = append(records, record(i+1, pll.H, ms, stats.Correct))
	}
	return append(records, record(9, pll.T, 3000, stats.Wrong))
}

func TestAnalyzeTrendsEmpty(t *testing.T) {
	report := AnalyzeTrends(nil)
	assert.Zero(t, report.TotalAttempts)
	assert.Empty(t, report.RollingAvgs)
	assert.Empty(t, report.PLLTrends)
}

func TestAnalyzeTrends(t *testing.T) {
	report := AnalyzeTrends(trendRecords())

	assert.Equal(t, 9, report.TotalAttempts)
	assert.Equal(t, 8, report.CorrectAttempts)
	assert.Equal(t, "2026-03-01T12:00:01Z", report.DateRange.Start)
	assert.Equal(t, "2026-03-01T12:00:09Z", report.DateRange.End)

	assert.InDelta(t, 6250, report.AvgTimeMs, 1e-9)
	assert.Equal(t, int64(4000), report.BestAttempt.TimeMs)
	assert.Equal(t, "a7", report.BestAttempt.AttemptID)
	assert.Equal(t, int64(8000), report.WorstAttempt.TimeMs)
	assert.Equal(t, "none H-perm none", report.WorstAttempt.Case)
	assert.InDelta(t, 2.0, report.BestAttempt.TPS, 1e-9)

	assert.InDelta(t, 50, report.ImprovementPct, 1e-9)
	assert.InDelta(t, 5400, report.RollingAvgs[5], 1e-9)
	_, ok := report.RollingAvgs[10]
	assert.False(t, ok)

	h := report.PLLTrends["H"]
	assert.Equal(t, 8, h.Attempts)
	assert.Equal(t, 1.0, h.SuccessRate)
	assert.InDelta(t, 50, h.ImprovementPct, 1e-9)

	tp := report.PLLTrends["T"]
	assert.Equal(t, 1, tp.Attempts)
	assert.Zero(t, tp.SuccessRate)
	assert.Zero(t, tp.AvgTimeMs)
}

func TestAnalyzeTrendsOrdersBySeq(t *testing.T) {
	records := trendRecords()
	reversed := make([]storage.AttemptRecord, len(records))
	for i, r := range records {
		reversed[len(records)-1-i] = r
	}
	assert.Equal(t, AnalyzeTrends(records), AnalyzeTrends(reversed))
	assert.Equal(t, 9, reversed[0].Seq, "input left as it was")
}

func TestConsistency(t *testing.T) {
	same := []storage.AttemptRecord{
		record(1, pll.Aa, 5000, stats.Correct),
		record(2, pll.Aa, 5000, stats.Correct),
	}
	assert.InDelta(t, 100, calculateConsistency(same), 1e-9)

	spread := []storage.AttemptRecord{
		record(1, pll.Aa, 1000, stats.Correct),
		record(2, pll.Aa, 3000, stats.Correct),
	}
	assert.InDelta(t, 50, calculateConsistency(spread), 1e-9)

	assert.Equal(t, 100.0, calculateConsistency(same[:1]))
}
