package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SeamusWaldron/pll_trainer/internal/notation"
	"github.com/SeamusWaldron/pll_trainer/internal/pll"
)

func attempt(p pll.PLL, ms int64, turns int) Attempt {
	return Attempt{Case: pll.NewCase(pll.None, p, pll.None), TimeMs: ms, Turns: turns, Outcome: Correct}
}

func wrong(p pll.PLL, ms int64) Attempt {
	a := attempt(p, ms, 10)
	a.Outcome = Wrong
	return a
}

func times(attempts []Attempt) []int64 {
	out := make([]int64, len(attempts))
	for i, a := range attempts {
		out[i] = a.TimeMs
	}
	return out
}

func TestRingKeepsLastThree(t *testing.T) {
	var r Ring
	_, ok := r.Latest()
	assert.False(t, ok)

	for _, ms := range []int64{1500, 2000, 1000} {
		r = r.Push(attempt(pll.T, ms, 10))
	}
	assert.Equal(t, []int64{1500, 2000, 1000}, times(r.Slice()))

	r = r.Push(attempt(pll.T, 1000, 10))
	assert.Equal(t, []int64{2000, 1000, 1000}, times(r.Slice()))

	latest, ok := r.Latest()
	require.True(t, ok)
	assert.Equal(t, int64(1000), latest.TimeMs)
}

func TestRecordDropsOldestFromWindow(t *testing.T) {
	s := New()
	for _, ms := range []int64{1500, 2000, 1000, 1000} {
		s = Record(s, attempt(pll.H, ms, 7))
	}

	summary := Summarize(s)
	require.Len(t, summary.Cases, 1)
	assert.Equal(t, []int64{2000, 1000, 1000}, times(summary.Cases[0].Results))
	assert.InDelta(t, 4000.0/3, summary.Cases[0].AverageTimeMs, 1e-9)
}

func TestRecordDoesNotMutateInput(t *testing.T) {
	before := Record(New(), attempt(pll.Aa, 1000, 10))
	snapshot := before

	after := Record(before, attempt(pll.Aa, 3000, 10))
	assert.Equal(t, snapshot, before)
	assert.NotEqual(t, before, after)
	assert.Equal(t, 1, before.Cases[pll.Aa].Recent.Len)
	assert.Equal(t, 2, after.Cases[pll.Aa].Recent.Len)
}

func TestWrongAttemptMakesCaseDNFUntilPushedOut(t *testing.T) {
	s := Record(New(), attempt(pll.Ua, 1000, 10))
	s = Record(s, wrong(pll.Ua, 2000))
	assert.True(t, s.Case(pll.Ua).DNF())

	s = Record(s, attempt(pll.Ua, 1000, 10))
	s = Record(s, attempt(pll.Ua, 1000, 10))
	assert.True(t, s.Case(pll.Ua).DNF(), "wrong attempt still in window")

	s = Record(s, attempt(pll.Ua, 1000, 10))
	assert.False(t, s.Case(pll.Ua).DNF())

	summary := Summarize(s)
	assert.InDelta(t, 1000, summary.Cases[0].AverageTimeMs, 1e-9)
}

func TestAverageTPSIsPerAttempt(t *testing.T) {
	s := Record(New(), attempt(pll.Z, 5000, 10))
	s = Record(s, attempt(pll.Z, 5000, 12))
	s = Record(s, attempt(pll.Z, 1000, 11))

	c := Summarize(s).Cases[0]
	assert.InDelta(t, (2.0+2.4+11.0)/3, c.AverageTPS, 1e-9)
	assert.InDelta(t, 11000.0/3, c.AverageTimeMs, 1e-9)
}

func TestGlobalSummary(t *testing.T) {
	s := Record(New(), attempt(pll.Aa, 1000, 10))
	g := Summarize(s).Global
	assert.Equal(t, 1, g.CasesTried)
	assert.Equal(t, 20, g.CasesNotYetTried)
	assert.Equal(t, 21, g.TotalCases)
	assert.InDelta(t, 1000, g.AverageTimeMs, 1e-9)
	assert.InDelta(t, 10, g.AverageTPS, 1e-9)

	// A wrong attempt counts as tried but does not change the averages.
	s = Record(s, wrong(pll.Ab, 2000))
	g = Summarize(s).Global
	assert.Equal(t, 2, g.CasesTried)
	assert.Equal(t, 1, g.AveragedCases)
	assert.InDelta(t, 1000, g.AverageTimeMs, 1e-9)

	// The global average is the mean of per case averages, not of attempts.
	s = Record(s, attempt(pll.Ga, 2000, 12))
	s = Record(s, attempt(pll.Ga, 4000, 12))
	g = Summarize(s).Global
	assert.Equal(t, 3, g.CasesTried)
	assert.Equal(t, 2, g.AveragedCases)
	assert.InDelta(t, (1000.0+3000.0)/2, g.AverageTimeMs, 1e-9)
	assert.InDelta(t, (10.0+(6.0+3.0)/2)/2, g.AverageTPS, 1e-9)
}

func TestSummaryOfNothing(t *testing.T) {
	summary := Summarize(New())
	assert.Empty(t, summary.Cases)
	assert.Equal(t, 0, summary.Global.CasesTried)
	assert.Equal(t, 21, summary.Global.CasesNotYetTried)
	assert.Zero(t, summary.Global.AverageTimeMs)
	assert.Empty(t, WorstCases(summary, DefaultWorstCases))
}

func pllsOf(cases []CaseSummary) []pll.PLL {
	out := make([]pll.PLL, len(cases))
	for i, c := range cases {
		out[i] = c.PLL
	}
	return out
}

func TestWorstCasesOrdering(t *testing.T) {
	s := New()
	for i := 0; i < 3; i++ {
		s = Record(s, attempt(pll.H, 2000, 8))
		s = Record(s, attempt(pll.Z, 5000, 8))
		s = Record(s, attempt(pll.Aa, 2000, 10))
	}

	worst := WorstCases(Summarize(s), DefaultWorstCases)
	assert.Equal(t, []pll.PLL{pll.Z, pll.H, pll.Aa}, pllsOf(worst), "ties keep discovery order")

	s = Record(s, attempt(pll.Gc, 10000, 14))
	worst = WorstCases(Summarize(s), DefaultWorstCases)
	assert.Equal(t, []pll.PLL{pll.Gc, pll.Z, pll.H}, pllsOf(worst))

	s = Record(s, wrong(pll.Aa, 1000))
	s = Record(s, wrong(pll.Ja, 1000))
	worst = WorstCases(Summarize(s), DefaultWorstCases)
	assert.Equal(t, []pll.PLL{pll.Ja, pll.Aa, pll.Gc}, pllsOf(worst), "most recent DNF first")

	assert.Len(t, WorstCases(Summarize(s), 10), 5)
}

func TestFormatting(t *testing.T) {
	assert.Equal(t, "1.50s", FormatTime(1500))
	assert.Equal(t, "0.33s", FormatTime(333.3))
	assert.Equal(t, "7.33 TPS", FormatTPS(7.3333))

	s := Record(New(), attempt(pll.Ua, 2000, 9))
	assert.Equal(t, "Ua-perm: 2.00s 4.50 TPS", CaseLine(Summarize(s).Cases[0]))

	s = Record(s, wrong(pll.Ua, 2000))
	assert.Equal(t, "Ua-perm: DNF", CaseLine(Summarize(s).Cases[0]))
}

func TestTurnCount(t *testing.T) {
	aa := notation.MustParse("Lw' U R' D2 R U' R' D2 R2")
	assert.Equal(t, 10, TurnCount(aa, pll.NewCase(pll.UPrime, pll.Aa, pll.None)))
	assert.Equal(t, 12, TurnCount(aa, pll.NewCase(pll.U, pll.Aa, pll.U2)))

	// Leading and trailing rotations are free.
	rotated := notation.MustParse("y Lw' U R' D2 R U' R' D2 R2 y'")
	assert.Equal(t, 9, TurnCount(rotated, pll.NewCase(pll.None, pll.Aa, pll.None)))

	// H-perm AUFs fold into a single postAUF.
	h := notation.MustParse("M2 U M2 U2 M2 U M2")
	assert.Equal(t, 8, TurnCount(h, pll.NewCase(pll.U, pll.H, pll.None)))
}

func TestAttemptTPS(t *testing.T) {
	assert.InDelta(t, 5.0, Attempt{TimeMs: 2000, Turns: 10}.TPS(), 1e-9)
	assert.Zero(t, Attempt{TimeMs: 0, Turns: 10}.TPS())
}
