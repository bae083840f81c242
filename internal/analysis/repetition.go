// Package analysis inspects algorithms and the attempt log for wasted turns,
// familiar triggers and progress over time.
package analysis

import (
	"github.com/SeamusWaldron/pll_trainer/pkg/types"
)

// Cancellation is a turn directly undone by the next one, e.g. R R'.
type Cancellation struct {
	Index1 int    `json:"index1"`
	Index2 int    `json:"index2"`
	Turn1  string `json:"turn1"`
	Turn2  string `json:"turn2"`
}

// MergeOpportunity is a pair of adjacent turns of the same layer that could
// be done as one, e.g. R R becomes R2.
type MergeOpportunity struct {
	Index1     int    `json:"index1"`
	Index2     int    `json:"index2"`
	Turn1      string `json:"turn1"`
	Turn2      string `json:"turn2"`
	MergedTurn string `json:"merged_turn"`
}

// RepetitionReport lists the wasted turns of an algorithm.
type RepetitionReport struct {
	Cancellations      []Cancellation     `json:"cancellations"`
	MergeOpportunities []MergeOpportunity `json:"merge_opportunities"`
	WastedTurns        int                `json:"wasted_turns"`
}

// AnalyzeRepetitions looks for adjacent turns of the same turnable in alg.
// Rotations are compared like any other turnable, so normalize first to
// catch repetitions hidden behind them.
func AnalyzeRepetitions(alg types.Algorithm) *RepetitionReport {
	report := &RepetitionReport{
		Cancellations:      []Cancellation{},
		MergeOpportunities: []MergeOpportunity{},
	}

	turns := alg.Turns()
	for i := 0; i+1 < len(turns); i++ {
		t1, t2 := turns[i], turns[i+1]
		if t1.Turnable != t2.Turnable {
			continue
		}

		merged, ok := mergeTurns(t1, t2)
		if !ok {
			report.Cancellations = append(report.Cancellations, Cancellation{
				Index1: i,
				Index2: i + 1,
				Turn1:  t1.Notation(),
				Turn2:  t2.Notation(),
			})
			report.WastedTurns += 2
			continue
		}

		report.MergeOpportunities = append(report.MergeOpportunities, MergeOpportunity{
			Index1:     i,
			Index2:     i + 1,
			Turn1:      t1.Notation(),
			Turn2:      t2.Notation(),
			MergedTurn: merged.Notation(),
		})
		report.WastedTurns++
	}

	return report
}

// Simplify merges adjacent turns of the same turnable and drops the ones
// that cancel, repeating until nothing changes. Groups are flattened.
func Simplify(alg types.Algorithm) types.Algorithm {
	result := make([]types.Turn, 0, len(alg.Elements))

	for _, turn := range alg.Turns() {
		if len(result) == 0 || result[len(result)-1].Turnable != turn.Turnable {
			result = append(result, turn)
			continue
		}

		last := &result[len(result)-1]
		merged, ok := mergeTurns(*last, turn)
		if !ok {
			// Full cancellation; the turn before may now merge with the next.
			result = result[:len(result)-1]
			continue
		}
		*last = merged
	}

	return types.NewAlgorithm(result...)
}

// Efficiency is the share of alg's turns left after simplifying, 1 when
// nothing can be saved.
func Efficiency(alg types.Algorithm) float64 {
	original := len(alg.Turns())
	if original == 0 {
		return 1.0
	}
	return float64(len(Simplify(alg).Elements)) / float64(original)
}

// mergeTurns combines two turns of the same turnable. It returns false when
// they cancel out.
func mergeTurns(t1, t2 types.Turn) (types.Turn, bool) {
	amount := (t1.Amount + t2.Amount) % 4
	if amount == 0 {
		return types.Turn{}, false
	}
	merged := t1
	merged.Amount = amount
	return merged, true
}
