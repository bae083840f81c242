package analysis

import (
	"sort"

	"github.com/SeamusWaldron/pll_trainer/internal/notation"
	"github.com/SeamusWaldron/pll_trainer/pkg/types"
)

// Trigger is a short, well known sequence that algorithms are built from.
type Trigger struct {
	Name     string
	Sequence []types.Turn
}

func newTrigger(name, alg string) Trigger {
	return Trigger{Name: name, Sequence: notation.MustParse(alg).Turns()}
}

var (
	// Sexy: R U R' U'
	Sexy = newTrigger("Sexy move", "R U R' U'")

	// LeftSexy: L' U' L U
	LeftSexy = newTrigger("Left sexy move", "L' U' L U")

	// Sledgehammer: R' F R F'
	Sledgehammer = newTrigger("Sledgehammer", "R' F R F'")

	// Hedgeslammer: F R' F' R
	Hedgeslammer = newTrigger("Hedgeslammer", "F R' F' R")

	// Sune: R U R' U R U2 R'
	Sune = newTrigger("Sune", "R U R' U R U2 R'")

	// AntiSune: R U2 R' U' R U' R'
	AntiSune = newTrigger("Anti-sune", "R U2 R' U' R U' R'")
)

// AllTriggers lists the recognized triggers.
var AllTriggers = []Trigger{Sune, AntiSune, Sexy, LeftSexy, Sledgehammer, Hedgeslammer}

// TriggerMatch is one trigger found in an algorithm. Indexes are into the
// algorithm's flattened turns, EndIndex inclusive.
type TriggerMatch struct {
	Name       string `json:"name"`
	StartIndex int    `json:"start_index"`
	EndIndex   int    `json:"end_index"`
}

// TriggerReport is the trigger breakdown of an algorithm.
type TriggerReport struct {
	TurnCount      int            `json:"turn_count"`
	Matches        []TriggerMatch `json:"matches"`
	Counts         map[string]int `json:"counts"`
	UnmatchedTurns int            `json:"unmatched_turns"`
}

// FindTriggers scans alg left to right for non overlapping triggers, trying
// longer triggers first at each position.
func FindTriggers(alg types.Algorithm) *TriggerReport {
	turns := alg.Turns()
	report := &TriggerReport{
		TurnCount: len(turns),
		Matches:   []TriggerMatch{},
		Counts:    make(map[string]int),
	}

	triggers := make([]Trigger, len(AllTriggers))
	copy(triggers, AllTriggers)
	sort.SliceStable(triggers, func(i, j int) bool {
		return len(triggers[i].Sequence) > len(triggers[j].Sequence)
	})

	matched := 0
	for i := 0; i < len(turns); {
		found := false
		for _, tr := range triggers {
			if !matchesTrigger(turns, i, tr.Sequence) {
				continue
			}
			report.Matches = append(report.Matches, TriggerMatch{
				Name:       tr.Name,
				StartIndex: i,
				EndIndex:   i + len(tr.Sequence) - 1,
			})
			report.Counts[tr.Name]++
			matched += len(tr.Sequence)
			i += len(tr.Sequence)
			found = true
			break
		}
		if !found {
			i++
		}
	}

	report.UnmatchedTurns = len(turns) - matched
	return report
}

// matchesTrigger checks if the turns starting at startIdx match seq.
func matchesTrigger(turns []types.Turn, startIdx int, seq []types.Turn) bool {
	if startIdx+len(seq) > len(turns) {
		return false
	}

	for i, t := range seq {
		got := turns[startIdx+i]
		if got.Turnable != t.Turnable || got.Amount != t.Amount {
			return false
		}
	}

	return true
}
