// Package stats keeps the rolling results of every PLL and derives the
// averages shown to the user.
package stats

import (
	"errors"
	"fmt"

	"github.com/SeamusWaldron/pll_trainer/internal/notation"
	"github.com/SeamusWaldron/pll_trainer/internal/pll"
	"github.com/SeamusWaldron/pll_trainer/pkg/types"
)

// Outcome says whether the cube was solved at the end of an attempt.
type Outcome int

const (
	Correct Outcome = iota
	Wrong
)

func (o Outcome) String() string {
	switch o {
	case Correct:
		return "correct"
	case Wrong:
		return "wrong"
	}
	return fmt.Sprintf("Outcome(%d)", int(o))
}

// ErrUnknownOutcome is returned by ParseOutcome.
var ErrUnknownOutcome = errors.New("stats: unknown outcome")

// ParseOutcome parses the String form of an outcome.
func ParseOutcome(s string) (Outcome, error) {
	switch s {
	case "correct":
		return Correct, nil
	case "wrong":
		return Wrong, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownOutcome, s)
}

// Attempt is one timed attempt at a case.
type Attempt struct {
	Case    pll.Case `json:"case"`
	TimeMs  int64    `json:"time_ms"`
	Turns   int      `json:"turns"`
	Outcome Outcome  `json:"outcome"`
}

// TPS returns the turns per second of the attempt.
func (a Attempt) TPS() float64 {
	if a.TimeMs <= 0 {
		return 0
	}
	return float64(a.Turns) / (float64(a.TimeMs) / 1000)
}

// TurnCount returns the turns an attempt at c takes with alg: the face turns
// of the normalized algorithm plus the quarter turns of the canonical AUFs.
func TurnCount(alg types.Algorithm, c pll.Case) int {
	return notation.NormalizedTurnCount(alg) + c.Canonical().Cost()
}
