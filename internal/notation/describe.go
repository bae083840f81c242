package notation

import (
	"strings"

	"github.com/SeamusWaldron/pll_trainer/pkg/types"
)

// layerName is how a layer is spoken of when describing a turn.
var layerName = map[types.Turnable]string{
	types.TurnableR: "R",
	types.TurnableL: "L",
	types.TurnableU: "Top",
	types.TurnableD: "Bottom",
	types.TurnableF: "Front",
	types.TurnableB: "Back",
	types.TurnableM: "M",
	types.TurnableE: "E",
	types.TurnableS: "S",
}

// layerMotion holds the clockwise, half and counter clockwise descriptions,
// seen with the front face toward the solver.
var layerMotion = map[types.Turnable][3]string{
	types.TurnableR: {"up", "up x 2", "down"},
	types.TurnableL: {"down", "down x 2", "up"},
	types.TurnableU: {"rotate left", "rotate left x 2", "rotate right"},
	types.TurnableD: {"rotate right", "rotate right x 2", "rotate left"},
	types.TurnableF: {"rotate clockwise", "rotate x 2", "rotate anti-clockwise"},
	types.TurnableB: {"rotate clockwise", "rotate x 2", "rotate anti-clockwise"},
	types.TurnableM: {"down", "down x 2", "up"},
	types.TurnableE: {"rotate right", "rotate right x 2", "rotate left"},
	types.TurnableS: {"rotate clockwise", "rotate x 2", "rotate anti-clockwise"},
}

// Describe says in words which way a turn moves its layer, e.g. "R up" or
// "Top rotate right". Wide moves keep their written letters ("r up").
// Rotations fall back to standard notation.
func Describe(t types.Turn) string {
	motion, ok := layerMotion[t.Turnable.Face()]
	if !ok || t.Amount < types.Clockwise || t.Amount > types.CounterClockwise {
		return t.Notation()
	}

	name := layerName[t.Turnable]
	if t.Turnable.IsWide() {
		name = types.Turn{Turnable: t.Turnable, Amount: types.Clockwise, Style: t.Style}.Notation()
	}

	return name + " " + motion[t.Amount-1]
}

// DescribeTurns describes each turn.
func DescribeTurns(turns []types.Turn) []string {
	result := make([]string, len(turns))
	for i, t := range turns {
		result[i] = Describe(t)
	}
	return result
}

// DescribeAlgorithm formats an algorithm's turns as a comma-separated
// description.
func DescribeAlgorithm(alg types.Algorithm) string {
	return strings.Join(DescribeTurns(alg.Turns()), ", ")
}
