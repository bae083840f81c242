package notation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/SeamusWaldron/pll_trainer/internal/cube"
	"github.com/SeamusWaldron/pll_trainer/pkg/types"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"R U R' U'", "R U R' U'"},
		{"r", "L"},
		{"Rw", "L"},
		{"r U", "L F"},
		{"Rw U", "L F"},
		{"u R", "D B"},
		{"f' U", "B' R"},
		{"y F", "R"},
		{"y F R' B", "R B' L"},
		{"y2 F", "B"},
		{"x U", "F"},
		{"z U", "L"},
		{"R U y", "R U"},
		{"(R U) x2", "R U"},
		{"y M", "S"},
		{"x M", "M"},
		{"z M", "E"},
		{"x", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(MustParse(tt.input)).String())
		})
	}
}

func TestNormalizeKeepsTurnCount(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"R U R' U'", 4},
		{"y r U R' x", 3},
		{"x R' U R' D2 R U' R' D2 R2 x'", 9},
		{"M2 U M2 U2 M2 U M2", 7},
		{"y2", 0},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizedTurnCount(MustParse(tt.input)))
		})
	}
}

func TestNormalizeProducesNoRotationsOrWideMoves(t *testing.T) {
	alg := Normalize(MustParse("y (r U R' u') x M2 z' f2 S"))
	for _, turn := range alg.Turns() {
		assert.False(t, turn.Turnable.IsRotation(), "%v", turn)
		assert.False(t, turn.Turnable.IsWide(), "%v", turn)
	}
}

func TestNormalizeTurnsSameLayers(t *testing.T) {
	for _, input := range []string{
		"r U R' U'",
		"y R U R' F'",
		"x' R U' R' D R U R' D' x",
		"M' U M2 U M' U2",
		"z d' S E2",
		"Fw R Bw' y2 Lw2 Dw",
		"y' x2 M U z' E",
	} {
		alg := MustParse(input)
		got := cube.Apply(Normalize(alg))
		want := cube.Apply(alg)
		assert.True(t, got.EqualUpToRotation(want), "%s normalized to %s", input, Normalize(alg))
	}
}

// rotated returns the algorithm that performs alg's face turns after a
// leading rotation, so that both turn the same physical layers.
func rotated(axis types.Turnable, amount types.Amount, alg types.Algorithm) types.Algorithm {
	f := identityFrame().rotate(axis, amount)
	named := make(map[types.Turnable]types.Turnable, len(f))
	for name, physical := range f {
		named[physical] = types.Turnable(name)
	}

	turns := []types.Turn{types.NewTurn(axis, amount)}
	for _, t := range alg.Turns() {
		turns = append(turns, types.NewTurn(named[t.Turnable], t.Amount))
	}
	return types.NewAlgorithm(turns...)
}

func TestNormalizeIgnoresLeadingRotation(t *testing.T) {
	alg := MustParse("R U R' U' R' F R2 U' R' U' R U R' F'")
	want := Normalize(alg)

	for _, axis := range []types.Turnable{types.RotationX, types.RotationY, types.RotationZ} {
		for _, amount := range []types.Amount{types.Clockwise, types.Half, types.CounterClockwise} {
			r := rotated(axis, amount, alg)
			assert.Equal(t, want, Normalize(r), "%s", r)
		}
	}
}
