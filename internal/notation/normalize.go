package notation

import "github.com/SeamusWaldron/pll_trainer/pkg/types"

// frame maps a face as named in the algorithm (after any rotations so far)
// to the physical face it refers to on the cube held in its starting
// orientation.
type frame [6]types.Turnable

func identityFrame() frame {
	return frame{types.TurnableU, types.TurnableD, types.TurnableL, types.TurnableR, types.TurnableF, types.TurnableB}
}

// opposite returns the face across the cube. Faces are declared in
// opposite pairs (U D, L R, F B).
func opposite(face types.Turnable) types.Turnable {
	return face ^ 1
}

// rotationSources lists, per rotation axis, which frame position each
// position takes its face from after one clockwise rotation.
var rotationSources = map[types.Turnable]map[types.Turnable]types.Turnable{
	types.RotationX: {
		types.TurnableU: types.TurnableF,
		types.TurnableF: types.TurnableD,
		types.TurnableD: types.TurnableB,
		types.TurnableB: types.TurnableU,
	},
	types.RotationY: {
		types.TurnableF: types.TurnableR,
		types.TurnableR: types.TurnableB,
		types.TurnableB: types.TurnableL,
		types.TurnableL: types.TurnableF,
	},
	types.RotationZ: {
		types.TurnableR: types.TurnableU,
		types.TurnableD: types.TurnableR,
		types.TurnableL: types.TurnableD,
		types.TurnableU: types.TurnableL,
	},
}

func (f frame) rotate(axis types.Turnable, amount types.Amount) frame {
	src := rotationSources[axis]
	for i := 0; i < int(amount)%4; i++ {
		next := f
		for pos, from := range src {
			next[pos] = f[from]
		}
		f = next
	}
	return f
}

// wideRotations gives the rotation a wide move on a face carries along,
// and whether it turns against that rotation's clockwise direction.
var wideRotations = map[types.Turnable]struct {
	axis     types.Turnable
	inverted bool
}{
	types.TurnableR: {types.RotationX, false},
	types.TurnableL: {types.RotationX, true},
	types.TurnableU: {types.RotationY, false},
	types.TurnableD: {types.RotationY, true},
	types.TurnableF: {types.RotationZ, false},
	types.TurnableB: {types.RotationZ, true},
}

// sliceFaces pairs each slice with the face whose direction it follows.
var sliceFaces = map[types.Turnable]types.Turnable{
	types.TurnableM: types.TurnableL,
	types.TurnableE: types.TurnableD,
	types.TurnableS: types.TurnableF,
}

var sliceForFace = map[types.Turnable]types.Turnable{
	types.TurnableL: types.TurnableM,
	types.TurnableD: types.TurnableE,
	types.TurnableF: types.TurnableS,
}

// Normalize rewrites an algorithm so that it contains no whole cube
// rotations and no wide moves, while turning the same physical layers.
//
// Rotations are pushed through the rest of the algorithm by relabelling
// every later turn; wide moves become the opposite outer face plus a
// rotation that is pushed through the same way (r = L x, u = D y, f = B z).
// Groups are flattened. Every non-rotation turn of the input yields exactly
// one turn of the output, so the face turn count is unchanged.
func Normalize(alg types.Algorithm) types.Algorithm {
	f := identityFrame()
	turns := alg.Turns()
	out := make([]types.Turn, 0, len(turns))

	for _, t := range turns {
		switch {
		case t.Turnable.IsRotation():
			f = f.rotate(t.Turnable, t.Amount)

		case t.Turnable.IsFace():
			out = append(out, types.NewTurn(f[t.Turnable], t.Amount))

		case t.Turnable.IsWide():
			face := t.Turnable.Face()
			out = append(out, types.NewTurn(f[opposite(face)], t.Amount))
			rot := wideRotations[face]
			amount := t.Amount
			if rot.inverted {
				amount = amount.Inverse()
			}
			f = f.rotate(rot.axis, amount)

		case t.Turnable.IsSlice():
			out = append(out, relabelSlice(f, t))
		}
	}

	return types.NewAlgorithm(out...)
}

func relabelSlice(f frame, t types.Turn) types.Turn {
	physical := f[sliceFaces[t.Turnable]]
	if slice, ok := sliceForFace[physical]; ok {
		return types.NewTurn(slice, t.Amount)
	}
	return types.NewTurn(sliceForFace[opposite(physical)], t.Amount.Inverse())
}

// NormalizedTurnCount returns the number of turns an algorithm takes once
// normalized. Rotations never count and a half turn counts once.
func NormalizedTurnCount(alg types.Algorithm) int {
	return len(Normalize(alg).Elements)
}
