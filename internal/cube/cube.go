// Package cube provides a 3x3 Rubik's cube sticker model used to check what
// an algorithm does to the cube.
package cube

import "strings"

// Color represents a face color.
type Color byte

const (
	White  Color = 0 // Up face when solved
	Yellow Color = 1 // Down face when solved
	Green  Color = 2 // Front face when solved
	Blue   Color = 3 // Back face when solved
	Red    Color = 4 // Right face when solved
	Orange Color = 5 // Left face when solved
)

func (c Color) String() string {
	switch c {
	case White:
		return "W"
	case Yellow:
		return "Y"
	case Green:
		return "G"
	case Blue:
		return "B"
	case Red:
		return "R"
	case Orange:
		return "O"
	default:
		return "?"
	}
}

// Face represents a cube face.
type Face int

const (
	U Face = 0 // Up (White)
	D Face = 1 // Down (Yellow)
	F Face = 2 // Front (Green)
	B Face = 3 // Back (Blue)
	R Face = 4 // Right (Red)
	L Face = 5 // Left (Orange)
)

func (f Face) String() string {
	switch f {
	case U:
		return "U"
	case D:
		return "D"
	case F:
		return "F"
	case B:
		return "B"
	case R:
		return "R"
	case L:
		return "L"
	default:
		return "?"
	}
}

// Cube represents a 3x3 Rubik's cube.
// Each face has 9 facelets indexed as:
//
//	0 1 2
//	3 4 5
//	6 7 8
//
// U is seen from above with B at the top, D from below with F at the top,
// and the side faces from outside with U at the top. Centers move with
// slice moves and rotations, so a solved cube may be held in any of its
// 24 orientations.
type Cube struct {
	// Facelets[face][position] = color
	Facelets [6][9]Color
}

// New creates a solved cube with standard orientation:
// White on top, Green in front.
func New() *Cube {
	c := &Cube{}
	for face := Face(0); face < 6; face++ {
		color := faceToSolvedColor(face)
		for i := 0; i < 9; i++ {
			c.Facelets[face][i] = color
		}
	}
	return c
}

// faceToSolvedColor returns the color of a face when solved.
func faceToSolvedColor(f Face) Color {
	return Color(f)
}

// Clone creates a deep copy of the cube.
func (c *Cube) Clone() *Cube {
	clone := *c
	return &clone
}

// IsSolved returns true if the cube is solved in the standard orientation.
func (c *Cube) IsSolved() bool {
	for face := Face(0); face < 6; face++ {
		expectedColor := faceToSolvedColor(face)
		for i := 0; i < 9; i++ {
			if c.Facelets[face][i] != expectedColor {
				return false
			}
		}
	}
	return true
}

// IsSolvedUpToRotation returns true if every face shows a single color,
// whatever way the cube is held.
func (c *Cube) IsSolvedUpToRotation() bool {
	for face := Face(0); face < 6; face++ {
		for i := 1; i < 9; i++ {
			if c.Facelets[face][i] != c.Facelets[face][0] {
				return false
			}
		}
	}
	return true
}

// Equal returns true if both cubes show the same stickers in the same places.
func (c *Cube) Equal(other *Cube) bool {
	return c.Facelets == other.Facelets
}

// EqualUpToRotation returns true if other can be obtained from c by a
// whole cube rotation.
func (c *Cube) EqualUpToRotation(other *Cube) bool {
	for i := range orientations {
		rotated := c.Clone()
		rotated.permute(&orientations[i])
		if rotated.Facelets == other.Facelets {
			return true
		}
	}
	return false
}

// Reorient turns the whole cube so the white center is up and the green
// center is in front, undoing any net rotation left by the turns applied.
func (c *Cube) Reorient() {
	for i := range orientations {
		rotated := c.Clone()
		rotated.permute(&orientations[i])
		if rotated.Facelets[U][4] == faceToSolvedColor(U) && rotated.Facelets[F][4] == faceToSolvedColor(F) {
			c.Facelets = rotated.Facelets
			return
		}
	}
}

// String returns a text representation of the cube as an unfolded net.
func (c *Cube) String() string {
	var b strings.Builder

	writeRow := func(face Face, row int) {
		for col := 0; col < 3; col++ {
			b.WriteString(c.Facelets[face][row*3+col].String())
			b.WriteByte(' ')
		}
	}

	for row := 0; row < 3; row++ {
		b.WriteString("      ")
		writeRow(U, row)
		b.WriteByte('\n')
	}

	for row := 0; row < 3; row++ {
		for _, face := range []Face{L, F, R, B} {
			writeRow(face, row)
		}
		b.WriteByte('\n')
	}

	for row := 0; row < 3; row++ {
		b.WriteString("      ")
		writeRow(D, row)
		b.WriteByte('\n')
	}

	return b.String()
}
