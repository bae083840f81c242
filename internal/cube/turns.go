package cube

import "github.com/SeamusWaldron/pll_trainer/pkg/types"

const numStickers = 54

// vec is a position or direction on the integer lattice around the cube
// center: x points right, y up and z to the front.
type vec [3]int

func (v vec) dot(w vec) int {
	return v[0]*w[0] + v[1]*w[1] + v[2]*w[2]
}

func (v vec) cross(w vec) vec {
	return vec{
		v[1]*w[2] - v[2]*w[1],
		v[2]*w[0] - v[0]*w[2],
		v[0]*w[1] - v[1]*w[0],
	}
}

func (v vec) scale(k int) vec {
	return vec{v[0] * k, v[1] * k, v[2] * k}
}

func (v vec) sub(w vec) vec {
	return vec{v[0] - w[0], v[1] - w[1], v[2] - w[2]}
}

// turnAbout rotates v a quarter turn clockwise, looking at the cube from
// the side n points to.
func (v vec) turnAbout(n vec) vec {
	return n.scale(n.dot(v)).sub(n.cross(v))
}

// sticker is a facelet in space: the cubie position it sits on and the
// direction it faces.
type sticker struct {
	pos    vec
	normal vec
}

var faceNormals = [6]vec{
	U: {0, 1, 0},
	D: {0, -1, 0},
	F: {0, 0, 1},
	B: {0, 0, -1},
	R: {1, 0, 0},
	L: {-1, 0, 0},
}

// stickerAt places facelet idx of face in space, following the layout
// documented on Cube.
func stickerAt(face Face, idx int) sticker {
	row, col := idx/3-1, idx%3-1
	var p vec
	switch face {
	case U:
		p = vec{col, 1, row}
	case D:
		p = vec{col, -1, -row}
	case F:
		p = vec{col, -row, 1}
	case B:
		p = vec{-col, -row, -1}
	case R:
		p = vec{1, -row, -col}
	case L:
		p = vec{-1, -row, col}
	}
	return sticker{pos: p, normal: faceNormals[face]}
}

// perm maps every flat facelet index (face*9 + position) to the index the
// facelet moves to.
type perm [numStickers]int

func identityPerm() perm {
	var p perm
	for i := range p {
		p[i] = i
	}
	return p
}

// then returns the permutation doing p first and q second.
func (p perm) then(q perm) perm {
	var r perm
	for i := range p {
		r[i] = q[p[i]]
	}
	return r
}

func (c *Cube) permute(p *perm) {
	var next [6][9]Color
	for i := 0; i < numStickers; i++ {
		j := p[i]
		next[j/9][j%9] = c.Facelets[i/9][i%9]
	}
	c.Facelets = next
}

// layer describes the stickers a turnable moves and the axis it turns
// around clockwise.
type layer struct {
	axis    vec
	selects func(p vec) bool
}

func outer(axis vec) layer {
	return layer{axis: axis, selects: func(p vec) bool { return p.dot(axis) == 1 }}
}

func wide(axis vec) layer {
	return layer{axis: axis, selects: func(p vec) bool { return p.dot(axis) >= 0 }}
}

func middle(axis vec) layer {
	return layer{axis: axis, selects: func(p vec) bool { return p.dot(axis) == 0 }}
}

func whole(axis vec) layer {
	return layer{axis: axis, selects: func(vec) bool { return true }}
}

var layers = map[types.Turnable]layer{
	types.TurnableU: outer(faceNormals[U]),
	types.TurnableD: outer(faceNormals[D]),
	types.TurnableL: outer(faceNormals[L]),
	types.TurnableR: outer(faceNormals[R]),
	types.TurnableF: outer(faceNormals[F]),
	types.TurnableB: outer(faceNormals[B]),

	// M turns like L, E like D and S like F.
	types.TurnableM: middle(faceNormals[L]),
	types.TurnableE: middle(faceNormals[D]),
	types.TurnableS: middle(faceNormals[F]),

	types.TurnableUw: wide(faceNormals[U]),
	types.TurnableDw: wide(faceNormals[D]),
	types.TurnableLw: wide(faceNormals[L]),
	types.TurnableRw: wide(faceNormals[R]),
	types.TurnableFw: wide(faceNormals[F]),
	types.TurnableBw: wide(faceNormals[B]),

	types.RotationX: whole(faceNormals[R]),
	types.RotationY: whole(faceNormals[U]),
	types.RotationZ: whole(faceNormals[F]),
}

// turnTables holds, per turnable, the permutation for each amount.
// Index 0 is the identity.
var turnTables = buildTurnTables()

// orientations holds the 24 whole cube rotations.
var orientations = buildOrientations()

func buildTurnTables() map[types.Turnable][4]perm {
	index := make(map[sticker]int, numStickers)
	for face := Face(0); face < 6; face++ {
		for i := 0; i < 9; i++ {
			index[stickerAt(face, i)] = int(face)*9 + i
		}
	}

	tables := make(map[types.Turnable][4]perm, len(layers))
	for t, l := range layers {
		quarter := identityPerm()
		for face := Face(0); face < 6; face++ {
			for i := 0; i < 9; i++ {
				s := stickerAt(face, i)
				if !l.selects(s.pos) {
					continue
				}
				moved := sticker{pos: s.pos.turnAbout(l.axis), normal: s.normal.turnAbout(l.axis)}
				quarter[int(face)*9+i] = index[moved]
			}
		}

		var amounts [4]perm
		amounts[0] = identityPerm()
		for a := 1; a < 4; a++ {
			amounts[a] = amounts[a-1].then(quarter)
		}
		tables[t] = amounts
	}
	return tables
}

func buildOrientations() []perm {
	generators := []perm{
		turnTables[types.RotationX][1],
		turnTables[types.RotationY][1],
		turnTables[types.RotationZ][1],
	}

	seen := map[perm]bool{identityPerm(): true}
	all := []perm{identityPerm()}
	for i := 0; i < len(all); i++ {
		for _, g := range generators {
			next := all[i].then(g)
			if !seen[next] {
				seen[next] = true
				all = append(all, next)
			}
		}
	}
	return all
}

// ApplyTurn applies a single turn to the cube.
func (c *Cube) ApplyTurn(t types.Turn) {
	amounts, ok := turnTables[t.Turnable]
	if !ok {
		return
	}
	p := amounts[int(t.Amount)%4]
	c.permute(&p)
}

// ApplyTurns applies a sequence of turns to the cube.
func (c *Cube) ApplyTurns(turns []types.Turn) {
	for _, t := range turns {
		c.ApplyTurn(t)
	}
}

// ApplyAlgorithm applies every turn of an algorithm, groups included.
func (c *Cube) ApplyAlgorithm(alg types.Algorithm) {
	c.ApplyTurns(alg.Turns())
}

// Apply returns a solved cube with the algorithm applied.
func Apply(alg types.Algorithm) *Cube {
	c := New()
	c.ApplyAlgorithm(alg)
	return c
}
