package pll

import "fmt"

// Shift is a change to both AUFs of a case. A shift in a PLL's symmetry
// group leaves the case looking exactly the same.
type Shift struct {
	Pre  AUF
	Post AUF
}

var (
	identityOnly = []Shift{{None, None}}

	// U H U' = H: every AUF commutes through the case.
	commuting = []Shift{{None, None}, {U, UPrime}, {U2, U2}, {UPrime, U}}

	// U N U = N.
	absorbing = []Shift{{None, None}, {U, U}, {U2, U2}, {UPrime, UPrime}}

	// The case looks the same from the back.
	halfTurn = []Shift{{None, None}, {U2, U2}}
)

// SymmetryGroup returns the shifts that map cases of p onto equivalent cases.
// It panics for a value outside the 21 PLLs.
func SymmetryGroup(p PLL) []Shift {
	switch p {
	case H:
		return commuting
	case Na, Nb:
		return absorbing
	case E, Z:
		return halfTurn
	case Aa, Ab, F, Ga, Gb, Gc, Gd, Ja, Jb, Ra, Rb, T, Ua, Ub, V, Y:
		return identityOnly
	}
	panic(fmt.Sprintf("pll: no symmetry group for %v", p))
}

// HasFullSymmetry returns true if every preAUF of p can be folded into the
// postAUF.
func HasFullSymmetry(p PLL) bool {
	return len(SymmetryGroup(p)) == 4
}

// RecognitionAngle reduces pre to the smallest preAUF that shows p from the
// same angle. Shifts in the symmetry group move the preAUF without changing
// what the solver sees.
func RecognitionAngle(p PLL, pre AUF) AUF {
	best := pre
	for _, s := range SymmetryGroup(p) {
		if a := pre.Add(s.Pre); a < best {
			best = a
		}
	}
	return best
}

// Case is a PLL together with the AUFs done before and after solving it.
type Case struct {
	PreAUF  AUF `json:"pre_auf"`
	PLL     PLL `json:"pll"`
	PostAUF AUF `json:"post_auf"`
}

// NewCase creates a case.
func NewCase(pre AUF, p PLL, post AUF) Case {
	return Case{PreAUF: pre, PLL: p, PostAUF: post}
}

// Canonical returns the preferred representation of the case.
func (c Case) Canonical() Case {
	pre, post := Canonicalize(c.PreAUF, c.PLL, c.PostAUF)
	return Case{PreAUF: pre, PLL: c.PLL, PostAUF: post}
}

// Cost is the number of quarter turns spent on AUFs.
func (c Case) Cost() int {
	return c.PreAUF.Cost() + c.PostAUF.Cost()
}

func (c Case) String() string {
	return fmt.Sprintf("%v %v-perm %v", c.PreAUF, c.PLL, c.PostAUF)
}

// Equivalent returns true if both cases are the same PLL and one can be
// shifted onto the other by the PLL's symmetry group.
func Equivalent(a, b Case) bool {
	return a.PLL == b.PLL && a.Canonical() == b.Canonical()
}

// Canonicalize picks, among all AUF pairs equivalent to (pre, post) for p,
// the one preferred by, in order:
//
//  1. fewest quarter turns in total
//  2. fewest quarter turns before the algorithm
//  3. fewest half turns
//  4. clockwise at the first AUF where the pairs differ
//  5. none < U < U2 < U' on the preAUF, then on the postAUF
//
// The order is total, so the result does not depend on which member of the
// group was passed in and canonicalizing twice changes nothing.
func Canonicalize(pre AUF, p PLL, post AUF) (AUF, AUF) {
	best := Shift{Pre: pre, Post: post}
	for _, s := range SymmetryGroup(p) {
		candidate := Shift{Pre: pre.Add(s.Pre), Post: post.Add(s.Post)}
		if candidate.preferredTo(best) {
			best = candidate
		}
	}
	return best.Pre, best.Post
}

func (s Shift) halfTurns() int {
	n := 0
	if s.Pre.IsHalfTurn() {
		n++
	}
	if s.Post.IsHalfTurn() {
		n++
	}
	return n
}

// preferredTo reports whether s is strictly preferred to o as an AUF pair.
func (s Shift) preferredTo(o Shift) bool {
	if a, b := s.Pre.Cost()+s.Post.Cost(), o.Pre.Cost()+o.Post.Cost(); a != b {
		return a < b
	}
	if a, b := s.Pre.Cost(), o.Pre.Cost(); a != b {
		return a < b
	}
	if a, b := s.halfTurns(), o.halfTurns(); a != b {
		return a < b
	}
	for _, pair := range [][2]AUF{{s.Pre, o.Pre}, {s.Post, o.Post}} {
		if pair[0] == pair[1] {
			continue
		}
		if (pair[0] == UPrime) != (pair[1] == UPrime) {
			return pair[1] == UPrime
		}
		break
	}
	if s.Pre != o.Pre {
		return s.Pre < o.Pre
	}
	return s.Post < o.Post
}
