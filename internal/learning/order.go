package learning

import (
	"fmt"

	"github.com/SeamusWaldron/pll_trainer/internal/notation"
	"github.com/SeamusWaldron/pll_trainer/internal/pll"
)

// orderAlgorithms are the algorithms the recommended learning order was
// written against. Their AUFs differ from the reference algorithms for
// about half the PLLs, so the order is rebased before use.
var orderAlgorithms = [pll.Count]string{
	pll.Ua: "M2 U M U2 M' U M2",
	pll.Ub: "M2 U' M U2 M' U' M2",
	pll.H:  "M2 U M2 U2 M2 U M2",
	pll.Z:  "M U M2 U M2 U M U2 M2",
	pll.Aa: "x L2 D2 (L' U' L) D2 (L' U L')",
	pll.Ab: "x (L U' L) D2 (L' U L) D2 L2",
	pll.E:  "x' (L' U L D') (L' U' L D) (L' U' L D') (L' U L D)",
	pll.T:  "(R U R' U') R' F R2 U' R' U' (R U R') F'",
	pll.F:  "R' U' F' (R U R' U') R' F R2 U' R' U' (R U R') U R",
	pll.Jb: "(R U R' F') (R U R' U') R' F R2 U' R'",
	pll.Ja: "x (R2 F R F') R U2 (r' U r) U2",
	pll.Ra: "(R U' R' U') (R U R D) (R' U' R D') (R' U2 R')",
	pll.Rb: "R2 F R (U R U' R') F' R U2 R' U2 R",
	pll.Y:  "F (R U' R' U') (R U R') F' (R U R' U') (R' F R F')",
	pll.V:  "R U' (R U R') D R D' R (U' D) R2 U R2 D' R2",
	pll.Na: "(R U R' U) (R U R' F' R U R' U' R' F R2 U' R') (U2 R U' R')",
	pll.Nb: "r' D' F (r U' r') F' D (r2 U r' U') (r' F r F')",
	pll.Ga: "R2 U R' U R' U' R U' R2 (U' D) (R' U R) D'",
	pll.Gb: "(R' U' R) (U D') R2 U R' U R U' R U' R2 D",
	pll.Gc: "R2 U' R U' R U R' U R2 (U D') (R U' R') D",
	pll.Gd: "(R U R') (U' D) R2 U' R U' R' U R' U R2 D'",
}

type orderEntry struct {
	pre  pll.AUF
	perm pll.PLL
}

// orderByAlgorithms is the recommended order to learn the cases in, as
// preAUF and PLL relative to orderAlgorithms. Easy to recognize cases come
// first.
var orderByAlgorithms = []orderEntry{
	// All corners solved
	{pll.None, pll.H}, {pll.U, pll.Z}, {pll.UPrime, pll.Ua}, {pll.U2, pll.Ub},

	// Huge bars
	{pll.None, pll.Y}, {pll.UPrime, pll.Ja}, {pll.U2, pll.Jb}, {pll.None, pll.Aa},
	{pll.None, pll.Ab}, {pll.U2, pll.V}, {pll.U, pll.F},

	// The Ns
	{pll.None, pll.Na}, {pll.None, pll.Nb},

	// T-looking
	{pll.U, pll.T}, {pll.U, pll.Ra}, {pll.U2, pll.Rb},

	// Y inside 2-bar angles before the Gs, which are taught through them
	{pll.UPrime, pll.Y}, {pll.U, pll.Y}, {pll.None, pll.Ga}, {pll.UPrime, pll.Gc},
	{pll.UPrime, pll.Gb}, {pll.None, pll.Gd},

	// Y and V angles that look like E, then E
	{pll.U2, pll.Y}, {pll.None, pll.V}, {pll.None, pll.E},

	// Every PLL is now known from one angle
	{pll.U, pll.E},
	{pll.U2, pll.F}, {pll.U2, pll.Ja}, {pll.U, pll.Jb}, {pll.U2, pll.Ua},
	{pll.UPrime, pll.Ub},
	{pll.None, pll.Z}, {pll.None, pll.Ua}, {pll.U, pll.Ub}, {pll.U, pll.Ua},
	{pll.None, pll.Ub},

	// Headlights and 2-bar
	{pll.U2, pll.T}, {pll.U, pll.Aa}, {pll.UPrime, pll.Ab}, {pll.U, pll.Ga},
	{pll.U2, pll.Gc},

	// Lone lights
	{pll.U2, pll.Ra}, {pll.U, pll.Rb}, {pll.U2, pll.Ga}, {pll.U, pll.Gc},
	{pll.U, pll.Gb}, {pll.U2, pll.Gb}, {pll.U, pll.Gd}, {pll.U2, pll.Gd},
	{pll.U2, pll.Aa}, {pll.U, pll.Ab},

	// Double 2-bar
	{pll.None, pll.Ja}, {pll.U, pll.Ja}, {pll.None, pll.Jb}, {pll.UPrime, pll.Jb},

	// Outside 2-bar
	{pll.U, pll.V}, {pll.UPrime, pll.V}, {pll.None, pll.Ra}, {pll.UPrime, pll.Rb},
	{pll.None, pll.Gb}, {pll.UPrime, pll.Gd}, {pll.None, pll.T}, {pll.UPrime, pll.T},
	{pll.UPrime, pll.Aa}, {pll.U2, pll.Ab},

	// Bookends, no bars
	{pll.None, pll.F}, {pll.UPrime, pll.F}, {pll.UPrime, pll.Ra}, {pll.None, pll.Rb},
	{pll.UPrime, pll.Ga}, {pll.None, pll.Gc},
}

// learningOrder is orderByAlgorithms with every preAUF relative to the
// reference algorithms.
var learningOrder = rebaseOrder(orderByAlgorithms)

// rebaseOrder rewrites each preAUF so that it shows the same recognition
// angle in front of the reference algorithm. It panics if an order
// algorithm does not solve its PLL.
func rebaseOrder(entries []orderEntry) []orderEntry {
	var offsets [pll.Count]pll.AUF
	for _, p := range pll.All {
		m, err := pll.MatchAlgorithm(p, notation.MustParse(orderAlgorithms[p]))
		if err != nil {
			panic(fmt.Sprintf("learning: order algorithm for %s: %v", p, err))
		}
		// m.Pre · alg lines up with the reference, so pre · alg does with
		// pre - m.Pre.
		offsets[p] = m.Pre.Inverse()
	}

	rebased := make([]orderEntry, len(entries))
	for i, e := range entries {
		rebased[i] = orderEntry{pre: e.pre.Add(offsets[e.perm]), perm: e.perm}
	}
	return rebased
}

// NextCaseToLearn returns the first case in the recommended learning order
// whose recognition angle the user has not seen yet. It returns false once
// every case in the order has been seen.
func NextCaseToLearn(s State) (pll.Case, bool) {
	for _, entry := range learningOrder {
		if !s.HasSeenAngle(entry.perm, entry.pre) {
			return pll.NewCase(entry.pre, entry.perm, pll.None), true
		}
	}
	return pll.Case{}, false
}
