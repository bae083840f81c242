package pll

import (
	"github.com/SeamusWaldron/pll_trainer/internal/cube"
	"github.com/SeamusWaldron/pll_trainer/internal/notation"
	"github.com/SeamusWaldron/pll_trainer/pkg/types"
)

// referenceNotation holds one algorithm per PLL. The case a reference
// algorithm solves without AUFs is the (none, P, none) case; every other
// case of P is described by its AUFs relative to it.
var referenceNotation = [Count]string{
	Aa: "Lw' U R' D2 R U' R' D2 R2",
	Ab: "R2 B2 R F R' B2 R F' R",
	E:  "L U' R D2 R' U R L' U' L D2 L' U R'",
	F:  "M' U2 L F' R U2 Rw' U Rw' R2 U2 R2",
	Ga: "R2 S2 U Lw2 U' Lw2 Uw R2 U' Rw2 F2",
	Gb: "R' Dw' F R2 Uw R' U R U' R Uw' R2",
	Gc: "R2 S2 U' Lw2 U Lw2 Uw' R2 U Rw2 B2",
	Gd: "F2 R2 D' L2 D L2 U' L2 U M2 B2",
	H:  "M2 U M2 U2 M2 U M2",
	Ja: "R2 F2 U' F2 D R2 D' R2 U R2",
	Jb: "R L U2 R' U' R U2 L' U R'",
	Na: "L U' R U2 Rw' F M' U' R U2 Rw' F Lw'",
	Nb: "R' U L' U2 R U' M' B Rw' U2 R U' L",
	Ra: "L U2 L' U2 L F' L' U' L U L F L2",
	Rb: "R' U2 R U2 R' F R U R' U' R' F' R2",
	T:  "R2 Uw R2 U' R2 F2 D' Rw2 D Rw2",
	Ua: "M2 U M' U2 M U M2",
	Ub: "M2 U' M' U2 M U' M2",
	V:  "R' U R' Dw' R' F' R2 U' R' U R' F R F",
	Y:  "R' U' R F2 R' U R Dw R2 U' R2 U' R2",
	Z:  "M2 Uw M2 Uw' S M2 S'",
}

var (
	references      [Count]types.Algorithm
	referenceStates [Count]*cube.Cube
)

func init() {
	for _, p := range All {
		references[p] = notation.MustParse(referenceNotation[p])
		referenceStates[p] = caseState(None, references[p], None)
	}
}

// ReferenceAlgorithm returns the algorithm that solves the (none, p, none)
// case.
func ReferenceAlgorithm(p PLL) types.Algorithm {
	if !p.Valid() {
		panic("pll: no reference algorithm for " + p.String())
	}
	return references[p]
}

// caseState returns the cube after doing pre, then alg, then post on a
// solved cube. The post AUF turns the white face whatever way alg left the
// cube held.
func caseState(pre AUF, alg types.Algorithm, post AUF) *cube.Cube {
	c := cube.New()
	c.ApplyTurns(pre.Turns())
	c.ApplyAlgorithm(alg)
	c.Reorient()
	c.ApplyTurns(post.Turns())
	return c
}
