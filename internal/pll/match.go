package pll

import (
	"fmt"

	"github.com/SeamusWaldron/pll_trainer/pkg/types"
)

// AlgorithmAUFs relates a user's algorithm to the reference algorithm of its
// PLL: doing Pre, the algorithm, then Post does what the reference does.
type AlgorithmAUFs struct {
	Pre  AUF `json:"pre"`
	Post AUF `json:"post"`
}

// MatchAlgorithm checks that alg solves p and works out the AUFs that line
// it up with the reference algorithm. Whole cube rotations anywhere in alg
// are allowed. ErrAlgorithmDoesntMatchCase is returned if no AUFs work.
func MatchAlgorithm(p PLL, alg types.Algorithm) (AlgorithmAUFs, error) {
	if !p.Valid() {
		return AlgorithmAUFs{}, fmt.Errorf("%w: %d", ErrUnknownPLL, int(p))
	}

	target := referenceStates[p]
	for _, pre := range AllAUFs {
		for _, post := range AllAUFs {
			if caseState(pre, alg, post).Equal(target) {
				return AlgorithmAUFs{Pre: pre, Post: post}, nil
			}
		}
	}
	return AlgorithmAUFs{}, fmt.Errorf("%w: %s is not a %s-perm", ErrAlgorithmDoesntMatchCase, alg, p.Letters())
}

// Identify finds the PLL an algorithm solves.
func Identify(alg types.Algorithm) (PLL, AlgorithmAUFs, error) {
	for _, p := range All {
		if m, err := MatchAlgorithm(p, alg); err == nil {
			return p, m, nil
		}
	}
	return 0, AlgorithmAUFs{}, fmt.Errorf("%w: %s solves no PLL", ErrAlgorithmDoesntMatchCase, alg)
}

// ResolveCase converts a case, given relative to the reference algorithm,
// into the AUFs needed around the user's own algorithm, and canonicalizes
// the result.
func ResolveCase(c Case, m AlgorithmAUFs) Case {
	resolved := Case{
		PreAUF:  c.PreAUF.Add(m.Pre),
		PLL:     c.PLL,
		PostAUF: m.Post.Add(c.PostAUF),
	}
	return resolved.Canonical()
}
