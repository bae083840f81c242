// Package learning decides which attempts show the user something new and
// which of those need extra drilling.
package learning

import (
	"github.com/SeamusWaldron/pll_trainer/internal/config"
	"github.com/SeamusWaldron/pll_trainer/internal/pll"
	"github.com/SeamusWaldron/pll_trainer/internal/stats"
	"github.com/SeamusWaldron/pll_trainer/pkg/types"
)

// AUFSet is a set of AUFs stored as a bitmask.
type AUFSet uint8

// Has reports whether a is in the set.
func (s AUFSet) Has(a pll.AUF) bool {
	return s&(1<<uint(a)) != 0
}

// With returns the set with a added.
func (s AUFSet) With(a pll.AUF) AUFSet {
	return s | 1<<uint(a)
}

// Len returns the number of AUFs in the set.
func (s AUFSet) Len() int {
	n := 0
	for _, a := range pll.AllAUFs {
		if s.Has(a) {
			n++
		}
	}
	return n
}

// State is what the user has seen so far. It is a value; Apply and
// PickAlgorithm return updated copies.
type State struct {
	// Recognition angles seen per PLL, as reduced by pll.RecognitionAngle
	SeenPreAUFs [pll.Count]AUFSet `json:"seen_pre_aufs"`

	// Canonical postAUFs seen per PLL, none excluded
	SeenPostAUFs [pll.Count]AUFSet `json:"seen_post_aufs"`

	// The user's algorithm per PLL, empty until picked
	Algorithms [pll.Count]string `json:"algorithms"`

	// AUFs lining each picked algorithm up with the reference algorithm
	AlgorithmAUFs [pll.Count]pll.AlgorithmAUFs `json:"algorithm_aufs"`
}

// NewState returns the state of a user who has seen nothing yet.
func NewState() State {
	return State{}
}

// Classification is the verdict on one attempt.
type Classification struct {
	IsNewCase  bool `json:"is_new_case"`
	NeedsDrill bool `json:"needs_drill"`
}

// HasSeenAngle reports whether p was seen from the angle pre shows.
func (s State) HasSeenAngle(p pll.PLL, pre pll.AUF) bool {
	return p.Valid() && s.SeenPreAUFs[p].Has(pll.RecognitionAngle(p, pre))
}

// IsNew reports whether c shows something the user has not seen: a
// recognition angle not seen for the PLL, or a postAUF other than none not
// seen for it.
func (s State) IsNew(c pll.Case) bool {
	c = c.Canonical()
	if !s.HasSeenAngle(c.PLL, c.PreAUF) {
		return true
	}
	return c.PostAUF != pll.None && !s.SeenPostAUFs[c.PLL].Has(c.PostAUF)
}

// Classify decides whether an attempt was at a new case and whether it
// should be drilled. Only new cases are drilled, when they were solved
// wrong or slower than the target.
func Classify(a stats.Attempt, s State, target config.TargetParameters) Classification {
	isNew := s.IsNew(a.Case)
	slow := float64(a.TimeMs) > target.TargetTimeMs(a.Turns)
	return Classification{
		IsNewCase:  isNew,
		NeedsDrill: isNew && (a.Outcome == stats.Wrong || slow),
	}
}

// Apply records the AUFs of an attempt as seen.
func Apply(a stats.Attempt, s State) State {
	c := a.Case.Canonical()
	if !c.PLL.Valid() {
		return s
	}
	s.SeenPreAUFs[c.PLL] = s.SeenPreAUFs[c.PLL].With(pll.RecognitionAngle(c.PLL, c.PreAUF))
	if c.PostAUF != pll.None {
		s.SeenPostAUFs[c.PLL] = s.SeenPostAUFs[c.PLL].With(c.PostAUF)
	}
	return s
}

// PickAlgorithm records the algorithm the user solves p with. The algorithm
// must solve p; the AUFs lining it up with the reference are stored with it.
func (s State) PickAlgorithm(p pll.PLL, alg types.Algorithm) (State, error) {
	m, err := pll.MatchAlgorithm(p, alg)
	if err != nil {
		return s, err
	}
	s.Algorithms[p] = alg.String()
	s.AlgorithmAUFs[p] = m
	return s, nil
}

// HasPickedAlgorithm reports whether the user picked an algorithm for p.
func (s State) HasPickedAlgorithm(p pll.PLL) bool {
	return p.Valid() && s.Algorithms[p] != ""
}
