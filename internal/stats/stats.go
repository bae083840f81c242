package stats

import "github.com/SeamusWaldron/pll_trainer/internal/pll"

// CaseStats is the record kept for one PLL.
type CaseStats struct {
	Recent Ring `json:"recent"`

	// Discovered is the sequence number of the first attempt at the PLL,
	// zero if it was never tried.
	Discovered int `json:"discovered"`

	// LastWrong is the sequence number of the latest Wrong attempt.
	LastWrong int `json:"last_wrong"`
}

// Tried returns true once the PLL has been attempted.
func (c CaseStats) Tried() bool {
	return c.Discovered > 0
}

// DNF returns true while a Wrong attempt is inside the window. Such a case
// has no average until Correct attempts have pushed it out.
func (c CaseStats) DNF() bool {
	for _, a := range c.Recent.Slice() {
		if a.Outcome == Wrong {
			return true
		}
	}
	return false
}

// Stats is the statistics of every PLL. It is a value: Record returns an
// updated copy and leaves its input alone.
type Stats struct {
	Cases [pll.Count]CaseStats `json:"cases"`
	Seq   int                  `json:"seq"`
}

// New returns empty statistics.
func New() Stats {
	return Stats{}
}

// Record adds an attempt to the statistics of its PLL.
func Record(s Stats, a Attempt) Stats {
	p := a.Case.PLL
	if !p.Valid() {
		return s
	}

	s.Seq++
	cs := s.Cases[p]
	if !cs.Tried() {
		cs.Discovered = s.Seq
	}
	if a.Outcome == Wrong {
		cs.LastWrong = s.Seq
	}
	cs.Recent = cs.Recent.Push(a)
	s.Cases[p] = cs
	return s
}

// Case returns the statistics of one PLL.
func (s Stats) Case(p pll.PLL) CaseStats {
	return s.Cases[p]
}

// TriedCount returns the number of distinct PLLs attempted.
func (s Stats) TriedCount() int {
	n := 0
	for _, cs := range s.Cases {
		if cs.Tried() {
			n++
		}
	}
	return n
}
