// Package pll models PLL cases with their AUFs and reduces equivalent cases
// to a single canonical form.
package pll

import (
	"fmt"
	"strings"

	"github.com/SeamusWaldron/pll_trainer/pkg/types"
)

// AUF is an adjustment of the U face done before or after an algorithm.
// Values are quarter turns clockwise, so AUFs add modulo 4.
type AUF int

const (
	None   AUF = 0
	U      AUF = 1
	U2     AUF = 2
	UPrime AUF = 3
)

// AllAUFs lists the four AUFs in their tie-break order.
var AllAUFs = []AUF{None, U, U2, UPrime}

// Add returns the AUF equal to doing a then b.
func (a AUF) Add(b AUF) AUF {
	return (a + b) % 4
}

// Inverse returns the AUF that undoes a.
func (a AUF) Inverse() AUF {
	return (4 - a) % 4
}

// Cost is the AUF's length in quarter turns: 0, 1 or 2.
func (a AUF) Cost() int {
	switch a {
	case U, UPrime:
		return 1
	case U2:
		return 2
	}
	return 0
}

// IsHalfTurn returns true for U2.
func (a AUF) IsHalfTurn() bool {
	return a == U2
}

// IsClockwise returns true for U and U2.
func (a AUF) IsClockwise() bool {
	return a == U || a == U2
}

// Turns returns the AUF as turns of the U face. None is no turn at all.
func (a AUF) Turns() []types.Turn {
	if a == None {
		return nil
	}
	return []types.Turn{types.NewTurn(types.TurnableU, types.Amount(a))}
}

func (a AUF) String() string {
	switch a {
	case None:
		return "none"
	case U:
		return "U"
	case U2:
		return "U2"
	case UPrime:
		return "U'"
	}
	return fmt.Sprintf("AUF(%d)", int(a))
}

// ParseAUF parses "none" (or an empty string), "U", "U2" and "U'".
func ParseAUF(s string) (AUF, error) {
	switch strings.TrimSpace(s) {
	case "", "none", "-":
		return None, nil
	case "U", "u":
		return U, nil
	case "U2", "u2":
		return U2, nil
	case "U'", "u'", "U`", "U’":
		return UPrime, nil
	}
	return None, fmt.Errorf("%w: %q", ErrUnknownAUF, s)
}
