package pll

import (
	"fmt"
	"strings"
)

// PLL is one of the 21 permutations of the last layer.
type PLL int

const (
	Aa PLL = iota
	Ab
	E
	F
	Ga
	Gb
	Gc
	Gd
	H
	Ja
	Jb
	Na
	Nb
	Ra
	Rb
	T
	Ua
	Ub
	V
	Y
	Z
)

// Count is the number of PLLs.
const Count = 21

// All lists every PLL in alphabetical order.
var All = func() []PLL {
	all := make([]PLL, Count)
	for i := range all {
		all[i] = PLL(i)
	}
	return all
}()

var pllLetters = [Count]string{
	Aa: "Aa", Ab: "Ab", E: "E", F: "F",
	Ga: "Ga", Gb: "Gb", Gc: "Gc", Gd: "Gd",
	H: "H", Ja: "Ja", Jb: "Jb", Na: "Na", Nb: "Nb",
	Ra: "Ra", Rb: "Rb", T: "T", Ua: "Ua", Ub: "Ub",
	V: "V", Y: "Y", Z: "Z",
}

// Valid reports whether p is one of the 21 PLLs.
func (p PLL) Valid() bool {
	return p >= 0 && p < Count
}

// Letters returns the PLL's name as written in "<Letters>-perm".
func (p PLL) Letters() string {
	if !p.Valid() {
		return fmt.Sprintf("PLL(%d)", int(p))
	}
	return pllLetters[p]
}

func (p PLL) String() string {
	return p.Letters()
}

// ParsePLL parses a PLL name such as "Aa", "ua" or "T-perm".
func ParsePLL(s string) (PLL, error) {
	name := strings.TrimSpace(s)
	name = strings.TrimSuffix(strings.TrimSuffix(name, "-perm"), "-Perm")
	for _, p := range All {
		if strings.EqualFold(pllLetters[p], name) {
			return p, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownPLL, s)
}
