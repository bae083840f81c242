// Package types contains shared type definitions for the PLL trainer.
package types

import "strings"

// Turnable identifies a layer, a set of layers, or the whole cube that can be
// turned in standard notation.
type Turnable int

const (
	// Outer faces
	TurnableU Turnable = iota
	TurnableD
	TurnableL
	TurnableR
	TurnableF
	TurnableB

	// Slices
	TurnableM
	TurnableS
	TurnableE

	// Wide moves (outer face plus the adjacent slice)
	TurnableUw
	TurnableDw
	TurnableLw
	TurnableRw
	TurnableFw
	TurnableBw

	// Whole cube rotations
	RotationX
	RotationY
	RotationZ

	numTurnables
)

// AllTurnables lists every turnable in declaration order.
var AllTurnables = func() []Turnable {
	all := make([]Turnable, 0, numTurnables)
	for t := Turnable(0); t < numTurnables; t++ {
		all = append(all, t)
	}
	return all
}()

var turnableLetters = [numTurnables]string{
	TurnableU:  "U",
	TurnableD:  "D",
	TurnableL:  "L",
	TurnableR:  "R",
	TurnableF:  "F",
	TurnableB:  "B",
	TurnableM:  "M",
	TurnableS:  "S",
	TurnableE:  "E",
	TurnableUw: "U",
	TurnableDw: "D",
	TurnableLw: "L",
	TurnableRw: "R",
	TurnableFw: "F",
	TurnableBw: "B",
	RotationX:  "x",
	RotationY:  "y",
	RotationZ:  "z",
}

// Valid reports whether t is one of the declared turnables.
func (t Turnable) Valid() bool {
	return t >= 0 && t < numTurnables
}

// IsFace returns true for the six outer face layers.
func (t Turnable) IsFace() bool {
	return t >= TurnableU && t <= TurnableB
}

// IsSlice returns true for M, S and E.
func (t Turnable) IsSlice() bool {
	return t >= TurnableM && t <= TurnableE
}

// IsWide returns true for the two-layer wide moves.
func (t Turnable) IsWide() bool {
	return t >= TurnableUw && t <= TurnableBw
}

// IsRotation returns true for the whole cube rotations x, y and z.
func (t Turnable) IsRotation() bool {
	return t >= RotationX && t <= RotationZ
}

// Face returns the outer face a wide move is built on.
// Any other turnable is returned unchanged.
func (t Turnable) Face() Turnable {
	if t.IsWide() {
		return t - TurnableUw + TurnableU
	}
	return t
}

// Wide returns the wide move built on an outer face.
// Any other turnable is returned unchanged.
func (t Turnable) Wide() Turnable {
	if t.IsFace() {
		return t - TurnableU + TurnableUw
	}
	return t
}

// String returns the turnable in w-suffix notation (U, Rw, M, x).
func (t Turnable) String() string {
	if !t.Valid() {
		return "?"
	}
	if t.IsWide() {
		return turnableLetters[t] + "w"
	}
	return turnableLetters[t]
}

// Amount is how far a turnable is turned, in clockwise quarter turns.
type Amount int

const (
	Clockwise        Amount = 1 // Quarter turn (90 degrees)
	Half             Amount = 2 // Half turn (180 degrees)
	CounterClockwise Amount = 3 // Prime, a quarter turn the other way
)

// Suffix returns the notation suffix for the amount: "", "2" or "'".
func (a Amount) Suffix() string {
	switch a {
	case Half:
		return "2"
	case CounterClockwise:
		return "'"
	}
	return ""
}

// Inverse returns the amount that undoes a.
func (a Amount) Inverse() Amount {
	return (4 - a%4) % 4
}

// WideStyle records how a wide move was spelled.
type WideStyle int

const (
	WideStyleNone      WideStyle = iota // Not a wide move, or spelling unknown
	WideStyleLowercase                  // r, u, f ...
	WideStyleWSuffix                    // Rw, Uw, Fw ...
)

// Turn is a single turn of a turnable by some amount.
type Turn struct {
	Turnable Turnable  `json:"turnable"`
	Amount   Amount    `json:"amount"`
	Style    WideStyle `json:"style,omitempty"`
}

// NewTurn creates a turn without a recorded wide-move spelling.
func NewTurn(t Turnable, a Amount) Turn {
	return Turn{Turnable: t, Amount: a}
}

// IsRotation returns true if the turn rotates the whole cube.
func (t Turn) IsRotation() bool {
	return t.Turnable.IsRotation()
}

// Notation returns the standard cube notation string for this turn.
// Examples: R, R', R2, Rw, r', M2, y'
func (t Turn) Notation() string {
	letters := t.Turnable.String()
	if t.Turnable.IsWide() && t.Style != WideStyleWSuffix {
		letters = strings.ToLower(turnableLetters[t.Turnable])
	}
	return letters + t.Amount.Suffix()
}

// String returns the notation string (alias for Notation).
func (t Turn) String() string {
	return t.Notation()
}

// Inverse returns the turn that undoes this one.
// R becomes R', R' becomes R, R2 stays R2.
func (t Turn) Inverse() Turn {
	inv := t
	inv.Amount = t.Amount.Inverse()
	return inv
}

// Element is one entry of an algorithm: a single turn, or a parenthesized
// group of turns when Group is non-nil.
type Element struct {
	Turn  Turn
	Group []Turn
}

// IsGroup returns true for a parenthesized group.
func (e Element) IsGroup() bool {
	return e.Group != nil
}

// Algorithm is an ordered sequence of turns and one-level groups.
type Algorithm struct {
	Elements []Element
}

// NewAlgorithm creates an ungrouped algorithm from turns.
func NewAlgorithm(turns ...Turn) Algorithm {
	elems := make([]Element, len(turns))
	for i, t := range turns {
		elems[i] = Element{Turn: t}
	}
	return Algorithm{Elements: elems}
}

// Turns returns the algorithm's turns with groups flattened.
func (a Algorithm) Turns() []Turn {
	turns := make([]Turn, 0, len(a.Elements))
	for _, e := range a.Elements {
		if e.IsGroup() {
			turns = append(turns, e.Group...)
			continue
		}
		turns = append(turns, e.Turn)
	}
	return turns
}

// FaceTurnCount counts every turn that is not a whole cube rotation.
// Half turns count once.
func (a Algorithm) FaceTurnCount() int {
	n := 0
	for _, t := range a.Turns() {
		if !t.IsRotation() {
			n++
		}
	}
	return n
}

// Inverse returns the algorithm that undoes a, ungrouped.
func (a Algorithm) Inverse() Algorithm {
	turns := a.Turns()
	inv := make([]Turn, len(turns))
	for i, t := range turns {
		inv[len(turns)-1-i] = t.Inverse()
	}
	return NewAlgorithm(inv...)
}

// Concat returns a followed by the turns of other, ungrouped.
func (a Algorithm) Concat(other Algorithm) Algorithm {
	turns := append(a.Turns(), other.Turns()...)
	return NewAlgorithm(turns...)
}

// String formats the turns space separated, groups in parentheses.
func (a Algorithm) String() string {
	parts := make([]string, 0, len(a.Elements))
	for _, e := range a.Elements {
		if !e.IsGroup() {
			parts = append(parts, e.Turn.Notation())
			continue
		}
		inner := make([]string, len(e.Group))
		for i, t := range e.Group {
			inner[i] = t.Notation()
		}
		parts = append(parts, "("+strings.Join(inner, " ")+")")
	}
	return strings.Join(parts, " ")
}
