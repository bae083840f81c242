package plltrainer

import "errors"

// Sentinel errors for the plltrainer package.
var (
	// Attempt errors
	ErrAlgorithmNotPicked = errors.New("plltrainer: no algorithm picked for this PLL")
	ErrInvalidCase        = errors.New("plltrainer: invalid case")
	ErrInvalidTime        = errors.New("plltrainer: attempt time must not be negative")

	// State errors
	ErrInvalidSnapshot = errors.New("plltrainer: invalid snapshot")
)
