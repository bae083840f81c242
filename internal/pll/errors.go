package pll

import "errors"

// Sentinel errors for case handling.
var (
	ErrUnknownPLL               = errors.New("pll: unknown PLL")
	ErrUnknownAUF               = errors.New("pll: unknown AUF")
	ErrAlgorithmDoesntMatchCase = errors.New("pll: algorithm doesn't match case")
)
