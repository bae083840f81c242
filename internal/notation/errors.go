package notation

import (
	"errors"
	"fmt"
)

// ErrorKind categorizes why an algorithm failed to parse.
// Kinds are declared in the order they are checked.
type ErrorKind int

const (
	KindEmptyInput ErrorKind = iota + 1
	KindInvalidSymbol
	KindInvalidTurnable
	KindInvalidTurnLength
	KindRepeatedTurnable
	KindWideMoveStylesMixed
	KindTurnWouldWorkWithoutInterruption
	KindApostropheWrongSideOfLength
	KindUnclosedParenthesis
	KindUnmatchedClosingParenthesis
	KindNestedParentheses
	KindEmptyParentheses
)

// Sentinel errors, one per kind. A parse *Error unwraps to the sentinel of its kind.
var (
	ErrEmptyInput                       = errors.New("notation: input required")
	ErrInvalidSymbol                    = errors.New("notation: invalid symbol")
	ErrInvalidTurnable                  = errors.New("notation: invalid turnable")
	ErrInvalidTurnLength                = errors.New("notation: invalid turn length")
	ErrRepeatedTurnable                 = errors.New("notation: repeated turnable")
	ErrWideMoveStylesMixed              = errors.New("notation: wide move styles mixed")
	ErrTurnWouldWorkWithoutInterruption = errors.New("notation: turn would work without interruption")
	ErrApostropheWrongSideOfLength      = errors.New("notation: apostrophe on wrong side of length")
	ErrUnclosedParenthesis              = errors.New("notation: unclosed parenthesis")
	ErrUnmatchedClosingParenthesis      = errors.New("notation: unmatched closing parenthesis")
	ErrNestedParentheses                = errors.New("notation: nested parentheses")
	ErrEmptyParentheses                 = errors.New("notation: empty parentheses")
)

var kindInfo = map[ErrorKind]struct {
	id       string
	sentinel error
	message  string
}{
	KindEmptyInput: {"input-required", ErrEmptyInput,
		"Please enter an algorithm"},
	KindInvalidSymbol: {"invalid-symbol", ErrInvalidSymbol,
		"Only turn letters, the digit 2, apostrophes, parentheses and spaces are allowed"},
	KindInvalidTurnable: {"invalid-turnable", ErrInvalidTurnable,
		"This is not a turnable face, slice or rotation"},
	KindInvalidTurnLength: {"invalid-turn-length", ErrInvalidTurnLength,
		"A turn can only be followed by 2 to make it a half turn"},
	KindRepeatedTurnable: {"repeated-turnable", ErrRepeatedTurnable,
		"The same layer is turned twice in a row, combine the turns into one"},
	KindWideMoveStylesMixed: {"wide-move-styles-mixed", ErrWideMoveStylesMixed,
		"Use either lowercase (r) or w-suffix (Rw) wide moves, not both"},
	KindTurnWouldWorkWithoutInterruption: {"turn-would-work-without-interruption", ErrTurnWouldWorkWithoutInterruption,
		"Remove the space or parenthesis between the turn and its modifier"},
	KindApostropheWrongSideOfLength: {"apostrophe-wrong-side-of-length", ErrApostropheWrongSideOfLength,
		"The apostrophe goes after the 2, as in U2'"},
	KindUnclosedParenthesis: {"unclosed-parenthesis", ErrUnclosedParenthesis,
		"A parenthesis is opened but never closed"},
	KindUnmatchedClosingParenthesis: {"unmatched-closing-parenthesis", ErrUnmatchedClosingParenthesis,
		"A parenthesis is closed without being opened"},
	KindNestedParentheses: {"nested-parentheses", ErrNestedParentheses,
		"Parentheses can't be nested"},
	KindEmptyParentheses: {"empty-parentheses", ErrEmptyParentheses,
		"Parentheses must contain at least one turn"},
}

// String returns the kebab-case identifier of the kind, e.g. "repeated-turnable".
func (k ErrorKind) String() string {
	if info, ok := kindInfo[k]; ok {
		return info.id
	}
	return fmt.Sprintf("unknown-error-kind-%d", int(k))
}

// Error is a categorized parse failure. Only one is reported per Parse call.
type Error struct {
	Kind   ErrorKind
	Offset int    // Byte offset of the offending token in the input
	Token  string // The offending text
}

func (e *Error) Error() string {
	sentinel := e.Unwrap()
	if sentinel == nil {
		return "notation: unknown error"
	}
	if e.Token == "" {
		return sentinel.Error()
	}
	return fmt.Sprintf("%s: %q at offset %d", sentinel.Error(), e.Token, e.Offset)
}

// Unwrap returns the sentinel error for the kind so errors.Is works.
func (e *Error) Unwrap() error {
	if info, ok := kindInfo[e.Kind]; ok {
		return info.sentinel
	}
	return nil
}

// Message returns a short explanation suitable for showing to a user.
func (e *Error) Message() string {
	if info, ok := kindInfo[e.Kind]; ok {
		return info.message
	}
	return "Invalid algorithm"
}

// KindOf extracts the error kind from err, or 0 if err is not a parse error.
func KindOf(err error) ErrorKind {
	var perr *Error
	if errors.As(err, &perr) {
		return perr.Kind
	}
	return 0
}
