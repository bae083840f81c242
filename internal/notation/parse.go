// Package notation parses, validates, formats and normalizes cube algorithms.
package notation

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/SeamusWaldron/pll_trainer/pkg/types"
)

type tokenKind int

const (
	tokTurn tokenKind = iota
	tokOpen
	tokClose
	tokSuffix      // ' or length digits not attached to a turn
	tokBadSymbol   // character outside the alphabet
	tokBadTurnable // letter that starts no turnable
)

// token is one lexeme of the input. Offsets are byte offsets.
type token struct {
	kind   tokenKind
	offset int
	text   string

	// tokTurn
	turnable          types.Turnable
	style             types.WideStyle
	length            string // digits directly after the turnable
	prime             bool
	primeBeforeLength bool   // digits directly after the apostrophe, as in U'2
	trailingLength    string // those digits

	// tokSuffix
	afterTurn bool // some turn precedes it, only interrupted by spaces or parentheses
}

func isApostrophe(r rune) bool {
	return r == '\'' || r == '`' || r == '’'
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// faceLetters maps uppercase face letters to their turnable.
var faceLetters = map[rune]types.Turnable{
	'U': types.TurnableU,
	'D': types.TurnableD,
	'L': types.TurnableL,
	'R': types.TurnableR,
	'F': types.TurnableF,
	'B': types.TurnableB,
}

// otherLetters maps the remaining single-letter turnables.
var otherLetters = map[rune]types.Turnable{
	'u': types.TurnableUw,
	'd': types.TurnableDw,
	'l': types.TurnableLw,
	'r': types.TurnableRw,
	'f': types.TurnableFw,
	'b': types.TurnableBw,
	'M': types.TurnableM,
	'S': types.TurnableS,
	'E': types.TurnableE,
	'x': types.RotationX,
	'y': types.RotationY,
	'z': types.RotationZ,
}

// lexer splits the input into tokens. It never fails: anything it cannot
// make sense of becomes a token the validation passes report on.
type lexer struct {
	input   string
	pos     int
	tokens  []token
	sawTurn bool
}

func (l *lexer) peek() (rune, int) {
	if l.pos >= len(l.input) {
		return utf8.RuneError, 0
	}
	return utf8.DecodeRuneInString(l.input[l.pos:])
}

func (l *lexer) digits() string {
	start := l.pos
	for {
		r, w := l.peek()
		if w == 0 || !isDigit(r) {
			break
		}
		l.pos += w
	}
	return l.input[start:l.pos]
}

func (l *lexer) run() []token {
	for l.pos < len(l.input) {
		r, w := l.peek()
		start := l.pos

		switch {
		case unicode.IsSpace(r):
			l.pos += w
		case r == '(':
			l.pos += w
			l.emit(token{kind: tokOpen, offset: start, text: "("})
		case r == ')':
			l.pos += w
			l.emit(token{kind: tokClose, offset: start, text: ")"})
		case isDigit(r):
			text := l.digits()
			l.emit(token{kind: tokSuffix, offset: start, text: text, afterTurn: l.sawTurn})
		case isApostrophe(r):
			l.pos += w
			l.emit(token{kind: tokSuffix, offset: start, text: l.input[start:l.pos], afterTurn: l.sawTurn})
		case unicode.IsLetter(r):
			l.turn()
		default:
			l.pos += w
			l.emit(token{kind: tokBadSymbol, offset: start, text: string(r)})
		}
	}
	return l.tokens
}

func (l *lexer) emit(t token) {
	l.tokens = append(l.tokens, t)
}

// turn lexes a turnable and its directly attached suffixes.
func (l *lexer) turn() {
	start := l.pos
	r, w := l.peek()
	l.pos += w

	tok := token{kind: tokTurn, offset: start}
	if face, ok := faceLetters[r]; ok {
		tok.turnable = face
		if next, nw := l.peek(); nw > 0 && next == 'w' {
			l.pos += nw
			tok.turnable = face.Wide()
			tok.style = types.WideStyleWSuffix
		}
	} else if other, ok := otherLetters[r]; ok {
		tok.turnable = other
		if other.IsWide() {
			tok.style = types.WideStyleLowercase
		}
	} else {
		l.emit(token{kind: tokBadTurnable, offset: start, text: string(r)})
		return
	}

	tok.length = l.digits()
	if next, nw := l.peek(); nw > 0 && isApostrophe(next) {
		l.pos += nw
		tok.prime = true
		tok.trailingLength = l.digits()
		tok.primeBeforeLength = tok.trailingLength != ""
	}
	tok.text = l.input[start:l.pos]
	l.sawTurn = true
	l.emit(tok)
}

// check is one validation pass over the token stream. It returns the first
// problem it finds, or nil.
type check func(input string, tokens []token) *Error

// checks run in priority order; the first one reporting an error wins.
var checks = []check{
	checkEmpty,
	checkInvalidSymbol,
	checkInvalidTurnable,
	checkTurnLength,
	checkRepeatedTurnable,
	checkWideStyles,
	checkInterruptedTurn,
	checkApostropheSide,
	checkUnclosed,
	checkUnmatchedClosing,
	checkNested,
	checkEmptyParentheses,
}

func errAt(kind ErrorKind, t token) *Error {
	return &Error{Kind: kind, Offset: t.offset, Token: t.text}
}

func checkEmpty(input string, _ []token) *Error {
	if strings.TrimSpace(input) == "" {
		return &Error{Kind: KindEmptyInput}
	}
	return nil
}

func checkInvalidSymbol(_ string, tokens []token) *Error {
	for _, t := range tokens {
		if t.kind == tokBadSymbol {
			return errAt(KindInvalidSymbol, t)
		}
	}
	return nil
}

func checkInvalidTurnable(_ string, tokens []token) *Error {
	for _, t := range tokens {
		if t.kind == tokBadTurnable || (t.kind == tokSuffix && !t.afterTurn) {
			return errAt(KindInvalidTurnable, t)
		}
	}
	return nil
}

func checkTurnLength(_ string, tokens []token) *Error {
	for _, t := range tokens {
		switch t.kind {
		case tokTurn:
			if (t.length != "" && t.length != "2") || (t.trailingLength != "" && t.trailingLength != "2") {
				return errAt(KindInvalidTurnLength, t)
			}
		case tokSuffix:
			if isDigit(rune(t.text[0])) && t.text != "2" {
				return errAt(KindInvalidTurnLength, t)
			}
		}
	}
	return nil
}

func checkRepeatedTurnable(_ string, tokens []token) *Error {
	var prev *token
	for i := range tokens {
		t := &tokens[i]
		if t.kind != tokTurn {
			continue
		}
		if prev != nil && prev.turnable == t.turnable {
			return errAt(KindRepeatedTurnable, *t)
		}
		prev = t
	}
	return nil
}

func checkWideStyles(_ string, tokens []token) *Error {
	var seen types.WideStyle
	for _, t := range tokens {
		if t.kind != tokTurn || t.style == types.WideStyleNone {
			continue
		}
		if seen != types.WideStyleNone && seen != t.style {
			return errAt(KindWideMoveStylesMixed, t)
		}
		seen = t.style
	}
	return nil
}

func checkInterruptedTurn(_ string, tokens []token) *Error {
	for _, t := range tokens {
		if t.kind == tokSuffix && t.afterTurn {
			return errAt(KindTurnWouldWorkWithoutInterruption, t)
		}
	}
	return nil
}

func checkApostropheSide(_ string, tokens []token) *Error {
	for _, t := range tokens {
		if t.kind == tokTurn && t.primeBeforeLength {
			return errAt(KindApostropheWrongSideOfLength, t)
		}
	}
	return nil
}

func checkUnclosed(_ string, tokens []token) *Error {
	var open []token
	for _, t := range tokens {
		switch t.kind {
		case tokOpen:
			open = append(open, t)
		case tokClose:
			if len(open) > 0 {
				open = open[:len(open)-1]
			}
		}
	}
	if len(open) > 0 {
		return errAt(KindUnclosedParenthesis, open[len(open)-1])
	}
	return nil
}

func checkUnmatchedClosing(_ string, tokens []token) *Error {
	depth := 0
	for _, t := range tokens {
		switch t.kind {
		case tokOpen:
			depth++
		case tokClose:
			if depth == 0 {
				return errAt(KindUnmatchedClosingParenthesis, t)
			}
			depth--
		}
	}
	return nil
}

func checkNested(_ string, tokens []token) *Error {
	depth := 0
	for _, t := range tokens {
		switch t.kind {
		case tokOpen:
			if depth > 0 {
				return errAt(KindNestedParentheses, t)
			}
			depth++
		case tokClose:
			if depth > 0 {
				depth--
			}
		}
	}
	return nil
}

func checkEmptyParentheses(_ string, tokens []token) *Error {
	for i := 0; i+1 < len(tokens); i++ {
		if tokens[i].kind == tokOpen && tokens[i+1].kind == tokClose {
			return errAt(KindEmptyParentheses, tokens[i])
		}
	}
	return nil
}

// Parse parses a cube algorithm such as "R U R' U'" or "(R U2) r' F".
// On failure the returned error is a *Error; use errors.Is with the
// Err* sentinels or KindOf to inspect it.
func Parse(input string) (types.Algorithm, error) {
	lx := &lexer{input: input}
	tokens := lx.run()

	for _, c := range checks {
		if err := c(input, tokens); err != nil {
			return types.Algorithm{}, err
		}
	}

	return build(tokens), nil
}

// MustParse is like Parse but panics on error. Only use it for algorithms
// known to be valid at compile time.
func MustParse(input string) types.Algorithm {
	alg, err := Parse(input)
	if err != nil {
		panic("notation: MustParse(" + input + "): " + err.Error())
	}
	return alg
}

// build assembles a validated token stream into an algorithm.
func build(tokens []token) types.Algorithm {
	var alg types.Algorithm
	var group []types.Turn
	inGroup := false

	for _, t := range tokens {
		switch t.kind {
		case tokOpen:
			inGroup = true
			group = make([]types.Turn, 0, 4)
		case tokClose:
			alg.Elements = append(alg.Elements, types.Element{Group: group})
			inGroup = false
		case tokTurn:
			turn := types.Turn{Turnable: t.turnable, Amount: amountOf(t), Style: t.style}
			if inGroup {
				group = append(group, turn)
			} else {
				alg.Elements = append(alg.Elements, types.Element{Turn: turn})
			}
		}
	}
	return alg
}

func amountOf(t token) types.Amount {
	switch {
	case t.length == "2":
		return types.Half
	case t.prime:
		return types.CounterClockwise
	default:
		return types.Clockwise
	}
}

// Format formats an algorithm in standard notation, keeping groups and the
// wide move spelling it was parsed with.
func Format(alg types.Algorithm) string {
	return alg.String()
}

// FormatTurns formats a slice of turns as a space-separated string.
func FormatTurns(turns []types.Turn) string {
	if len(turns) == 0 {
		return ""
	}

	parts := make([]string, len(turns))
	for i, t := range turns {
		parts[i] = t.Notation()
	}

	return strings.Join(parts, " ")
}
