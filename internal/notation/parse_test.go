package notation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SeamusWaldron/pll_trainer/pkg/types"
)

func TestParseErrors(t *testing.T) {
	tests := []struct {
		input string
		kind  ErrorKind
	}{
		{"", KindEmptyInput},
		{"   ", KindEmptyInput},
		{"U B A", KindInvalidTurnable},
		{"( U B F') % D2", KindInvalidSymbol},
		{"U4 %", KindInvalidSymbol},
		{"Mw", KindInvalidTurnable},
		{"uw", KindInvalidTurnable},
		{"' U", KindInvalidTurnable},
		{"2 U", KindInvalidTurnable},
		{"U4", KindInvalidTurnLength},
		{"U22", KindInvalidTurnLength},
		{"U0", KindInvalidTurnLength},
		{"U'3", KindInvalidTurnLength},
		{"U 3", KindInvalidTurnLength},
		{"U2U", KindRepeatedTurnable},
		{"R (R)", KindRepeatedTurnable},
		{"x x'", KindRepeatedTurnable},
		{"r Rw", KindRepeatedTurnable},
		{"u B Rw", KindWideMoveStylesMixed},
		{"Uw B r", KindWideMoveStylesMixed},
		{"U '", KindTurnWouldWorkWithoutInterruption},
		{"(U)'", KindTurnWouldWorkWithoutInterruption},
		{"U 2", KindTurnWouldWorkWithoutInterruption},
		{"U'2", KindApostropheWrongSideOfLength},
		{"U ( B F' D2", KindUnclosedParenthesis},
		{"U B F' ) D2", KindUnmatchedClosingParenthesis},
		{") U (", KindUnclosedParenthesis},
		{"( U (B F') ) D2", KindNestedParentheses},
		{"U () B", KindEmptyParentheses},
		{"()", KindEmptyParentheses},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := Parse(tt.input)
			require.Error(t, err)
			assert.Equal(t, tt.kind, KindOf(err), "got %v", err)
		})
	}
}

func TestParseErrorDetails(t *testing.T) {
	_, err := Parse("U B A")
	require.Error(t, err)

	var perr *Error
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, 4, perr.Offset)
	assert.Equal(t, "A", perr.Token)
	assert.True(t, errors.Is(err, ErrInvalidTurnable))
	assert.False(t, errors.Is(err, ErrInvalidSymbol))
	assert.Equal(t, `notation: invalid turnable: "A" at offset 4`, err.Error())
	assert.NotEmpty(t, perr.Message())

	_, err = Parse("")
	assert.ErrorIs(t, err, ErrEmptyInput)
	assert.Equal(t, "notation: input required", err.Error())
}

func TestErrorKindIdentifiers(t *testing.T) {
	assert.Equal(t, "input-required", KindEmptyInput.String())
	assert.Equal(t, "repeated-turnable", KindRepeatedTurnable.String())
	assert.Equal(t, "wide-move-styles-mixed", KindWideMoveStylesMixed.String())
	assert.Equal(t, "turn-would-work-without-interruption", KindTurnWouldWorkWithoutInterruption.String())
	assert.Equal(t, "unknown-error-kind-99", ErrorKind(99).String())
	assert.Equal(t, ErrorKind(0), KindOf(errors.New("other")))
}

func TestParseValid(t *testing.T) {
	tests := []struct {
		input string
		want  []types.Turn
	}{
		{"R U R' U'", []types.Turn{
			types.NewTurn(types.TurnableR, types.Clockwise),
			types.NewTurn(types.TurnableU, types.Clockwise),
			types.NewTurn(types.TurnableR, types.CounterClockwise),
			types.NewTurn(types.TurnableU, types.CounterClockwise),
		}},
		{"RUR'", []types.Turn{
			types.NewTurn(types.TurnableR, types.Clockwise),
			types.NewTurn(types.TurnableU, types.Clockwise),
			types.NewTurn(types.TurnableR, types.CounterClockwise),
		}},
		{"U2' M2 x", []types.Turn{
			types.NewTurn(types.TurnableU, types.Half),
			types.NewTurn(types.TurnableM, types.Half),
			types.NewTurn(types.RotationX, types.Clockwise),
		}},
		{"U` F’", []types.Turn{
			types.NewTurn(types.TurnableU, types.CounterClockwise),
			types.NewTurn(types.TurnableF, types.CounterClockwise),
		}},
		{"r' u2", []types.Turn{
			{Turnable: types.TurnableRw, Amount: types.CounterClockwise, Style: types.WideStyleLowercase},
			{Turnable: types.TurnableUw, Amount: types.Half, Style: types.WideStyleLowercase},
		}},
		{"Rw Dw'", []types.Turn{
			{Turnable: types.TurnableRw, Amount: types.Clockwise, Style: types.WideStyleWSuffix},
			{Turnable: types.TurnableDw, Amount: types.CounterClockwise, Style: types.WideStyleWSuffix},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			alg, err := Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, alg.Turns())
		})
	}
}

func TestParseGroups(t *testing.T) {
	alg, err := Parse("(R U2) r' F")
	require.NoError(t, err)
	require.Len(t, alg.Elements, 3)
	assert.True(t, alg.Elements[0].IsGroup())
	assert.Len(t, alg.Elements[0].Group, 2)
	assert.False(t, alg.Elements[1].IsGroup())
	assert.Len(t, alg.Turns(), 4)
}

func TestFormatRoundTrip(t *testing.T) {
	for _, input := range []string{
		"R U R' U'",
		"(R U2) r' F",
		"Rw U Rw'",
		"M2 U M' U2 M U M2",
		"y (R U R' U') (R' F R2 U') x2",
	} {
		alg, err := Parse(input)
		require.NoError(t, err)
		assert.Equal(t, input, Format(alg))
	}

	alg := MustParse("RUR'  U2'")
	assert.Equal(t, "R U R' U2", Format(alg))
}

func TestParseDoesNotKeepState(t *testing.T) {
	_, err := Parse("U2U")
	require.Error(t, err)

	alg, err := Parse("U2 R")
	require.NoError(t, err)
	assert.Equal(t, "U2 R", Format(alg))
}

func TestMustParsePanics(t *testing.T) {
	assert.Panics(t, func() { MustParse("U U") })
	assert.NotPanics(t, func() { MustParse("U R") })
}

func TestFormatTurns(t *testing.T) {
	assert.Equal(t, "", FormatTurns(nil))
	assert.Equal(t, "R U'", FormatTurns(MustParse("R U'").Turns()))
}
