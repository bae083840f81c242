package config

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// decimalPattern accepts digits with at most one decimal separator, which
// may be a point or a comma.
var decimalPattern = regexp.MustCompile(`^(\d+([.,]\d*)?|[.,]\d+)$`)

// ParseDecimal parses a positive decimal number as typed by a user, so
// "1,3" and "1.3" are both 1.3.
func ParseDecimal(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if !decimalPattern.MatchString(s) {
		return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidTargetParameter, s)
	}

	v, err := strconv.ParseFloat(strings.Replace(s, ",", ".", 1), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidTargetParameter, err)
	}
	if v <= 0 {
		return 0, fmt.Errorf("%w: %q must be positive", ErrInvalidTargetParameter, s)
	}
	return v, nil
}

// ParseTargetParameters parses the recognition time in seconds and the TPS
// as typed by a user.
func ParseTargetParameters(recognitionTime, tps string) (TargetParameters, error) {
	r, err := ParseDecimal(recognitionTime)
	if err != nil {
		return TargetParameters{}, fmt.Errorf("recognition time: %w", err)
	}
	t, err := ParseDecimal(tps)
	if err != nil {
		return TargetParameters{}, fmt.Errorf("TPS: %w", err)
	}
	return TargetParameters{RecognitionTimeSeconds: r, TPS: t}, nil
}
