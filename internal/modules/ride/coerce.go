package ride

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// decimalMarks maps locale decimal separators onto '.'.
var decimalMarks = strings.NewReplacer(
	"٫", ".", // arabic decimal separator
	"’", ".", // right single quotation mark
	",", ".",
)

// asciiDigits folds every decimal digit (category Nd) onto '0'-'9'. NFKC
// leaves Arabic-Indic and Persian digits untouched.
var asciiDigits = runes.Map(func(r rune) rune {
	if r <= unicode.MaxASCII || !unicode.IsDigit(r) {
		return r
	}
	return '0' + digitValue(r)
})

// digitValue relies on Nd code points coming in aligned runs of ten, 0 to 9.
func digitValue(r rune) rune {
	for _, rng := range unicode.Nd.R16 {
		if rng.Stride == 1 && r >= rune(rng.Lo) && r <= rune(rng.Hi) {
			return (r - rune(rng.Lo)) % 10
		}
	}
	for _, rng := range unicode.Nd.R32 {
		if rng.Stride == 1 && r >= rune(rng.Lo) && r <= rune(rng.Hi) {
			return (r - rune(rng.Lo)) % 10
		}
	}
	return r - '0'
}

// Float converts v to a float64 and never fails: anything that does not parse
// as a finite number yields 0.
func Float(v any) float64 {
	var s string
	switch t := v.(type) {
	case nil:
		return 0
	case string:
		s = t
	case float64:
		s = strconv.FormatFloat(t, 'g', -1, 64)
	case fmt.Stringer:
		s = t.String()
	default:
		s = fmt.Sprint(t)
	}

	s = norm.NFKC.String(strings.TrimSpace(s))
	s = decimalMarks.Replace(s)
	if folded, _, err := transform.String(asciiDigits, s); err == nil {
		s = folded
	}
	if isHex(s) {
		return 0
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

// isHex reports a 0x prefix; strconv accepts hex floats, user input must not.
func isHex(s string) bool {
	s = strings.TrimLeft(s, "+-")
	return len(s) > 1 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X')
}

// PassengerCount reads a numeric-box value: coerced, truncated toward zero and
// clamped to [MinPassengers, MaxPassengers].
func PassengerCount(v any) int {
	f := math.Trunc(Float(v))
	switch {
	case f < MinPassengers:
		return MinPassengers
	case f > MaxPassengers:
		return MaxPassengers
	}
	return int(f)
}

func clampPassengers(n int) int {
	return PassengerCount(float64(n))
}
