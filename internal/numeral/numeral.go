// Package numeral turns spoken Icelandic number fragments ("fimmtíu og
// einn", "12", "50%") into bounded integers.
package numeral

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Mode selects the bounds applied to a resolved value.
type Mode int

const (
	Absolute Mode = iota
	Percent
	Relative
)

func (m Mode) String() string {
	switch m {
	case Absolute:
		return "absolute"
	case Percent:
		return "percent"
	case Relative:
		return "relative"
	default:
		return "unknown"
	}
}

// Bounds for every mode. Relative values are clamped on their magnitude.
const (
	Min = 0
	Max = 100
)

// Status tells callers whether a Result came from the input or a fallback.
type Status int

const (
	// Parsed means every fragment had a reading.
	Parsed Status = iota
	// Missing means there were no fragments; the value is the implicit 1.
	Missing
	// Unparsed means at least one fragment had no reading and counted as 0.
	Unparsed
)

func (s Status) String() string {
	switch s {
	case Parsed:
		return "parsed"
	case Missing:
		return "missing"
	case Unparsed:
		return "unparsed"
	default:
		return "unknown"
	}
}

type Result struct {
	Value  int
	Status Status
}

// Defaulted reports whether the value did not come entirely from the input.
func (r Result) Defaulted() bool {
	return r.Status != Parsed
}

// Kind classifies a single fragment.
type Kind int

const (
	Unknown Kind = iota
	Digits
	NumberWord
	PercentLiteral
	Ordinal
	Decimal
	Pi
)

var (
	digitsRE  = regexp.MustCompile(`^-?\d+$`)
	decimalRE = regexp.MustCompile(`^\d+,\d+$`)
	ordinalRE = regexp.MustCompile(`^\d+\.$`)
)

const piWord = "pí"

// Fragment is one lexical unit of a number: a digit run, a number word or a
// percentage literal.
type Fragment string

func (f Fragment) Kind() Kind {
	s := string(f)
	switch {
	case s == "":
		return Unknown
	case strings.HasSuffix(s, "%"):
		// A bare "%" is a unit word, not a number.
		if strings.TrimSpace(strings.TrimSuffix(s, "%")) == "" {
			return Unknown
		}
		return PercentLiteral
	case digitsRE.MatchString(s):
		return Digits
	case decimalRE.MatchString(s):
		return Decimal
	case ordinalRE.MatchString(s):
		return Ordinal
	case s == piWord:
		return Pi
	}
	if _, ok := cardinals[s]; ok {
		return NumberWord
	}
	return Unknown
}

// IsToken reports whether tok can stand as a numeral fragment.
func IsToken(tok string) bool {
	return Fragment(tok).Kind() != Unknown
}

// Fragments converts raw tokens, dropping the "og" that joins tens and units.
func Fragments(tokens []string) []Fragment {
	out := make([]Fragment, 0, len(tokens))
	for _, tok := range tokens {
		if tok == "og" || tok == "" {
			continue
		}
		out = append(out, Fragment(tok))
	}
	return out
}

// Resolve composes fragments into one integer and clamps it for mode.
// Without fragments the value is 1. A relative value is negated when
// negative is set, after clamping its magnitude.
func Resolve(frags []Fragment, mode Mode, negative bool) Result {
	res := Result{Value: 1, Status: Missing}
	if len(frags) > 0 {
		res.Status = Parsed
		for i, f := range frags {
			v, ok := f.value(mode)
			if !ok {
				res.Status = Unparsed
			}
			if i == 0 {
				res.Value = v
				continue
			}
			res.Value = Compose(res.Value, v)
		}
	}
	res.Value = clamp(res.Value)
	if mode == Relative && negative {
		res.Value = -res.Value
	}
	return res
}

// Compose joins two consecutive values. Tens followed by units add up
// ("fimmtíu einn" is 51); any other pair keeps only the second value.
func Compose(first, second int) int {
	if first > 19 && first < 100 && first%10 == 0 && second > 0 && second < 10 {
		return first + second
	}
	return second
}

func clamp(v int) int {
	if v < Min {
		return Min
	}
	if v > Max {
		return Max
	}
	return v
}

func (f Fragment) value(mode Mode) (int, bool) {
	s := string(f)
	switch f.Kind() {
	case Digits:
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			// Out of range for int64; any such run is far above Max anyway.
			if strings.HasPrefix(s, "-") {
				return Min - 1, true
			}
			return Max + 1, true
		}
		return saturate(n), true
	case NumberWord:
		return cardinals[s], true
	case PercentLiteral:
		inner := Fragment(strings.TrimSpace(strings.TrimSuffix(s, "%")))
		if inner == "" {
			return 0, false
		}
		return inner.value(mode)
	case Ordinal:
		n, err := strconv.ParseInt(strings.TrimSuffix(s, "."), 10, 64)
		if err != nil {
			return Max + 1, true
		}
		return saturate(n), true
	case Decimal, Pi:
		if mode != Percent {
			return 0, false
		}
		d, ok := ParseDecimal(s)
		return int(math.Round(d)), ok
	default:
		return 0, false
	}
}

func saturate(n int64) int {
	if n > math.MaxInt32 {
		return math.MaxInt32
	}
	if n < math.MinInt32 {
		return math.MinInt32
	}
	return int(n)
}

// ParseDecimal is the general numeral reading kept for volume percentages:
// "pí" is π, "17,2" is 17.2, ordinals "17." are 17 and number words use the
// cardinal table. Anything else reads as 0.
func ParseDecimal(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	switch {
	case s == piWord:
		return math.Pi, true
	case decimalRE.MatchString(s):
		v, err := strconv.ParseFloat(strings.Replace(s, ",", ".", 1), 64)
		return v, err == nil
	}
	if v, err := strconv.ParseFloat(s, 64); err == nil && !math.IsInf(v, 0) && !math.IsNaN(v) {
		return v, true
	}
	if v, ok := cardinals[s]; ok {
		return float64(v), true
	}
	if ordinalRE.MatchString(s) {
		n, err := strconv.Atoi(strings.TrimSuffix(s, "."))
		return float64(n), err == nil
	}
	return 0, false
}
