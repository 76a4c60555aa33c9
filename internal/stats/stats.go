// Package stats computes the summary statistics printed after a run.
//
// Values span the whole int range, so sums and midpoints are computed
// exactly with math/big and only rounded once, at the end. A statistic that
// is an exact integer stays an integer ("114"); anything else becomes the
// nearest float64 and is rendered in shortest round-trip form ("499.5",
// "2.0", "4.611686018427388e+18").
package stats

import (
	"errors"
	"math/big"
	"slices"
	"strconv"
	"strings"
)

// ErrEmpty is returned when a statistic is requested for no values.
var ErrEmpty = errors.New("no values")

// Value is a computed statistic: either an exact integer or a float.
type Value struct {
	integer *big.Int
	float   float64
}

// IntValue returns an exact integer statistic.
func IntValue(v *big.Int) Value {
	return Value{integer: new(big.Int).Set(v)}
}

// FloatValue returns a floating-point statistic.
func FloatValue(f float64) Value {
	return Value{float: f}
}

// String renders v for display.
func (v Value) String() string {
	if v.integer != nil {
		return v.integer.String()
	}

	return formatFloat(v.float)
}

// Median returns the middle value of values, which need not be sorted.
// With an even count it is the midpoint of the two middle values, always
// reported as a float.
func Median(values []int) (Value, error) {
	if len(values) == 0 {
		return Value{}, ErrEmpty
	}

	sorted := slices.Clone(values)
	slices.Sort(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return IntValue(big.NewInt(int64(sorted[mid]))), nil
	}

	sum := new(big.Int).Add(big.NewInt(int64(sorted[mid-1])), big.NewInt(int64(sorted[mid])))
	f, _ := new(big.Rat).SetFrac(sum, big.NewInt(2)).Float64()

	return FloatValue(f), nil
}

// Mean returns the arithmetic mean of values: an integer when the division
// is exact, the correctly rounded float otherwise.
func Mean(values []int) (Value, error) {
	if len(values) == 0 {
		return Value{}, ErrEmpty
	}

	sum := new(big.Int)
	for _, v := range values {
		sum.Add(sum, big.NewInt(int64(v)))
	}

	quo, rem := new(big.Int).QuoRem(sum, big.NewInt(int64(len(values))), new(big.Int))
	if rem.Sign() == 0 {
		return IntValue(quo), nil
	}

	f, _ := new(big.Rat).SetFrac(sum, big.NewInt(int64(len(values)))).Float64()

	return FloatValue(f), nil
}

// formatFloat renders f in shortest round-trip form: positional between
// 1e-4 and 1e16 (always with a fractional part), scientific outside it.
func formatFloat(f float64) string {
	sci := strconv.FormatFloat(f, 'e', -1, 64)

	exp, err := strconv.Atoi(sci[strings.IndexByte(sci, 'e')+1:])
	if err != nil || exp < -4 || exp >= 16 {
		return sci
	}

	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}

	return s
}
