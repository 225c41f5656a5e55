package crabculator

import (
	"math"
	"strconv"
)

// formatFloat renders a value the way the line driver hands it to the UI:
// integral values below 1e15 in magnitude print without a decimal point or
// exponent, everything else prints as the shortest decimal string that
// round-trips. NaN and the infinities are ordinary values (the evaluator
// propagates them without error) and print as "NaN", "Infinity" and
// "-Infinity".
func formatFloat(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	}
	if v == math.Trunc(v) && math.Abs(v) < 1e15 {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}
