package crabculator

import (
	"math"

	"github.com/samber/lo"
)

// Constants is the immutable name→value table a fresh Context is seeded
// with. It mirrors the registry's function table below: a flat map beats
// any class hierarchy and keeps the set trivially extensible.
var Constants = lo.FromEntries([]lo.Entry[string, float64]{
	{Key: "pi", Value: math.Pi},
	{Key: "e", Value: math.E},
	{Key: "tau", Value: 2 * math.Pi},
	{Key: "phi", Value: 1.618033988749895},
	{Key: "sqrt2", Value: math.Sqrt2},
	{Key: "sqrt3", Value: 1.7320508075688772},
	{Key: "ln2", Value: math.Ln2},
	{Key: "ln10", Value: math.Ln10},
})

// builtinFunc is a registry entry: a fixed arity and a callable receiving
// already-evaluated arguments plus the call's span, for domain errors that
// need to point back at the call site.
type builtinFunc struct {
	arity int
	call  func(args []float64, at Span) (float64, error)
}

// Functions is the immutable name→(arity, callable) table the evaluator
// dispatches calls through. The parser does not consult it; unknown names
// and wrong argument counts are reported by the evaluator. Callables receive
// a fixed-length argument slice already checked against arity.
var Functions = lo.FromEntries([]lo.Entry[string, builtinFunc]{
	unary("sqrt", math.Sqrt),
	unary("cbrt", math.Cbrt),
	unary("abs", math.Abs),
	binary("pow", math.Pow),
	unary("sin", math.Sin),
	unary("cos", math.Cos),
	unary("tan", math.Tan),
	unary("asin", math.Asin),
	unary("acos", math.Acos),
	unary("atan", math.Atan),
	binary("atan2", math.Atan2),
	unary("sinh", math.Sinh),
	unary("cosh", math.Cosh),
	unary("tanh", math.Tanh),
	unary("asinh", math.Asinh),
	unary("acosh", math.Acosh),
	unary("atanh", math.Atanh),
	unary("ln", math.Log),
	unary("log", math.Log10),
	unary("log10", math.Log10),
	unary("log2", math.Log2),
	unary("exp", math.Exp),
	unary("exp2", math.Exp2),
	unary("floor", math.Floor),
	unary("ceil", math.Ceil),
	unary("round", roundHalfAwayFromZero),
	binary("min", math.Min),
	binary("max", math.Max),
	binary("hypot", math.Hypot),
	unary("sgn", sgn),
	unary("trunc", math.Trunc),
	unary("frac", frac),
	unary("degrees", func(x float64) float64 { return x * 180 / math.Pi }),
	unary("radians", func(x float64) float64 { return x * math.Pi / 180 }),
	unary("cot", func(x float64) float64 { return 1 / math.Tan(x) }),
	unary("sec", func(x float64) float64 { return 1 / math.Cos(x) }),
	unary("csc", func(x float64) float64 { return 1 / math.Sin(x) }),
	{Key: "gcd", Value: builtinFunc{arity: 2, call: callGcd}},
	{Key: "ncr", Value: builtinFunc{arity: 2, call: callNcr}},
	{Key: "npr", Value: builtinFunc{arity: 2, call: callNpr}},
})

// unary lifts a plain float64->float64 function into a registry entry of
// arity 1. Per spec's NaN/Inf policy these never themselves raise errors;
// out-of-domain inputs simply propagate NaN or an infinity.
func unary(name string, f func(float64) float64) lo.Entry[string, builtinFunc] {
	return lo.Entry[string, builtinFunc]{
		Key: name,
		Value: builtinFunc{
			arity: 1,
			call:  func(args []float64, _ Span) (float64, error) { return f(args[0]), nil },
		},
	}
}

func binary(name string, f func(float64, float64) float64) lo.Entry[string, builtinFunc] {
	return lo.Entry[string, builtinFunc]{
		Key: name,
		Value: builtinFunc{
			arity: 2,
			call:  func(args []float64, _ Span) (float64, error) { return f(args[0], args[1]), nil },
		},
	}
}

func roundHalfAwayFromZero(x float64) float64 {
	if x < 0 {
		return -math.Floor(-x + 0.5)
	}
	return math.Floor(x + 0.5)
}

func sgn(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}

func frac(x float64) float64 { return x - math.Trunc(x) }

func callGcd(args []float64, _ Span) (float64, error) {
	a, b := int64(math.Trunc(args[0])), int64(math.Trunc(args[1]))
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}
	return float64(a), nil
}

func callNcr(args []float64, at Span) (float64, error) {
	n, k := int64(math.Trunc(args[0])), int64(math.Trunc(args[1]))
	if k < 0 || k > n {
		return 0, &CombinatoricsDomainError{Pos: at}
	}
	return permutations(n, k) / factorialInt(k), nil
}

func callNpr(args []float64, at Span) (float64, error) {
	n, k := int64(math.Trunc(args[0])), int64(math.Trunc(args[1]))
	if k < 0 || k > n {
		return 0, &CombinatoricsDomainError{Pos: at}
	}
	return permutations(n, k), nil
}

// permutations computes n!/(n-k)! directly, avoiding the overflow of
// computing n! and (n-k)! separately for n well within float64's exact
// integer range.
func permutations(n, k int64) float64 {
	result := 1.0
	for i := int64(0); i < k; i++ {
		result *= float64(n - i)
	}
	return result
}

func factorialInt(n int64) float64 {
	result := 1.0
	for i := int64(2); i <= n; i++ {
		result *= float64(i)
	}
	return result
}
