// Package crabculator implements the expression evaluation engine behind
// crabculator: a tokenizer, a recursive-descent parser, an evaluator with a
// function/constant registry, and a line driver that threads a shared
// variable context across a buffer of source lines.
//
// The grammar supports the usual arithmetic operators plus postfix
// factorial, right-associative exponentiation, implicit multiplication
// between certain adjacent tokens, and hex/binary/octal integer literals.
// Every value is an f64; there is no symbolic math, no user-defined
// functions, and no arbitrary-precision arithmetic.
package crabculator
