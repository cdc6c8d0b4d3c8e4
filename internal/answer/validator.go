// Package answer decides whether a typed answer is mathematically equivalent
// to an expected answer. Every function in this package is pure and safe for
// concurrent use.
package answer

import (
	"math"
	"strings"
)

// Tolerance is the absolute difference under which two numeric answers are
// considered equal. It absorbs float rounding from fraction division.
const Tolerance = 1e-4

// Result is the verdict for a single answer.
type Result struct {
	Correct          bool   `json:"correct"`
	NormalizedInput  string `json:"normalized_input"`
	NormalizedAnswer string `json:"normalized_answer"`
}

// Validate compares the learner's input against the expected answer.
//
// Accepted forms on both sides:
//   - integers with optional sign, leading zeros and surrounding whitespace ("05")
//   - decimals, trailing zeros ignored ("5.00" matches "5")
//   - fractions in any equivalent form ("2/4" matches "1/2")
//   - mixed numbers with a space before the fraction ("1 1/2")
//
// Values of different forms are compared numerically, so "12/8", "3/2",
// "1 1/2" and "1.5" all match each other. When either side is not a number
// the normalized strings are compared instead. Empty input is never correct.
func Validate(input, expected string) Result {
	in := normalizeText(input)
	exp := normalizeText(expected)

	res := Result{NormalizedInput: in, NormalizedAnswer: exp}
	if in == "" || exp == "" {
		return res
	}

	a, aok := parseNormalized(in)
	b, bok := parseNormalized(exp)
	if aok {
		res.NormalizedInput = canonical(a)
	}
	if bok {
		res.NormalizedAnswer = canonical(b)
	}

	if aok && bok {
		res.Correct = math.Abs(a-b) < Tolerance
		return res
	}

	// A zero denominator never matches, not even itself.
	if malformedFraction(in) || malformedFraction(exp) {
		return res
	}
	res.Correct = in == exp
	return res
}

// Normalize returns the comparison form of s: numbers become their shortest
// decimal representation, anything else is lowercased with whitespace
// collapsed. Normalize is idempotent.
func Normalize(s string) string {
	s = normalizeText(s)
	if v, ok := parseNormalized(s); ok {
		return canonical(v)
	}
	return s
}

// normalizeText trims, lowercases and collapses whitespace runs to one space.
func normalizeText(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}
