package answer

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Undefined is returned by SimplifyFraction for a zero denominator.
const Undefined = "undefined"

// SimplifyFraction reduces numerator/denominator to lowest terms and renders
// it as an integer ("3"), a mixed number ("1 1/2") or a fraction ("1/2").
// The sign is carried on the leading part. A zero denominator yields
// Undefined.
func SimplifyFraction(numerator, denominator int) string {
	if denominator == 0 {
		return Undefined
	}

	num, den := int64(numerator), int64(denominator)
	// Normalize sign: negative sign on numerator only.
	if den < 0 {
		num, den = -num, -den
	}
	g := gcd(abs(num), den)
	num /= g
	den /= g

	if den == 1 {
		return strconv.FormatInt(num, 10)
	}

	sign := ""
	if num < 0 {
		sign = "-"
	}
	n := abs(num)
	if n > den {
		return fmt.Sprintf("%s%d %d/%d", sign, n/den, n%den, den)
	}
	return fmt.Sprintf("%s%d/%d", sign, n, den)
}

// FormatDisplay renders value as an integer when it has no fractional part,
// otherwise with at most two decimals and no trailing zeros.
func FormatDisplay(value float64) string {
	if value == math.Trunc(value) && !math.IsInf(value, 0) {
		if value == 0 {
			return "0"
		}
		return strconv.FormatFloat(value, 'f', 0, 64)
	}
	s := strconv.FormatFloat(value, 'f', 2, 64)
	if !strings.Contains(s, ".") {
		return s
	}
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	if s == "-0" {
		return "0"
	}
	return s
}

// gcd returns the greatest common divisor of a and b.
// Both a and b must be non-negative.
func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// abs returns the absolute value of n.
func abs(n int64) int64 {
	if n < 0 {
		return -n
	}
	return n
}
