package mathgen

import "fmt"

// formatFraction renders a non-negative num/den in lowest terms: a whole
// number when it divides evenly, "w r/d" when improper, "n/d" otherwise.
// den must be positive.
func formatFraction(num, den int) string {
	if num >= den {
		whole, rem := num/den, num%den
		if rem == 0 {
			return fmt.Sprintf("%d", whole)
		}
		g := gcd(rem, den)
		return fmt.Sprintf("%d %d/%d", whole, rem/g, den/g)
	}
	g := gcd(num, den)
	return fmt.Sprintf("%d/%d", num/g, den/g)
}

// gcd returns the greatest common divisor of non-negative a and b.
func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
