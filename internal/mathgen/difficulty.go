package mathgen

// fractionDifficulty is the fixed telemetry tier of fraction problems.
const fractionDifficulty = 3

// Difficulty maps the larger operand onto a 1-4 tier.
func Difficulty(a, b int) int {
	m := max(a, b)
	switch {
	case m <= 10:
		return 1
	case m <= 20:
		return 2
	case m <= 50:
		return 3
	default:
		return 4
	}
}
