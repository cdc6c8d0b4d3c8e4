package answer

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	decimalPattern  = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)$`)
	mixedPattern    = regexp.MustCompile(`^([+-]?)(\d+) (\d+) ?/ ?(\d+)$`)
	fractionPattern = regexp.MustCompile(`^([+-]?\d+) ?/ ?(\d+)$`)
)

// Parse returns the numeric value of an answer string. It tries, in order,
// a plain decimal, a mixed number ("w n/d") and a simple fraction ("n/d").
// Fractions with a zero denominator do not parse.
func Parse(s string) (float64, bool) {
	return parseNormalized(normalizeText(s))
}

// parseNormalized parses a string already passed through normalizeText.
func parseNormalized(s string) (float64, bool) {
	if s == "" {
		return 0, false
	}

	if !strings.Contains(s, "/") {
		if !decimalPattern.MatchString(s) {
			return 0, false
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	}

	if m := mixedPattern.FindStringSubmatch(s); m != nil {
		whole, err := strconv.ParseInt(m[2], 10, 64)
		if err != nil {
			return 0, false
		}
		frac, ok := fractionValue(m[3], m[4])
		if !ok {
			return 0, false
		}
		v := float64(whole) + frac
		if m[1] == "-" {
			v = -v
		}
		return v, true
	}

	if m := fractionPattern.FindStringSubmatch(s); m != nil {
		return fractionValue(m[1], m[2])
	}

	return 0, false
}

// malformedFraction reports whether s has the shape of a fraction or mixed
// number but does not parse, such as "1/0" or "1 1/0".
func malformedFraction(s string) bool {
	if !mixedPattern.MatchString(s) && !fractionPattern.MatchString(s) {
		return false
	}
	_, ok := parseNormalized(s)
	return !ok
}

// fractionValue divides num by den, refusing a zero denominator.
func fractionValue(numStr, denStr string) (float64, bool) {
	num, den, err := parseFraction(numStr, denStr)
	if err != nil || den == 0 {
		return 0, false
	}
	return float64(num) / float64(den), true
}

// parseFraction parses the numerator and denominator of "a/b".
func parseFraction(numStr, denStr string) (int64, int64, error) {
	num, err := strconv.ParseInt(numStr, 10, 64)
	if err != nil {
		return 0, 0, err
	}
	den, err := strconv.ParseInt(denStr, 10, 64)
	if err != nil {
		return 0, 0, err
	}
	return num, den, nil
}

// canonical renders a parsed value in its shortest decimal form.
func canonical(v float64) string {
	if v == 0 {
		return "0" // folds -0
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
