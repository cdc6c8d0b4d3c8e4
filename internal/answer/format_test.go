package answer

import (
	"strconv"
	"testing"
)

func TestSimplifyFraction(t *testing.T) {
	tests := []struct {
		num, den int
		want     string
	}{
		{4, 8, "1/2"},
		{6, 9, "2/3"},
		{3, 1, "3"},
		{8, 4, "2"},
		{12, 8, "1 1/2"},
		{7, 3, "2 1/3"},
		{0, 5, "0"},
		{-4, 8, "-1/2"},
		{4, -8, "-1/2"},
		{-12, -8, "1 1/2"},
		{-7, 3, "-2 1/3"},
		{1, 0, Undefined},
		{0, 0, Undefined},
	}
	for _, tc := range tests {
		if got := SimplifyFraction(tc.num, tc.den); got != tc.want {
			t.Errorf("SimplifyFraction(%d, %d) = %q, want %q", tc.num, tc.den, got, tc.want)
		}
	}
}

func TestSimplifyFraction_AgreesWithValidate(t *testing.T) {
	for den := 1; den <= 12; den++ {
		for num := 0; num <= 30; num++ {
			s := SimplifyFraction(num, den)
			if !Validate(s, formatRaw(num, den)).Correct {
				t.Errorf("SimplifyFraction(%d, %d) = %q does not validate against the raw fraction", num, den, s)
			}
		}
	}
}

func TestFormatDisplay(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{5, "5"},
		{5.5, "5.5"},
		{5.50, "5.5"},
		{0.25, "0.25"},
		{1.0 / 3.0, "0.33"},
		{1.999, "2"},
		{-2.5, "-2.5"},
		{0, "0"},
		{-0.001, "0"},
		{120, "120"},
	}
	for _, tc := range tests {
		if got := FormatDisplay(tc.in); got != tc.want {
			t.Errorf("FormatDisplay(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func formatRaw(num, den int) string {
	return strconv.Itoa(num) + "/" + strconv.Itoa(den)
}
