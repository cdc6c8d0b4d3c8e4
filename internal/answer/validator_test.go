package answer

import "testing"

func TestValidate_Integer(t *testing.T) {
	tests := []struct {
		input, expected string
		want            bool
	}{
		{"5", "5", true},
		{"123", "123", true},
		{"0", "0", true},
		{" 5 ", "5", true},
		{"5", " 5 ", true},
		{"05", "5", true},
		{"005", "5", true},
		{"-5", "-5", true},
		{"+5", "5", true},
		{"5", "6", false},
		{"10", "11", false},
		{"-5", "5", false},
	}
	for _, tc := range tests {
		if got := Validate(tc.input, tc.expected).Correct; got != tc.want {
			t.Errorf("Validate(%q, %q) = %v, want %v", tc.input, tc.expected, got, tc.want)
		}
	}
}

func TestValidate_Decimal(t *testing.T) {
	tests := []struct {
		input, expected string
		want            bool
	}{
		{"3.5", "3.5", true},
		{"10.0", "10", true},
		{"5.0", "5", true},
		{"5.00", "5", true},
		{"5.", "5", true},
		{".5", "0.5", true},
		{"0.333", "0.333", true},
		{"3.6", "3.5", false},
	}
	for _, tc := range tests {
		if got := Validate(tc.input, tc.expected).Correct; got != tc.want {
			t.Errorf("Validate(%q, %q) = %v, want %v", tc.input, tc.expected, got, tc.want)
		}
	}
}

func TestValidate_Fraction(t *testing.T) {
	tests := []struct {
		input, expected string
		want            bool
	}{
		{"1/2", "1/2", true},
		{"1/2", "2/4", true},
		{"2/4", "1/2", true},
		{"3/6", "1/2", true},
		{"12/8", "3/2", true},
		{"6/4", "3/2", true},
		{"3 / 4", "3/4", true},
		{"1/2", "1/3", false},
		{"2/3", "3/4", false},
	}
	for _, tc := range tests {
		if got := Validate(tc.input, tc.expected).Correct; got != tc.want {
			t.Errorf("Validate(%q, %q) = %v, want %v", tc.input, tc.expected, got, tc.want)
		}
	}
}

func TestValidate_MixedNumbers(t *testing.T) {
	tests := []struct {
		input, expected string
		want            bool
	}{
		{"1 1/2", "1 1/2", true},
		{"1 1/2", "3/2", true},
		{"12/8", "1 1/2", true},
		{"1   1/2", "1 1/2", true},
		{"-1 1/2", "-1.5", true},
		// Without a space, "11/2" is the fraction eleven halves.
		{"11/2", "1 1/2", false},
		{"11/2", "5 1/2", true},
	}
	for _, tc := range tests {
		if got := Validate(tc.input, tc.expected).Correct; got != tc.want {
			t.Errorf("Validate(%q, %q) = %v, want %v", tc.input, tc.expected, got, tc.want)
		}
	}
}

func TestValidate_CrossFamily(t *testing.T) {
	tests := []struct {
		input, expected string
	}{
		{"12/8", "1.5"},
		{"1/2", "0.5"},
		{"0.5", "1/2"},
		{"1/4", "0.25"},
		{"1 1/2", "1.5"},
		{"2 1/4", "2.25"},
		{"1.5", "1 1/2"},
		{"1/3", "0.33333"},
		{"4/4", "1"},
	}
	for _, tc := range tests {
		if !Validate(tc.input, tc.expected).Correct {
			t.Errorf("Validate(%q, %q) = false, want true", tc.input, tc.expected)
		}
	}
}

func TestValidate_Rejections(t *testing.T) {
	tests := []struct {
		input, expected string
	}{
		{"", "5"},
		{"   ", "5"},
		{"5", ""},
		{"", ""},
		{"abc", "5"},
		{"5", "abc"},
		{"1/0", "1"},
		{"1 1/0", "1"},
		{"0/0", "0"},
		{"5/0", Undefined},
		{"1/2/3", "1/6"},
		{"1e2", "100"},
		{"inf", "1"},
		{"0x10", "16"},
		{"1_000", "1000"},
		{"1/0", "1/0"},
		{"5/0", "5/0"},
		{"1 1/0", "1 1/0"},
		{"0/0", "0/0"},
		{"-3/0", "-3/0"},
	}
	for _, tc := range tests {
		if Validate(tc.input, tc.expected).Correct {
			t.Errorf("Validate(%q, %q) = true, want false", tc.input, tc.expected)
		}
	}
}

func TestValidate_StringFallback(t *testing.T) {
	res := Validate("  Hello   World ", "hello world")
	if !res.Correct {
		t.Error("expected case-folded, whitespace-collapsed text to match")
	}
	if res.NormalizedInput != "hello world" {
		t.Errorf("NormalizedInput = %q, want %q", res.NormalizedInput, "hello world")
	}
}

func TestValidate_NormalizedForms(t *testing.T) {
	res := Validate(" 12/8 ", "1 1/2")
	if !res.Correct {
		t.Fatal("expected 12/8 to match 1 1/2")
	}
	if res.NormalizedInput != "1.5" || res.NormalizedAnswer != "1.5" {
		t.Errorf("normalized = (%q, %q), want (1.5, 1.5)", res.NormalizedInput, res.NormalizedAnswer)
	}

	res = Validate("abc", "5")
	if res.NormalizedInput != "abc" || res.NormalizedAnswer != "5" {
		t.Errorf("normalized = (%q, %q), want (abc, 5)", res.NormalizedInput, res.NormalizedAnswer)
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"5", " 05 ", "5.00", "-0", "1/3", "12/8", "1 1/2", "-2 3/4",
		"abc", "  Hello   World ", "1/0", "", "3 / 4", "0.1",
	}
	for _, in := range inputs {
		once := Normalize(in)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize(%q) = %q, but Normalize(%q) = %q", in, once, once, twice)
		}
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		in     string
		want   float64
		wantOK bool
	}{
		{"7", 7, true},
		{" -3 ", -3, true},
		{"2.25", 2.25, true},
		{"3/4", 0.75, true},
		{"-3/4", -0.75, true},
		{"2 1/4", 2.25, true},
		{"3/0", 0, false},
		{"x/4", 0, false},
		{"", 0, false},
		{"99999999999999999999/2", 0, false},
	}
	for _, tc := range tests {
		got, ok := Parse(tc.in)
		if ok != tc.wantOK || (ok && got != tc.want) {
			t.Errorf("Parse(%q) = (%v, %v), want (%v, %v)", tc.in, got, ok, tc.want, tc.wantOK)
		}
	}
}
