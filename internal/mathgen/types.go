package mathgen

// Equation is a single generated arithmetic problem with its verified answer.
type Equation struct {
	// Text is the problem shown to the player, e.g. "7 + 5" or "3/4 + 1/4".
	Text string `json:"text"`

	// Answer is the canonical correct answer.
	// An integer ("12"), a reduced fraction ("3/4") or a mixed number ("1 1/2").
	Answer string `json:"answer"`

	// NumericAnswer is the exact (or closest float) value of Text.
	// Used for verification only, never shown to the player.
	NumericAnswer float64 `json:"numeric_answer"`

	// Operation is the kind of problem.
	Operation Operation `json:"operation"`

	// Difficulty is a 1-4 tier derived from operand magnitude.
	// Used for telemetry, not for gating.
	Difficulty int `json:"difficulty"`

	// Operands holds the two integer operands. For fraction problems these
	// are the numerators over Denominator.
	Operands [2]int `json:"operands"`

	// Denominator is the shared denominator of fraction problems, 0 otherwise.
	Denominator int `json:"denominator,omitempty"`
}

// Operation identifies the arithmetic operation of an Equation.
type Operation string

const (
	OpAdd     Operation = "add"
	OpSub     Operation = "sub"
	OpMul     Operation = "mul"
	OpDiv     Operation = "div"
	OpFracAdd Operation = "frac-add"
	OpFracSub Operation = "frac-sub"
)

// IsFraction reports whether the operation works on fractions.
func (o Operation) IsFraction() bool {
	return o == OpFracAdd || o == OpFracSub
}

// Symbol returns the operator shown in equation text.
func (o Operation) Symbol() string {
	switch o {
	case OpAdd, OpFracAdd:
		return "+"
	case OpSub, OpFracSub:
		return "-"
	case OpMul:
		return "×"
	case OpDiv:
		return "÷"
	default:
		return "?"
	}
}

// Supported grade range.
const (
	MinGrade = 2
	MaxGrade = 5
)

// ClampGrade maps any grade onto the nearest supported one.
func ClampGrade(grade int) int {
	if grade < MinGrade {
		return MinGrade
	}
	if grade > MaxGrade {
		return MaxGrade
	}
	return grade
}
