package mathgen

import (
	"fmt"
	"strconv"
)

// Generator produces grade-appropriate equations. It owns the grade (fixed)
// and level (mutable) of one play session. A Generator is not safe for
// concurrent use; create one per session.
type Generator struct {
	grade int
	level int
	src   Source
}

// Option configures a Generator.
type Option func(*Generator)

// WithLevel sets the starting level (default 1).
func WithLevel(level int) Option {
	return func(g *Generator) { g.SetLevel(level) }
}

// WithSource replaces the random source. Tests use it to script draws.
func WithSource(src Source) Option {
	return func(g *Generator) {
		if src != nil {
			g.src = src
		}
	}
}

// New creates a Generator for grade. Grades outside 2-5 are clamped to the
// nearest supported grade.
func New(grade int, opts ...Option) *Generator {
	g := &Generator{
		grade: ClampGrade(grade),
		level: 1,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.src == nil {
		g.src = newDefaultSource()
	}
	return g
}

// Grade returns the generator's grade.
func (g *Generator) Grade() int { return g.grade }

// Level returns the level used for the next Generate call.
func (g *Generator) Level() int { return g.level }

// SetLevel replaces the level used by subsequent Generate calls.
// Equations already produced are unaffected. Levels below 1 become 1.
func (g *Generator) SetLevel(level int) {
	if level < 1 {
		level = 1
	}
	g.level = level
}

// Operations returns the operations eligible at the current grade and level.
func (g *Generator) Operations() []Operation {
	switch g.grade {
	case 2:
		return []Operation{OpAdd, OpSub}
	case 3:
		return []Operation{OpAdd, OpSub, OpMul, OpDiv}
	case 4:
		ops := []Operation{OpAdd, OpSub, OpMul, OpDiv, OpFracAdd}
		if g.level >= 5 {
			ops = append(ops, OpFracSub)
		}
		return ops
	default:
		ops := []Operation{OpMul, OpDiv, OpFracAdd, OpFracSub}
		if g.level >= 3 {
			ops = append(ops, OpAdd, OpSub)
		}
		return ops
	}
}

// Generate returns a new equation chosen uniformly among the eligible
// operations. It always succeeds.
func (g *Generator) Generate() Equation {
	ops := g.Operations()
	return g.GenerateOp(ops[g.src.IntN(len(ops))])
}

// GenerateOp returns a new equation for a specific operation, regardless of
// grade eligibility. Unknown operations fall back to addition.
func (g *Generator) GenerateOp(op Operation) Equation {
	switch op {
	case OpSub:
		return g.subtraction()
	case OpMul:
		return g.multiplication()
	case OpDiv:
		return g.division()
	case OpFracAdd:
		return g.fractionAddition()
	case OpFracSub:
		return g.fractionSubtraction()
	default:
		return g.addition()
	}
}

// MaxNumber is the upper operand bound for addition and subtraction.
// It grows by 5 every 3 levels.
func (g *Generator) MaxNumber() int {
	base := 50
	switch g.grade {
	case 2:
		base = 10
	case 3:
		base = 20
	}
	return base + ((g.level-1)/3)*5
}

// maxFactor is the upper times-table bound for multiplication and division.
func (g *Generator) maxFactor() int {
	if g.grade == 3 {
		return 9
	}
	return 12
}

func (g *Generator) addition() Equation {
	limit := g.MaxNumber()
	a := between(g.src, 2, limit)
	b := between(g.src, 2, limit)
	return integerEquation(OpAdd, a, b, a+b)
}

func (g *Generator) subtraction() Equation {
	limit := g.MaxNumber()
	a := between(g.src, 5, limit)
	b := between(g.src, 2, a)
	return integerEquation(OpSub, a, b, a-b)
}

func (g *Generator) multiplication() Equation {
	limit := g.maxFactor()
	a := between(g.src, 2, limit)
	b := between(g.src, 2, limit)
	return integerEquation(OpMul, a, b, a*b)
}

func (g *Generator) division() Equation {
	limit := g.maxFactor()
	divisor := between(g.src, 2, limit)
	quotient := between(g.src, 2, limit)
	return integerEquation(OpDiv, divisor*quotient, divisor, quotient)
}

func (g *Generator) fractionAddition() Equation {
	den := between(g.src, 2, 8)
	n1 := between(g.src, 1, den-1)
	n2 := between(g.src, 1, den-1)
	return fractionEquation(OpFracAdd, n1, n2, den, n1+n2)
}

// fractionSubtraction shares the [2, 8] denominator range with addition.
// For a denominator of 2 the first numerator is 2, giving 2/2 - 1/2.
func (g *Generator) fractionSubtraction() Equation {
	den := between(g.src, 2, 8)
	n1 := between(g.src, 2, den-1)
	n2 := between(g.src, 1, n1-1)
	return fractionEquation(OpFracSub, n1, n2, den, n1-n2)
}

func integerEquation(op Operation, a, b, result int) Equation {
	return Equation{
		Text:          fmt.Sprintf("%d %s %d", a, op.Symbol(), b),
		Answer:        strconv.Itoa(result),
		NumericAnswer: float64(result),
		Operation:     op,
		Difficulty:    Difficulty(a, b),
		Operands:      [2]int{a, b},
	}
}

func fractionEquation(op Operation, n1, n2, den, resultNum int) Equation {
	return Equation{
		Text:          fmt.Sprintf("%d/%d %s %d/%d", n1, den, op.Symbol(), n2, den),
		Answer:        formatFraction(resultNum, den),
		NumericAnswer: float64(resultNum) / float64(den),
		Operation:     op,
		Difficulty:    fractionDifficulty,
		Operands:      [2]int{n1, n2},
		Denominator:   den,
	}
}
