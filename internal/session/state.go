package session

import (
	"time"

	"github.com/abhisek/mathdrop/internal/mathgen"
)

// EquationSource produces equations for a session.
// *mathgen.Generator satisfies it.
type EquationSource interface {
	Generate() mathgen.Equation
	SetLevel(level int)
}

// PositionSource picks spawn columns. *rand.Rand from math/rand/v2 satisfies it.
type PositionSource interface {
	Float64() float64
}

// Phase represents the current phase of a play session.
type Phase int

const (
	PhaseReady  Phase = iota // Created, not started
	PhaseActive              // Equations falling
	PhasePaused              // Time frozen
	PhaseOver                // Out of lives or quit
)

// Falling is an equation on its way to the ground.
type Falling struct {
	ID       int
	Equation mathgen.Equation

	// Column is the horizontal position in [0, 1).
	Column float64

	// Height is how far the equation has fallen, 0 at the top and 1 at the ground.
	Height float64

	// SpawnedAt is the session elapsed time when the equation appeared.
	SpawnedAt time.Duration
}

// State tracks the runtime state of one play session.
type State struct {
	// SessionID is the UUID of this session.
	SessionID string

	// Grade is fixed for the session.
	Grade int

	// Level starts at 1 and increases every Config.CorrectPerLevel correct answers.
	Level int

	Score        int
	Lives        int
	CorrectCount int
	WrongCount   int

	// Falling holds on-screen equations, oldest first.
	Falling []*Falling

	Phase Phase

	// StartTime is when the session began.
	StartTime time.Time

	// Elapsed is play time, excluding pauses.
	Elapsed time.Duration

	// EquationsSeen lists the text of every spawned equation.
	EquationsSeen []string

	Config Config

	generator  EquationSource
	positions  PositionSource
	sinceSpawn time.Duration
	nextID     int
}

// NewState creates a session in PhaseReady. Call Start to begin play.
func NewState(sessionID string, grade int, gen EquationSource, positions PositionSource, cfg Config) *State {
	return &State{
		SessionID: sessionID,
		Grade:     grade,
		Level:     1,
		Lives:     cfg.Lives,
		Phase:     PhaseReady,
		Config:    cfg,
		generator: gen,
		positions: positions,
	}
}

// SpawnInterval returns the spawn interval at the current level.
func (s *State) SpawnInterval() time.Duration {
	return s.Config.SpawnInterval(s.Level)
}

// Accuracy returns the percentage of submitted answers that were correct.
func (s *State) Accuracy() float64 {
	total := s.CorrectCount + s.WrongCount
	if total == 0 {
		return 0
	}
	return float64(s.CorrectCount) / float64(total) * 100
}
