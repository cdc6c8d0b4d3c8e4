package session

import (
	"strings"
	"time"

	"github.com/abhisek/mathdrop/internal/answer"
	"github.com/abhisek/mathdrop/internal/mathgen"
)

// AnswerOutcome describes the effect of a submitted answer.
type AnswerOutcome struct {
	// Correct is true when the input matched an on-screen equation.
	Correct bool

	// Matched is the equation that was answered (nil when wrong).
	Matched *mathgen.Equation

	// LeveledUp is true when this answer advanced the level.
	LeveledUp bool
}

// Start begins play and drops the first equation immediately.
func Start(state *State, now time.Time) []Event {
	if state.Phase != PhaseReady {
		return nil
	}
	state.Phase = PhaseActive
	state.StartTime = now

	events := []Event{newEvent(state, EventGameStart)}
	return append(events, spawn(state))
}

// Tick advances the session clock by dt: equations fall, those reaching the
// ground cost a life, and new equations spawn on schedule.
func Tick(state *State, dt time.Duration) []Event {
	if state.Phase != PhaseActive || dt <= 0 {
		return nil
	}
	state.Elapsed += dt

	var events []Event
	fall := state.Config.FallRate(state.Level) * dt.Seconds()
	remaining := state.Falling[:0]
	for _, f := range state.Falling {
		f.Height += fall
		if f.Height < 1 {
			remaining = append(remaining, f)
			continue
		}
		state.Lives--
		e := newEvent(state, EventEquationMissed)
		e.Equation = f.Equation.Text
		e.CorrectAnswer = f.Equation.Answer
		events = append(events, e)
	}
	state.Falling = remaining

	if state.Lives <= 0 {
		state.Lives = 0
		return append(events, End(state)...)
	}

	state.sinceSpawn += dt
	for interval := state.SpawnInterval(); state.sinceSpawn >= interval; interval = state.SpawnInterval() {
		state.sinceSpawn -= interval
		events = append(events, spawn(state))
	}
	return events
}

// HandleAnswer checks input against the on-screen equations, newest first.
// The first match is removed and scored; no match counts as a wrong answer.
// Blank input is ignored.
func HandleAnswer(state *State, input string) (AnswerOutcome, []Event) {
	input = strings.TrimSpace(input)
	if state.Phase != PhaseActive || input == "" {
		return AnswerOutcome{}, nil
	}

	for i := len(state.Falling) - 1; i >= 0; i-- {
		f := state.Falling[i]
		if !answer.Validate(input, f.Equation.Answer).Correct {
			continue
		}

		state.Falling = append(state.Falling[:i], state.Falling[i+1:]...)
		state.Score += state.Config.PointsPerLevel * state.Level
		state.CorrectCount++

		e := newEvent(state, EventCorrectAnswer)
		e.Equation = f.Equation.Text
		e.Answer = input
		e.CorrectAnswer = f.Equation.Answer
		e.TimeToAnswer = state.Elapsed - f.SpawnedAt
		events := []Event{e}

		eq := f.Equation
		outcome := AnswerOutcome{Correct: true, Matched: &eq}
		if state.Config.CorrectPerLevel > 0 && state.CorrectCount%state.Config.CorrectPerLevel == 0 {
			events = append(events, levelUp(state))
			outcome.LeveledUp = true
		}
		return outcome, events
	}

	state.WrongCount++
	state.Score = max(0, state.Score-state.Config.WrongPenalty)
	e := newEvent(state, EventWrongAnswer)
	e.Answer = input
	return AnswerOutcome{}, []Event{e}
}

// Pause freezes the session clock.
func Pause(state *State) []Event {
	if state.Phase != PhaseActive {
		return nil
	}
	state.Phase = PhasePaused
	return []Event{newEvent(state, EventPause)}
}

// Resume restarts a paused session clock.
func Resume(state *State) []Event {
	if state.Phase != PhasePaused {
		return nil
	}
	state.Phase = PhaseActive
	return []Event{newEvent(state, EventResume)}
}

// End finishes the session, whether by running out of lives or quitting.
func End(state *State) []Event {
	if state.Phase == PhaseOver || state.Phase == PhaseReady {
		state.Phase = PhaseOver
		return nil
	}
	state.Phase = PhaseOver
	state.Falling = nil

	e := newEvent(state, EventGameEnd)
	e.CorrectCount = state.CorrectCount
	e.WrongCount = state.WrongCount
	e.Accuracy = state.Accuracy()
	e.Duration = state.Elapsed
	return []Event{e}
}

func levelUp(state *State) Event {
	state.Level++
	state.generator.SetLevel(state.Level)
	return newEvent(state, EventLevelUp)
}

func spawn(state *State) Event {
	eq := state.generator.Generate()
	state.nextID++
	column := 0.5
	if state.positions != nil {
		column = state.positions.Float64()
	}
	state.Falling = append(state.Falling, &Falling{
		ID:        state.nextID,
		Equation:  eq,
		Column:    column,
		SpawnedAt: state.Elapsed,
	})
	state.EquationsSeen = append(state.EquationsSeen, eq.Text)

	e := newEvent(state, EventEquationSpawned)
	e.Equation = eq.Text
	return e
}
