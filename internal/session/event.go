package session

import "time"

// EventType names a telemetry event emitted by the session.
type EventType string

const (
	EventGameStart       EventType = "game_start"
	EventGameEnd         EventType = "game_end"
	EventCorrectAnswer   EventType = "correct_answer"
	EventWrongAnswer     EventType = "wrong_answer"
	EventLevelUp         EventType = "level_up"
	EventEquationSpawned EventType = "equation_spawned"
	EventEquationMissed  EventType = "equation_missed"
	EventPause           EventType = "pause"
	EventResume          EventType = "resume"
)

// Event is a scalar record of something that happened in a session.
// It never carries Equation or validation values, only display strings and
// counters.
type Event struct {
	Type  EventType
	Grade int
	Level int
	Score int

	// Equation is the equation text, for answer, spawn and miss events.
	Equation string

	// Answer is what the player typed, for answer events.
	Answer string

	// CorrectAnswer is the expected answer, for correct answers and misses.
	CorrectAnswer string

	// TimeToAnswer is set on correct answers.
	TimeToAnswer time.Duration

	// Set on game_end.
	CorrectCount int
	WrongCount   int
	Accuracy     float64
	Duration     time.Duration
}

func newEvent(s *State, t EventType) Event {
	return Event{
		Type:  t,
		Grade: s.Grade,
		Level: s.Level,
		Score: s.Score,
	}
}
