package session

import "time"

// Summary holds the data shown when a session ends.
type Summary struct {
	SessionID    string
	Grade        int
	Level        int
	Score        int
	CorrectCount int
	WrongCount   int
	Accuracy     float64
	Duration     time.Duration
}

// BuildSummary creates a Summary from the current session state.
func BuildSummary(state *State) *Summary {
	return &Summary{
		SessionID:    state.SessionID,
		Grade:        state.Grade,
		Level:        state.Level,
		Score:        state.Score,
		CorrectCount: state.CorrectCount,
		WrongCount:   state.WrongCount,
		Accuracy:     state.Accuracy(),
		Duration:     state.Elapsed,
	}
}
