package store

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when a requested row does not exist.
var ErrNotFound = errors.New("store: not found")

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit     int       // max results (0 = unlimited)
	After     int64     // sequence > After
	Before    int64     // sequence < Before
	From      time.Time // timestamp >= From
	To        time.Time // timestamp <= To
	Type      string    // exact event_type match
	SessionID string    // exact session_id match
}

// EventData is the JSON payload stored alongside each game event.
// Only scalar facts are recorded, never live game objects.
type EventData struct {
	Equation       string  `json:"equation,omitempty"`
	Answer         string  `json:"answer,omitempty"`
	CorrectAnswer  string  `json:"correct_answer,omitempty"`
	TimeToAnswerMs int64   `json:"time_to_answer_ms,omitempty"`
	CorrectCount   int     `json:"correct_count,omitempty"`
	WrongCount     int     `json:"wrong_count,omitempty"`
	Accuracy       float64 `json:"accuracy,omitempty"`
	DurationMs     int64   `json:"duration_ms,omitempty"`
}

// GameEvent is a single analytics record.
type GameEvent struct {
	ID        int       `json:"id"`
	Sequence  int64     `json:"sequence"`
	Timestamp time.Time `json:"timestamp"`
	Type      string    `json:"event_type"`
	DeviceID  string    `json:"device_id"`
	SessionID string    `json:"session_id"`
	Grade     int       `json:"grade"`
	Level     int       `json:"level"`
	Score     int       `json:"score"`
	Data      EventData `json:"data"`
}

// EventRepo provides append and query access to game events.
type EventRepo interface {
	// Append records an event. Sequence is always assigned by the store;
	// a zero Timestamp is set to the current time.
	Append(ctx context.Context, ev *GameEvent) error

	// Query returns events ordered by sequence ascending.
	Query(ctx context.Context, opts QueryOpts) ([]GameEvent, error)

	// Prune deletes all but the N most recent events.
	Prune(ctx context.Context, keep int) error
}

// HighScore is a finished game saved to the leaderboard.
type HighScore struct {
	ID              int       `json:"id"`
	PlayerName      string    `json:"player_name"`
	Score           int       `json:"score"`
	Grade           int       `json:"grade"`
	Level           int       `json:"level"`
	CorrectAnswers  int       `json:"correct_answers"`
	WrongAnswers    int       `json:"wrong_answers"`
	Accuracy        float64   `json:"accuracy"`
	SessionDuration int       `json:"session_duration"` // seconds
	DeviceID        string    `json:"device_id"`
	CreatedAt       time.Time `json:"created_at"`
}

// PersonalBestLimit is how many entries PersonalBests returns.
const PersonalBestLimit = 5

// HighScoreRepo manages leaderboard entries.
type HighScoreRepo interface {
	// Save stores a new high score and fills in its ID and CreatedAt.
	Save(ctx context.Context, hs *HighScore) error

	// Leaderboard returns the top scores, highest first. A grade of 0
	// includes every grade. A limit of 0 returns all rows.
	Leaderboard(ctx context.Context, grade, limit int) ([]HighScore, error)

	// PersonalBests returns the top PersonalBestLimit scores for a device.
	PersonalBests(ctx context.Context, deviceID string) ([]HighScore, error)
}
