// Package telemetry persists game session events as analytics records.
package telemetry

import (
	"context"
	"log/slog"
	"time"

	"github.com/abhisek/mathdrop/internal/logger"
	"github.com/abhisek/mathdrop/internal/session"
	"github.com/abhisek/mathdrop/internal/store"
)

// Recorder writes session events to an EventRepo. Write failures are logged
// and dropped so gameplay never waits on storage.
type Recorder struct {
	repo      store.EventRepo
	deviceID  string
	sessionID string
	log       *slog.Logger
	now       func() time.Time
}

// NewRecorder creates a Recorder for one play session. A nil repo yields a
// Recorder that discards everything.
func NewRecorder(repo store.EventRepo, deviceID, sessionID string, log *slog.Logger) *Recorder {
	if log == nil {
		log = logger.Discard()
	}
	return &Recorder{
		repo:      repo,
		deviceID:  deviceID,
		sessionID: sessionID,
		log:       log.With("session_id", sessionID),
		now:       time.Now,
	}
}

// SessionID returns the session this recorder tags events with.
func (r *Recorder) SessionID() string {
	return r.sessionID
}

// Record appends each event. It returns the number written.
func (r *Recorder) Record(ctx context.Context, events ...session.Event) int {
	if r == nil || r.repo == nil {
		return 0
	}

	written := 0
	for _, ev := range events {
		ge := ToGameEvent(ev, r.deviceID, r.sessionID)
		ge.Timestamp = r.now()
		if err := r.repo.Append(ctx, &ge); err != nil {
			r.log.Warn("failed to record game event", "event_type", ev.Type, "error", err)
			continue
		}
		written++
		r.log.Debug("recorded game event", "event_type", ev.Type, "sequence", ge.Sequence)
	}
	return written
}

// ToGameEvent converts a session event into its stored form.
func ToGameEvent(ev session.Event, deviceID, sessionID string) store.GameEvent {
	return store.GameEvent{
		Type:      string(ev.Type),
		DeviceID:  deviceID,
		SessionID: sessionID,
		Grade:     ev.Grade,
		Level:     ev.Level,
		Score:     ev.Score,
		Data: store.EventData{
			Equation:       ev.Equation,
			Answer:         ev.Answer,
			CorrectAnswer:  ev.CorrectAnswer,
			TimeToAnswerMs: ev.TimeToAnswer.Milliseconds(),
			CorrectCount:   ev.CorrectCount,
			WrongCount:     ev.WrongCount,
			Accuracy:       ev.Accuracy,
			DurationMs:     ev.Duration.Milliseconds(),
		},
	}
}
