package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	entsql "entgo.io/ent/dialect/sql"
)

var gameEventSelectColumns = []string{
	"id", "sequence", "timestamp", "event_type", "device_id",
	"session_id", "grade", "level", "score", "data",
}

// eventRepo implements EventRepo on top of the SQL builder.
type eventRepo struct {
	db  *sql.DB
	seq *sequenceCounter
}

func (r *eventRepo) Append(ctx context.Context, ev *GameEvent) error {
	seq, err := r.seq.Next(ctx)
	if err != nil {
		return err
	}
	if ev.Timestamp.IsZero() {
		ev.Timestamp = time.Now()
	}
	ev.Timestamp = ev.Timestamp.UTC()

	data, err := json.Marshal(ev.Data)
	if err != nil {
		return fmt.Errorf("marshal event data: %w", err)
	}

	query, args := builder().Insert(gameEventsTable).
		Columns("sequence", "timestamp", "event_type", "device_id",
			"session_id", "grade", "level", "score", "data").
		Values(seq, ev.Timestamp, ev.Type, ev.DeviceID,
			ev.SessionID, ev.Grade, ev.Level, ev.Score, string(data)).
		Query()

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("append %s event: %w", ev.Type, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("append %s event: %w", ev.Type, err)
	}

	ev.ID = int(id)
	ev.Sequence = seq
	return nil
}

func (r *eventRepo) Query(ctx context.Context, opts QueryOpts) ([]GameEvent, error) {
	sel := builder().Select(gameEventSelectColumns...).
		From(entsql.Table(gameEventsTable)).
		OrderBy("sequence")

	if opts.After > 0 {
		sel.Where(entsql.GT("sequence", opts.After))
	}
	if opts.Before > 0 {
		sel.Where(entsql.LT("sequence", opts.Before))
	}
	if !opts.From.IsZero() {
		sel.Where(entsql.GTE("timestamp", opts.From.UTC()))
	}
	if !opts.To.IsZero() {
		sel.Where(entsql.LTE("timestamp", opts.To.UTC()))
	}
	if opts.Type != "" {
		sel.Where(entsql.EQ("event_type", opts.Type))
	}
	if opts.SessionID != "" {
		sel.Where(entsql.EQ("session_id", opts.SessionID))
	}
	if opts.Limit > 0 {
		sel.Limit(opts.Limit)
	}

	query, args := sel.Query()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query game events: %w", err)
	}
	defer rows.Close()

	var events []GameEvent
	for rows.Next() {
		ev, err := scanGameEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("query game events: %w", err)
	}
	return events, nil
}

func (r *eventRepo) Prune(ctx context.Context, keep int) error {
	// Find the sequence threshold: the (keep+1)th most recent event.
	query, args := builder().Select("sequence").
		From(entsql.Table(gameEventsTable)).
		OrderBy(entsql.Desc("sequence")).
		Offset(keep).
		Limit(1).
		Query()

	var threshold int64
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&threshold)
	if err == sql.ErrNoRows {
		return nil // fewer than keep events exist
	}
	if err != nil {
		return fmt.Errorf("query events for prune: %w", err)
	}

	query, args = builder().Delete(gameEventsTable).
		Where(entsql.LTE("sequence", threshold)).
		Query()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("prune events: %w", err)
	}
	return nil
}

func scanGameEvent(rows *sql.Rows) (GameEvent, error) {
	var (
		ev   GameEvent
		ts   sql.NullTime
		data string
	)
	err := rows.Scan(&ev.ID, &ev.Sequence, &ts, &ev.Type, &ev.DeviceID,
		&ev.SessionID, &ev.Grade, &ev.Level, &ev.Score, &data)
	if err != nil {
		return GameEvent{}, fmt.Errorf("scan game event: %w", err)
	}
	ev.Timestamp = ts.Time
	if data != "" {
		if err := json.Unmarshal([]byte(data), &ev.Data); err != nil {
			return GameEvent{}, fmt.Errorf("unmarshal event %d data: %w", ev.ID, err)
		}
	}
	return ev, nil
}
