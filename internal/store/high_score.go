package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	entsql "entgo.io/ent/dialect/sql"
)

var highScoreSelectColumns = []string{
	"id", "player_name", "score", "grade", "level", "correct_answers",
	"wrong_answers", "accuracy", "session_duration", "device_id", "created_at",
}

// highScoreRepo implements HighScoreRepo on top of the SQL builder.
type highScoreRepo struct {
	db *sql.DB
}

func (r *highScoreRepo) Save(ctx context.Context, hs *HighScore) error {
	if hs.CreatedAt.IsZero() {
		hs.CreatedAt = time.Now()
	}
	hs.CreatedAt = hs.CreatedAt.UTC()

	query, args := builder().Insert(highScoresTable).
		Columns("player_name", "score", "grade", "level", "correct_answers",
			"wrong_answers", "accuracy", "session_duration", "device_id", "created_at").
		Values(hs.PlayerName, hs.Score, hs.Grade, hs.Level, hs.CorrectAnswers,
			hs.WrongAnswers, hs.Accuracy, hs.SessionDuration, hs.DeviceID, hs.CreatedAt).
		Query()

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("save high score: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("save high score: %w", err)
	}
	hs.ID = int(id)
	return nil
}

func (r *highScoreRepo) Leaderboard(ctx context.Context, grade, limit int) ([]HighScore, error) {
	sel := r.ranked()
	if grade > 0 {
		sel.Where(entsql.EQ("grade", grade))
	}
	if limit > 0 {
		sel.Limit(limit)
	}
	return r.query(ctx, sel)
}

func (r *highScoreRepo) PersonalBests(ctx context.Context, deviceID string) ([]HighScore, error) {
	sel := r.ranked().
		Where(entsql.EQ("device_id", deviceID)).
		Limit(PersonalBestLimit)
	return r.query(ctx, sel)
}

// ranked selects high scores highest first; earlier entries win ties.
func (r *highScoreRepo) ranked() *entsql.Selector {
	return builder().Select(highScoreSelectColumns...).
		From(entsql.Table(highScoresTable)).
		OrderBy(entsql.Desc("score"), "created_at", "id")
}

func (r *highScoreRepo) query(ctx context.Context, sel *entsql.Selector) ([]HighScore, error) {
	query, args := sel.Query()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query high scores: %w", err)
	}
	defer rows.Close()

	var scores []HighScore
	for rows.Next() {
		var (
			hs      HighScore
			created sql.NullTime
		)
		err := rows.Scan(&hs.ID, &hs.PlayerName, &hs.Score, &hs.Grade, &hs.Level,
			&hs.CorrectAnswers, &hs.WrongAnswers, &hs.Accuracy, &hs.SessionDuration,
			&hs.DeviceID, &created)
		if err != nil {
			return nil, fmt.Errorf("scan high score: %w", err)
		}
		hs.CreatedAt = created.Time
		scores = append(scores, hs)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("query high scores: %w", err)
	}
	return scores, nil
}
