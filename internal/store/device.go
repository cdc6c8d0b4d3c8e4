package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

// DeviceID returns the UUID identifying this installation, creating and
// persisting one on first use.
func (s *Store) DeviceID(ctx context.Context) (string, error) {
	id, err := s.loadDeviceID(ctx)
	if err == nil {
		return id, nil
	}
	if err != ErrNotFound {
		return "", err
	}

	id = uuid.NewString()
	query, args := builder().Insert(deviceTable).
		Columns("device_id", "created_at").
		Values(id, time.Now().UTC()).
		Query()
	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return "", fmt.Errorf("save device id: %w", err)
	}
	return id, nil
}

func (s *Store) loadDeviceID(ctx context.Context) (string, error) {
	query, args := builder().Select("device_id").
		From(entsql.Table(deviceTable)).
		OrderBy("id").
		Limit(1).
		Query()

	var id string
	err := s.db.QueryRowContext(ctx, query, args...).Scan(&id)
	if err == sql.ErrNoRows {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("load device id: %w", err)
	}
	return id, nil
}
