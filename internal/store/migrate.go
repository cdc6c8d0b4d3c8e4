package store

import (
	"context"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

const (
	gameEventsTable = "game_events"
	highScoresTable = "high_scores"
	deviceTable     = "device"
)

var (
	// gameEventsColumns holds the columns for the "game_events" table.
	gameEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "event_type", Type: field.TypeString},
		{Name: "device_id", Type: field.TypeString, Default: ""},
		{Name: "session_id", Type: field.TypeString, Default: ""},
		{Name: "grade", Type: field.TypeInt, Default: 0},
		{Name: "level", Type: field.TypeInt, Default: 0},
		{Name: "score", Type: field.TypeInt, Default: 0},
		{Name: "data", Type: field.TypeString, Size: 2147483647, Default: "{}"},
	}
	// gameEventsTableSchema holds the schema information for the "game_events" table.
	gameEventsTableSchema = &schema.Table{
		Name:       gameEventsTable,
		Columns:    gameEventsColumns,
		PrimaryKey: []*schema.Column{gameEventsColumns[0]},
		Indexes: []*schema.Index{
			{Name: "gameevent_timestamp", Columns: []*schema.Column{gameEventsColumns[2]}},
			{Name: "gameevent_event_type", Columns: []*schema.Column{gameEventsColumns[3]}},
			{Name: "gameevent_session_id", Columns: []*schema.Column{gameEventsColumns[5]}},
		},
	}

	// highScoresColumns holds the columns for the "high_scores" table.
	highScoresColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "player_name", Type: field.TypeString},
		{Name: "score", Type: field.TypeInt},
		{Name: "grade", Type: field.TypeInt},
		{Name: "level", Type: field.TypeInt},
		{Name: "correct_answers", Type: field.TypeInt},
		{Name: "wrong_answers", Type: field.TypeInt},
		{Name: "accuracy", Type: field.TypeFloat64},
		{Name: "session_duration", Type: field.TypeInt},
		{Name: "device_id", Type: field.TypeString, Default: ""},
		{Name: "created_at", Type: field.TypeTime},
	}
	// highScoresTableSchema holds the schema information for the "high_scores" table.
	highScoresTableSchema = &schema.Table{
		Name:       highScoresTable,
		Columns:    highScoresColumns,
		PrimaryKey: []*schema.Column{highScoresColumns[0]},
		Indexes: []*schema.Index{
			{Name: "highscore_score", Columns: []*schema.Column{highScoresColumns[2]}},
			{Name: "highscore_grade_score", Columns: []*schema.Column{highScoresColumns[3], highScoresColumns[2]}},
			{Name: "highscore_device_id", Columns: []*schema.Column{highScoresColumns[9]}},
		},
	}

	// devicesColumns holds the columns for the "device" table.
	devicesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "device_id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// deviceTableSchema holds the schema information for the "device" table.
	deviceTableSchema = &schema.Table{
		Name:       deviceTable,
		Columns:    devicesColumns,
		PrimaryKey: []*schema.Column{devicesColumns[0]},
	}

	// tables holds all the tables in the schema.
	tables = []*schema.Table{
		gameEventsTableSchema,
		highScoresTableSchema,
		deviceTableSchema,
	}
)

// migrate creates or updates all tables.
func migrate(ctx context.Context, drv dialect.Driver) error {
	m, err := schema.NewMigrate(drv)
	if err != nil {
		return err
	}
	return m.Create(ctx, tables...)
}
