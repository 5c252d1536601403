package store

import (
	"context"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

// Table names.
const (
	starEventsTable = "star_events"
	quizEventsTable = "quiz_events"
	llmEventsTable  = "llm_events"
	snapshotsTable  = "snapshots"
	settingsTable   = "settings"
	sequenceTable   = "global_sequence"
)

// eventColumns returns the columns every event table shares followed by
// extra. The first three are id, sequence and timestamp (unix millis).
func eventColumns(extra ...*schema.Column) []*schema.Column {
	return append([]*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeInt64},
	}, extra...)
}

var (
	starEventsColumns = eventColumns(
		&schema.Column{Name: "letter", Type: field.TypeString},
		&schema.Column{Name: "source", Type: field.TypeString, Default: ""},
		&schema.Column{Name: "session_id", Type: field.TypeString, Default: ""},
	)
	starEvents = &schema.Table{
		Name:       starEventsTable,
		Columns:    starEventsColumns,
		PrimaryKey: []*schema.Column{starEventsColumns[0]},
		Indexes: []*schema.Index{
			{Name: "starevent_letter_sequence", Columns: []*schema.Column{starEventsColumns[3], starEventsColumns[1]}},
		},
	}

	quizEventsColumns = eventColumns(
		&schema.Column{Name: "session_id", Type: field.TypeString, Default: ""},
		&schema.Column{Name: "letter", Type: field.TypeString},
		&schema.Column{Name: "target", Type: field.TypeString},
		&schema.Column{Name: "chosen", Type: field.TypeString},
		&schema.Column{Name: "correct", Type: field.TypeBool},
	)
	quizEvents = &schema.Table{
		Name:       quizEventsTable,
		Columns:    quizEventsColumns,
		PrimaryKey: []*schema.Column{quizEventsColumns[0]},
		Indexes: []*schema.Index{
			{Name: "quizevent_letter", Columns: []*schema.Column{quizEventsColumns[4]}},
		},
	}

	llmEventsColumns = eventColumns(
		&schema.Column{Name: "provider", Type: field.TypeString},
		&schema.Column{Name: "model", Type: field.TypeString},
		&schema.Column{Name: "purpose", Type: field.TypeString},
		&schema.Column{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		&schema.Column{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		&schema.Column{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		&schema.Column{Name: "success", Type: field.TypeBool},
		&schema.Column{Name: "error_message", Type: field.TypeString, Size: 2147483647, Default: ""},
		&schema.Column{Name: "request_body", Type: field.TypeString, Size: 2147483647, Default: ""},
		&schema.Column{Name: "response_body", Type: field.TypeString, Size: 2147483647, Default: ""},
	)
	llmEvents = &schema.Table{
		Name:       llmEventsTable,
		Columns:    llmEventsColumns,
		PrimaryKey: []*schema.Column{llmEventsColumns[0]},
	}

	snapshotsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64},
		{Name: "timestamp", Type: field.TypeInt64},
		{Name: "data", Type: field.TypeString, Size: 2147483647},
	}
	snapshots = &schema.Table{
		Name:       snapshotsTable,
		Columns:    snapshotsColumns,
		PrimaryKey: []*schema.Column{snapshotsColumns[0]},
	}

	settingsColumns = []*schema.Column{
		{Name: "key", Type: field.TypeString},
		{Name: "value", Type: field.TypeString},
		{Name: "updated_at", Type: field.TypeInt64},
	}
	settings = &schema.Table{
		Name:       settingsTable,
		Columns:    settingsColumns,
		PrimaryKey: []*schema.Column{settingsColumns[0]},
	}

	sequenceColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt},
		{Name: "next_val", Type: field.TypeInt64, Default: 1},
	}
	sequence = &schema.Table{
		Name:       sequenceTable,
		Columns:    sequenceColumns,
		PrimaryKey: []*schema.Column{sequenceColumns[0]},
	}

	tables = []*schema.Table{starEvents, quizEvents, llmEvents, snapshots, settings, sequence}
)

// migrate creates missing tables, columns and indexes.
func migrate(ctx context.Context, drv dialect.Driver) error {
	m, err := schema.NewMigrate(drv)
	if err != nil {
		return err
	}
	return m.Create(ctx, tables...)
}
