package store

import (
	"context"
	"fmt"
	"time"

	entsql "entgo.io/ent/dialect/sql"
)

func (r *eventRepo) AppendQuizEvent(ctx context.Context, data QuizEventData) error {
	err := r.appendEvent(ctx, quizEventsTable,
		[]string{"session_id", "letter", "target", "chosen", "correct"},
		data.SessionID, data.Letter, data.Target, data.Chosen, data.Correct,
	)
	if err != nil {
		return fmt.Errorf("save quiz event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryQuizEvents(ctx context.Context, opts QueryOpts) ([]QuizEventRecord, error) {
	sel := selectEvents(quizEventsTable, opts,
		"id", "sequence", "timestamp", "session_id", "letter", "target", "chosen", "correct")
	rows, err := query(ctx, r.drv, sel)
	if err != nil {
		return nil, fmt.Errorf("query quiz events: %w", err)
	}
	defer rows.Close()

	var records []QuizEventRecord
	for rows.Next() {
		var rec QuizEventRecord
		var ts int64
		if err := rows.Scan(&rec.ID, &rec.Sequence, &ts, &rec.SessionID, &rec.Letter, &rec.Target, &rec.Chosen, &rec.Correct); err != nil {
			return nil, fmt.Errorf("scan quiz event: %w", err)
		}
		rec.Timestamp = time.UnixMilli(ts)
		records = append(records, rec)
	}
	return records, rows.Err()
}

func (r *eventRepo) QuizStats(ctx context.Context) ([]QuizStat, error) {
	sel := builder.Select("letter", entsql.Sum("correct"), entsql.Count("*")).
		From(entsql.Table(quizEventsTable)).
		GroupBy("letter").
		OrderBy("letter")

	rows, err := query(ctx, r.drv, sel)
	if err != nil {
		return nil, fmt.Errorf("query quiz stats: %w", err)
	}
	defer rows.Close()

	var stats []QuizStat
	for rows.Next() {
		var s QuizStat
		if err := rows.Scan(&s.Letter, &s.Correct, &s.Total); err != nil {
			return nil, fmt.Errorf("scan quiz stat: %w", err)
		}
		stats = append(stats, s)
	}
	return stats, rows.Err()
}
