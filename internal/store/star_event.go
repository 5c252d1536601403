package store

import (
	"context"
	"fmt"
	"time"

	entsql "entgo.io/ent/dialect/sql"
)

func (r *eventRepo) AppendStarEvent(ctx context.Context, data StarEventData) error {
	err := r.appendEvent(ctx, starEventsTable,
		[]string{"letter", "source", "session_id"},
		data.Letter, data.Source, data.SessionID,
	)
	if err != nil {
		return fmt.Errorf("save star event: %w", err)
	}
	return nil
}

func (r *eventRepo) StarCount(ctx context.Context, letter string, afterSeq int64) (int, error) {
	sel := builder.Select(entsql.Count("*")).
		From(entsql.Table(starEventsTable)).
		Where(entsql.And(entsql.EQ("letter", letter), entsql.GT("sequence", afterSeq)))

	rows, err := query(ctx, r.drv, sel)
	if err != nil {
		return 0, fmt.Errorf("count stars: %w", err)
	}
	defer rows.Close()

	n, err := entsql.ScanInt(rows)
	if err != nil {
		return 0, fmt.Errorf("count stars: %w", err)
	}
	return n, nil
}

func (r *eventRepo) StarCounts(ctx context.Context, afterSeq int64) (map[string]int, error) {
	sel := builder.Select("letter", entsql.Count("*")).
		From(entsql.Table(starEventsTable)).
		Where(entsql.GT("sequence", afterSeq)).
		GroupBy("letter")

	rows, err := query(ctx, r.drv, sel)
	if err != nil {
		return nil, fmt.Errorf("count stars: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var letter string
		var n int
		if err := rows.Scan(&letter, &n); err != nil {
			return nil, fmt.Errorf("scan star count: %w", err)
		}
		counts[letter] = n
	}
	return counts, rows.Err()
}

func (r *eventRepo) QueryStarEvents(ctx context.Context, opts QueryOpts) ([]StarEventRecord, error) {
	sel := selectEvents(starEventsTable, opts, "id", "sequence", "timestamp", "letter", "source", "session_id")
	rows, err := query(ctx, r.drv, sel)
	if err != nil {
		return nil, fmt.Errorf("query star events: %w", err)
	}
	defer rows.Close()

	var records []StarEventRecord
	for rows.Next() {
		var rec StarEventRecord
		var ts int64
		if err := rows.Scan(&rec.ID, &rec.Sequence, &ts, &rec.Letter, &rec.Source, &rec.SessionID); err != nil {
			return nil, fmt.Errorf("scan star event: %w", err)
		}
		rec.Timestamp = time.UnixMilli(ts)
		records = append(records, rec)
	}
	return records, rows.Err()
}
