package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	entsql "entgo.io/ent/dialect/sql"
)

// snapshotRepo implements SnapshotRepo with the data column stored as JSON.
type snapshotRepo struct {
	drv *entsql.Driver
}

func (r *snapshotRepo) Save(ctx context.Context, snap *Snapshot) error {
	data, err := json.Marshal(snap.Data)
	if err != nil {
		return fmt.Errorf("marshal snapshot data: %w", err)
	}

	ts := snap.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}

	insert := builder.Insert(snapshotsTable).
		Columns("sequence", "timestamp", "data").
		Values(snap.Sequence, ts.UnixMilli(), string(data))
	if _, err := execute(ctx, r.drv, insert); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}

func (r *snapshotRepo) Latest(ctx context.Context) (*Snapshot, error) {
	sel := builder.Select("id", "sequence", "timestamp", "data").
		From(entsql.Table(snapshotsTable)).
		OrderBy(entsql.Desc("sequence"), entsql.Desc("id")).
		Limit(1)

	rows, err := query(ctx, r.drv, sel)
	if err != nil {
		return nil, fmt.Errorf("query latest snapshot: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, rows.Err()
	}

	var snap Snapshot
	var ts int64
	var data string
	if err := rows.Scan(&snap.ID, &snap.Sequence, &ts, &data); err != nil {
		return nil, fmt.Errorf("scan snapshot: %w", err)
	}
	if err := json.Unmarshal([]byte(data), &snap.Data); err != nil {
		return nil, fmt.Errorf("unmarshal snapshot data: %w", err)
	}
	snap.Timestamp = time.UnixMilli(ts)
	return &snap, nil
}

func (r *snapshotRepo) Prune(ctx context.Context, keep int) error {
	newest := builder.Select("id").
		From(entsql.Table(snapshotsTable)).
		OrderBy(entsql.Desc("sequence"), entsql.Desc("id")).
		Limit(keep)
	prune := builder.Delete(snapshotsTable).Where(entsql.NotIn("id", newest))

	if _, err := execute(ctx, r.drv, prune); err != nil {
		return fmt.Errorf("prune snapshots: %w", err)
	}
	return nil
}
