package store

import (
	"context"
	"fmt"

	entsql "entgo.io/ent/dialect/sql"
)

type settingsRepo struct {
	drv *entsql.Driver
}

func (r *settingsRepo) GetSetting(ctx context.Context, key string) (string, bool, error) {
	sel := builder.Select("value").From(entsql.Table(settingsTable)).Where(entsql.EQ("key", key))
	rows, err := query(ctx, r.drv, sel)
	if err != nil {
		return "", false, fmt.Errorf("get setting %s: %w", key, err)
	}
	defer rows.Close()

	if !rows.Next() {
		return "", false, rows.Err()
	}
	var v string
	if err := rows.Scan(&v); err != nil {
		return "", false, fmt.Errorf("get setting %s: %w", key, err)
	}
	return v, true, nil
}

func (r *settingsRepo) SetSetting(ctx context.Context, key, value string) error {
	upsert := builder.Insert(settingsTable).
		Columns("key", "value", "updated_at").
		Values(key, value, nowMillis()).
		OnConflict(entsql.ConflictColumns("key"), entsql.ResolveWithNewValues())
	if _, err := execute(ctx, r.drv, upsert); err != nil {
		return fmt.Errorf("set setting %s: %w", key, err)
	}
	return nil
}
