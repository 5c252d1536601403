package store

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
)

// builder renders ent SQL builders in SQLite syntax.
var builder = entsql.Dialect(dialect.SQLite)

// sequenceCounter hands out one monotonic sequence shared by every event
// table. Per-table row IDs cannot order a star against a quiz answer, and
// snapshots record the sequence they cover so later events can be replayed
// on top.
//
// The mutex serializes within the process; the transaction keeps the read
// and the increment together in the database.
type sequenceCounter struct {
	mu  sync.Mutex
	drv *entsql.Driver
}

func newSequenceCounter(ctx context.Context, drv *entsql.Driver) (*sequenceCounter, error) {
	seed := builder.Insert(sequenceTable).
		Columns("id", "next_val").
		Values(1, 1).
		OnConflict(entsql.DoNothing())
	if _, err := execute(ctx, drv, seed); err != nil {
		return nil, fmt.Errorf("seed sequence: %w", err)
	}
	return &sequenceCounter{drv: drv}, nil
}

// Next atomically returns the next sequence number and increments the counter.
func (sc *sequenceCounter) Next(ctx context.Context) (int64, error) {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	tx, err := sc.drv.Tx(ctx)
	if err != nil {
		return 0, fmt.Errorf("next sequence: %w", err)
	}
	next, err := readNext(ctx, tx)
	if err != nil {
		tx.Rollback()
		return 0, fmt.Errorf("next sequence: %w", err)
	}
	bump := builder.Update(sequenceTable).Add("next_val", 1).Where(entsql.EQ("id", 1))
	if _, err := execute(ctx, tx, bump); err != nil {
		tx.Rollback()
		return 0, fmt.Errorf("next sequence: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("next sequence: %w", err)
	}
	return next, nil
}

// Last returns the most recently issued sequence, or 0 before any event.
func (sc *sequenceCounter) Last(ctx context.Context) (int64, error) {
	next, err := readNext(ctx, sc.drv)
	if err != nil {
		return 0, fmt.Errorf("read sequence: %w", err)
	}
	return next - 1, nil
}

func readNext(ctx context.Context, q dialect.ExecQuerier) (int64, error) {
	rows, err := query(ctx, q, builder.Select("next_val").From(entsql.Table(sequenceTable)).Where(entsql.EQ("id", 1)))
	if err != nil {
		return 0, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return 0, err
		}
		return 0, sql.ErrNoRows
	}
	var next int64
	if err := rows.Scan(&next); err != nil {
		return 0, err
	}
	return next, rows.Close()
}

// eventRepo implements EventRepo on ent's SQL builders.
type eventRepo struct {
	drv *entsql.Driver
	seq *sequenceCounter
}

func (r *eventRepo) LatestSequence(ctx context.Context) (int64, error) {
	return r.seq.Last(ctx)
}

// ResetProgress removes stars, quiz answers, and snapshots. LLM events and
// settings are kept.
func (r *eventRepo) ResetProgress(ctx context.Context) error {
	tx, err := r.drv.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin reset: %w", err)
	}

	for _, table := range []string{starEventsTable, quizEventsTable, snapshotsTable} {
		if _, err := execute(ctx, tx, builder.Delete(table)); err != nil {
			tx.Rollback()
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}
	return tx.Commit()
}

// appendEvent inserts one row into an event table under the next sequence.
// columns and values exclude sequence and timestamp.
func (r *eventRepo) appendEvent(ctx context.Context, table string, columns []string, values ...any) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	insert := builder.Insert(table).
		Columns(append([]string{"sequence", "timestamp"}, columns...)...).
		Values(append([]any{seqNum, nowMillis()}, values...)...)
	_, err = execute(ctx, r.drv, insert)
	return err
}

// selectEvents selects columns from an event table narrowed by opts,
// newest first.
func selectEvents(table string, opts QueryOpts, columns ...string) *entsql.Selector {
	sel := builder.Select(columns...).From(entsql.Table(table))

	var preds []*entsql.Predicate
	if opts.After > 0 {
		preds = append(preds, entsql.GT("sequence", opts.After))
	}
	if opts.Before > 0 {
		preds = append(preds, entsql.LT("sequence", opts.Before))
	}
	if !opts.From.IsZero() {
		preds = append(preds, entsql.GTE("timestamp", opts.From.UnixMilli()))
	}
	if !opts.To.IsZero() {
		preds = append(preds, entsql.LTE("timestamp", opts.To.UnixMilli()))
	}
	if len(preds) > 0 {
		sel.Where(entsql.And(preds...))
	}

	sel.OrderBy(entsql.Desc("sequence"))
	if opts.Limit > 0 {
		sel.Limit(opts.Limit)
	}
	return sel
}

// query runs a built SELECT. Callers close the rows.
func query(ctx context.Context, q dialect.ExecQuerier, b entsql.Querier) (*entsql.Rows, error) {
	stmt, args := b.Query()
	rows := &entsql.Rows{}
	if err := q.Query(ctx, stmt, args, rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// execute runs a built INSERT, UPDATE or DELETE.
func execute(ctx context.Context, q dialect.ExecQuerier, b entsql.Querier) (sql.Result, error) {
	stmt, args := b.Query()
	var res sql.Result
	if err := q.Exec(ctx, stmt, args, &res); err != nil {
		return nil, err
	}
	return res, nil
}

func nowMillis() int64 {
	return time.Now().UnixMilli()
}
