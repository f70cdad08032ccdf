// Package repo provides postgres persistence for insight scans
package repo

import (
	"context"

	"github.com/google/uuid"

	"mailsift/internal/platform/store"
	"mailsift/internal/services/insights/domain"
)

// seam so tests get stable scan ids
var newScanID = uuid.NewString

// PG implements domain.RecorderPort over the store's postgres seam
type PG struct {
	DB store.TxRunner
}

// NewPG builds the postgres recorder
func NewPG(db store.TxRunner) *PG {
	if db == nil {
		panic("insights.repo requires a non nil TxRunner")
	}
	return &PG{DB: db}
}

// EnsureSchema creates the scan tables when they do not exist yet
func (r *PG) EnsureSchema(ctx context.Context) error {
	const scans = `
create table if not exists insight_scans (
	id         uuid primary key,
	name       text not null default '',
	messages   int  not null,
	skipped    int  not null,
	truncated  int  not null,
	todos      int  not null,
	deadlines  int  not null,
	mentions   int  not null,
	created_at timestamptz not null default now()
)`
	const matches = `
create table if not exists insight_matches (
	scan_id     uuid not null references insight_scans(id) on delete cascade,
	kind        text not null check (kind in ('todo','deadline','mention')),
	ordinal     int  not null,
	message_ref text not null,
	subject     text not null,
	sentence    text not null,
	primary key (scan_id, kind, ordinal)
)`
	if _, err := store.Exec(ctx, r.DB, scans); err != nil {
		return err
	}
	_, err := store.Exec(ctx, r.DB, matches)
	return err
}

// SaveScan writes the scan row and all matches in one transaction and
// returns the assigned scan id
func (r *PG) SaveScan(ctx context.Context, name string, rep domain.Report) (string, error) {
	id := newScanID()

	err := r.DB.Tx(ctx, func(q store.RowQuerier) error {
		const ins = `
insert into insight_scans (id, name, messages, skipped, truncated, todos, deadlines, mentions)
values ($1, $2, $3, $4, $5, $6, $7, $8)`
		if err := store.ExecOne(ctx, q, ins, id, name,
			rep.Messages, rep.Skipped, rep.Truncated,
			len(rep.Todos), len(rep.Deadlines), len(rep.Mentions),
		); err != nil {
			return err
		}
		if err := insertMatches(ctx, q, id, "todo", rep.Todos); err != nil {
			return err
		}
		if err := insertMatches(ctx, q, id, "deadline", rep.Deadlines); err != nil {
			return err
		}
		return insertMatches(ctx, q, id, "mention", rep.Mentions)
	})
	if err != nil {
		return "", err
	}
	return id, nil
}

func insertMatches(ctx context.Context, q store.RowQuerier, scanID, kind string, ms []domain.Match) error {
	const ins = `
insert into insight_matches (scan_id, kind, ordinal, message_ref, subject, sentence)
values ($1, $2, $3, $4, $5, $6)`
	for i, m := range ms {
		if err := store.ExecOne(ctx, q, ins, scanID, kind, i, m.Ref, m.Subject, m.Sentence); err != nil {
			return err
		}
	}
	return nil
}

// RecentScans lists persisted scans, newest first
func (r *PG) RecentScans(ctx context.Context, limit int) ([]domain.ScanSummary, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	const sql = `
select id::text, name, messages, skipped, truncated, todos, deadlines, mentions, created_at::text
from insight_scans
order by created_at desc
limit $1`
	return store.Many(ctx, r.DB, func(row store.Row) (domain.ScanSummary, error) {
		var s domain.ScanSummary
		err := row.Scan(
			&s.ID, &s.Name,
			&s.Messages, &s.Skipped, &s.Truncated,
			&s.Todos, &s.Deadlines, &s.Mentions,
			&s.CreatedAt,
		)
		return s, err
	}, sql, limit)
}
