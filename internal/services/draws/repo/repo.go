// Package repo provides the Postgres repository for draws
package repo

import (
	"context"

	"palpite/internal/core/lotto"
	"palpite/internal/modkit/repokit"
	perr "palpite/internal/platform/errors"
)

type binder struct{}

// NewPG constructs a new repo binder for Postgres
func NewPG() repokit.Binder[Storage] { return binder{} }

// Bind implements repokit.Binder
func (binder) Bind(q repokit.Queryer) Storage { return &pg{q: q} }

// Storage defines the draws repository
type Storage interface {
	List(ctx context.Context, limit int) ([]lotto.Draw, error)
	Latest(ctx context.Context) (*lotto.Draw, error)
	UpsertBatch(ctx context.Context, draws []lotto.Draw) (int, error)
	MaxContest(ctx context.Context) (int, error)
}

type pg struct{ q repokit.Queryer }

// List returns draws newest first, bounded by limit when positive
func (s *pg) List(ctx context.Context, limit int) ([]lotto.Draw, error) {
	sql := `
		SELECT contest, numbers, COALESCE(draw_date, '')
		FROM draws
		ORDER BY contest DESC
	`
	var args []any
	if limit > 0 {
		sql += " LIMIT $1"
		args = append(args, limit)
	}

	rows, err := s.q.Query(ctx, sql, args...)
	if err != nil {
		return nil, perr.FromPostgres(err, "list draws")
	}
	defer rows.Close()

	var out []lotto.Draw
	for rows.Next() {
		d, err := scanDraw(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

// Latest returns the newest draw or nil when the table is empty
func (s *pg) Latest(ctx context.Context) (*lotto.Draw, error) {
	rows, err := s.q.Query(ctx, `
		SELECT contest, numbers, COALESCE(draw_date, '')
		FROM draws
		ORDER BY contest DESC
		LIMIT 1
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, rows.Err()
	}
	d, err := scanDraw(rows)
	if err != nil {
		return nil, err
	}
	return &d, rows.Err()
}

// UpsertBatch inserts draws, ignoring contests already present
func (s *pg) UpsertBatch(ctx context.Context, draws []lotto.Draw) (int, error) {
	inserted := 0
	for _, d := range draws {
		nums := make([]int64, len(d.Numbers))
		for i, n := range d.Numbers {
			nums[i] = int64(n)
		}
		tag, err := s.q.Exec(ctx, `
			INSERT INTO draws (contest, numbers, draw_date)
			VALUES ($1, $2, $3)
			ON CONFLICT (contest) DO NOTHING
		`, d.Contest, nums, nullable(d.Date))
		if err != nil {
			return inserted, perr.FromPostgresf(err, "upsert draw %d", d.Contest)
		}
		inserted += int(tag.RowsAffected())
	}
	return inserted, nil
}

// MaxContest returns the highest stored contest id, 0 when empty
func (s *pg) MaxContest(ctx context.Context) (int, error) {
	var max int
	if err := s.q.QueryRow(ctx, `SELECT COALESCE(MAX(contest), 0) FROM draws`).Scan(&max); err != nil {
		return 0, perr.FromPostgres(err, "max contest")
	}
	return max, nil
}

type scanner interface{ Scan(dest ...any) error }

func scanDraw(row scanner) (lotto.Draw, error) {
	var (
		contest int
		nums    []int64
		date    string
	)
	if err := row.Scan(&contest, &nums, &date); err != nil {
		return lotto.Draw{}, err
	}
	xs := make([]int, len(nums))
	for i, n := range nums {
		xs[i] = int(n)
	}
	return lotto.NewDraw(contest, xs, date)
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
