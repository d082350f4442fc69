// Package repo provides the Postgres repository for saved games
package repo

import (
	"context"

	"github.com/google/uuid"

	"palpite/internal/core/lotto"
	"palpite/internal/modkit/repokit"
	perr "palpite/internal/platform/errors"
	"palpite/internal/services/games/domain"
)

type binder struct{}

// NewPG constructs a new repo binder for Postgres
func NewPG() repokit.Binder[Storage] { return binder{} }

// Bind implements repokit.Binder
func (binder) Bind(q repokit.Queryer) Storage { return &pg{q: q} }

// Storage defines the saved games repository
type Storage interface {
	Insert(ctx context.Context, g domain.SavedGame) error
	List(ctx context.Context, pinnedOnly bool) ([]domain.SavedGame, error)
	SetPinned(ctx context.Context, id uuid.UUID, pinned bool) (*domain.SavedGame, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

type pg struct{ q repokit.Queryer }

func (s *pg) Insert(ctx context.Context, g domain.SavedGame) error {
	nums := make([]int64, len(g.Numbers))
	for i, n := range g.Numbers {
		nums[i] = int64(n)
	}
	_, err := s.q.Exec(ctx, `
		INSERT INTO games (id, numbers, pinned, created_at)
		VALUES ($1, $2, $3, $4)
	`, g.ID, nums, g.Pinned, g.CreatedAt)
	return perr.FromPostgres(err, "insert game")
}

// List returns games pinned first, then newest first
func (s *pg) List(ctx context.Context, pinnedOnly bool) ([]domain.SavedGame, error) {
	sql := `
		SELECT id, numbers, pinned, created_at
		FROM games
	`
	if pinnedOnly {
		sql += " WHERE pinned"
	}
	sql += " ORDER BY pinned DESC, created_at DESC, id"

	rows, err := s.q.Query(ctx, sql)
	if err != nil {
		return nil, perr.FromPostgres(err, "list games")
	}
	defer rows.Close()

	var out []domain.SavedGame
	for rows.Next() {
		g, err := scanGame(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	return out, rows.Err()
}

// SetPinned flips the flag and returns the updated row, nil when absent
func (s *pg) SetPinned(ctx context.Context, id uuid.UUID, pinned bool) (*domain.SavedGame, error) {
	rows, err := s.q.Query(ctx, `
		UPDATE games SET pinned = $2
		WHERE id = $1
		RETURNING id, numbers, pinned, created_at
	`, id, pinned)
	if err != nil {
		return nil, perr.FromPostgres(err, "pin game")
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, rows.Err()
	}
	g, err := scanGame(rows)
	if err != nil {
		return nil, err
	}
	return &g, rows.Err()
}

// Delete removes the row, reporting whether it existed
func (s *pg) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	tag, err := s.q.Exec(ctx, `DELETE FROM games WHERE id = $1`, id)
	if err != nil {
		return false, perr.FromPostgres(err, "delete game")
	}
	return tag.RowsAffected() > 0, nil
}

type scanner interface{ Scan(dest ...any) error }

func scanGame(row scanner) (domain.SavedGame, error) {
	var (
		g    domain.SavedGame
		nums []int64
	)
	if err := row.Scan(&g.ID, &nums, &g.Pinned, &g.CreatedAt); err != nil {
		return domain.SavedGame{}, err
	}
	xs := make([]int, len(nums))
	for i, n := range nums {
		xs[i] = int(n)
	}
	ns, err := lotto.NewNumbers(xs)
	if err != nil {
		return domain.SavedGame{}, err
	}
	g.Numbers = ns
	return g, nil
}
