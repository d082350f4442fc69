// Package service provides the draws service implementation
package service

import (
	"context"

	"palpite/internal/core/lotto"
	"palpite/internal/modkit/repokit"
	"palpite/internal/services/draws/repo"
)

// Config for the draws service
type Config struct {
	// HardLimit caps a single history read; 0 keeps the default
	HardLimit int
}

// Service implements domain.ReaderPort and domain.WriterPort against the PG repo
type Service struct {
	DB   repokit.TxRunner
	Repo repokit.Binder[repo.Storage]
	Cfg  Config
}

// New constructs a draws service bound to a TxRunner
func New(db repokit.TxRunner, binder repokit.Binder[repo.Storage], cfg Config) *Service {
	if cfg.HardLimit <= 0 {
		cfg.HardLimit = 5000
	}
	return &Service{DB: db, Repo: binder, Cfg: cfg}
}

// History implements domain.ReaderPort
func (s *Service) History(ctx context.Context, limit int) ([]lotto.Draw, error) {
	if limit <= 0 || limit > s.Cfg.HardLimit {
		limit = s.Cfg.HardLimit
	}
	return s.Repo.Bind(s.DB).List(ctx, limit)
}

// LastDraw implements domain.ReaderPort
func (s *Service) LastDraw(ctx context.Context) (*lotto.Draw, error) {
	return s.Repo.Bind(s.DB).Latest(ctx)
}

// UpsertBatch implements domain.WriterPort
// the batch goes through one transaction so a partial sync never surfaces
func (s *Service) UpsertBatch(ctx context.Context, draws []lotto.Draw) (int, error) {
	inserted := 0
	err := s.DB.Tx(ctx, func(q repokit.Queryer) error {
		n, err := s.Repo.Bind(q).UpsertBatch(ctx, draws)
		inserted = n
		return err
	})
	return inserted, err
}

// MaxContest implements domain.WriterPort
func (s *Service) MaxContest(ctx context.Context) (int, error) {
	return s.Repo.Bind(s.DB).MaxContest(ctx)
}
