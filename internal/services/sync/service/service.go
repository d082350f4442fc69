// Package service provides the sync service implementation
package service

import (
	"context"
	"errors"

	"github.com/robfig/cron/v3"

	"palpite/internal/core/lotto"
	perr "palpite/internal/platform/errors"
	"palpite/internal/platform/logger"
	drawsdom "palpite/internal/services/draws/domain"
	"palpite/internal/services/sync/domain"
)

// Config for the sync service
type Config struct {
	// Schedule is a cron spec for RunLoop; empty keeps the default
	Schedule string

	// BatchLimit caps contests fetched per pass; 0 keeps the default
	BatchLimit int
}

// Service implements domain.RunnerPort by pulling missing contests from
// the fetcher and writing them through the draws writer
type Service struct {
	Fetcher domain.FetcherPort
	Writer  drawsdom.WriterPort
	Cfg     Config

	log logger.Logger
}

// New constructs a sync service
func New(fetcher domain.FetcherPort, writer drawsdom.WriterPort, cfg Config) *Service {
	if cfg.Schedule == "" {
		cfg.Schedule = "*/30 * * * *"
	}
	if cfg.BatchLimit <= 0 {
		cfg.BatchLimit = 50
	}
	return &Service{Fetcher: fetcher, Writer: writer, Cfg: cfg, log: *logger.Named("sync")}
}

// RunOnce implements domain.RunnerPort
// a pass is idempotent: contests already stored are skipped by the writer
func (s *Service) RunOnce(ctx context.Context) (domain.Report, error) {
	latest, err := s.Fetcher.Latest(ctx)
	if err != nil {
		return domain.Report{}, err
	}

	have, err := s.Writer.MaxContest(ctx)
	if err != nil {
		return domain.Report{}, err
	}
	if have >= latest.Contest {
		s.log.Debug().Int("contest", have).Msg("history up to date")
		return domain.Report{}, nil
	}

	from := have + 1
	to := latest.Contest
	if to-from+1 > s.Cfg.BatchLimit {
		to = from + s.Cfg.BatchLimit - 1
	}

	batch := make([]lotto.Draw, 0, to-from+1)
	for contest := from; contest <= to; contest++ {
		if err := ctx.Err(); err != nil {
			return domain.Report{}, err
		}
		if contest == latest.Contest {
			batch = append(batch, latest)
			continue
		}
		d, err := s.Fetcher.ByContest(ctx, contest)
		if err != nil {
			// upstream occasionally has holes, a missing contest is skipped
			if perr.IsCode(err, perr.ErrorCodeNotFound) {
				s.log.Warn().Int("contest", contest).Msg("contest missing upstream")
				continue
			}
			return domain.Report{}, err
		}
		batch = append(batch, d)
	}

	inserted, err := s.Writer.UpsertBatch(ctx, batch)
	if err != nil {
		return domain.Report{}, err
	}

	rep := domain.Report{
		From:      from,
		To:        to,
		Fetched:   len(batch),
		Inserted:  inserted,
		Remaining: latest.Contest - to,
	}
	s.log.Info().
		Int("from", rep.From).
		Int("to", rep.To).
		Int("inserted", rep.Inserted).
		Int("remaining", rep.Remaining).
		Msg("sync pass done")
	return rep, nil
}

// RunLoop implements domain.RunnerPort
// overlapping passes are skipped rather than queued
func (s *Service) RunLoop(ctx context.Context) error {
	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)))
	_, err := c.AddFunc(s.Cfg.Schedule, func() {
		if _, err := s.RunOnce(ctx); err != nil && !errors.Is(err, context.Canceled) {
			s.log.Error().Err(err).Msg("sync pass failed")
		}
	})
	if err != nil {
		return perr.Wrapf(err, perr.ErrorCodeInvalidArgument, "bad sync schedule %q", s.Cfg.Schedule)
	}

	c.Start()
	<-ctx.Done()
	<-c.Stop().Done()
	return ctx.Err()
}
