// Package service provides the generator service implementation
package service

import (
	"context"

	"palpite/internal/core/filters"
	"palpite/internal/core/generate"
	"palpite/internal/core/lotto"
	perr "palpite/internal/platform/errors"
	drawsdom "palpite/internal/services/draws/domain"
	"palpite/internal/services/generator/domain"
)

// Config for the generator service
type Config struct {
	// MaxQuantity caps games per run; 0 keeps the default
	MaxQuantity int

	// Source overrides the RNG, nil means the process-wide source
	Source generate.Source
}

// Service implements domain.GeneratorPort over the draws reader
type Service struct {
	Draws drawsdom.ReaderPort
	Cfg   Config
}

// New constructs a generator service
func New(draws drawsdom.ReaderPort, cfg Config) *Service {
	if cfg.MaxQuantity <= 0 {
		cfg.MaxQuantity = 100
	}
	return &Service{Draws: draws, Cfg: cfg}
}

// Generate implements domain.GeneratorPort
func (s *Service) Generate(ctx context.Context, in domain.GenerateInput) (<-chan generate.Progress, error) {
	if in.Quantity <= 0 || in.Quantity > s.Cfg.MaxQuantity {
		return nil, perr.InvalidArgf("quantity must be in [1,%d]", s.Cfg.MaxQuantity)
	}
	if err := validateSet(in.Filters); err != nil {
		return nil, err
	}

	req := generate.Request{Quantity: in.Quantity, Filters: in.Filters}
	return generate.Run(ctx, req, s.historyFunc(), s.Cfg.Source), nil
}

// Estimate implements domain.GeneratorPort
func (s *Service) Estimate(in domain.EstimateInput) (domain.Estimate, error) {
	if err := validateSet(in.Filters); err != nil {
		return domain.Estimate{}, err
	}

	active := filters.Active(in.Filters)
	out := domain.Estimate{
		Probability: filters.EstimateSuccess(active),
		Active:      len(active),
		Filters:     make([]domain.FilterAssessment, 0, len(in.Filters)),
	}
	for _, f := range in.Filters {
		out.Filters = append(out.Filters, domain.FilterAssessment{
			Kind:            f.Kind,
			Coverage:        f.Coverage(),
			Restrictiveness: f.Classify(),
		})
	}
	return out, nil
}

// Defaults implements domain.GeneratorPort
func (s *Service) Defaults() []filters.Filter { return filters.Defaults() }

// historyFunc adapts the draws reader into the lazy loader the engine
// expects, so filterless runs never touch storage
func (s *Service) historyFunc() generate.HistoryFunc {
	return func(ctx context.Context, limit int) ([]lotto.Draw, error) {
		return s.Draws.History(ctx, limit)
	}
}

func validateSet(fs []filters.Filter) error {
	for _, f := range fs {
		if err := f.Validate(); err != nil {
			return perr.Wrap(err, perr.ErrorCodeInvalidArgument, "invalid filter")
		}
	}
	return nil
}
