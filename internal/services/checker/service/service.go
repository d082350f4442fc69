// Package service provides the checker service implementation
package service

import (
	"context"
	"errors"

	"palpite/internal/core/check"
	"palpite/internal/core/lotto"
	perr "palpite/internal/platform/errors"
	"palpite/internal/services/checker/domain"
	drawsdom "palpite/internal/services/draws/domain"
)

// Service implements domain.CheckerPort over the draws reader
type Service struct {
	Draws drawsdom.ReaderPort
}

// New constructs a checker service
func New(draws drawsdom.ReaderPort) *Service {
	return &Service{Draws: draws}
}

// Check implements domain.CheckerPort
func (s *Service) Check(ctx context.Context, in domain.CheckInput) (check.Result, error) {
	ns, err := lotto.NewNumbers(in.Numbers)
	if err != nil {
		return check.Result{}, perr.Wrap(err, perr.ErrorCodeInvalidArgument, "invalid game")
	}

	draws, err := s.Draws.History(ctx, 0)
	if err != nil {
		return check.Result{}, err
	}

	res, err := check.Check(ns, draws)
	if errors.Is(err, check.ErrNoHistory) {
		return check.Result{}, perr.Wrap(err, perr.ErrorCodeNotFound, "no draws synced yet")
	}
	return res, err
}
