// Package http provides http transport for the generator
package http

import (
	stdhttp "net/http"

	"palpite/internal/core/generate"
	"palpite/internal/core/lotto"
	"palpite/internal/modkit/httpkit"
	perr "palpite/internal/platform/errors"
	"palpite/internal/services/generator/domain"
)

// Register mounts generator endpoints on the given router
func Register(r httpkit.Router, gen domain.GeneratorPort) {
	h := &handlers{gen: gen}

	httpkit.PostJSON[domain.GenerateInput](r, "/generate", h.generate)
	httpkit.PostJSON[domain.EstimateInput](r, "/probability", h.probability)
	httpkit.Get(r, "/filters", h.filters)
}

type handlers struct{ gen domain.GeneratorPort }

// GenerateResponse summarizes a drained generation run
type GenerateResponse struct {
	Games    []lotto.Numbers     `json:"games"`
	Steps    []generate.StepKind `json:"steps"`
	Attempts int                 `json:"attempts"`
}

// @Summary Generate unique games under the given filter set
// @Tags Games
// @Accept json
// @Produce json
// @Param payload body domain.GenerateInput true "Quantity and filters"
// @Success 200 {object} GenerateResponse "ok"
// @Router /games/generate [post]
func (h *handlers) generate(r *stdhttp.Request, in domain.GenerateInput) (any, error) {
	stream, err := h.gen.Generate(r.Context(), in)
	if err != nil {
		return nil, err
	}

	var out GenerateResponse
	finished := false
	for p := range stream {
		switch p.Event {
		case generate.EventStep:
			out.Steps = append(out.Steps, p.Step)
		case generate.EventAttempt:
			out.Attempts++
		case generate.EventFinished:
			out.Games = p.Games
			finished = true
		case generate.EventFailed:
			return nil, failure(p.Reason)
		}
	}
	if !finished {
		// the stream closed without a terminal event, so the client went away
		return nil, r.Context().Err()
	}
	return out, nil
}

// @Summary Estimate the odds that a random game passes the filter set
// @Tags Games
// @Accept json
// @Produce json
// @Param payload body domain.EstimateInput true "Filters"
// @Success 200 {object} domain.Estimate "ok"
// @Router /games/probability [post]
func (h *handlers) probability(_ *stdhttp.Request, in domain.EstimateInput) (any, error) {
	return h.gen.Estimate(in)
}

// @Summary Default filter set with full ranges and success rates
// @Tags Games
// @Produce json
// @Success 200 {array} filters.Filter "ok"
// @Router /games/filters [get]
func (h *handlers) filters(*stdhttp.Request) (any, error) {
	return h.gen.Defaults(), nil
}

func failure(reason generate.Reason) error {
	switch reason {
	case generate.ReasonNoHistory:
		return perr.InvalidArgf("repeats filter needs draw history, sync first")
	default:
		return perr.Internalf("generation failed")
	}
}
