// Package domain defines the types and interfaces for the generator service
package domain

import (
	"context"

	"palpite/internal/core/filters"
	"palpite/internal/core/generate"
)

// GenerateInput describes one generation request
type GenerateInput struct {
	Quantity int              `json:"quantity" validate:"required,min=1,max=100"`
	Filters  []filters.Filter `json:"filters" validate:"omitempty,dive"`
}

// EstimateInput carries a filter set to assess
type EstimateInput struct {
	Filters []filters.Filter `json:"filters" validate:"omitempty,dive"`
}

// FilterAssessment is the per-filter view of an estimate
type FilterAssessment struct {
	Kind            filters.Kind            `json:"kind"`
	Coverage        float64                 `json:"coverage"`
	Restrictiveness filters.Restrictiveness `json:"restrictiveness"`
}

// Estimate is the composite probability that a random game passes the
// active filters, with per-filter breakdown
type Estimate struct {
	Probability float64            `json:"probability"`
	Active      int                `json:"active"`
	Filters     []FilterAssessment `json:"filters"`
}

// GeneratorPort produces games and assesses filter sets
type GeneratorPort interface {
	// Generate starts a run and returns its progress stream; the stream is
	// closed on termination or cancellation
	Generate(ctx context.Context, in GenerateInput) (<-chan generate.Progress, error)

	// Estimate assesses a filter set without generating anything
	Estimate(in EstimateInput) (Estimate, error)

	// Defaults returns the caller-owned default filter set
	Defaults() []filters.Filter
}
