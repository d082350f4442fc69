// Package domain defines the types and interfaces for the stats service
package domain

import (
	"context"

	"palpite/internal/core/stats"
)

// AnalyzeInput selects the history window to aggregate
type AnalyzeInput struct {
	// Window is how many recent draws to analyze; 0 means all
	Window int `json:"window" validate:"omitempty,min=0,max=5000"`
}

// AnalyzerPort computes windowed statistics reports
type AnalyzerPort interface {
	Report(ctx context.Context, in AnalyzeInput) (stats.Report, error)
}
