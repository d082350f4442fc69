// Package domain defines the types and interfaces for the sync service
package domain

import (
	"context"

	"palpite/internal/core/lotto"
)

// FetcherPort is the upstream results source
type FetcherPort interface {
	// Latest fetches the most recent official draw
	Latest(ctx context.Context) (lotto.Draw, error)

	// ByContest fetches one contest by id
	ByContest(ctx context.Context, contest int) (lotto.Draw, error)
}

// Report summarizes one sync pass
type Report struct {
	// From and To bound the contests fetched this pass, zero when idle
	From int `json:"from"`
	To   int `json:"to"`

	Fetched  int `json:"fetched"`
	Inserted int `json:"inserted"`

	// Remaining counts contests still missing after a capped pass
	Remaining int `json:"remaining"`
}

// RunnerPort drives history synchronization
type RunnerPort interface {
	// RunOnce performs a single bounded backfill pass
	RunOnce(ctx context.Context) (Report, error)

	// RunLoop runs passes on the configured schedule until ctx ends
	RunLoop(ctx context.Context) error
}
