// Package domain defines the types and interfaces for the draws service
package domain

import (
	"context"

	"palpite/internal/core/lotto"
)

// ReaderPort serves draw history, newest first and deduplicated by contest
type ReaderPort interface {
	// History returns up to limit draws; limit <= 0 means all
	History(ctx context.Context, limit int) ([]lotto.Draw, error)

	// LastDraw returns the most recent draw, nil when history is empty
	LastDraw(ctx context.Context) (*lotto.Draw, error)
}

// WriterPort ingests official results
type WriterPort interface {
	// UpsertBatch writes draws idempotently, returning how many were new
	UpsertBatch(ctx context.Context, draws []lotto.Draw) (int, error)

	// MaxContest returns the highest stored contest id, 0 when empty
	MaxContest(ctx context.Context) (int, error)
}
