// Package service provides the stats service implementation
package service

import (
	"context"

	lru "github.com/hashicorp/golang-lru/v2"

	"palpite/internal/core/stats"
	drawsdom "palpite/internal/services/draws/domain"
	"palpite/internal/services/stats/domain"
)

// cacheKey identifies one windowed analysis
// identical keys mean identical input, so a cached report is always reusable
type cacheKey struct {
	Count  int
	Newest int
	Oldest int
}

// Config for the stats service
type Config struct {
	// CacheSize bounds the report cache; 0 keeps the default
	CacheSize int
}

// Service implements domain.AnalyzerPort over the draws reader with a
// bounded LRU report cache. Concurrent callers may compute the same key
// twice; the computation is pure so last write wins harmlessly
type Service struct {
	Draws drawsdom.ReaderPort
	cache *lru.Cache[cacheKey, stats.Report]
}

// New constructs a stats service
func New(draws drawsdom.ReaderPort, cfg Config) (*Service, error) {
	if cfg.CacheSize <= 0 {
		cfg.CacheSize = 8
	}
	cache, err := lru.New[cacheKey, stats.Report](cfg.CacheSize)
	if err != nil {
		return nil, err
	}
	return &Service{Draws: draws, cache: cache}, nil
}

// Report implements domain.AnalyzerPort
func (s *Service) Report(ctx context.Context, in domain.AnalyzeInput) (stats.Report, error) {
	draws, err := s.Draws.History(ctx, in.Window)
	if err != nil {
		return stats.Report{}, err
	}
	if len(draws) == 0 {
		// no data is a legitimate state for statistics, not an error
		return stats.Analyze(nil, 0), nil
	}

	key := cacheKey{
		Count:  len(draws),
		Newest: draws[0].Contest,
		Oldest: draws[len(draws)-1].Contest,
	}
	if rep, ok := s.cache.Get(key); ok {
		return rep, nil
	}

	rep := stats.Analyze(draws, in.Window)
	s.cache.Add(key, rep)
	return rep, nil
}

// CacheLen reports the number of cached reports, used by tests
func (s *Service) CacheLen() int { return s.cache.Len() }
