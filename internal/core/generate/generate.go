// Package generate implements the bounded heuristic search that produces
// unique valid games under an active filter set, streaming progress as a
// cold cancellable channel
package generate

import (
	"context"
	"sort"

	"palpite/internal/core/filters"
	"palpite/internal/core/lotto"
)

const (
	// HistoryWindow is how many recent draws feed pool construction
	HistoryWindow = 200

	// minHistory is the draw count below which heuristics are not trusted
	minHistory = 10

	// hotPoolSize splits the 25 numbers into 15 hot and 10 cold
	hotPoolSize = 15

	// hot picks per candidate stay inside [minHot, maxHot]
	minHot = 8
	maxHot = 13

	// batchSize is how many candidates are tried between progress
	// emissions and cancellation checks
	batchSize = 200

	// maxAttempts caps the heuristic loop regardless of wall clock
	maxAttempts = 250_000

	// randomAttemptFactor caps rejection sampling at quantity times this
	randomAttemptFactor = 20
)

// HistoryFunc lazily loads up to limit draws, newest first
// it is only invoked when at least one filter is active
type HistoryFunc func(ctx context.Context, limit int) ([]lotto.Draw, error)

// Request describes one generation run
type Request struct {
	Quantity int
	Filters  []filters.Filter
}

// Run starts a generation run and returns its progress stream. The channel
// is closed when the run terminates or the context is cancelled; after a
// cancellation no terminal event is emitted, so callers distinguish
// "cancelled" from "finished" by whether a terminal event arrived
func Run(ctx context.Context, req Request, history HistoryFunc, src Source) <-chan Progress {
	if src == nil {
		src = DefaultSource()
	}
	out := make(chan Progress)
	go func() {
		defer close(out)
		defer func() {
			// unexpected panics become a failure event, never a crash;
			// cancellation is handled by the emit path, not by panicking
			if v := recover(); v != nil {
				emit(ctx, out, Progress{Event: EventFailed, Reason: ReasonGeneric, Total: req.Quantity})
			}
		}()
		run(ctx, req, history, src, out)
	}()
	return out
}

func run(ctx context.Context, req Request, history HistoryFunc, src Source, out chan<- Progress) {
	total := req.Quantity
	if !emit(ctx, out, Progress{Event: EventStarted, Total: total}) {
		return
	}
	if total <= 0 {
		emit(ctx, out, Progress{Event: EventFinished, Total: total, Games: []lotto.Numbers{}})
		return
	}

	active := filters.Active(req.Filters)

	// fast path: nothing to validate against, never consults history
	if len(active) == 0 {
		if !emit(ctx, out, Progress{Event: EventStep, Step: StepRandomStart, Total: total}) {
			return
		}
		games, ok := randomFill(ctx, src, nil, nil, total, out)
		if !ok {
			return
		}
		finish(ctx, out, games, total)
		return
	}

	draws, err := history(ctx, HistoryWindow)
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		emit(ctx, out, Progress{Event: EventFailed, Reason: ReasonGeneric, Total: total})
		return
	}

	var lastDraw lotto.Numbers
	if len(draws) > 0 {
		lastDraw = draws[0].Numbers
	}

	// the repeats filter is meaningless without a reference draw; that is a
	// hard precondition, not a degraded mode
	if _, repeats := filters.ByKind(active, filters.KindRepeats); repeats &&
		len(draws) < minHistory && lastDraw == nil {
		emit(ctx, out, Progress{Event: EventFailed, Reason: ReasonNoHistory, Total: total})
		return
	}

	step := StepHeuristicStart
	if len(draws) < minHistory {
		step = StepRandomStart
	}
	if !emit(ctx, out, Progress{Event: EventStep, Step: step, Total: total}) {
		return
	}

	hot, cold := pools(draws, src)

	accepted := make([]lotto.Numbers, 0, total)
	seen := make(map[string]struct{}, total)
	attempts := 0
	for len(accepted) < total && attempts < maxAttempts {
		for i := 0; i < batchSize && len(accepted) < total && attempts < maxAttempts; i++ {
			attempts++
			cand := sampleHotCold(src, hot, cold)
			if !passesAll(cand, active, lastDraw) {
				continue
			}
			k := cand.Key()
			if _, dup := seen[k]; dup {
				continue
			}
			seen[k] = struct{}{}
			accepted = append(accepted, cand)
		}
		if !emit(ctx, out, Progress{Event: EventAttempt, Current: len(accepted), Total: total}) {
			return
		}
	}

	// under-production after the cap tops up with unconstrained random games;
	// topped-up games are not re-validated against the filters
	if len(accepted) < total {
		if !emit(ctx, out, Progress{Event: EventStep, Step: StepRandomFallback, Total: total}) {
			return
		}
		var ok bool
		accepted, ok = randomFill(ctx, src, accepted, seen, total, out)
		if !ok {
			return
		}
	}

	if len(accepted) == 0 {
		emit(ctx, out, Progress{Event: EventFailed, Reason: ReasonGeneric, Total: total})
		return
	}
	finish(ctx, out, accepted, total)
}

// emit delivers p unless the consumer is gone; false means stop now
func emit(ctx context.Context, out chan<- Progress, p Progress) bool {
	select {
	case out <- p:
		return true
	case <-ctx.Done():
		return false
	}
}

func finish(ctx context.Context, out chan<- Progress, games []lotto.Numbers, total int) {
	emit(ctx, out, Progress{Event: EventFinished, Total: total, Current: len(games), Games: games})
}

// pools ranks 1..25 by frequency across the window, descending with ties by
// number, and splits top 15 hot from the remaining 10 cold. An empty window
// degrades to a random split
func pools(draws []lotto.Draw, src Source) (hot, cold []int) {
	all := make([]int, lotto.MaxNumber)
	for i := range all {
		all[i] = i + 1
	}
	if len(draws) == 0 {
		src.Shuffle(len(all), func(i, j int) { all[i], all[j] = all[j], all[i] })
		return all[:hotPoolSize], all[hotPoolSize:]
	}

	var freq [lotto.MaxNumber + 1]int
	for _, d := range draws {
		for _, n := range d.Numbers {
			freq[n]++
		}
	}
	sort.SliceStable(all, func(i, j int) bool { return freq[all[i]] > freq[all[j]] })
	return all[:hotPoolSize], all[hotPoolSize:]
}

// sampleHotCold unions h random hot numbers with 15-h cold ones
func sampleHotCold(src Source, hot, cold []int) lotto.Numbers {
	lo, hi := minHot, maxHot
	if len(hot) < hi {
		hi = len(hot)
	}
	if len(hot) < lo {
		lo = len(hot)
	}
	h := lo + src.IntN(hi-lo+1)
	if need := lotto.GameSize - h; need > len(cold) {
		h = lotto.GameSize - len(cold)
	}

	picked := make([]int, 0, lotto.GameSize)
	picked = append(picked, pickDistinct(src, hot, h)...)
	picked = append(picked, pickDistinct(src, cold, lotto.GameSize-h)...)
	sort.Ints(picked)
	return lotto.Numbers(picked)
}

// pickDistinct takes k distinct elements from pool via a partial shuffle
func pickDistinct(src Source, pool []int, k int) []int {
	p := make([]int, len(pool))
	copy(p, pool)
	for i := 0; i < k; i++ {
		j := i + src.IntN(len(p)-i)
		p[i], p[j] = p[j], p[i]
	}
	return p[:k]
}

func passesAll(ns lotto.Numbers, active []filters.Filter, prev lotto.Numbers) bool {
	for _, f := range active {
		if !f.Matches(ns, prev) {
			return false
		}
	}
	return true
}

// randomFill tops base up to total unique uniform games, capped at
// (total-len(base)) * randomAttemptFactor attempts. Returns ok=false only
// when the consumer cancelled
func randomFill(
	ctx context.Context,
	src Source,
	base []lotto.Numbers,
	seen map[string]struct{},
	total int,
	out chan<- Progress,
) ([]lotto.Numbers, bool) {
	if seen == nil {
		seen = make(map[string]struct{}, total)
	}
	games := base
	if games == nil {
		games = make([]lotto.Numbers, 0, total)
	}

	board := make([]int, lotto.MaxNumber)
	for i := range board {
		board[i] = i + 1
	}

	capAttempts := (total - len(games)) * randomAttemptFactor
	for attempts := 0; len(games) < total && attempts < capAttempts; attempts++ {
		cand := pickDistinct(src, board, lotto.GameSize)
		sort.Ints(cand)
		ns := lotto.Numbers(cand)

		k := ns.Key()
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		games = append(games, ns)

		if len(games)%batchSize == 0 {
			if !emit(ctx, out, Progress{Event: EventAttempt, Current: len(games), Total: total}) {
				return nil, false
			}
		}
	}
	return games, true
}
