package generate

import (
	"context"
	"errors"
	"testing"
	"time"

	"palpite/internal/core/filters"
	"palpite/internal/core/lotto"
)

// syntheticHistory builds n valid draws, newest first, with rotating numbers
func syntheticHistory(t *testing.T, n int) []lotto.Draw {
	t.Helper()
	draws := make([]lotto.Draw, 0, n)
	for i := n; i >= 1; i-- {
		xs := make([]int, 0, lotto.GameSize)
		for k := 0; k < lotto.GameSize; k++ {
			xs = append(xs, (i+k*2)%lotto.MaxNumber+1)
		}
		d, err := lotto.NewDraw(i, xs, "")
		if err != nil {
			t.Fatal(err)
		}
		draws = append(draws, d)
	}
	// descending contest order
	for l, r := 0, len(draws)-1; l < r; l, r = l+1, r-1 {
		draws[l], draws[r] = draws[r], draws[l]
	}
	return draws
}

func staticHistory(draws []lotto.Draw) HistoryFunc {
	return func(_ context.Context, limit int) ([]lotto.Draw, error) {
		if limit < len(draws) {
			return draws[:limit], nil
		}
		return draws, nil
	}
}

func collect(t *testing.T, ch <-chan Progress) []Progress {
	t.Helper()
	var events []Progress
	for p := range ch {
		events = append(events, p)
	}
	return events
}

func terminal(events []Progress) (Progress, bool) {
	for _, p := range events {
		if p.Event == EventFinished || p.Event == EventFailed {
			return p, true
		}
	}
	return Progress{}, false
}

func assertValidGames(t *testing.T, games []lotto.Numbers, want int) {
	t.Helper()
	if len(games) != want {
		t.Fatalf("got %d games, want %d", len(games), want)
	}
	seen := map[string]struct{}{}
	for _, g := range games {
		if _, err := lotto.NewNumbers(g); err != nil {
			t.Fatalf("structurally invalid game %v: %v", g, err)
		}
		k := g.Key()
		if _, dup := seen[k]; dup {
			t.Fatalf("duplicate game %v", g)
		}
		seen[k] = struct{}{}
	}
}

func TestFastPathNoFilters(t *testing.T) {
	historyCalled := false
	hist := func(context.Context, int) ([]lotto.Draw, error) {
		historyCalled = true
		return nil, nil
	}

	ch := Run(context.Background(), Request{Quantity: 25}, hist, NewSeededSource(1))
	events := collect(t, ch)

	if historyCalled {
		t.Fatalf("fast path must not consult history")
	}
	if events[0].Event != EventStarted || events[0].Total != 25 {
		t.Fatalf("first event = %+v, want started", events[0])
	}
	if events[1].Event != EventStep || events[1].Step != StepRandomStart {
		t.Fatalf("second event = %+v, want random_start step", events[1])
	}
	term, ok := terminal(events)
	if !ok || term.Event != EventFinished {
		t.Fatalf("expected finished terminal, got %+v", term)
	}
	assertValidGames(t, term.Games, 25)
}

func TestQuantityZeroFinishesImmediately(t *testing.T) {
	hist := func(context.Context, int) ([]lotto.Draw, error) {
		t.Error("history must not be consulted for quantity 0")
		return nil, nil
	}
	events := collect(t, Run(context.Background(), Request{Quantity: 0}, hist, NewSeededSource(1)))

	if len(events) != 2 {
		t.Fatalf("expected started+finished only, got %d events", len(events))
	}
	if events[1].Event != EventFinished || len(events[1].Games) != 0 {
		t.Fatalf("expected empty finished, got %+v", events[1])
	}
}

func TestFilteredGamesPassAllFilters(t *testing.T) {
	history := syntheticHistory(t, 50)

	fs := filters.Defaults()
	for i := range fs {
		// loose constraints so the heuristic converges without fallback
		if fs[i].Kind == filters.KindEvens || fs[i].Kind == filters.KindSum {
			fs[i].Enabled = true
			fs[i].Selected = fs[i].Full
		}
	}
	fs, _ = narrow(fs, filters.KindEvens, 5, 9)

	ch := Run(context.Background(), Request{Quantity: 10, Filters: fs}, staticHistory(history), NewSeededSource(7))
	events := collect(t, ch)

	for _, p := range events {
		if p.Event == EventStep && p.Step == StepRandomFallback {
			t.Fatalf("loose filters should not need the random fallback")
		}
	}
	term, ok := terminal(events)
	if !ok || term.Event != EventFinished {
		t.Fatalf("expected finished, got %+v", term)
	}
	assertValidGames(t, term.Games, 10)

	prev := history[0].Numbers
	for _, g := range term.Games {
		for _, f := range filters.Active(fs) {
			if !f.Matches(g, prev) {
				t.Fatalf("game %v violates filter %s", g, f.Kind)
			}
		}
	}
}

func TestRepeatsFilterWithoutHistoryFails(t *testing.T) {
	fs := filters.Defaults()
	fs, _ = enable(fs, filters.KindRepeats)

	ch := Run(context.Background(), Request{Quantity: 5, Filters: fs},
		staticHistory(nil), NewSeededSource(3))
	term, ok := terminal(collect(t, ch))
	if !ok || term.Event != EventFailed || term.Reason != ReasonNoHistory {
		t.Fatalf("expected no_history failure, got %+v", term)
	}
}

func TestHistoryErrorFailsGeneric(t *testing.T) {
	fs := filters.Defaults()
	fs, _ = enable(fs, filters.KindEvens)
	hist := func(context.Context, int) ([]lotto.Draw, error) {
		return nil, errors.New("boom")
	}
	term, ok := terminal(collect(t, Run(context.Background(), Request{Quantity: 5, Filters: fs}, hist, NewSeededSource(3))))
	if !ok || term.Event != EventFailed || term.Reason != ReasonGeneric {
		t.Fatalf("expected generic failure, got %+v", term)
	}
}

func TestImpossibleFilterFallsBack(t *testing.T) {
	history := syntheticHistory(t, 50)
	fs := filters.Defaults()
	// sum of any 15-of-25 game is at least 120, so [270,270] only matches
	// the single maximal game; asking for 5 unique games forces the cap
	fs, _ = narrow(fs, filters.KindSum, 270, 270)

	ch := Run(context.Background(), Request{Quantity: 5, Filters: fs}, staticHistory(history), NewSeededSource(9))
	events := collect(t, ch)

	sawFallback := false
	for _, p := range events {
		if p.Event == EventStep && p.Step == StepRandomFallback {
			sawFallback = true
		}
	}
	if !sawFallback {
		t.Fatalf("expected random fallback step")
	}
	term, ok := terminal(events)
	if !ok || term.Event != EventFinished {
		t.Fatalf("expected best-effort finished, got %+v", term)
	}
	assertValidGames(t, term.Games, 5)
}

func TestCancellationEmitsNoTerminal(t *testing.T) {
	history := syntheticHistory(t, 50)
	fs := filters.Defaults()
	fs, _ = narrow(fs, filters.KindSum, 270, 270)

	ctx, cancel := context.WithCancel(context.Background())
	ch := Run(ctx, Request{Quantity: 100, Filters: fs}, staticHistory(history), NewSeededSource(5))

	// consume a couple of events, then walk away
	<-ch
	<-ch
	cancel()

	done := make(chan []Progress, 1)
	go func() { done <- collect(t, ch) }()
	select {
	case rest := <-done:
		if term, ok := terminal(rest); ok {
			t.Fatalf("terminal event after cancellation: %+v", term)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("stream did not close after cancellation")
	}
}

func TestOrderingStartedFirstTerminalLast(t *testing.T) {
	events := collect(t, Run(context.Background(), Request{Quantity: 3},
		staticHistory(nil), NewSeededSource(11)))

	if events[0].Event != EventStarted {
		t.Fatalf("first event = %+v, want started", events[0])
	}
	last := events[len(events)-1]
	if last.Event != EventFinished && last.Event != EventFailed {
		t.Fatalf("last event = %+v, want terminal", last)
	}
	for _, p := range events[1 : len(events)-1] {
		if p.Event == EventFinished || p.Event == EventFailed || p.Event == EventStarted {
			t.Fatalf("unexpected %s in the middle of the stream", p.Event)
		}
	}
}

// enable switches on the filter of kind k with its default selection
func enable(fs []filters.Filter, k filters.Kind) ([]filters.Filter, bool) {
	for i := range fs {
		if fs[i].Kind == k {
			fs[i].Enabled = true
			return fs, true
		}
	}
	return fs, false
}

// narrow enables the filter of kind k and pins its selection to [min,max]
func narrow(fs []filters.Filter, k filters.Kind, min, max int) ([]filters.Filter, bool) {
	for i := range fs {
		if fs[i].Kind == k {
			fs[i].Enabled = true
			fs[i].Selected = filters.Range{Min: min, Max: max}
			return fs, true
		}
	}
	return fs, false
}
