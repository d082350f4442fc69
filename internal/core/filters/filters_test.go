package filters

import (
	"math"
	"testing"

	"palpite/internal/core/lotto"
)

func game(t *testing.T, xs ...int) lotto.Numbers {
	t.Helper()
	ns, err := lotto.NewNumbers(xs)
	if err != nil {
		t.Fatal(err)
	}
	return ns
}

func TestDefaultsAreValid(t *testing.T) {
	fs := Defaults()
	if len(fs) != 8 {
		t.Fatalf("expected 8 default filters, got %d", len(fs))
	}
	for _, f := range fs {
		if err := f.Validate(); err != nil {
			t.Fatalf("default filter %s invalid: %v", f.Kind, err)
		}
		if f.Enabled {
			t.Fatalf("default filter %s should start disabled", f.Kind)
		}
		if f.Selected != f.Default {
			t.Fatalf("default filter %s selection not reset", f.Kind)
		}
	}
}

func TestDefaultsCallerOwned(t *testing.T) {
	a := Defaults()
	a[0].Selected = Range{Min: 1, Max: 1}
	b := Defaults()
	if b[0].Selected == a[0].Selected {
		t.Fatalf("Defaults must return an independent slice")
	}
}

func TestMatchesInclusiveBounds(t *testing.T) {
	ns := game(t, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15) // sum 120
	f := Filter{Kind: KindSum, Full: Range{120, 270}, Selected: Range{120, 120}, Enabled: true, SuccessRate: 1}
	if !f.Matches(ns, nil) {
		t.Fatalf("sum 120 must match selected [120,120]")
	}
	f.Selected = Range{121, 270}
	if f.Matches(ns, nil) {
		t.Fatalf("sum 120 must not match [121,270]")
	}
}

func TestMatchesRepeatsUsesPrev(t *testing.T) {
	ns := game(t, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15)
	prev := game(t, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 21, 22, 23, 24, 25)
	f := Filter{Kind: KindRepeats, Full: Range{0, 15}, Selected: Range{5, 5}, Enabled: true, SuccessRate: 1}
	if !f.Matches(ns, prev) {
		t.Fatalf("expected 5 repeats to match [5,5]")
	}
	if f.Matches(ns, nil) {
		t.Fatalf("no prev draw means 0 repeats, must not match [5,5]")
	}
}

func TestEstimateNoFiltersIsOne(t *testing.T) {
	if got := EstimateSuccess(nil); got != 1.0 {
		t.Fatalf("estimate([]) = %v, want 1", got)
	}
	if got := EstimateSuccess([]Filter{}); got != 1.0 {
		t.Fatalf("estimate([]) = %v, want 1", got)
	}
}

func TestEstimateBounded(t *testing.T) {
	fs := Defaults()
	for i := range fs {
		fs[i].Enabled = true
	}
	got := EstimateSuccess(Active(fs))
	if got <= 0 || got > 1 {
		t.Fatalf("estimate out of (0,1]: %v", got)
	}
}

func TestEstimateMonotoneUnderNarrowing(t *testing.T) {
	base := Filter{
		Kind: KindEvens, Full: Range{2, 12}, Selected: Range{2, 12},
		Enabled: true, SuccessRate: 0.8,
	}
	prev := EstimateSuccess([]Filter{base})
	for max := 11; max >= 2; max-- {
		f := base
		f.Selected = Range{2, max}
		got := EstimateSuccess([]Filter{f})
		if got > prev+1e-12 {
			t.Fatalf("narrowing to [2,%d] raised estimate %v -> %v", max, prev, got)
		}
		prev = got
	}
}

func TestEstimateGeometricMean(t *testing.T) {
	a := Filter{Kind: KindEvens, Full: Range{2, 12}, Selected: Range{2, 12}, Enabled: true, SuccessRate: 0.9}
	b := Filter{Kind: KindSum, Full: Range{120, 270}, Selected: Range{120, 270}, Enabled: true, SuccessRate: 0.4}
	got := EstimateSuccess([]Filter{a, b})
	want := math.Sqrt(0.9 * 0.4)
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("estimate = %v, want geometric mean %v", got, want)
	}
}

func TestClassify(t *testing.T) {
	f := Filter{Kind: KindSum, Full: Range{120, 270}, SuccessRate: 1}
	if got := f.Classify(); got != Disabled {
		t.Fatalf("disabled filter classified as %s", got)
	}
	f.Enabled = true

	f.Selected = Range{190, 200} // ~7% coverage
	if got := f.Classify(); got != VeryTight {
		t.Fatalf("coverage %.2f classified as %s, want very_tight", f.Coverage(), got)
	}
	f.Selected = f.Full
	if got := f.Classify(); got != VeryLoose {
		t.Fatalf("full coverage classified as %s, want very_loose", got)
	}
}

func TestValidate(t *testing.T) {
	f := Filter{Kind: Kind("bogus"), Full: Range{0, 1}, Selected: Range{0, 1}, SuccessRate: 0.5}
	if err := f.Validate(); err == nil {
		t.Fatalf("unknown kind must fail validation")
	}
	f = Filter{Kind: KindEvens, Full: Range{2, 12}, Selected: Range{1, 12}, SuccessRate: 0.5}
	if err := f.Validate(); err == nil {
		t.Fatalf("selection outside full range must fail validation")
	}
	f = Filter{Kind: KindEvens, Full: Range{2, 12}, Selected: Range{2, 12}, SuccessRate: 1.5}
	if err := f.Validate(); err == nil {
		t.Fatalf("success rate above 1 must fail validation")
	}
}
