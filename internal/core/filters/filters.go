// Package filters models the numeric constraints a user can apply to
// generated games and estimates how restrictive an active set is
package filters

import (
	"fmt"
	"math"

	"palpite/internal/core/lotto"
)

// Kind identifies the derived scalar a filter constrains
type Kind string

// Supported filter kinds
const (
	KindSum              Kind = "sum"
	KindEvens            Kind = "evens"
	KindPrimes           Kind = "primes"
	KindFrame            Kind = "frame"
	KindPortrait         Kind = "portrait"
	KindFibonacci        Kind = "fibonacci"
	KindMultiplesOfThree Kind = "multiples_of_three"
	KindRepeats          Kind = "repeats"
)

// scalarFn extracts the constrained scalar from a candidate
// prev is the numbers of the immediately preceding draw, nil when unknown
type scalarFn func(ns lotto.Numbers, prev lotto.Numbers) int

// scalars is the closed dispatch table from kind to extractor
var scalars = map[Kind]scalarFn{
	KindSum:              func(ns, _ lotto.Numbers) int { return ns.Sum() },
	KindEvens:            func(ns, _ lotto.Numbers) int { return ns.Evens() },
	KindPrimes:           func(ns, _ lotto.Numbers) int { return ns.Primes() },
	KindFrame:            func(ns, _ lotto.Numbers) int { return ns.Frame() },
	KindPortrait:         func(ns, _ lotto.Numbers) int { return ns.Portrait() },
	KindFibonacci:        func(ns, _ lotto.Numbers) int { return ns.Fibonacci() },
	KindMultiplesOfThree: func(ns, _ lotto.Numbers) int { return ns.MultiplesOfThree() },
	KindRepeats:          func(ns, prev lotto.Numbers) int { return ns.Repeats(prev) },
}

// Valid reports whether k is a known kind
func (k Kind) Valid() bool {
	_, ok := scalars[k]
	return ok
}

// Range is an inclusive integer interval
type Range struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Width is the inclusive number of values the range covers
func (r Range) Width() int { return r.Max - r.Min + 1 }

// ContainsValue reports whether v falls inside the range
func (r Range) ContainsValue(v int) bool { return v >= r.Min && v <= r.Max }

// within reports whether r is a sub-range of outer
func (r Range) within(outer Range) bool { return r.Min >= outer.Min && r.Max <= outer.Max }

// Filter is one user-configurable constraint over a derived scalar
type Filter struct {
	Kind        Kind    `json:"kind"`
	Full        Range   `json:"full"`
	Default     Range   `json:"default"`
	Selected    Range   `json:"selected"`
	Enabled     bool    `json:"enabled"`
	SuccessRate float64 `json:"success_rate"`
}

// Validate checks the structural invariants of the filter
func (f Filter) Validate() error {
	if !f.Kind.Valid() {
		return fmt.Errorf("unknown filter kind %q", f.Kind)
	}
	if f.Full.Min > f.Full.Max || f.Selected.Min > f.Selected.Max {
		return fmt.Errorf("filter %s: inverted range", f.Kind)
	}
	if !f.Selected.within(f.Full) {
		return fmt.Errorf("filter %s: selected %v outside full %v", f.Kind, f.Selected, f.Full)
	}
	if f.SuccessRate <= 0 || f.SuccessRate > 1 {
		return fmt.Errorf("filter %s: success rate %v outside (0,1]", f.Kind, f.SuccessRate)
	}
	return nil
}

// Matches reports whether the candidate's scalar falls inside the selected
// range, bounds inclusive
func (f Filter) Matches(ns lotto.Numbers, prev lotto.Numbers) bool {
	fn, ok := scalars[f.Kind]
	if !ok {
		return false
	}
	return f.Selected.ContainsValue(fn(ns, prev))
}

// Coverage is the fraction of the full range the selection covers, in (0,1]
func (f Filter) Coverage() float64 {
	if f.Full.Width() <= 0 {
		return 1
	}
	return float64(f.Selected.Width()) / float64(f.Full.Width())
}

// Active reports whether the filter participates in generation
func (f Filter) Active() bool { return f.Enabled }

// Active narrows fs to the enabled filters
func Active(fs []Filter) []Filter {
	out := make([]Filter, 0, len(fs))
	for _, f := range fs {
		if f.Enabled {
			out = append(out, f)
		}
	}
	return out
}

// Restrictiveness buckets a filter's coverage for display
type Restrictiveness string

// Restrictiveness buckets, from narrowest to widest selection
const (
	Disabled  Restrictiveness = "disabled"
	VeryTight Restrictiveness = "very_tight"
	Tight     Restrictiveness = "tight"
	Moderate  Restrictiveness = "moderate"
	Loose     Restrictiveness = "loose"
	VeryLoose Restrictiveness = "very_loose"
)

// Classify buckets the filter by how much of its full range is selected
func (f Filter) Classify() Restrictiveness {
	if !f.Enabled {
		return Disabled
	}
	c := f.Coverage()
	switch {
	case c < 0.15:
		return VeryTight
	case c < 0.35:
		return Tight
	case c < 0.60:
		return Moderate
	case c < 0.85:
		return Loose
	default:
		return VeryLoose
	}
}

const (
	// coverageFloor keeps a razor-thin selection from zeroing the estimate
	coverageFloor = 0.05

	strengthMin = 0.0001
	strengthMax = 1.0
)

// EstimateSuccess combines the active filters into a composite probability
// that a random game satisfies all of them at once
//
// Strengths multiply conjunctively, so they are combined by geometric mean
// rather than arithmetic: one very restrictive filter should drag the
// estimate down more than averaging would allow. No filters means 1.0
func EstimateSuccess(active []Filter) float64 {
	if len(active) == 0 {
		return 1.0
	}
	logSum := 0.0
	for _, f := range active {
		strength := f.SuccessRate * math.Max(f.Coverage(), coverageFloor)
		strength = math.Min(math.Max(strength, strengthMin), strengthMax)
		logSum += math.Log(strength)
	}
	est := math.Exp(logSum / float64(len(active)))
	return math.Min(math.Max(est, 0), 1)
}
