package filters

// Default ranges and historical success rates per filter
// Ranges follow the 15-of-25 board: 12 even numbers, 9 primes, a 16-cell
// frame with a 9-cell portrait, 7 fibonacci members, and 8 multiples of 3.
// Success rates are long-run observed pass frequencies for the default
// selection, used only by the composite estimate
var defaults = []Filter{
	{
		Kind:        KindSum,
		Full:        Range{Min: 120, Max: 270},
		Default:     Range{Min: 170, Max: 220},
		SuccessRate: 0.82,
	},
	{
		Kind:        KindEvens,
		Full:        Range{Min: 2, Max: 12},
		Default:     Range{Min: 6, Max: 9},
		SuccessRate: 0.81,
	},
	{
		Kind:        KindPrimes,
		Full:        Range{Min: 0, Max: 9},
		Default:     Range{Min: 4, Max: 7},
		SuccessRate: 0.78,
	},
	{
		Kind:        KindFrame,
		Full:        Range{Min: 6, Max: 15},
		Default:     Range{Min: 8, Max: 11},
		SuccessRate: 0.79,
	},
	{
		Kind:        KindPortrait,
		Full:        Range{Min: 0, Max: 9},
		Default:     Range{Min: 4, Max: 7},
		SuccessRate: 0.79,
	},
	{
		Kind:        KindFibonacci,
		Full:        Range{Min: 0, Max: 7},
		Default:     Range{Min: 3, Max: 6},
		SuccessRate: 0.77,
	},
	{
		Kind:        KindMultiplesOfThree,
		Full:        Range{Min: 0, Max: 8},
		Default:     Range{Min: 3, Max: 6},
		SuccessRate: 0.80,
	},
	{
		Kind:        KindRepeats,
		Full:        Range{Min: 0, Max: 15},
		Default:     Range{Min: 8, Max: 10},
		SuccessRate: 0.74,
	},
}

// Defaults returns the canonical filter list, every filter disabled with its
// selection reset to the default range. The returned slice is caller-owned
func Defaults() []Filter {
	out := make([]Filter, len(defaults))
	copy(out, defaults)
	for i := range out {
		out[i].Selected = out[i].Default
		out[i].Enabled = false
	}
	return out
}

// ByKind finds a filter by kind in fs, returning ok=false when absent
func ByKind(fs []Filter, k Kind) (Filter, bool) {
	for _, f := range fs {
		if f.Kind == k {
			return f, true
		}
	}
	return Filter{}, false
}
