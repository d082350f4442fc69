// Package stats computes aggregate frequency, overdue, and distribution
// reports over a window of draw history in a single pass
package stats

import (
	"sort"

	"palpite/internal/core/lotto"
)

// TopK is how many entries the frequent and overdue rankings carry
const TopK = 5

// SumBucketWidth buckets the summed-value histogram
const SumBucketWidth = 10

// Dimension names one distribution histogram
type Dimension string

// Histogram dimensions
const (
	DimEvens            Dimension = "evens"
	DimPrimes           Dimension = "primes"
	DimFrame            Dimension = "frame"
	DimPortrait         Dimension = "portrait"
	DimFibonacci        Dimension = "fibonacci"
	DimMultiplesOfThree Dimension = "multiples_of_three"
	DimSum              Dimension = "sum"
)

// NumberCount ranks a number by raw appearance count
type NumberCount struct {
	Number int `json:"number"`
	Count  int `json:"count"`
}

// NumberGap ranks a number by contests elapsed since it last appeared
// NeverSeen marks numbers absent from the whole window; they rank as the
// most overdue of all
type NumberGap struct {
	Number    int  `json:"number"`
	Gap       int  `json:"gap"`
	NeverSeen bool `json:"never_seen,omitempty"`
}

// Report is the immutable outcome of one analysis
type Report struct {
	Draws       int                       `json:"draws"`
	AverageSum  float64                   `json:"average_sum"`
	TopFrequent []NumberCount             `json:"top_frequent"`
	TopOverdue  []NumberGap               `json:"top_overdue"`
	Histograms  map[Dimension]map[int]int `json:"histograms"`
}

// Analyze computes a report over the first windowSize draws of the
// newest-first history; windowSize 0 means all draws. Empty input yields a
// zero report, not an error
func Analyze(draws []lotto.Draw, windowSize int) Report {
	if windowSize > 0 && windowSize < len(draws) {
		draws = draws[:windowSize]
	}
	rep := Report{
		Draws:       len(draws),
		TopFrequent: []NumberCount{},
		TopOverdue:  []NumberGap{},
		Histograms:  emptyHistograms(),
	}
	if len(draws) == 0 {
		return rep
	}

	var (
		freq     [lotto.MaxNumber + 1]int
		lastSeen [lotto.MaxNumber + 1]int // most recent contest, 0 = never
		sumTotal int
	)
	for _, d := range draws {
		for _, n := range d.Numbers {
			freq[n]++
			if d.Contest > lastSeen[n] {
				lastSeen[n] = d.Contest
			}
		}
		bump(rep.Histograms[DimEvens], d.Numbers.Evens())
		bump(rep.Histograms[DimPrimes], d.Numbers.Primes())
		bump(rep.Histograms[DimFrame], d.Numbers.Frame())
		bump(rep.Histograms[DimPortrait], d.Numbers.Portrait())
		bump(rep.Histograms[DimFibonacci], d.Numbers.Fibonacci())
		bump(rep.Histograms[DimMultiplesOfThree], d.Numbers.MultiplesOfThree())

		sum := d.Numbers.Sum()
		sumTotal += sum
		bump(rep.Histograms[DimSum], (sum/SumBucketWidth)*SumBucketWidth)
	}
	rep.AverageSum = float64(sumTotal) / float64(len(draws))

	newest, oldest := draws[0].Contest, draws[len(draws)-1].Contest

	counts := make([]NumberCount, 0, lotto.MaxNumber)
	gaps := make([]NumberGap, 0, lotto.MaxNumber)
	for n := 1; n <= lotto.MaxNumber; n++ {
		counts = append(counts, NumberCount{Number: n, Count: freq[n]})
		if lastSeen[n] == 0 {
			// sorts beyond any real gap inside the window
			gaps = append(gaps, NumberGap{Number: n, Gap: newest - oldest + 1, NeverSeen: true})
		} else {
			gaps = append(gaps, NumberGap{Number: n, Gap: newest - lastSeen[n]})
		}
	}

	// stable sorts over the 1..25 iteration keep ties in ascending order
	sort.SliceStable(counts, func(i, j int) bool { return counts[i].Count > counts[j].Count })
	sort.SliceStable(gaps, func(i, j int) bool { return gaps[i].Gap > gaps[j].Gap })

	rep.TopFrequent = counts[:TopK]
	rep.TopOverdue = gaps[:TopK]
	return rep
}

func emptyHistograms() map[Dimension]map[int]int {
	return map[Dimension]map[int]int{
		DimEvens:            {},
		DimPrimes:           {},
		DimFrame:            {},
		DimPortrait:         {},
		DimFibonacci:        {},
		DimMultiplesOfThree: {},
		DimSum:              {},
	}
}

// bump retains only non-zero buckets, so histograms stay sparse
func bump(h map[int]int, key int) { h[key]++ }
