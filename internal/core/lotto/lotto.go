// Package lotto defines the primitives of a 15-of-25 lottery game:
// validated number sets, official draws, and the derived scalars the
// filter and statistics engines operate on
package lotto

import (
	"fmt"
	"sort"
)

const (
	// GameSize is the number of picks in a single game
	GameSize = 15

	// MaxNumber is the highest playable number; the board is 1..MaxNumber
	MaxNumber = 25
)

// Numbers is a sorted set of GameSize distinct numbers in [1, MaxNumber]
type Numbers []int

// NewNumbers validates and normalizes xs into a Numbers set
func NewNumbers(xs []int) (Numbers, error) {
	if len(xs) != GameSize {
		return nil, fmt.Errorf("game needs exactly %d numbers, got %d", GameSize, len(xs))
	}
	out := make(Numbers, len(xs))
	copy(out, xs)
	sort.Ints(out)
	for i, n := range out {
		if n < 1 || n > MaxNumber {
			return nil, fmt.Errorf("number %d out of range 1..%d", n, MaxNumber)
		}
		if i > 0 && out[i-1] == n {
			return nil, fmt.Errorf("duplicate number %d", n)
		}
	}
	return out, nil
}

// Contains reports whether n is part of the set
func (ns Numbers) Contains(n int) bool {
	i := sort.SearchInts(ns, n)
	return i < len(ns) && ns[i] == n
}

// Overlap counts the numbers shared between ns and other
func (ns Numbers) Overlap(other Numbers) int {
	hits := 0
	for _, n := range other {
		if ns.Contains(n) {
			hits++
		}
	}
	return hits
}

// Key returns a canonical identity string usable as a map key
func (ns Numbers) Key() string {
	b := make([]byte, 0, GameSize*3)
	for _, n := range ns {
		b = append(b, byte('0'+n/10), byte('0'+n%10), ',')
	}
	return string(b)
}

// Draw is one official lottery result
// Draws are immutable once built and ordered externally by contest descending
type Draw struct {
	Contest int     `json:"contest"`
	Numbers Numbers `json:"numbers"`
	Date    string  `json:"date,omitempty"`
}

// NewDraw validates the contest id and number set
func NewDraw(contest int, xs []int, date string) (Draw, error) {
	if contest <= 0 {
		return Draw{}, fmt.Errorf("contest must be positive, got %d", contest)
	}
	ns, err := NewNumbers(xs)
	if err != nil {
		return Draw{}, fmt.Errorf("contest %d: %w", contest, err)
	}
	return Draw{Contest: contest, Numbers: ns, Date: date}, nil
}
