// Package check cross-references a game against the full draw history and
// aggregates its prize-tier hits
package check

import (
	"errors"

	"palpite/internal/core/lotto"
)

// MinScore is the lowest prize-eligible hit count
const MinScore = 11

// RecentWindow bounds the trailing hit sequence kept for charting
const RecentWindow = 15

// ErrNoHistory is returned when there are no draws to check against
// callers treat this as a precondition failure, not an empty result
var ErrNoHistory = errors.New("no draw history to check against")

// ContestScore pairs a contest with the hit count the game scored in it
type ContestScore struct {
	Contest int `json:"contest"`
	Score   int `json:"score"`
}

// Result is the outcome of checking one game against history
type Result struct {
	// ScoreCounts maps prize-eligible scores (>= MinScore) to occurrences
	ScoreCounts map[int]int `json:"score_counts"`

	// LastHit is the most recent prize-eligible contest, zero value if none
	LastHit ContestScore `json:"last_hit"`

	// RecentHits holds the last RecentWindow contests' scores oldest-first
	RecentHits []ContestScore `json:"recent_hits"`

	// ContestsChecked is how many draws were examined
	ContestsChecked int `json:"contests_checked"`

	// LastCheckedContest is the newest contest in history
	LastCheckedContest int `json:"last_checked_contest"`
}

// Check scores ns against every draw, newest first
func Check(ns lotto.Numbers, draws []lotto.Draw) (Result, error) {
	if len(draws) == 0 {
		return Result{}, ErrNoHistory
	}

	res := Result{
		ScoreCounts:        map[int]int{},
		RecentHits:         make([]ContestScore, 0, RecentWindow),
		ContestsChecked:    len(draws),
		LastCheckedContest: draws[0].Contest,
	}

	for i, d := range draws {
		score := d.Numbers.Overlap(ns)
		if score >= MinScore {
			res.ScoreCounts[score]++
			if res.LastHit.Contest == 0 {
				res.LastHit = ContestScore{Contest: d.Contest, Score: score}
			}
		}
		if i < RecentWindow {
			res.RecentHits = append(res.RecentHits, ContestScore{Contest: d.Contest, Score: score})
		}
	}

	// chart order is oldest to newest
	for i, j := 0, len(res.RecentHits)-1; i < j; i, j = i+1, j-1 {
		res.RecentHits[i], res.RecentHits[j] = res.RecentHits[j], res.RecentHits[i]
	}
	return res, nil
}
