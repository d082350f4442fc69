package service

import (
	"context"
	"testing"

	"palpite/internal/core/lotto"
	perr "palpite/internal/platform/errors"
	"palpite/internal/services/checker/domain"
)

type fakeReader struct{ draws []lotto.Draw }

func (f *fakeReader) History(_ context.Context, limit int) ([]lotto.Draw, error) {
	if limit > 0 && limit < len(f.draws) {
		return f.draws[:limit], nil
	}
	return f.draws, nil
}

func (f *fakeReader) LastDraw(context.Context) (*lotto.Draw, error) {
	if len(f.draws) == 0 {
		return nil, nil
	}
	return &f.draws[0], nil
}

func seq(lo int) []int {
	xs := make([]int, 15)
	for i := range xs {
		xs[i] = lo + i
	}
	return xs
}

func TestCheckRejectsBadGame(t *testing.T) {
	svc := New(&fakeReader{})
	_, err := svc.Check(context.Background(), domain.CheckInput{Numbers: []int{1, 2, 3}})
	if !perr.IsCode(err, perr.ErrorCodeInvalidArgument) {
		t.Fatalf("got %v, want invalid argument", err)
	}
}

func TestCheckEmptyHistoryIsNotFound(t *testing.T) {
	svc := New(&fakeReader{})
	_, err := svc.Check(context.Background(), domain.CheckInput{Numbers: seq(1)})
	if !perr.IsCode(err, perr.ErrorCodeNotFound) {
		t.Fatalf("got %v, want not found", err)
	}
}

func TestCheckScoresAgainstFullHistory(t *testing.T) {
	d1, err := lotto.NewDraw(100, seq(1), "")
	if err != nil {
		t.Fatal(err)
	}
	d2, err := lotto.NewDraw(99, seq(11), "")
	if err != nil {
		t.Fatal(err)
	}
	svc := New(&fakeReader{draws: []lotto.Draw{d1, d2}})

	res, err := svc.Check(context.Background(), domain.CheckInput{Numbers: seq(1)})
	if err != nil {
		t.Fatal(err)
	}
	if res.ContestsChecked != 2 || res.LastCheckedContest != 100 {
		t.Fatalf("checked %d up to %d, want 2 up to 100", res.ContestsChecked, res.LastCheckedContest)
	}
	if res.ScoreCounts[15] != 1 {
		t.Fatalf("score counts = %v, want one 15", res.ScoreCounts)
	}
	if res.LastHit.Contest != 100 || res.LastHit.Score != 15 {
		t.Fatalf("last hit = %+v, want contest 100 score 15", res.LastHit)
	}
}
