package caixa

import (
	"strconv"

	"palpite/internal/core/lotto"
	perr "palpite/internal/platform/errors"
)

// result is the partial Caixa draw document with fields we use
type result struct {
	Contest  int      `json:"numero"`
	Date     string   `json:"dataApuracao"`
	Numbers  []string `json:"listaDezenas"`
	Rollover bool     `json:"acumulado"`
}

// toDraw converts the wire document into a validated draw
// Caixa serializes numbers as zero padded strings
func (r result) toDraw() (lotto.Draw, error) {
	xs := make([]int, 0, len(r.Numbers))
	for _, s := range r.Numbers {
		n, err := strconv.Atoi(s)
		if err != nil {
			return lotto.Draw{}, perr.Wrapf(err, perr.ErrorCodeJSON, "caixa dezena %q not numeric", s)
		}
		xs = append(xs, n)
	}
	d, err := lotto.NewDraw(r.Contest, xs, r.Date)
	if err != nil {
		return lotto.Draw{}, perr.Wrap(err, perr.ErrorCodeJSON, "caixa draw malformed")
	}
	return d, nil
}
