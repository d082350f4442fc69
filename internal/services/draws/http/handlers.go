// Package http provides http transport for draws
package http

import (
	stdhttp "net/http"

	"palpite/internal/modkit/httpkit"
	perr "palpite/internal/platform/errors"
	"palpite/internal/services/draws/domain"
)

// ListInput bounds a history read
type ListInput struct {
	Limit int `json:"limit" validate:"omitempty,min=1,max=5000"`
}

// Register mounts draws endpoints on the given router
func Register(r httpkit.Router, reader domain.ReaderPort) {
	h := &handlers{reader: reader}

	httpkit.PostJSON[ListInput](r, "/list", h.list)
	httpkit.Get(r, "/latest", h.latest)
}

type handlers struct{ reader domain.ReaderPort }

// @Summary List draw history, newest first
// @Tags Draws
// @Accept json
// @Produce json
// @Param payload body ListInput true "Query"
// @Success 200 {array} lotto.Draw "ok"
// @Router /draws/list [post]
func (h *handlers) list(r *stdhttp.Request, in ListInput) (any, error) {
	return h.reader.History(r.Context(), in.Limit)
}

// @Summary Most recent official draw
// @Tags Draws
// @Produce json
// @Success 200 {object} lotto.Draw "ok"
// @Router /draws/latest [get]
func (h *handlers) latest(r *stdhttp.Request) (any, error) {
	d, err := h.reader.LastDraw(r.Context())
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, perr.Newf(perr.ErrorCodeNotFound, "no draws synced yet")
	}
	return d, nil
}
