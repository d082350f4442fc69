// Package http provides http transport for saved games
package http

import (
	stdhttp "net/http"

	"palpite/internal/modkit/httpkit"
	"palpite/internal/services/games/domain"
)

// Register mounts saved games endpoints on the given router
func Register(r httpkit.Router, games domain.GamesPort) {
	h := &handlers{games: games}

	httpkit.PostJSON[domain.SaveInput](r, "/add", h.add)
	httpkit.PostJSON[domain.ListInput](r, "/list", h.list)
	httpkit.PostJSON[domain.PinInput](r, "/pin", h.pin)
	httpkit.PostJSON[domain.DeleteInput](r, "/delete", h.delete)
}

type handlers struct{ games domain.GamesPort }

// @Summary Keep a batch of games
// @Tags Saved
// @Accept json
// @Produce json
// @Param payload body domain.SaveInput true "Games"
// @Success 200 {array} domain.SavedGame "ok"
// @Router /saved/add [post]
func (h *handlers) add(r *stdhttp.Request, in domain.SaveInput) (any, error) {
	return h.games.Save(r.Context(), in)
}

// @Summary List kept games, pinned first then newest
// @Tags Saved
// @Accept json
// @Produce json
// @Param payload body domain.ListInput true "Scope"
// @Success 200 {array} domain.SavedGame "ok"
// @Router /saved/list [post]
func (h *handlers) list(r *stdhttp.Request, in domain.ListInput) (any, error) {
	return h.games.List(r.Context(), in)
}

// @Summary Pin or unpin one kept game
// @Tags Saved
// @Accept json
// @Produce json
// @Param payload body domain.PinInput true "Game id and flag"
// @Success 200 {object} domain.SavedGame "ok"
// @Router /saved/pin [post]
func (h *handlers) pin(r *stdhttp.Request, in domain.PinInput) (any, error) {
	return h.games.SetPinned(r.Context(), in)
}

// @Summary Remove one kept game
// @Tags Saved
// @Accept json
// @Produce json
// @Param payload body domain.DeleteInput true "Game id"
// @Success 200 {object} map[string]bool "ok"
// @Router /saved/delete [post]
func (h *handlers) delete(r *stdhttp.Request, in domain.DeleteInput) (any, error) {
	if err := h.games.Delete(r.Context(), in); err != nil {
		return nil, err
	}
	return map[string]bool{"deleted": true}, nil
}
