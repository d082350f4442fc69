// Package http provides http transport for the checker
package http

import (
	stdhttp "net/http"

	"palpite/internal/modkit/httpkit"
	"palpite/internal/services/checker/domain"
)

// Register mounts checker endpoints on the given router
func Register(r httpkit.Router, checker domain.CheckerPort) {
	h := &handlers{checker: checker}

	httpkit.PostJSON[domain.CheckInput](r, "/", h.check)
}

type handlers struct{ checker domain.CheckerPort }

// @Summary Score a game against every stored draw
// @Tags Games
// @Accept json
// @Produce json
// @Param payload body domain.CheckInput true "Game numbers"
// @Success 200 {object} check.Result "ok"
// @Router /check [post]
func (h *handlers) check(r *stdhttp.Request, in domain.CheckInput) (any, error) {
	return h.checker.Check(r.Context(), in)
}
