// Package http provides http transport for sync
package http

import (
	stdhttp "net/http"

	"palpite/internal/modkit/httpkit"
	"palpite/internal/services/sync/domain"
)

// Register mounts sync endpoints on the given router
func Register(r httpkit.Router, runner domain.RunnerPort) {
	h := &handlers{runner: runner}

	httpkit.Post(r, "/run", h.run)
}

type handlers struct{ runner domain.RunnerPort }

// @Summary Trigger one bounded sync pass
// @Tags Sync
// @Produce json
// @Success 200 {object} domain.Report "ok"
// @Router /sync/run [post]
func (h *handlers) run(r *stdhttp.Request) (any, error) {
	return h.runner.RunOnce(r.Context())
}
