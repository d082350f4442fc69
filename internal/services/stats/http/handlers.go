// Package http provides http transport for stats
package http

import (
	stdhttp "net/http"

	"palpite/internal/modkit/httpkit"
	"palpite/internal/services/stats/domain"
)

// Register mounts stats endpoints on the given router
func Register(r httpkit.Router, analyzer domain.AnalyzerPort) {
	h := &handlers{analyzer: analyzer}

	httpkit.PostJSON[domain.AnalyzeInput](r, "/report", h.report)
}

type handlers struct{ analyzer domain.AnalyzerPort }

// @Summary Frequency, overdue, and distribution report over a history window
// @Tags Stats
// @Accept json
// @Produce json
// @Param payload body domain.AnalyzeInput true "Window"
// @Success 200 {object} stats.Report "ok"
// @Router /stats/report [post]
func (h *handlers) report(r *stdhttp.Request, in domain.AnalyzeInput) (any, error) {
	return h.analyzer.Report(r.Context(), in)
}
