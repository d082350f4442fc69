// Package module implements the sync service module
package module

import (
	stdhttp "net/http"

	"palpite/internal/modkit"
	"palpite/internal/modkit/httpkit"
	str "palpite/internal/platform/strings"

	drawsdom "palpite/internal/services/draws/domain"
	"palpite/internal/services/sync/domain"
	synchttp "palpite/internal/services/sync/http"
	"palpite/internal/services/sync/service"
)

// Ports exposed by the sync module
type Ports struct {
	Runner domain.RunnerPort
}

// Deps are the ports and adapters the sync module consumes
type Deps struct {
	Fetcher domain.FetcherPort
	Writer  drawsdom.WriterPort
}

// Module implements the sync service module
type Module struct {
	name   string
	prefix string
	mws    []func(stdhttp.Handler) stdhttp.Handler
	ports  Ports
}

// New constructs a new sync module
func New(deps modkit.Deps, in Deps, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("sync"),
		modkit.WithPrefix("/sync"),
	}, opts...)...)

	cfg := FromConfig(deps.Cfg)
	svc := service.New(in.Fetcher, in.Writer, service.Config{
		Schedule:   cfg.Schedule,
		BatchLimit: cfg.BatchLimit,
	})

	return &Module{
		name:   b.Name,
		prefix: b.Prefix,
		mws:    b.Mw,
		ports:  Ports{Runner: svc},
	}
}

// MountRoutes implements modkit.Module
func (m *Module) MountRoutes(r httpkit.Router) {
	httpkit.MountUnder(r, m.prefix, m.mws, func(rr httpkit.Router) {
		synchttp.Register(rr, m.ports.Runner)
	})
}

// Name implements modkit.Module
func (m *Module) Name() string { return str.MustString(m.name, "sync") }

// Prefix implements modkit.Module
func (m *Module) Prefix() string { return str.MustPrefix(m.prefix) }

// Ports implements modkit.Module
func (m *Module) Ports() any { return m.ports }
