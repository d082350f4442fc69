// Package module implements the stats service module
package module

import (
	stdhttp "net/http"

	"palpite/internal/modkit"
	"palpite/internal/modkit/httpkit"
	str "palpite/internal/platform/strings"

	drawsdom "palpite/internal/services/draws/domain"
	"palpite/internal/services/stats/domain"
	statshttp "palpite/internal/services/stats/http"
	"palpite/internal/services/stats/service"
)

// Ports exposed by the stats module
type Ports struct {
	Analyzer domain.AnalyzerPort
}

// Deps are the cross-module ports the stats module consumes
type Deps struct {
	Draws drawsdom.ReaderPort
}

// Module implements the stats service module
type Module struct {
	name   string
	prefix string
	mws    []func(stdhttp.Handler) stdhttp.Handler
	ports  Ports
}

// New constructs a new stats module
func New(deps modkit.Deps, in Deps, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("stats"),
		modkit.WithPrefix("/stats"),
	}, opts...)...)

	svc, err := service.New(in.Draws, service.Config{
		CacheSize: FromConfig(deps.Cfg).CacheSize,
	})
	if err != nil {
		panic(err)
	}

	return &Module{
		name:   b.Name,
		prefix: b.Prefix,
		mws:    b.Mw,
		ports:  Ports{Analyzer: svc},
	}
}

// MountRoutes implements modkit.Module
func (m *Module) MountRoutes(r httpkit.Router) {
	httpkit.MountUnder(r, m.prefix, m.mws, func(rr httpkit.Router) {
		statshttp.Register(rr, m.ports.Analyzer)
	})
}

// Name implements modkit.Module
func (m *Module) Name() string { return str.MustString(m.name, "stats") }

// Prefix implements modkit.Module
func (m *Module) Prefix() string { return str.MustPrefix(m.prefix) }

// Ports implements modkit.Module
func (m *Module) Ports() any { return m.ports }
