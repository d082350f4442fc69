// Package module implements the draws service module
package module

import (
	stdhttp "net/http"

	"palpite/internal/modkit"
	"palpite/internal/modkit/httpkit"
	str "palpite/internal/platform/strings"

	"palpite/internal/services/draws/domain"
	drawshttp "palpite/internal/services/draws/http"
	"palpite/internal/services/draws/repo"
	"palpite/internal/services/draws/service"
)

// Ports exposed by the draws module
type Ports struct {
	Reader domain.ReaderPort
	Writer domain.WriterPort
}

// Module implements the draws service module
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string
	mws    []func(stdhttp.Handler) stdhttp.Handler
	ports  Ports
}

// New constructs a new draws module
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("draws"),
		modkit.WithPrefix("/draws"),
	}, opts...)...)

	svc := service.New(deps.PG, repo.NewPG(), service.Config{
		HardLimit: FromConfig(deps.Cfg).HardLimit,
	})

	return &Module{
		deps:   deps,
		name:   b.Name,
		prefix: b.Prefix,
		mws:    b.Mw,
		ports:  Ports{Reader: svc, Writer: svc},
	}
}

// MountRoutes implements modkit.Module
func (m *Module) MountRoutes(r httpkit.Router) {
	httpkit.MountUnder(r, m.prefix, m.mws, func(rr httpkit.Router) {
		drawshttp.Register(rr, m.ports.Reader)
	})
}

// Name implements modkit.Module
func (m *Module) Name() string { return str.MustString(m.name, "draws") }

// Prefix implements modkit.Module
func (m *Module) Prefix() string { return str.MustPrefix(m.prefix) }

// Ports implements modkit.Module
func (m *Module) Ports() any { return m.ports }
