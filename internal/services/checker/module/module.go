// Package module implements the checker service module
package module

import (
	stdhttp "net/http"

	"palpite/internal/modkit"
	"palpite/internal/modkit/httpkit"
	str "palpite/internal/platform/strings"

	"palpite/internal/services/checker/domain"
	checkerhttp "palpite/internal/services/checker/http"
	"palpite/internal/services/checker/service"
	drawsdom "palpite/internal/services/draws/domain"
)

// Ports exposed by the checker module
type Ports struct {
	Checker domain.CheckerPort
}

// Deps are the cross-module ports the checker module consumes
type Deps struct {
	Draws drawsdom.ReaderPort
}

// Module implements the checker service module
type Module struct {
	name   string
	prefix string
	mws    []func(stdhttp.Handler) stdhttp.Handler
	ports  Ports
}

// New constructs a new checker module
func New(_ modkit.Deps, in Deps, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("checker"),
		modkit.WithPrefix("/check"),
	}, opts...)...)

	return &Module{
		name:   b.Name,
		prefix: b.Prefix,
		mws:    b.Mw,
		ports:  Ports{Checker: service.New(in.Draws)},
	}
}

// MountRoutes implements modkit.Module
func (m *Module) MountRoutes(r httpkit.Router) {
	httpkit.MountUnder(r, m.prefix, m.mws, func(rr httpkit.Router) {
		checkerhttp.Register(rr, m.ports.Checker)
	})
}

// Name implements modkit.Module
func (m *Module) Name() string { return str.MustString(m.name, "checker") }

// Prefix implements modkit.Module
func (m *Module) Prefix() string { return str.MustPrefix(m.prefix) }

// Ports implements modkit.Module
func (m *Module) Ports() any { return m.ports }
