// Package module implements the generator service module
package module

import (
	stdhttp "net/http"

	"palpite/internal/modkit"
	"palpite/internal/modkit/httpkit"
	str "palpite/internal/platform/strings"

	drawsdom "palpite/internal/services/draws/domain"
	"palpite/internal/services/generator/domain"
	genhttp "palpite/internal/services/generator/http"
	"palpite/internal/services/generator/service"
)

// Ports exposed by the generator module
type Ports struct {
	Generator domain.GeneratorPort
}

// Deps are the cross-module ports the generator module consumes
type Deps struct {
	Draws drawsdom.ReaderPort
}

// Module implements the generator service module
type Module struct {
	name   string
	prefix string
	mws    []func(stdhttp.Handler) stdhttp.Handler
	ports  Ports
}

// New constructs a new generator module
func New(deps modkit.Deps, in Deps, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("generator"),
		modkit.WithPrefix("/games"),
	}, opts...)...)

	svc := service.New(in.Draws, service.Config{
		MaxQuantity: FromConfig(deps.Cfg).MaxQuantity,
	})

	return &Module{
		name:   b.Name,
		prefix: b.Prefix,
		mws:    b.Mw,
		ports:  Ports{Generator: svc},
	}
}

// MountRoutes implements modkit.Module
func (m *Module) MountRoutes(r httpkit.Router) {
	httpkit.MountUnder(r, m.prefix, m.mws, func(rr httpkit.Router) {
		genhttp.Register(rr, m.ports.Generator)
	})
}

// Name implements modkit.Module
func (m *Module) Name() string { return str.MustString(m.name, "generator") }

// Prefix implements modkit.Module
func (m *Module) Prefix() string { return str.MustPrefix(m.prefix) }

// Ports implements modkit.Module
func (m *Module) Ports() any { return m.ports }
