// Package module implements the games service module
package module

import (
	stdhttp "net/http"

	"palpite/internal/modkit"
	"palpite/internal/modkit/httpkit"
	str "palpite/internal/platform/strings"

	"palpite/internal/services/games/domain"
	gameshttp "palpite/internal/services/games/http"
	"palpite/internal/services/games/repo"
	"palpite/internal/services/games/service"
)

// Ports exposed by the games module
type Ports struct {
	Games domain.GamesPort
}

// Module implements the games service module
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string
	mws    []func(stdhttp.Handler) stdhttp.Handler
	ports  Ports
}

// New constructs a new games module
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("games"),
		modkit.WithPrefix("/saved"),
	}, opts...)...)

	return &Module{
		deps:   deps,
		name:   b.Name,
		prefix: b.Prefix,
		mws:    b.Mw,
		ports:  Ports{Games: service.New(deps.PG, repo.NewPG())},
	}
}

// MountRoutes implements modkit.Module
func (m *Module) MountRoutes(r httpkit.Router) {
	httpkit.MountUnder(r, m.prefix, m.mws, func(rr httpkit.Router) {
		gameshttp.Register(rr, m.ports.Games)
	})
}

// Name implements modkit.Module
func (m *Module) Name() string { return str.MustString(m.name, "games") }

// Prefix implements modkit.Module
func (m *Module) Prefix() string { return str.MustPrefix(m.prefix) }

// Ports implements modkit.Module
func (m *Module) Ports() any { return m.ports }
