// Package api provides the HTTP API for the application
package api

import (
	"palpite/internal/platform/config"
	"palpite/internal/platform/logger"
	phttp "palpite/internal/platform/net/http"
	"palpite/internal/platform/store"

	"palpite/internal/modkit"
	"palpite/internal/modkit/httpkit"
	"palpite/internal/modkit/module"
	"palpite/internal/modkit/swaggerkit"

	"palpite/internal/adapters/caixa"
	metamod "palpite/internal/services/api/meta/module"
	checkermod "palpite/internal/services/checker/module"
	drawsmod "palpite/internal/services/draws/module"
	gamesmod "palpite/internal/services/games/module"
	generatormod "palpite/internal/services/generator/module"
	statsmod "palpite/internal/services/stats/module"
	syncmod "palpite/internal/services/sync/module"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Store          *store.Store
	Logger         *logger.Logger
	EnableSwagger  bool
	EnableProfiler bool
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	// shared deps for modules
	deps := modkit.Deps{
		Cfg: opt.Config,
		PG:  opt.Store.PG,
	}

	// Construct the draws module first and share its ports; every other
	// module reads history through them
	draws := drawsmod.New(deps)
	drawPorts := module.MustPortsOf[drawsmod.Ports](draws)

	syncOpts := syncmod.FromConfig(deps.Cfg)
	fetcher := caixa.NewClient(caixa.Options{
		BaseURL:    syncOpts.BaseURL,
		UserAgent:  syncOpts.UserAgent,
		MaxRetries: syncOpts.MaxRetries,
	})

	mods := []module.Module{
		metamod.New(deps),
		draws,
		statsmod.New(deps, statsmod.Deps{Draws: drawPorts.Reader}),
		generatormod.New(deps, generatormod.Deps{Draws: drawPorts.Reader}),
		checkermod.New(deps, checkermod.Deps{Draws: drawPorts.Reader}),
		gamesmod.New(deps),
		syncmod.New(deps, syncmod.Deps{Fetcher: fetcher, Writer: drawPorts.Writer}),
	}

	// versioned API with a common middleware stack
	httpkit.MountAPIV1(r, httpkit.CommonStack(), func(api httpkit.Router) {
		// Swagger + profiler
		swaggerkit.Mount(r, opt.EnableSwagger)
		phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

		for _, m := range mods {
			// register each module's ports under its own name (for cross-module lookups)
			module.Register(m.Name(), m.Ports())

			// mount module routes under its Prefix()
			m.MountRoutes(api)
		}
	})
}
