package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"palpite/internal/modkit"
	"palpite/internal/modkit/module"
	"palpite/internal/platform/config"
	"palpite/internal/platform/logger"
	"palpite/internal/platform/store"

	"palpite/internal/adapters/caixa"
	drawsmod "palpite/internal/services/draws/module"
	syncmod "palpite/internal/services/sync/module"
)

func mustSetEnv(key, val string) {
	if val != "" {
		_ = os.Setenv(key, val)
	}
}

func main() {
	// .env is optional, real deployments set the environment directly
	_ = godotenv.Load()

	root := config.New()
	dbCfg := root.Prefix("SERVICE_PGSQL_")

	l := logger.Get()

	st, err := store.Open(context.Background(), store.Config{
		PG: store.PGConfig{
			Enabled:     true,
			URL:         dbCfg.MustString("DBURL"),
			MaxConns:    int32(dbCfg.MayInt("MAX_CONNS", 2)),
			SlowQueryMs: dbCfg.MayInt("SLOW_MS", 500),
			LogSQL:      dbCfg.MayBool("LOG_SQL", false),
		},
	}, store.WithLogger(*l))
	if err != nil {
		l.Panic().Err(err).Msg("store.Open failed")
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()

	var (
		fOnce     = flag.Bool("once", false, "run a single sync pass and exit")
		fSchedule = flag.String("schedule", "", "cron spec for the sync loop (optional; can also come from env)")
		fBatch    = flag.Int("batch", 0, "max contests fetched per pass")
	)
	flag.Parse()

	// Export as env so the module can also read via FromConfig
	mustSetEnv("CORE_SYNC_SCHEDULE", *fSchedule)
	if *fBatch > 0 {
		mustSetEnv("CORE_SYNC_BATCH_LIMIT", fmt.Sprintf("%d", *fBatch))
	}

	deps := modkit.Deps{
		Cfg: root,
		PG:  st.PG,
		Log: *l,
	}

	draws := drawsmod.New(deps)
	module.Register(draws.Name(), draws.Ports())
	drawPorts := module.MustPortsOf[drawsmod.Ports](draws)

	syncOpts := syncmod.FromConfig(root)
	fetcher := caixa.NewClient(caixa.Options{
		BaseURL:    syncOpts.BaseURL,
		UserAgent:  syncOpts.UserAgent,
		MaxRetries: syncOpts.MaxRetries,
	})

	mod := syncmod.New(deps, syncmod.Deps{Fetcher: fetcher, Writer: drawPorts.Writer})
	module.Register(mod.Name(), mod.Ports())

	runner := module.MustPortsOf[syncmod.Ports](mod).Runner

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	// catch up immediately, then hand over to the schedule
	g.Go(func() error {
		_, err := runner.RunOnce(ctx)
		return err
	})
	if !*fOnce {
		g.Go(func() error { return runner.RunLoop(ctx) })
	}

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		l.Fatal().Err(err).Msg("sync worker failed")
	}
}
