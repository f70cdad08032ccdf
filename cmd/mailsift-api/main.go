// @title         mailsift API
// @version       0.1.0
// @description   Scans email bodies for to-dos, deadlines, and name mentions

package main

import (
	"context"
	_ "embed"
	"time"

	"mailsift/internal/core/ruleset"
	"mailsift/internal/platform/config"
	"mailsift/internal/platform/logger"
	phttp "mailsift/internal/platform/net/http"
	mw "mailsift/internal/platform/net/middleware"
	"mailsift/internal/platform/store"

	"mailsift/internal/services/insights/domain"
	inshttp "mailsift/internal/services/insights/http"
	"mailsift/internal/services/insights/repo"
	inssvc "mailsift/internal/services/insights/service"
)

//go:embed openapi.json
var openapiDoc []byte

func main() {
	root := config.New()
	apiCfg := root.Prefix("CORE_API_")
	insCfg := root.Prefix("CORE_INSIGHTS_")
	pgCfg := root.Prefix("SERVICE_PGSQL_")

	l := logger.Get()

	// persistence is optional; without a DBURL scans simply are not stored
	var rec domain.RecorderPort
	if url := pgCfg.MayString("DBURL", ""); url != "" {
		st, err := store.Open(
			context.Background(),
			store.Config{
				AppName: "mailsift-api",
				PG: store.PGConfig{
					Enabled:     true,
					URL:         url,
					MaxConns:    int32(pgCfg.MayInt("MAX_CONNS", 4)),
					SlowQueryMs: pgCfg.MayInt("SLOW_MS", 500),
					LogSQL:      pgCfg.MayBool("LOG_SQL", true),
				},
			},
			store.WithLogger(*l),
		)
		if err != nil {
			l.Panic().Err(err).Msg("store.Open failed")
		}
		defer func() {
			if err := st.Close(context.Background()); err != nil {
				l.Error().Err(err).Msg("failed to close store")
			}
		}()

		pgRepo := repo.NewPG(st.PG)
		if err := pgRepo.EnsureSchema(context.Background()); err != nil {
			l.Panic().Err(err).Msg("schema bootstrap failed")
		}
		rec = pgRepo
	} else {
		l.Info().Msg("SERVICE_PGSQL_DBURL not set, scans will not be persisted")
	}

	pack, err := ruleset.Load()
	if err != nil {
		l.Panic().Err(err).Msg("rule pack failed to compile")
	}
	svc := inssvc.New(pack, inssvc.Config{
		MaxBodyRunes: insCfg.MayInt("MAX_BODY", 100000),
		Workers:      insCfg.MayInt("WORKERS", 1),
	})

	// http server (reads CORE_API_PORT)
	srv := phttp.NewServer(apiCfg)
	r := srv.Router()
	r.Use(mw.Defaults()...)
	r.Use(mw.CORS(mw.CORSOptions{}))
	r.Use(mw.AccessLog(mw.AccessLogOptions{Slow: apiCfg.MayDuration("SLOW_REQ", time.Second)}))
	r.Use(mw.Heartbeat("/health"))

	r.Route("/api/v1", func(api phttp.Router) {
		inshttp.Register(api, svc, rec)
	})
	phttp.MountSwagger(r, openapiDoc, apiCfg.MayBool("SWAGGER", true))
	phttp.MountProfiler(r, "/debug", apiCfg.MayBool("PROFILER", false))

	if err := srv.Run(context.Background()); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
}
