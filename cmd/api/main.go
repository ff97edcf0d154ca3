package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"

	server "smart_travel/internal/adapters/http_server"
	"smart_travel/internal/adapters/memcache"
	"smart_travel/internal/adapters/observability"
	"smart_travel/internal/adapters/oracle"
	redisad "smart_travel/internal/adapters/redis"
	"smart_travel/internal/adapters/wikipedia"
	"smart_travel/internal/app"
	"smart_travel/internal/catalog"
	"smart_travel/internal/domain"
	"smart_travel/internal/shared"
	mysqlrepo "smart_travel/internal/storage/mysql"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	reg := observability.InitRegistry()
	observability.Serve(cfg.MetricsAddr, reg)

	// cache
	var cache domain.Cache
	if cfg.RedisAddr != "" {
		rc := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
		if err := rc.Ping(ctx); err != nil {
			log.Fatal().Err(err).Str("addr", cfg.RedisAddr).Msg("redis ping failed")
		}
		defer rc.Close()
		cache = rc
		log.Info().Str("addr", cfg.RedisAddr).Msg("using redis cache")
	} else {
		cache = memcache.New(cfg.CacheTTL, 10*time.Minute)
		log.Info().Msg("using in-memory cache")
	}

	// catalog, optionally overlaid from mysql
	cat := catalog.Builtin()
	if cfg.MySQLDSN != "" {
		db, err := sql.Open("mysql", cfg.MySQLDSN)
		if err != nil {
			log.Fatal().Err(err).Msg("sql.Open failed")
		}
		defer db.Close()
		regions, err := mysqlrepo.New(db).LoadRegions(ctx)
		if err != nil {
			log.Error().Err(err).Msg("load catalog from database failed, using built-in regions")
		} else {
			cat = cat.Overlay(regions)
			log.Info().Int("regions", len(regions)).Msg("catalog overlay loaded")
		}
	}

	// oracle chain
	var models []oracle.Model
	if cfg.GeminiKey != "" {
		gm, client, err := oracle.NewGemini(ctx, cfg.GeminiKey, cfg.GeminiModels)
		if err != nil {
			log.Error().Err(err).Msg("gemini unavailable")
		} else {
			defer client.Close()
			models = append(models, gm...)
		}
	}
	if cfg.OpenAIKey != "" {
		models = append(models, oracle.NewOpenAI(cfg.OpenAIKey, cfg.OpenAIModel))
	}
	var orc domain.Oracle
	if len(models) > 0 {
		orc = oracle.NewChain(cfg.OracleTimeout, models...)
	}
	log.Info().Int("models", len(models)).Msg("oracle chain ready")

	// deps
	wiki := wikipedia.New(cfg.WikiBase, wikipedia.Options{
		RPS:      cfg.WikiRPS,
		Retries:  cfg.WikiRetries,
		Cache:    cache,
		CacheTTL: cfg.ImageCacheTTL,
	})
	enricher := app.NewImageEnricher(wiki, cfg.EnrichConcurrency)
	places := app.NewPlaceService(cat, wiki, orc, enricher, cache, cfg.CacheTTL)
	itinerary := app.NewItineraryService(places, orc, enricher)

	// http
	srv := server.New(server.Options{Timeout: cfg.HTTPTimeout, AllowedOrigins: cfg.AllowedOrigins})
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(&server.Handlers{Places: places, Itinerary: itinerary})

	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux(), ReadHeaderTimeout: 10 * time.Second}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		_ = httpSrv.Shutdown(shutdownCtx)
	}()

	log.Info().Str("addr", cfg.HTTPAddr).Msg("API listening")
	if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("http server failed")
	}
	log.Info().Msg("API stopped")
}
