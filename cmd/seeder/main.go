package main

import (
	"context"
	"database/sql"
	"sync"
	"sync/atomic"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"smart_travel/internal/adapters/memcache"
	"smart_travel/internal/adapters/observability"
	redisad "smart_travel/internal/adapters/redis"
	"smart_travel/internal/adapters/wikipedia"
	"smart_travel/internal/catalog"
	"smart_travel/internal/domain"
	"smart_travel/internal/shared"
	mysqlrepo "smart_travel/internal/storage/mysql"
)

// The seeder stores the built-in catalog in MySQL (when MYSQL_DSN is set) and
// warms the image cache for every catalog place.
func main() {
	ctx := context.Background()
	cfg := shared.Load()

	// 1) initialize global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	cat := catalog.Builtin()
	regions := cat.Regions()
	log.Info().
		Int("regions", len(regions)).
		Int("workers", cfg.SeedWorkers).
		Msg("seeder starting")

	// 2) persist the catalog
	if cfg.MySQLDSN != "" {
		db, err := sql.Open("mysql", cfg.MySQLDSN)
		if err != nil {
			log.Fatal().Err(err).Msg("sql.Open failed")
		}
		defer db.Close()
		if err := db.PingContext(ctx); err != nil {
			log.Fatal().Err(err).Msg("db.Ping failed")
		}
		repo := mysqlrepo.New(db)
		if err := repo.Migrate(ctx); err != nil {
			log.Fatal().Err(err).Msg("migrate failed")
		}
		for _, r := range regions {
			if err := repo.UpsertRegion(ctx, r.Key, r.Places); err != nil {
				log.Fatal().Err(err).Str("region", r.Key).Msg("upsert region failed")
			}
		}
		log.Info().Int("regions", len(regions)).Msg("catalog stored")
	} else {
		log.Info().Msg("MYSQL_DSN empty, skipping catalog storage")
	}

	// 3) warm the image cache; an in-memory cache would die with the process
	if cfg.RedisAddr == "" {
		log.Info().Msg("REDIS_ADDR empty, warming an in-process cache only")
	}
	var cache domain.Cache = memcache.New(cfg.ImageCacheTTL, time.Hour)
	if cfg.RedisAddr != "" {
		rc := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
		if err := rc.Ping(ctx); err != nil {
			log.Fatal().Err(err).Msg("redis ping failed")
		}
		defer rc.Close()
		cache = rc
	}
	wiki := wikipedia.New(cfg.WikiBase, wikipedia.Options{
		RPS:      cfg.WikiRPS,
		Retries:  cfg.WikiRetries,
		Cache:    cache,
		CacheTTL: cfg.ImageCacheTTL,
	})

	workers := cfg.SeedWorkers
	if workers <= 0 {
		workers = 1
	}
	sem := semaphore.NewWeighted(int64(workers))
	var wg sync.WaitGroup
	var hits, misses int64

	for _, r := range regions {
		for _, p := range r.Places {
			region, name := r.Key, p.Name

			// acquire before launching the goroutine; release inside it
			if err := sem.Acquire(ctx, 1); err != nil {
				log.Fatal().Err(err).Msg("semaphore acquire failed")
			}

			wg.Add(1)
			go func() {
				defer wg.Done()
				defer sem.Release(1)

				if _, ok := wiki.LookupImage(ctx, name, region); !ok {
					atomic.AddInt64(&misses, 1)
					log.Debug().Str("region", region).Str("place", name).Msg("no image")
					return
				}
				atomic.AddInt64(&hits, 1)
			}()
		}
	}

	wg.Wait()
	log.Info().Int64("hits", hits).Int64("misses", misses).Msg("seeding completed")
}
