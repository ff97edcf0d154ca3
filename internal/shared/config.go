package shared

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	AppEnv         string
	HTTPAddr       string
	MetricsAddr    string
	HTTPTimeout    time.Duration
	AllowedOrigins []string

	GeminiKey     string
	GeminiModels  []string
	OpenAIKey     string
	OpenAIModel   string
	OracleTimeout time.Duration

	WikiBase          string
	WikiRPS           int
	WikiRetries       int
	EnrichConcurrency int

	RedisAddr     string
	RedisDB       int
	RedisPass     string
	CacheTTL      time.Duration
	ImageCacheTTL time.Duration

	MySQLDSN    string
	SeedWorkers int
}

// Load reads the environment, after applying a .env file when one exists.
// Variables already set in the environment win over the file.
func Load() Config {
	if err := godotenv.Load(); err == nil {
		log.Debug().Msg("loaded .env")
	}
	atoi := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
			log.Warn().Str("var", k).Str("value", v).Msg("not an integer, using default")
		}
		return def
	}
	seconds := func(k string, def int) time.Duration {
		return time.Duration(atoi(k, def)) * time.Second
	}
	c := Config{
		AppEnv:         env("APP_ENV", "prod"),
		HTTPAddr:       env("HTTP_ADDR", ":5002"),
		MetricsAddr:    env("METRICS_ADDR", ""),
		HTTPTimeout:    seconds("HTTP_TIMEOUT_SECONDS", 120),
		AllowedOrigins: list(env("ALLOWED_ORIGINS", "*")),

		GeminiKey:     env("GEMINI_API_KEY", ""),
		GeminiModels:  list(env("GEMINI_MODELS", "")),
		OpenAIKey:     env("OPENAI_API_KEY", ""),
		OpenAIModel:   env("OPENAI_MODEL", "gpt-4o-mini"),
		OracleTimeout: seconds("ORACLE_TIMEOUT_SECONDS", 60),

		WikiBase:          env("WIKI_BASE_URL", "https://en.wikipedia.org/w/api.php"),
		WikiRPS:           atoi("WIKI_RPS", 10),
		WikiRetries:       atoi("WIKI_RETRIES", 0),
		EnrichConcurrency: atoi("ENRICH_CONCURRENCY", 6),

		RedisAddr:     env("REDIS_ADDR", ""),
		RedisPass:     env("REDIS_PASSWORD", ""),
		RedisDB:       atoi("REDIS_DB", 0),
		CacheTTL:      seconds("CACHE_TTL_SECONDS", 900),
		ImageCacheTTL: seconds("IMAGE_CACHE_TTL_SECONDS", 86400),

		MySQLDSN:    env("MYSQL_DSN", ""),
		SeedWorkers: atoi("SEED_WORKERS", 4),
	}
	if c.GeminiKey == "" && c.OpenAIKey == "" {
		log.Warn().Msg("no oracle key configured, itineraries will use templates")
	}
	return c
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func list(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
