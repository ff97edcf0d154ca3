// internal/adapters/wikipedia/client.go
package wikipedia

import (
	"context"
	crand "crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"smart_travel/internal/adapters/observability"
	"smart_travel/internal/domain"
)

const (
	DefaultBase    = "https://en.wikipedia.org/w/api.php"
	RequestTimeout = 7 * time.Second
	thumbSize      = "800"
)

var (
	ErrNotFound    = errors.New("wikipedia: not found")
	ErrRateLimited = errors.New("wikipedia: rate limited")
)

type Options struct {
	RPS      int
	Retries  int           // extra attempts on 429/5xx; 0 skips straight to the next variant
	Cache    domain.Cache  // positive image hits only; nil disables caching
	CacheTTL time.Duration // image cache TTL
}

// Client talks to the MediaWiki action API.
type Client struct {
	base     string
	hc       *http.Client
	rl       *rate.Limiter
	retries  int
	cache    domain.Cache
	cacheTTL time.Duration
}

func New(base string, opts Options) *Client {
	if base == "" {
		base = DefaultBase
	}
	if opts.RPS <= 0 {
		opts.RPS = 10
	}
	if opts.Retries < 0 {
		opts.Retries = 0
	}
	if opts.CacheTTL <= 0 {
		opts.CacheTTL = 24 * time.Hour
	}
	return &Client{
		base:     base,
		hc:       &http.Client{Timeout: RequestTimeout},
		rl:       rate.NewLimiter(rate.Limit(opts.RPS), opts.RPS),
		retries:  opts.Retries,
		cache:    opts.Cache,
		cacheTTL: opts.CacheTTL,
	}
}

// ---- wire types ----

type page struct {
	PageID    int     `json:"pageid"`
	Title     string  `json:"title"`
	Missing   *string `json:"missing"`
	Extract   string  `json:"extract"`
	Thumbnail *struct {
		Source string `json:"source"`
	} `json:"thumbnail"`
}

func (p page) valid() bool { return p.PageID > 0 && p.Missing == nil }

func (p page) thumb() string {
	if p.Thumbnail == nil {
		return ""
	}
	return p.Thumbnail.Source
}

type queryResponse struct {
	Query struct {
		// keyed by page id; map order is irrelevant, callers iterate values
		Pages  map[string]page `json:"pages"`
		Search []struct {
			Title string `json:"title"`
		} `json:"search"`
		CategoryMembers []struct {
			NS    int    `json:"ns"`
			Title string `json:"title"`
		} `json:"categorymembers"`
	} `json:"query"`
}

// ---- queries ----

func (c *Client) pageImages(ctx context.Context, title string) (string, error) {
	q := url.Values{
		"action":      {"query"},
		"titles":      {title},
		"prop":        {"pageimages"},
		"format":      {"json"},
		"pithumbsize": {thumbSize},
		"redirects":   {"1"},
	}
	var out queryResponse
	if err := c.get(ctx, "pageimages", q, &out); err != nil {
		return "", err
	}
	for _, p := range out.Query.Pages {
		if p.valid() && p.thumb() != "" {
			return p.thumb(), nil
		}
	}
	return "", ErrNotFound
}

func (c *Client) searchTitle(ctx context.Context, text string) (string, error) {
	q := url.Values{
		"action":   {"query"},
		"list":     {"search"},
		"srsearch": {text},
		"srlimit":  {"1"},
		"format":   {"json"},
	}
	var out queryResponse
	if err := c.get(ctx, "search", q, &out); err != nil {
		return "", err
	}
	if len(out.Query.Search) == 0 {
		return "", ErrNotFound
	}
	return out.Query.Search[0].Title, nil
}

func (c *Client) categoryMembers(ctx context.Context, category string) ([]string, error) {
	q := url.Values{
		"action":  {"query"},
		"list":    {"categorymembers"},
		"cmtitle": {"Category:" + category},
		"cmlimit": {"20"},
		"cmtype":  {"page"},
		"format":  {"json"},
	}
	var out queryResponse
	if err := c.get(ctx, "categorymembers", q, &out); err != nil {
		return nil, err
	}
	titles := make([]string, 0, len(out.Query.CategoryMembers))
	for _, m := range out.Query.CategoryMembers {
		titles = append(titles, m.Title)
	}
	return titles, nil
}

// batchDetails fetches lead extract and thumbnail for up to maxBatch titles in
// one call. Pages come back keyed by id; they are returned in request order.
func (c *Client) batchDetails(ctx context.Context, titles []string) ([]page, error) {
	if len(titles) > maxBatch {
		titles = titles[:maxBatch]
	}
	q := url.Values{
		"action":      {"query"},
		"titles":      {strings.Join(titles, "|")},
		"prop":        {"pageimages|extracts"},
		"exintro":     {"1"},
		"exsentences": {"2"},
		"explaintext": {"1"},
		"format":      {"json"},
		"pithumbsize": {thumbSize},
		"redirects":   {"1"},
	}
	var out queryResponse
	if err := c.get(ctx, "extracts", q, &out); err != nil {
		return nil, err
	}
	pages := make([]page, 0, len(out.Query.Pages))
	for _, p := range out.Query.Pages {
		pages = append(pages, p)
	}
	sortByRequestOrder(pages, titles)
	return pages, nil
}

// ---- transport ----

// get performs a GET with client-side rate limiting and JSON decode into out.
// 429 and transient 5xx are retried up to c.retries times, honoring Retry-After.
func (c *Client) get(ctx context.Context, endpoint string, q url.Values, out any) error {
	u := c.base + "?" + q.Encode()

	var lastErr error
	for i := 0; i <= c.retries; i++ {
		if err := c.rl.Wait(ctx); err != nil {
			return err
		}
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
		if err != nil {
			return err
		}
		req.Header.Set("Accept", "application/json")
		req.Header.Set("User-Agent", "SmartTravelAgent/1.0 (itinerary planner; go)")

		start := time.Now()
		resp, err := c.hc.Do(req)
		if err != nil {
			observability.ObserveExternal("wikipedia", endpoint, 0, time.Since(start))
			if ctx.Err() != nil {
				return ctx.Err()
			}
			// network errors and the 7s timeout are not retried
			return err
		}
		observability.ObserveExternal("wikipedia", endpoint, resp.StatusCode, time.Since(start))

		switch resp.StatusCode {
		case http.StatusOK:
			err := json.NewDecoder(resp.Body).Decode(out)
			resp.Body.Close()
			if err != nil {
				return fmt.Errorf("wikipedia: decode %s: %w", endpoint, err)
			}
			return nil

		case http.StatusNotFound:
			resp.Body.Close()
			return ErrNotFound

		case http.StatusTooManyRequests, http.StatusInternalServerError,
			http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
			wait := retryAfter(resp)
			resp.Body.Close()
			if wait == 0 {
				wait = backoff(i)
			}
			lastErr = fmt.Errorf("remote %d", resp.StatusCode)
			if resp.StatusCode == http.StatusTooManyRequests {
				lastErr = ErrRateLimited
			}
			if i < c.retries && sleepCtx(ctx, wait) {
				continue
			}
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return lastErr

		default:
			b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
			resp.Body.Close()
			return fmt.Errorf("bad status %d: %s", resp.StatusCode, strings.TrimSpace(string(b)))
		}
	}
	return lastErr
}

// sleepCtx waits for d or returns early if ctx is done.
func sleepCtx(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return true
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}

// retryAfter parses Retry-After header (seconds or HTTP-date). Returns 0 if absent/invalid.
func retryAfter(resp *http.Response) time.Duration {
	h := resp.Header.Get("Retry-After")
	if h == "" {
		return 0
	}
	if secs, err := strconv.Atoi(strings.TrimSpace(h)); err == nil && secs >= 0 {
		return time.Duration(secs) * time.Second
	}
	if t, err := http.ParseTime(h); err == nil {
		if d := time.Until(t); d > 0 {
			return d
		}
	}
	return 0
}

// backoff returns 200ms doubling per attempt with up to +50% jitter.
func backoff(i int) time.Duration {
	base := time.Duration(1<<i) * 200 * time.Millisecond
	var b [1]byte
	if _, err := crand.Read(b[:]); err != nil {
		return base
	}
	f := float64(b[0]) / 255.0
	return base + time.Duration(0.5*f*float64(base))
}

func logVariantMiss(kind, query string, err error) {
	if errors.Is(err, ErrNotFound) {
		return
	}
	log.Warn().Err(err).Str("kind", kind).Str("query", query).Msg("wikipedia variant failed")
}
