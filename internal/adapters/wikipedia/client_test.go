package wikipedia_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"smart_travel/internal/adapters/memcache"
	"smart_travel/internal/adapters/wikipedia"
	"smart_travel/internal/domain"
)

// fakeWiki answers the subset of the MediaWiki action API the client uses.
type fakeWiki struct {
	thumbs   map[string]string   // title -> thumbnail
	search   map[string]string   // query -> title
	cats     map[string][]string // category -> member titles
	extracts map[string]string   // title -> extract
	hits     int32
}

func (f *fakeWiki) handler(t *testing.T) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&f.hits, 1)
		if ua := r.Header.Get("User-Agent"); ua == "" {
			t.Errorf("missing User-Agent")
		}
		q := r.URL.Query()
		pages := map[string]any{}
		query := map[string]any{"pages": pages}

		switch {
		case q.Get("list") == "search":
			var res []map[string]string
			if title, ok := f.search[q.Get("srsearch")]; ok {
				res = append(res, map[string]string{"title": title})
			}
			query["search"] = res

		case q.Get("list") == "categorymembers":
			cat := strings.TrimPrefix(q.Get("cmtitle"), "Category:")
			var res []map[string]any
			for _, m := range f.cats[cat] {
				res = append(res, map[string]any{"ns": 0, "title": m})
			}
			query["categorymembers"] = res

		default:
			for i, title := range strings.Split(q.Get("titles"), "|") {
				thumb, hasThumb := f.thumbs[title]
				extract, hasExtract := f.extracts[title]
				if !hasThumb && !hasExtract {
					pages[fmt.Sprintf("-%d", i+1)] = map[string]any{"title": title, "missing": ""}
					continue
				}
				p := map[string]any{"pageid": 1000 - i, "title": title, "extract": extract}
				if hasThumb {
					p["thumbnail"] = map[string]any{"source": thumb}
				}
				pages[fmt.Sprint(1000-i)] = p
			}
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"query": query})
	}
}

func newClient(t *testing.T, f *fakeWiki, opts wikipedia.Options) *wikipedia.Client {
	t.Helper()
	ts := httptest.NewServer(f.handler(t))
	t.Cleanup(ts.Close)
	if opts.RPS == 0 {
		opts.RPS = 1000
	}
	return wikipedia.New(ts.URL, opts)
}

func TestLookupImage_DirectHit(t *testing.T) {
	f := &fakeWiki{thumbs: map[string]string{"Amber Fort": "https://img/amber.jpg"}}
	c := newClient(t, f, wikipedia.Options{})

	img, ok := c.LookupImage(context.Background(), "Amber Fort", "Jaipur")
	if !ok || img != "https://img/amber.jpg" {
		t.Fatalf("got %q ok=%v", img, ok)
	}
}

func TestLookupImage_SearchFallbackAndVariants(t *testing.T) {
	f := &fakeWiki{
		thumbs: map[string]string{"Hawa Mahal": "https://img/hawa.jpg"},
		search: map[string]string{"Hawa Mahal (Palace of Winds), Jaipur": "Hawa Mahal"},
	}
	c := newClient(t, f, wikipedia.Options{})

	img, ok := c.LookupImage(context.Background(), "Hawa Mahal (Palace of Winds)", "Jaipur")
	if !ok || img != "https://img/hawa.jpg" {
		t.Fatalf("got %q ok=%v", img, ok)
	}
}

func TestLookupImage_MissAndCache(t *testing.T) {
	f := &fakeWiki{thumbs: map[string]string{"Taj Mahal": "https://img/taj.jpg"}}
	cache := memcache.New(time.Minute, time.Minute)
	c := newClient(t, f, wikipedia.Options{Cache: cache, CacheTTL: time.Minute})
	ctx := context.Background()

	if _, ok := c.LookupImage(ctx, "Nowhere Special Place", "Agra"); ok {
		t.Fatalf("expected miss")
	}
	if cache.Len() != 0 {
		t.Fatalf("misses must not be cached")
	}

	if _, ok := c.LookupImage(ctx, "Taj Mahal", "Agra"); !ok {
		t.Fatalf("expected hit")
	}
	before := atomic.LoadInt32(&f.hits)
	img, ok := c.LookupImage(ctx, "  taj   mahal ", "agra")
	if !ok || img != "https://img/taj.jpg" {
		t.Fatalf("expected cached hit, got %q ok=%v", img, ok)
	}
	if atomic.LoadInt32(&f.hits) != before {
		t.Fatalf("cached lookup should not call upstream")
	}
}

func TestLookupImage_CacheIsPerRegion(t *testing.T) {
	f := &fakeWiki{thumbs: map[string]string{"Old Fort": "https://img/oldfort.jpg"}}
	cache := memcache.New(time.Minute, time.Minute)
	c := newClient(t, f, wikipedia.Options{Cache: cache, CacheTTL: time.Minute})
	ctx := context.Background()

	if _, ok := c.LookupImage(ctx, "Old Fort", "Delhi"); !ok {
		t.Fatalf("expected hit")
	}
	before := atomic.LoadInt32(&f.hits)
	if _, ok := c.LookupImage(ctx, "Old Fort", "Delhi"); !ok || atomic.LoadInt32(&f.hits) != before {
		t.Fatalf("same region should be served from cache")
	}
	if _, ok := c.LookupImage(ctx, "Old Fort", "Ahmedabad"); !ok {
		t.Fatalf("expected hit")
	}
	if atomic.LoadInt32(&f.hits) == before {
		t.Fatalf("another region must not reuse the Delhi entry")
	}
	if cache.Len() != 2 {
		t.Fatalf("expected one entry per region, got %d", cache.Len())
	}
}

func TestLookupImage_UpstreamErrorIsMiss(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer ts.Close()
	c := wikipedia.New(ts.URL, wikipedia.Options{RPS: 1000})

	if _, ok := c.LookupImage(context.Background(), "Qutub Minar", "Delhi"); ok {
		t.Fatalf("expected miss on 503")
	}
}

func TestLookupImage_RetriesTransientFailure(t *testing.T) {
	var hits int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&hits, 1) == 1 {
			w.Header().Set("Retry-After", "0")
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"query": map[string]any{"pages": map[string]any{
			"7": map[string]any{"pageid": 7, "title": "India Gate", "thumbnail": map[string]any{"source": "https://img/gate.jpg"}},
		}}})
	}))
	defer ts.Close()
	c := wikipedia.New(ts.URL, wikipedia.Options{RPS: 1000, Retries: 2})

	img, ok := c.LookupImage(context.Background(), "India Gate", "Delhi")
	if !ok || img != "https://img/gate.jpg" {
		t.Fatalf("got %q ok=%v", img, ok)
	}
	if atomic.LoadInt32(&hits) != 2 {
		t.Fatalf("expected one retry, got %d calls", hits)
	}
}

func TestLookupCategory_FirstUsableVariant(t *testing.T) {
	f := &fakeWiki{
		cats: map[string][]string{
			// only two real articles: rejected
			"Tourist_attractions_in_Udaipur": {"List of lakes in Udaipur", "Category:Forts", "Lake Pichola", "City Palace, Udaipur"},
			"Visitor_attractions_in_Udaipur": {"Lake Pichola", "City Palace, Udaipur", "Jag Mandir", "Stubby", "Bagore Ki Haveli"},
		},
		extracts: map[string]string{
			"Lake Pichola":         "Lake Pichola is an artificial fresh water lake. It was created in 1362 AD. It is named after a village.",
			"City Palace, Udaipur": "City Palace is a palace complex in Udaipur.\nIt was built over nearly 400 years.",
			"Jag Mandir":           "Jag Mandir is a palace built on an island in Lake Pichola.",
			"Stubby":               "Too short.",
			"Bagore Ki Haveli":     "A haveli on the waterfront of Lake Pichola at Gangaur Ghat.",
		},
		thumbs: map[string]string{"Jag Mandir": "https://img/jag.jpg"},
	}
	c := newClient(t, f, wikipedia.Options{})

	got := c.LookupCategory(context.Background(), "Udaipur")
	if len(got) != 4 {
		t.Fatalf("expected 4 places, got %d: %+v", len(got), got)
	}
	wantOrder := []string{"Lake Pichola", "City Palace, Udaipur", "Jag Mandir", "Bagore Ki Haveli"}
	for i, w := range wantOrder {
		if got[i].Name != w {
			t.Fatalf("position %d: want %q got %q", i, w, got[i].Name)
		}
	}
	if got[0].Category != domain.Coastal || got[3].Category != domain.Heritage {
		t.Fatalf("unexpected categories: %s %s", got[0].Category, got[3].Category)
	}
	if got[0].Description != "Lake Pichola is an artificial fresh water lake. It was created in 1362 AD." {
		t.Fatalf("description not trimmed to two sentences: %q", got[0].Description)
	}
	if got[1].Description != "City Palace is a palace complex in Udaipur. It was built over nearly 400 years." {
		t.Fatalf("newline not folded: %q", got[1].Description)
	}
	if !got[2].HasEncyclopediaImage() || got[0].Image != "" {
		t.Fatalf("thumbnail handling wrong: %+v / %+v", got[2].Picture, got[0].Picture)
	}
	for _, p := range got {
		if len(p.Rating) != 3 || p.Rating[:2] != "4." {
			t.Fatalf("rating out of range: %q", p.Rating)
		}
	}

	again := c.LookupCategory(context.Background(), "Udaipur")
	for i := range got {
		if again[i].Rating != got[i].Rating {
			t.Fatalf("rating must be stable across calls")
		}
	}
}

func TestLookupCategory_NoneFound(t *testing.T) {
	c := newClient(t, &fakeWiki{}, wikipedia.Options{})
	if got := c.LookupCategory(context.Background(), "Atlantis"); got != nil {
		t.Fatalf("expected nil, got %+v", got)
	}
	if got := c.LookupCategory(context.Background(), "  "); got != nil {
		t.Fatalf("expected nil for blank region")
	}
}

func TestLookupCategory_TooFewValid(t *testing.T) {
	f := &fakeWiki{
		cats: map[string][]string{"Tourism_in_Xyz": {"A Place", "B Place", "C Place"}},
		extracts: map[string]string{
			"A Place": "A Place is a notable landmark in Xyz.",
			"B Place": "Short.",
		},
	}
	c := newClient(t, f, wikipedia.Options{})
	if got := c.LookupCategory(context.Background(), "Xyz"); got != nil {
		t.Fatalf("expected nil when fewer than 3 survive, got %+v", got)
	}
}
