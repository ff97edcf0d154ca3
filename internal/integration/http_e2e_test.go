package integration

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	server "smart_travel/internal/adapters/http_server"
	"smart_travel/internal/adapters/memcache"
	"smart_travel/internal/adapters/oracle"
	"smart_travel/internal/adapters/wikipedia"
	"smart_travel/internal/app"
	"smart_travel/internal/catalog"
	"smart_travel/internal/domain"
)

// ---------- upstream stand-ins ----------

// wikiStub knows thumbnails for a few titles and nothing else.
func wikiStub(thumbs map[string]string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		pages := map[string]any{}
		query := map[string]any{"pages": pages}
		switch q.Get("list") {
		case "search":
			query["search"] = []any{}
		case "categorymembers":
			query["categorymembers"] = []any{}
		default:
			for i, title := range strings.Split(q.Get("titles"), "|") {
				if src, ok := thumbs[title]; ok {
					pages[fmt.Sprint(100+i)] = map[string]any{"pageid": 100 + i, "title": title, "thumbnail": map[string]any{"source": src}}
					continue
				}
				pages[fmt.Sprintf("-%d", i+1)] = map[string]any{"title": title, "missing": ""}
			}
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"query": query})
	}
}

// scriptedModel answers itinerary prompts with a fenced plan and fails
// everything else.
type scriptedModel struct {
	mu      sync.Mutex
	plan    string
	prompts []string
}

func (m *scriptedModel) Name() string { return "scripted" }

func (m *scriptedModel) Generate(_ context.Context, prompt string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.prompts = append(m.prompts, prompt)
	if m.plan != "" && strings.HasPrefix(prompt, "Create a ") {
		return "Here is your plan:\n```json\n" + m.plan + "\n```\nEnjoy!", nil
	}
	return "", errors.New("model overloaded")
}

type stack struct {
	api   *httptest.Server
	model *scriptedModel
}

func newStack(t *testing.T, plan string) stack {
	t.Helper()
	wiki := httptest.NewServer(wikiStub(map[string]string{
		"Amber Fort":     "https://upload.example/amber.jpg",
		"Hawa Mahal":     "https://upload.example/hawa.jpg",
		"Rambagh Palace": "https://upload.example/rambagh.jpg",
	}))
	t.Cleanup(wiki.Close)

	cache := memcache.New(time.Minute, time.Minute)
	wc := wikipedia.New(wiki.URL, wikipedia.Options{RPS: 1000, Cache: cache, CacheTTL: time.Hour})
	model := &scriptedModel{plan: plan}
	chain := oracle.NewChain(2*time.Second, model)

	enricher := app.NewImageEnricher(wc, 4)
	places := app.NewPlaceService(catalog.Builtin(), wc, chain, enricher, cache, time.Minute)
	itinerary := app.NewItineraryService(places, chain, enricher)

	srv := server.New(server.Options{Timeout: 10 * time.Second})
	srv.MountHandlers(&server.Handlers{Places: places, Itinerary: itinerary})
	api := httptest.NewServer(srv.Mux())
	t.Cleanup(api.Close)
	return stack{api: api, model: model}
}

func postJSON(t *testing.T, url, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(url, "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatalf("POST %s: %v", url, err)
	}
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func getJSON(t *testing.T, url string) *http.Response {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

// ---------- tests ----------

func TestE2E_SearchCuratedRegion(t *testing.T) {
	s := newStack(t, "")

	resp := getJSON(t, s.api.URL+"/api/search-places?city=Jaipur")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status %d", resp.StatusCode)
	}
	var places []domain.Place
	if err := json.NewDecoder(resp.Body).Decode(&places); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(places) != 8 || places[0].Name != "Amber Fort" {
		t.Fatalf("unexpected places: %+v", places)
	}
	if places[0].Image != "https://upload.example/amber.jpg" || places[0].ImageSource != domain.SourceEncyclopedia {
		t.Fatalf("Amber Fort should have its encyclopedia image: %+v", places[0].Picture)
	}
	for _, p := range places {
		if p.ImageSource == "" || p.Image == "" {
			t.Fatalf("%s not enriched", p.Name)
		}
	}
}

func TestE2E_SearchUnknownRegionFallsBackToGeneric(t *testing.T) {
	s := newStack(t, "")

	resp := getJSON(t, s.api.URL+"/search-places?city=Zorbagarh")
	var places []domain.Place
	if err := json.NewDecoder(resp.Body).Decode(&places); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(places) != 8 || places[0].Name != "Zorbagarh Fort" || places[1].Name != "Zorbagarh Palace" {
		t.Fatalf("expected generic places: %+v", places)
	}
	if len(s.model.prompts) != 1 {
		t.Fatalf("oracle should have been tried once, got %d", len(s.model.prompts))
	}
}

func TestE2E_ItineraryJaipurNoBudget(t *testing.T) {
	s := newStack(t, "")

	resp := postJSON(t, s.api.URL+"/api/generate-itinerary",
		`{"destination":"Jaipur","budget":0,"days":3,"adults":2,"children":0}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status %d", resp.StatusCode)
	}
	var plan domain.TripPlan
	if err := json.NewDecoder(resp.Body).Decode(&plan); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(plan.Itinerary) != 3 {
		t.Fatalf("expected 3 days, got %d", len(plan.Itinerary))
	}
	amber := false
	for _, d := range plan.Itinerary {
		for _, a := range d.Activities {
			amber = amber || a.Name == "Amber Fort"
			if a.ImageSource != domain.SourceEncyclopedia && a.ImageSource != domain.SourcePlaceholder {
				t.Fatalf("bad image source for %s: %q", a.Name, a.ImageSource)
			}
		}
	}
	if !amber {
		t.Fatalf("Amber Fort missing")
	}
	if plan.TotalCost != plan.EntryFees+plan.Transport+plan.FoodMisc || plan.TotalCost != 9000 {
		t.Fatalf("unexpected summary: %+v", plan.BudgetSummary)
	}
}

func TestE2E_ItineraryFromOracleIsReconciled(t *testing.T) {
	plan := `{
	  "itinerary": [
	    {"day": 1, "title": "Pink City", "activities": {
	      "morning": {"name": "Amber Fort", "cost": "₹500", "type": "Heritage", "rating": 4.8},
	      "afternoon": {"name": "Hawa Mahal", "cost": 200},
	      "evening": {"name": "Johari Bazaar", "cost": 0}
	    }}
	  ],
	  "accommodations": [{"name": "Rambagh Palace", "price": "₹₹₹₹", "description": "Former royal residence."}],
	  "totalCost": 123
	}`
	s := newStack(t, plan)

	resp := postJSON(t, s.api.URL+"/generate-itinerary", `{"destination":"Jaipur","budget":"500","days":"1","adults":"1"}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status %d", resp.StatusCode)
	}
	var got domain.TripPlan
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Itinerary[0].Title != "Pink City" {
		t.Fatalf("oracle plan not used: %+v", got.Itinerary[0])
	}
	for _, a := range got.Itinerary[0].Activities {
		if a.Cost != 0 {
			t.Fatalf("%s: expected cost 0 under a 500 budget, got %d", a.Name, a.Cost)
		}
	}
	if got.EntryFees != 0 || got.TotalCost != 500 {
		t.Fatalf("unexpected summary: %+v", got.BudgetSummary)
	}
	if got.Accommodations[0].ImageSource != domain.SourceEncyclopedia {
		t.Fatalf("accommodation not enriched: %+v", got.Accommodations[0])
	}
}
