package httpserver_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	httpserver "smart_travel/internal/adapters/http_server"
	"smart_travel/internal/adapters/observability"
)

func TestTimeout_WritesJSONError(t *testing.T) {
	slow := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	})
	h := httpserver.Timeout(20 * time.Millisecond)(slow)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/generate-itinerary", nil))

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("unexpected content type %q", ct)
	}
	if got := rec.Body.String(); got != `{"error":"Request timed out. Please try again."}` {
		t.Fatalf("unexpected body %q", got)
	}
}

func TestTimeout_FastHandlerKeepsItsHeaders(t *testing.T) {
	fast := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte("ok"))
	})
	rec := httptest.NewRecorder()
	httpserver.Timeout(time.Second)(fast).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	if rec.Code != http.StatusOK || rec.Header().Get("Content-Type") != "text/plain" || rec.Body.String() != "ok" {
		t.Fatalf("got %d %q %q", rec.Code, rec.Header().Get("Content-Type"), rec.Body.String())
	}
}

func TestMetrics_RouteLabels(t *testing.T) {
	reg := observability.InitRegistry()
	h := newServer(&fakePlaces{}, &fakeBuilder{})

	do(t, h, http.MethodGet, "/api/search-places?city=Jaipur", "", nil)
	do(t, h, http.MethodGet, "/search-places?city=Jaipur", "", nil)
	do(t, h, http.MethodGet, "/no-such-page/12345", "", nil)

	rec := httptest.NewRecorder()
	observability.MetricsHandler(reg).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	out := rec.Body.String()

	for _, want := range []string{
		`travel_http_requests_total{method="GET",route="/api/search-places",status="200"}`,
		`travel_http_requests_total{method="GET",route="/search-places",status="200"}`,
		`travel_http_requests_total{method="GET",route="unmatched",status="404"}`,
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing series %s", want)
		}
	}
	if strings.Contains(out, "no-such-page") {
		t.Fatalf("raw paths must not become route labels")
	}
}
