// internal/adapters/http_server/handlers.go
package httpserver

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"io"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"smart_travel/internal/domain"
)

const maxBodyBytes = 64 << 10

// PlaceSearcher is satisfied by app.PlaceService.
type PlaceSearcher interface {
	Search(ctx context.Context, region string) []domain.Place
}

// ItineraryBuilder is satisfied by app.ItineraryService.
type ItineraryBuilder interface {
	Build(ctx context.Context, req domain.BudgetRequest) (domain.TripPlan, error)
}

type Handlers struct {
	Places    PlaceSearcher
	Itinerary ItineraryBuilder
}

type errorBody struct {
	Error string `json:"error"`
}

// MountHandlers registers the routes at the root and again under /api.
func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })
	routes := func(r chi.Router) {
		r.Get("/search-places", h.searchPlaces)
		r.Post("/generate-itinerary", h.generateItinerary)
	}
	routes(s.mux)
	s.mux.Route("/api", routes)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorBody{Error: msg})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("write JSON response failed")
	}
}

// calcETagAndBody marshals once and hashes once, returning both ETag and body.
func calcETagAndBody(v any) (string, []byte) {
	body, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal object for ETag/body")
		return "", nil
	}
	sum := sha1.Sum(body)
	etag := `W/"` + hex.EncodeToString(sum[:]) + `"`
	return etag, body
}

func (h *Handlers) searchPlaces(w http.ResponseWriter, r *http.Request) {
	city := strings.TrimSpace(r.URL.Query().Get("city"))
	if city == "" {
		writeError(w, http.StatusBadRequest, "City is required")
		return
	}
	places := h.Places.Search(r.Context(), city)
	if places == nil {
		places = []domain.Place{}
	}

	etag, body := calcETagAndBody(places)
	if body == nil {
		writeError(w, http.StatusInternalServerError, "Failed to search places")
		return
	}
	// If client already has this version, short-circuit.
	if inm := r.Header.Get("If-None-Match"); inm != "" && inm == etag {
		w.Header().Set("ETag", etag)
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.Header().Set("ETag", etag)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Msg("failed to write searchPlaces body")
	}
}

// itineraryRequest accepts numbers either as JSON numbers or numeric strings,
// and interests either as a list or a comma separated string.
type itineraryRequest struct {
	Destination string      `json:"destination"`
	Budget      flexNumber  `json:"budget"`
	Days        flexNumber  `json:"days"`
	Interests   flexStrings `json:"interests"`
	Adults      flexNumber  `json:"adults"`
	Children    flexNumber  `json:"children"`
	TravelStyle string      `json:"travelStyle"`
}

func (q itineraryRequest) toDomain() domain.BudgetRequest {
	return domain.BudgetRequest{
		Destination: strings.TrimSpace(q.Destination),
		Budget:      float64(q.Budget),
		Days:        q.Days.Int(),
		Interests:   q.Interests,
		Adults:      q.Adults.Int(),
		Children:    q.Children.Int(),
		TravelStyle: domain.TravelStyle(q.TravelStyle),
	}
}

func (h *Handlers) generateItinerary(w http.ResponseWriter, r *http.Request) {
	var in itineraryRequest
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	if err := dec.Decode(&in); err != nil && err != io.EOF {
		log.Warn().Err(err).Msg("bad itinerary request body")
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	req := in.toDomain()
	if req.Destination == "" {
		writeError(w, http.StatusBadRequest, "Destination is required")
		return
	}

	plan, err := h.Itinerary.Build(r.Context(), req)
	if err != nil {
		log.Error().Err(err).Str("destination", req.Destination).Msg("generate itinerary failed")
		writeError(w, http.StatusInternalServerError, "Failed to generate itinerary. Please try again.")
		return
	}
	writeJSON(w, http.StatusOK, plan)
}

// flexNumber decodes 3, 3.5, "3", "₹1,500" and null. Anything else is 0.
type flexNumber float64

func (n *flexNumber) UnmarshalJSON(b []byte) error {
	*n = 0
	s := strings.TrimSpace(string(b))
	if s == "" || s == "null" {
		return nil
	}
	if s[0] == '"' {
		var str string
		if err := json.Unmarshal(b, &str); err != nil {
			return err
		}
		s = strings.NewReplacer("₹", "", ",", "", " ", "").Replace(str)
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	*n = flexNumber(f)
	return nil
}

func (n flexNumber) Int() int { return int(math.Trunc(float64(n))) }

type flexStrings []string

func (f *flexStrings) UnmarshalJSON(b []byte) error {
	var list []string
	if err := json.Unmarshal(b, &list); err == nil {
		*f = list
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		*f = nil
		return nil
	}
	*f = strings.Split(s, ",")
	return nil
}
