package app

import (
	"context"
	"strings"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"smart_travel/internal/domain"
)

const (
	DefaultDays        = 3
	DefaultAdults      = 1
	DefaultTravelStyle = domain.Comfort
)

type ItineraryService struct {
	places   *PlaceService
	oracle   domain.Oracle
	enricher *ImageEnricher
}

func NewItineraryService(p *PlaceService, o domain.Oracle, e *ImageEnricher) *ItineraryService {
	return &ItineraryService{places: p, oracle: o, enricher: e}
}

// NormalizeRequest applies defaults and lower bounds.
func NormalizeRequest(req domain.BudgetRequest) domain.BudgetRequest {
	req.Destination = strings.TrimSpace(req.Destination)
	switch {
	case req.Days == 0:
		req.Days = DefaultDays
	case req.Days < 0:
		req.Days = 1
	}
	if req.Adults < 1 {
		req.Adults = DefaultAdults
	}
	if req.Children < 0 {
		req.Children = 0
	}
	if req.Budget < 0 {
		req.Budget = 0
	}
	req.TravelStyle = domain.TravelStyle(strings.TrimSpace(string(req.TravelStyle)))
	switch req.TravelStyle {
	case domain.Backpacker, domain.Comfort, domain.Luxury:
	default:
		req.TravelStyle = DefaultTravelStyle
	}
	return req
}

// Build produces a complete plan with exactly req.Days days. Oracle and
// encyclopedia failures degrade to templates; only a cancelled context is
// reported as an error.
func (s *ItineraryService) Build(ctx context.Context, req domain.BudgetRequest) (domain.TripPlan, error) {
	req = NormalizeRequest(req)
	interests := InterestText(req.Interests)
	l := log.With().Str("destination", req.Destination).Int("days", req.Days).Logger()

	known := s.places.RealPlaces(ctx, req.Destination)
	if len(known) > 0 {
		l.Debug().Int("places", len(known)).Msg("real place context")
	}

	var plan domain.TripPlan
	var ok bool
	if s.oracle != nil {
		plan, ok = mapOraclePlan(s.oracle.Complete(ctx, itineraryPrompt(req, interests, known)))
	}
	if !ok {
		l.Warn().Msg("oracle itinerary unusable, using template plan")
		plan = Fallback(req, known)
	}
	plan.Itinerary = normalizeDays(plan.Itinerary, req, known)

	if err := s.enrichDays(ctx, req.Destination, plan.Itinerary); err != nil {
		return domain.TripPlan{}, err
	}

	if len(plan.Accommodations) == 0 {
		plan.Accommodations = defaultAccommodations(req.Destination)
	}
	if len(plan.LocalEats) == 0 {
		plan.LocalEats = defaultLocalEats(req.Destination)
	}
	if len(plan.LocalPhrases) == 0 {
		plan.LocalPhrases = defaultPhrases()
	}
	plan.Accommodations = s.enricher.Accommodations(ctx, req.Destination, plan.Accommodations)
	plan.LocalEats = s.enricher.LocalEats(ctx, req.Destination, plan.LocalEats)

	var summary domain.BudgetSummary
	plan.Itinerary, summary = Reconcile(plan.Itinerary, budgetInput(req, interests))
	plan.BudgetSummary = summary
	plan.PackingList = PackingList(req.Destination, interests)

	if err := ctx.Err(); err != nil {
		return domain.TripPlan{}, err
	}
	l.Info().Int("entryFees", summary.EntryFees).Int("totalCost", summary.TotalCost).Msg("itinerary built")
	return plan, nil
}

// normalizeDays pads with template days, truncates to req.Days, numbers days
// 1..N and fills any missing slot from that day's template.
func normalizeDays(days []domain.Day, req domain.BudgetRequest, known []domain.Place) []domain.Day {
	if n := len(days); n < req.Days {
		days = append(days, fallbackDays(req.Destination, n, req.Days-n, req.Budget, known)...)
	}
	days = days[:req.Days]

	out := make([]domain.Day, len(days))
	for i, d := range days {
		tmpl := templateDay(req.Destination, i, req.Budget, known)
		nd := domain.Day{Day: i + 1, Title: d.Title, Activities: make(map[string]domain.Activity, len(domain.Slots))}
		if nd.Title == "" {
			nd.Title = tmpl.Title
		}
		for _, slot := range domain.Slots {
			if a, ok := d.Activities[slot]; ok {
				nd.Activities[slot] = a
			} else {
				nd.Activities[slot] = tmpl.Activities[slot]
			}
		}
		out[i] = nd
	}
	return out
}

// enrichDays runs every day concurrently; the enricher bounds the lookups.
func (s *ItineraryService) enrichDays(ctx context.Context, dest string, days []domain.Day) error {
	g, gctx := errgroup.WithContext(ctx)
	for i := range days {
		i := i
		g.Go(func() error {
			days[i] = s.enricher.Day(gctx, dest, days[i])
			return gctx.Err()
		})
	}
	return g.Wait()
}

func defaultAccommodations(dest string) []domain.Accommodation {
	return []domain.Accommodation{
		{Name: "Top-Rated Heritage Stay", Price: "₹₹₹", Description: "A highly recommended property in the heart of " + dest + " matching your travel style."},
		{Name: "Boutique Comfort Inn", Price: "₹₹", Description: "Excellent location with modern amenities and local hospitality."},
	}
}

func defaultLocalEats(dest string) []domain.LocalEat {
	return []domain.LocalEat{
		{Name: "Signature Local Thali", Description: "Must-try authentic meal experience featuring regional specialties."},
		{Name: "Famous Street Delicacy", Description: "The most iconic quick-bite that " + dest + " is known for."},
	}
}
