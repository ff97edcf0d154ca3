package app

import (
	"fmt"
	"strconv"
	"strings"

	"smart_travel/internal/domain"
)

type dayTemplate struct {
	title string
	acts  [3]string
}

var dayTemplates = []dayTemplate{
	{"Arrival & Iconic Landmarks", [3]string{"Main Monument", "City Palace", "Old Market Square"}},
	{"Spiritual & Cultural Immersion", [3]string{"Ancient Temple", "Heritage Museum", "Local Food Walk"}},
	{"Nature & Scenic Escapes", [3]string{"Scenic Viewpoint", "Botanical Garden", "Lake & Waterfront"}},
	{"Hidden Gems & Local Life", [3]string{"Artisan Village", "Local Cooking Class", "Rooftop Sunset Cafe"}},
	{"Arts, Crafts & Shopping", [3]string{"Craft Village", "Textile Museum", "Night Bazaar"}},
	{"Adventure & Outdoors", [3]string{"Trekking Trail", "River Activity", "Hilltop Fort"}},
	{"Relax & Rejuvenate", [3]string{"Ayurvedic Spa", "Morning Yoga", "Farewell Dinner"}},
}

var (
	slotCosts     = [3]int{500, 200, 0}
	slotDurations = [3]string{"3 Hours", "2 Hours", "1.5 Hours"}
	slotTypes     = [3]domain.Category{domain.Heritage, domain.Cultural, domain.Nature}
)

const minRealPlaces = 3

// templateDay builds day number idx+1. With at least three real places the
// slots rotate through them, three per day; otherwise generic names are used.
func templateDay(dest string, idx int, budget float64, known []domain.Place) domain.Day {
	tmpl := dayTemplates[idx%len(dayTemplates)]
	low := budget < shoestringBudget
	d := domain.Day{Day: idx + 1, Title: tmpl.title, Activities: make(map[string]domain.Activity, len(domain.Slots))}

	for j, slot := range domain.Slots {
		cost := slotCosts[j]
		if low {
			cost = 0
		}
		var a domain.Activity
		if len(known) >= minRealPlaces {
			p := known[((idx*3)%len(known)+j)%len(known)]
			rating, err := strconv.ParseFloat(p.Rating, 64)
			if err != nil || rating <= 0 {
				rating = 4.5
			}
			insight := p.Description
			if low {
				insight = fmt.Sprintf("Enjoying the free sections of %s.", p.Name)
			}
			a = domain.Activity{Name: p.Name, Type: p.Category, Rating: rating, Insight: insight, Picture: p.Picture}
		} else {
			act := tmpl.acts[j]
			insight := fmt.Sprintf("Visiting %s's %s is a highlight of any trip.", dest, strings.ToLower(act))
			if low {
				insight = fmt.Sprintf("Exploring the public vibrant spaces of %s.", dest)
			}
			a = domain.Activity{Name: dest + " " + act, Type: slotTypes[j], Rating: 4.5, Insight: insight}
		}
		a.Cost = cost
		a.Duration = slotDurations[j]
		d.Activities[slot] = a
	}
	return d
}

// fallbackDays returns n template days whose template index starts at from.
func fallbackDays(dest string, from, n int, budget float64, known []domain.Place) []domain.Day {
	days := make([]domain.Day, 0, n)
	for i := from; i < from+n; i++ {
		days = append(days, templateDay(dest, i, budget, known))
	}
	return days
}

func fallbackAccommodations(dest string) []domain.Accommodation {
	return []domain.Accommodation{
		{Name: "Heritage Stay in " + dest, Price: "₹₹₹", Description: "Centrally located with excellent reviews and traditional architecture."},
		{Name: "Boutique Hotel " + dest, Price: "₹₹", Description: "Modern amenities with a touch of local culture."},
	}
}

func fallbackLocalEats() []domain.LocalEat {
	return []domain.LocalEat{
		{Name: "Famous Local Thali", Description: "A complete platter of regional delicacies."},
		{Name: "Old City Street Food", Description: "Authentic flavors from the most iconic stalls."},
	}
}

func defaultPhrases() []domain.Phrase {
	return []domain.Phrase{
		{Phrase: "Namaste", Translation: "Hello", Usage: "Universal greeting"},
		{Phrase: "Kitna hai?", Translation: "How much?", Usage: "Shopping"},
	}
}

// Fallback assembles a complete plan without the oracle. req must already be
// normalized.
func Fallback(req domain.BudgetRequest, known []domain.Place) domain.TripPlan {
	interests := InterestText(req.Interests)
	days, summary := Reconcile(fallbackDays(req.Destination, 0, req.Days, req.Budget, known), budgetInput(req, interests))
	return domain.TripPlan{
		Itinerary:      days,
		Accommodations: fallbackAccommodations(req.Destination),
		LocalEats:      fallbackLocalEats(),
		PackingList:    PackingList(req.Destination, interests),
		LocalPhrases:   defaultPhrases(),
		BudgetSummary:  summary,
	}
}

func budgetInput(req domain.BudgetRequest, interests string) BudgetInput {
	return BudgetInput{
		Budget:      req.Budget,
		Destination: req.Destination,
		Days:        req.Days,
		Adults:      req.Adults,
		Children:    req.Children,
		TravelStyle: req.TravelStyle,
		Interests:   interests,
	}
}
