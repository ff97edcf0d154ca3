package app

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"smart_travel/internal/domain"
)

const (
	defaultInterests = "Heritage, Culture"
	defaultFocus     = "a balanced mix of heritage, culture, and local experiences"

	shoestringBudget = 2000
	tinyBudget       = 1000
	tinyBudgetMaxFee = 50
	flatDailyRate    = 1500 // per traveler, used when no budget is given
	transportShare   = 0.4
	surplusFactor    = 1.5
)

// BudgetInput is everything reconciliation depends on.
type BudgetInput struct {
	Budget      float64
	Destination string
	Days        int
	Adults      int
	Children    int
	TravelStyle domain.TravelStyle
	Interests   string
}

type dailyCaps struct{ transport, food float64 }

func capsFor(style domain.TravelStyle) dailyCaps {
	if style == domain.Luxury {
		return dailyCaps{transport: 5000, food: 8000}
	}
	return dailyCaps{transport: 2000, food: 3000}
}

// Reconcile enforces the budget on activity costs and recomputes every summary
// field. It returns new days and never modifies its input. Running it again
// on its own output with the same input yields the same result.
func Reconcile(days []domain.Day, in BudgetInput) ([]domain.Day, domain.BudgetSummary) {
	if in.Adults < 1 {
		in.Adults = 1
	}
	if in.Children < 0 {
		in.Children = 0
	}
	numDays := in.Days
	if numDays < 1 {
		numDays = 1
	}
	budget := math.Max(0, in.Budget)
	weight := float64(in.Adults) + float64(in.Children)*0.5

	out := make([]domain.Day, len(days))
	var fees float64
	places := 0
	for i, d := range days {
		nd := domain.Day{Day: d.Day, Title: d.Title, Activities: make(map[string]domain.Activity, len(d.Activities))}
		for slot, a := range d.Activities {
			cost := float64(max(0, a.Cost))
			if cost*weight > budget || (budget < tinyBudget && cost > tinyBudgetMaxFee) {
				cost = 0
				a.Insight = fmt.Sprintf("(Budget Choice) We've opted for a walk-around or free-access section of %s to fit your ₹%s trip.",
					a.Name, formatAmount(budget))
			}
			a.Cost = int(cost)
			fees += cost * weight
			nd.Activities[slot] = a
			places++
		}
		out[i] = nd
	}

	if fees > budget && budget > 0 {
		for _, d := range out {
			for slot, a := range d.Activities {
				if a.Cost > 0 {
					a.Cost = 0
					a.Insight = "(Low Budget) Enjoying the external view and local vibe to save on entry fees."
					d.Activities[slot] = a
				}
			}
		}
		fees = 0
	}

	entryFees := int(math.Round(fees))
	requested := int(math.Round(budget))
	travelers := float64(in.Adults + in.Children)
	caps := capsFor(in.TravelStyle)

	var transport, foodMisc, total int
	switch {
	case requested > 0:
		cappedTransport := math.Round(math.Min(float64(requested)*transportShare, float64(numDays)*caps.transport*travelers))
		cappedFood := math.Round(math.Min(float64(requested)*(1-transportShare), float64(numDays)*caps.food*travelers))
		naive := float64(entryFees) + cappedTransport + cappedFood

		if float64(requested) > naive*surplusFactor {
			// capped daily spend first, then the discretionary excess 40/60
			excess := float64(requested) - naive
			transport = int(cappedTransport + math.Round(excess*transportShare))
		} else {
			transport = int(math.Round(float64(max(0, requested-entryFees)) * transportShare))
		}
		foodMisc = requested - entryFees - transport
		total = requested
	default:
		remaining := numDays * flatDailyRate * (in.Adults + in.Children)
		transport = int(math.Round(float64(remaining) * transportShare))
		foodMisc = remaining - transport
		total = entryFees + transport + foodMisc
	}

	return out, domain.BudgetSummary{
		TotalCost:   total,
		TotalPlaces: places,
		EntryFees:   entryFees,
		Transport:   transport,
		FoodMisc:    foodMisc,
		Explanation: explain(in, numDays, requested),
	}
}

func explain(in BudgetInput, numDays, requested int) string {
	travelers := fmt.Sprintf("%d Adult", in.Adults)
	if in.Adults > 1 {
		travelers += "s"
	}
	if in.Children > 0 {
		travelers += fmt.Sprintf(" and %d child", in.Children)
		if in.Children > 1 {
			travelers += "ren"
		}
	}

	focus := strings.TrimSpace(in.Interests)
	if focus == "" || focus == defaultInterests {
		focus = defaultFocus
	}

	remark := "Budget reflects optimized transport and meal costs for your travel style."
	if requested < shoestringBudget {
		remark = "We've highly optimized for a shoestring budget, focusing on free attractions."
	}
	return fmt.Sprintf("Built for %s spending %d day(s) in %s. This plan prioritizes %s. %s",
		travelers, numDays, in.Destination, focus, remark)
}

func formatAmount(f float64) string { return strconv.FormatFloat(f, 'f', -1, 64) }

// InterestText joins interests for prompts and explanations.
func InterestText(interests []string) string {
	var parts []string
	for _, s := range interests {
		if s = strings.TrimSpace(s); s != "" {
			parts = append(parts, s)
		}
	}
	if len(parts) == 0 {
		return defaultInterests
	}
	return strings.Join(parts, ", ")
}
