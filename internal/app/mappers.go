package app

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"smart_travel/internal/domain"
)

/********** alias registries (single source of truth) **********/

// Models drift on key names; accept the common variants.
var activityAliases = map[string][]string{
	"name":     {"name", "place", "title", "activity", "location"},
	"insight":  {"insight", "description", "tip", "details", "note"},
	"duration": {"duration", "time", "timeNeeded"},
	"type":     {"type", "category"},
	"cost":     {"cost", "price", "entryFee", "entry_fee", "fee"},
	"rating":   {"rating", "score"},
}

var dayAliases = map[string][]string{
	"title": {"title", "theme", "name"},
}

var placeAliases = map[string][]string{
	"name":        {"name", "title", "place"},
	"description": {"description", "desc", "summary", "about"},
	"category":    {"category", "type"},
	"rating":      {"rating", "score"},
}

var lodgingAliases = map[string][]string{
	"name":        {"name", "hotel", "title"},
	"price":       {"price", "priceRange", "price_range", "cost"},
	"description": {"description", "desc", "about"},
}

var phraseAliases = map[string][]string{
	"phrase":      {"phrase", "text", "local"},
	"translation": {"translation", "meaning", "english"},
	"usage":       {"usage", "context", "when"},
}

/********** tiny helpers **********/

// lookupAny: safe nested lookup with dot paths on maps.
func lookupAny(m map[string]any, path string) any {
	cur := any(m)
	for _, part := range strings.Split(path, ".") {
		obj, ok := cur.(map[string]any)
		if !ok {
			return nil
		}
		v, ok := obj[part]
		if !ok {
			return nil
		}
		cur = v
	}
	return cur
}

// lookupStr returns a trimmed string at path or "". Numbers are formatted.
func lookupStr(m map[string]any, path string) string {
	switch v := lookupAny(m, path).(type) {
	case string:
		return strings.TrimSpace(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return ""
}

// firstAlias: first non-empty string for a named alias set.
func firstAlias(m map[string]any, aliases map[string][]string, key string) string {
	for _, p := range aliases[key] {
		if s := lookupStr(m, p); s != "" {
			return s
		}
	}
	return ""
}

// toNumber accepts JSON numbers and strings like "₹1,500"; anything else is 0.
func toNumber(v any) float64 {
	switch x := v.(type) {
	case float64:
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return 0
		}
		return x
	case int:
		return float64(x)
	case string:
		s := strings.NewReplacer("₹", "", ",", "").Replace(x)
		s = strings.TrimSpace(s)
		f, err := strconv.ParseFloat(leadingNumber(s), 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return 0
		}
		return f
	}
	return 0
}

// leadingNumber keeps the longest numeric prefix, so "500 per person" is 500.
func leadingNumber(s string) string {
	end := 0
	for i, r := range s {
		if (r >= '0' && r <= '9') || r == '.' || ((r == '-' || r == '+') && i == 0) {
			end = i + 1
			continue
		}
		break
	}
	return s[:end]
}

// getFloatFlexible: number from the first alias that parses to non-zero.
func getFloatFlexible(m map[string]any, aliases map[string][]string, key string) float64 {
	for _, p := range aliases[key] {
		if v := lookupAny(m, p); v != nil {
			if f := toNumber(v); f != 0 {
				return f
			}
		}
	}
	return 0
}

func asObjects(v any) []map[string]any {
	arr, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]map[string]any, 0, len(arr))
	for _, it := range arr {
		if m, ok := it.(map[string]any); ok {
			out = append(out, m)
		}
	}
	return out
}

func formatRating(f float64) string {
	if f <= 0 || f > 5 {
		return "4.5"
	}
	return fmt.Sprintf("%.1f", f)
}

/********** place mapper **********/

// mapOraclePlaces converts a JSON array of place objects; nameless items are
// dropped.
func mapOraclePlaces(v any) []domain.Place {
	items := asObjects(v)
	out := make([]domain.Place, 0, len(items))
	for _, m := range items {
		name := firstAlias(m, placeAliases, "name")
		if name == "" {
			continue
		}
		desc := firstAlias(m, placeAliases, "description")
		if desc == "" {
			desc = "A must-visit attraction."
		}
		out = append(out, domain.Place{
			Name:        name,
			Rating:      formatRating(getFloatFlexible(m, placeAliases, "rating")),
			Description: desc,
			Category:    domain.ParseCategory(firstAlias(m, placeAliases, "category")),
		})
	}
	return out
}

/********** itinerary mapper **********/

// mapActivity normalizes one oracle activity: name defaults to "Attraction",
// cost is a non-negative whole number and rating defaults to 4.5.
func mapActivity(m map[string]any) domain.Activity {
	name := firstAlias(m, activityAliases, "name")
	if name == "" {
		name = "Attraction"
	}
	cost := math.Round(getFloatFlexible(m, activityAliases, "cost"))
	if cost < 0 {
		cost = 0
	}
	rating := getFloatFlexible(m, activityAliases, "rating")
	if rating <= 0 {
		rating = 4.5
	}
	return domain.Activity{
		Name:     name,
		Type:     domain.ParseCategory(firstAlias(m, activityAliases, "type")),
		Rating:   rating,
		Cost:     int(cost),
		Duration: firstAlias(m, activityAliases, "duration"),
		Insight:  firstAlias(m, activityAliases, "insight"),
	}
}

// mapDay keeps only canonical slots. Activities may arrive as a slot map or
// as an array, which is assigned to slots in order.
func mapDay(m map[string]any) (domain.Day, bool) {
	d := domain.Day{
		Title:      firstAlias(m, dayAliases, "title"),
		Activities: make(map[string]domain.Activity, len(domain.Slots)),
	}
	switch acts := lookupAny(m, "activities").(type) {
	case map[string]any:
		for _, slot := range domain.Slots {
			if am, ok := acts[slot].(map[string]any); ok {
				d.Activities[slot] = mapActivity(am)
			}
		}
	case []any:
		for i, am := range asObjects(acts) {
			if i == len(domain.Slots) {
				break
			}
			d.Activities[domain.Slots[i]] = mapActivity(am)
		}
	}
	return d, len(d.Activities) > 0
}

// mapOraclePlan reads the itinerary object. ok is false when no usable day
// is present; the other lists may still be empty.
func mapOraclePlan(v any) (domain.TripPlan, bool) {
	root, isObj := v.(map[string]any)
	if !isObj {
		return domain.TripPlan{}, false
	}
	var plan domain.TripPlan
	for _, dm := range asObjects(lookupAny(root, "itinerary")) {
		if d, ok := mapDay(dm); ok {
			plan.Itinerary = append(plan.Itinerary, d)
		}
	}
	for _, m := range asObjects(lookupAny(root, "accommodations")) {
		if name := firstAlias(m, lodgingAliases, "name"); name != "" {
			plan.Accommodations = append(plan.Accommodations, domain.Accommodation{
				Name:        name,
				Price:       firstAlias(m, lodgingAliases, "price"),
				Description: firstAlias(m, lodgingAliases, "description"),
			})
		}
	}
	for _, m := range asObjects(lookupAny(root, "localEats")) {
		if name := firstAlias(m, lodgingAliases, "name"); name != "" {
			plan.LocalEats = append(plan.LocalEats, domain.LocalEat{
				Name:        name,
				Description: firstAlias(m, lodgingAliases, "description"),
			})
		}
	}
	for _, m := range asObjects(lookupAny(root, "localPhrases")) {
		if p := firstAlias(m, phraseAliases, "phrase"); p != "" {
			plan.LocalPhrases = append(plan.LocalPhrases, domain.Phrase{
				Phrase:      p,
				Translation: firstAlias(m, phraseAliases, "translation"),
				Usage:       firstAlias(m, phraseAliases, "usage"),
			})
		}
	}
	return plan, len(plan.Itinerary) > 0
}
