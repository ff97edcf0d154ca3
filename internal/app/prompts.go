package app

import (
	"fmt"
	"strings"

	"smart_travel/internal/domain"
)

func placesPrompt(region string) string {
	cats := make([]string, len(domain.Categories))
	for i, c := range domain.Categories {
		cats[i] = string(c)
	}
	return fmt.Sprintf(`List 8 real tourist attractions in %s, India. Return ONLY a JSON array:
[{"name":"Exact Real Place Name","rating":"4.5","description":"One or two sentences about why this place is special.","category":"Heritage"}]
Allowed categories: %s
Rules: Use ONLY real verified place names. No generic made-up names.`, region, strings.Join(cats, ", "))
}

func itineraryPrompt(req domain.BudgetRequest, interests string, known []domain.Place) string {
	dayList := make([]string, req.Days)
	for i := range dayList {
		dayList[i] = fmt.Sprintf("Day %d", i+1)
	}

	var realContext string
	if len(known) > 0 {
		names := make([]string, len(known))
		for i, p := range known {
			names[i] = p.Name
		}
		realContext = fmt.Sprintf("\nIMPORTANT: Use these REAL confirmed attractions in %s for the itinerary: %s.",
			req.Destination, strings.Join(names, ", "))
	}
	budget := formatAmount(req.Budget)

	var b strings.Builder
	fmt.Fprintf(&b, "Create a %d-day travel itinerary for %s, India.\n", req.Days, req.Destination)
	fmt.Fprintf(&b, "Traveling with: %d Adults, %d Children.\n", req.Adults, req.Children)
	fmt.Fprintf(&b, "Travel Style: %s.\n", req.TravelStyle)
	fmt.Fprintf(&b, "Budget: Rs %s. Interests: %s.\n", budget, interests)
	fmt.Fprintf(&b, "Generate all these days: %s.%s\n\n", strings.Join(dayList, ", "), realContext)
	b.WriteString(`Return ONLY this JSON (absolutely no markdown fences, no explanation text):
{
  "itinerary":[{"day":1,"title":"Day Title","activities":{"morning":{"name":"Place","cost":500,"insight":"tip","duration":"2h","type":"Heritage","rating":4.5},"afternoon":{...},"evening":{...}}}],
  "accommodations":[{"name":"Hotel","price":"₹₹₹","description":"..."}],
  "localEats":[{"name":"Dish","description":"..."}],
  "packingList":[{"category":"Weather","item":"Cotton Clothes","reason":"High humidity"}],
  "localPhrases":[{"phrase":"Hello","translation":"Namaste","usage":"Greeting"}]
}

RULES:
`)
	fmt.Fprintf(&b, "- EXACTLY %d days.\n", req.Days)
	b.WriteString("- SMART PACKING: Provide 4-5 items across categories (Weather, Activities, Cultural Context) with specific reasons.\n")
	b.WriteString("- LOCAL PHRASES: 3-4 phrases in the regional language.\n")
	fmt.Fprintf(&b, "- INCLUDE 2-3 REAL accommodations matching %s style.\n", req.TravelStyle)
	b.WriteString("- INCLUDE 2-3 REAL local food or restaurant recommendations.\n")
	fmt.Fprintf(&b, "- NEVER suggest an activity where group entry fees exceed Rs %s.\n", budget)
	fmt.Fprintf(&b, "- FOR VERY LOW BUDGETS (like Rs %s < %d): Use cost 0 for ALMOST EVERYTHING. India has many free parks, temples, and markets.\n", budget, shoestringBudget)
	b.WriteString("- Each activity 'cost' MUST be a RAW NUMBER (e.g. 500), NO symbols, NO commas.\n")
	b.WriteString("- For each day, provide EXACTLY 3 activities: 'morning', 'afternoon', 'evening'.\n")
	fmt.Fprintf(&b, "- Use REAL place names of %s.\n", req.Destination)
	b.WriteString("- No markdown, raw JSON only.")
	return b.String()
}
