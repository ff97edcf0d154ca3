package app

import (
	"strings"

	"smart_travel/internal/domain"
)

type archetype struct {
	places []string
	items  []domain.PackingItem
}

// Checked in order; the first archetype with a matching place wins.
var regionArchetypes = []archetype{
	{
		places: []string{"manali", "shimla", "munnar", "gangtok", "leh", "ladakh", "nainital", "mussoorie", "ooty", "darjeeling", "gulmarg", "shillong"},
		items: []domain.PackingItem{
			{Category: "Weather", Item: "Layered Woolens", Reason: "Temperatures drop significantly at night in high altitudes."},
			{Category: "Health", Item: "Motion Sickness Meds", Reason: "For curvy mountain roads (ghats) while traveling."},
		},
	},
	{
		places: []string{"goa", "mumbai", "kochi", "chennai", "vizag", "pondicherry", "kerala", "varkala", "alleppey", "andaman"},
		items: []domain.PackingItem{
			{Category: "Weather", Item: "Breathable Cotton", Reason: "High humidity requires lightweight, quick-dry fabrics."},
			{Category: "Essentials", Item: "Waterproof Phone Pouch", Reason: "Essential for boat rides and beach activities."},
		},
	},
	{
		places: []string{"jaipur", "jodhpur", "jaisalmer", "bikaner", "pushkar", "udaipur"},
		items: []domain.PackingItem{
			{Category: "Weather", Item: "Cotton Scarf/Stole", Reason: "Protects against direct sun and dust during desert safaris."},
			{Category: "Skin Care", Item: "High SPF Sunscreen", Reason: "Intense sun exposure in the Rajasthan plains."},
		},
	},
	{
		places: spiritualPlaces,
		items: []domain.PackingItem{
			{Category: "Weather", Item: "Light Shawl", Reason: "Early-morning rituals on the riverbanks can be chilly."},
			{Category: "Essentials", Item: "Reusable Water Bottle", Reason: "Long queues at shrines with few refill points."},
		},
	},
}

var spiritualPlaces = []string{"varanasi", "rishikesh", "haridwar", "tirupati", "puri", "amritsar", "shirdi", "kedarnath", "badrinath"}

var genericRegionItems = []domain.PackingItem{
	{Category: "Weather", Item: "Universal Light Jacket", Reason: "Good for air-conditioned travel or slight evening breeze."},
	{Category: "Essentials", Item: "Universal Adapter", Reason: "Ensures your devices stay charged during long tours."},
}

var (
	spiritualItems = []domain.PackingItem{
		{Category: "Cultural", Item: "Modest Clothing", Reason: "Required for entry into most temples and sacred sites."},
		{Category: "Essentials", Item: "Slip-on Shoes", Reason: "Easier to remove outside temples and shrines."},
	}
	adventureItems = []domain.PackingItem{
		{Category: "Activities", Item: "Sturdy Hiking Shoes", Reason: "Necessary for grip on uneven trails or trekking."},
		{Category: "Gear", Item: "Small Daypack", Reason: "To carry water and essentials during outdoor treks."},
	}
	generalItems = []domain.PackingItem{
		{Category: "Activities", Item: "Comfortable Walking Shoes", Reason: "Essential for exploring city heritage sites on foot."},
		{Category: "Tech", Item: "Power Bank", Reason: "Keep your phone charged for maps and photos all day."},
	}
)

// PackingList returns two region items and two activity items.
func PackingList(destination, interests string) []domain.PackingItem {
	d := strings.ToLower(destination)
	list := make([]domain.PackingItem, 0, 4)

	region := genericRegionItems
	for _, a := range regionArchetypes {
		if containsAny(d, a.places) {
			region = a.items
			break
		}
	}
	list = append(list, region...)

	in := strings.ToLower(interests)
	switch {
	case strings.Contains(in, "spiritual") || containsAny(d, spiritualPlaces):
		list = append(list, spiritualItems...)
	case strings.Contains(in, "adventure"):
		list = append(list, adventureItems...)
	default:
		list = append(list, generalItems...)
	}
	return list
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
