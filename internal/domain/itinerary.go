package domain

import "sort"

const (
	SlotMorning   = "morning"
	SlotAfternoon = "afternoon"
	SlotEvening   = "evening"
)

// Slots is the canonical slot order within a day.
var Slots = []string{SlotMorning, SlotAfternoon, SlotEvening}

type TravelStyle string

const (
	Backpacker TravelStyle = "Backpacker"
	Comfort    TravelStyle = "Comfort"
	Luxury     TravelStyle = "Luxury"
)

type Activity struct {
	Name     string   `json:"name"`
	Type     Category `json:"type"`
	Rating   float64  `json:"rating"`
	Cost     int      `json:"cost"`
	Duration string   `json:"duration"`
	Insight  string   `json:"insight"`
	Picture
}

type Day struct {
	Day        int                 `json:"day"`
	Title      string              `json:"title"`
	Activities map[string]Activity `json:"activities"`
}

// SlotKeys returns the canonical slots present first, then any others sorted.
func (d Day) SlotKeys() []string {
	keys := make([]string, 0, len(d.Activities))
	seen := make(map[string]struct{}, len(Slots))
	for _, s := range Slots {
		if _, ok := d.Activities[s]; ok {
			keys = append(keys, s)
			seen[s] = struct{}{}
		}
	}
	var rest []string
	for k := range d.Activities {
		if _, ok := seen[k]; !ok {
			rest = append(rest, k)
		}
	}
	sort.Strings(rest)
	return append(keys, rest...)
}

type Accommodation struct {
	Name        string `json:"name"`
	Price       string `json:"price"`
	Description string `json:"description"`
	Picture
}

type LocalEat struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Picture
}

type PackingItem struct {
	Category string `json:"category"`
	Item     string `json:"item"`
	Reason   string `json:"reason"`
}

type Phrase struct {
	Phrase      string `json:"phrase"`
	Translation string `json:"translation"`
	Usage       string `json:"usage"`
}

// BudgetSummary is the output of reconciliation; it is flattened into TripPlan.
type BudgetSummary struct {
	TotalCost   int    `json:"totalCost"`
	TotalPlaces int    `json:"totalPlaces"`
	EntryFees   int    `json:"entryFees"`
	Transport   int    `json:"transport"`
	FoodMisc    int    `json:"foodMisc"`
	Explanation string `json:"explanation"`
}

type TripPlan struct {
	Itinerary      []Day           `json:"itinerary"`
	Accommodations []Accommodation `json:"accommodations"`
	LocalEats      []LocalEat      `json:"localEats"`
	PackingList    []PackingItem   `json:"packingList"`
	LocalPhrases   []Phrase        `json:"localPhrases"`
	BudgetSummary
}

// BudgetRequest is the normalized input of itinerary generation.
type BudgetRequest struct {
	Destination string
	Budget      float64
	Days        int
	Interests   []string
	Adults      int
	Children    int
	TravelStyle TravelStyle
}
