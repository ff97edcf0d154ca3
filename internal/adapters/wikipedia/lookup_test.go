package wikipedia

import (
	"reflect"
	"strings"
	"testing"

	"smart_travel/internal/domain"
)

func TestImageQueries(t *testing.T) {
	got := imageQueries("Hawa Mahal (Palace of Winds)", "Jaipur")
	want := []string{
		"Hawa Mahal (Palace of Winds)",
		"Hawa Mahal (Palace of Winds), Jaipur",
		"Hawa Mahal",
		"Hawa Mahal ( of Winds)",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %q\nwant %q", got, want)
	}

	// region already present, short variants dropped
	got = imageQueries("City Palace Jaipur", "jaipur")
	want = []string{"City Palace Jaipur", "City Jaipur"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %q want %q", got, want)
	}

	if q := imageQueries("Fort", ""); len(q) != 1 || q[0] != "Fort" {
		t.Fatalf("unexpected: %q", q)
	}
}

func TestInferCategory(t *testing.T) {
	cases := map[string]domain.Category{
		"Baga Beach":               domain.Coastal,
		"Periyar National Park":    domain.Nature,
		"Golden Temple":            domain.Spiritual,
		"Solang Valley":            domain.Nature,
		"Rishikesh Rafting Camp":   domain.Adventure,
		"Salar Jung Museum":        domain.Cultural,
		"Mehrangarh Fort":          domain.Heritage,
		"Tiger Hill Viewpoint":     domain.Nature, // hill precedes view
		"Bhakra Dam":               domain.Scenic,
		"Rashtrapati Bhavan":       domain.Heritage,
		"Lake Palace":              domain.Coastal,
		"Dashashwamedh Ghat":       domain.Spiritual,
		"Sanjay Gandhi Ridge Area": domain.Scenic,
	}
	for title, want := range cases {
		if got := InferCategory(title); got != want {
			t.Errorf("%s: got %s want %s", title, got, want)
		}
	}
}

func TestTrimDescription(t *testing.T) {
	if got := trimDescription("", "Pune"); got != "A famous attraction in Pune." {
		t.Fatalf("default: %q", got)
	}
	long := strings.Repeat("ब", 200) + ". Next."
	got := trimDescription(long, "X")
	if len(got) > maxDescLen {
		t.Fatalf("too long: %d", len(got))
	}
	if !strings.HasPrefix(long, got) || got == "" {
		t.Fatalf("expected clean rune-boundary prefix")
	}
}

func TestFilterMembers(t *testing.T) {
	in := []string{"Talk:Foo", "List of forts", "Red Fort", "File:x.jpg", "Qutub Minar", "Template:Delhi"}
	got := filterMembers(in)
	if !reflect.DeepEqual(got, []string{"Red Fort", "Qutub Minar"}) {
		t.Fatalf("got %q", got)
	}
	if len(in) != 6 || in[0] != "Talk:Foo" {
		t.Fatalf("input mutated")
	}
}

func TestSortByRequestOrder(t *testing.T) {
	pages := []page{{Title: "C"}, {Title: "Red Fort"}, {Title: "A"}}
	sortByRequestOrder(pages, []string{"Red_Fort", "A"})
	if pages[0].Title != "Red Fort" || pages[1].Title != "A" || pages[2].Title != "C" {
		t.Fatalf("unexpected order: %+v", pages)
	}
}
