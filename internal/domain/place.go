package domain

import "strings"

type Category string

const (
	Heritage  Category = "Heritage"
	Adventure Category = "Adventure"
	Spiritual Category = "Spiritual"
	Nature    Category = "Nature"
	Coastal   Category = "Coastal"
	Cultural  Category = "Cultural"
	Scenic    Category = "Scenic"
)

// Categories is the fixed vocabulary, in prompt order.
var Categories = []Category{Heritage, Adventure, Spiritual, Nature, Coastal, Cultural, Scenic}

// ParseCategory matches case-insensitively; unknown values map to Heritage.
func ParseCategory(s string) Category {
	s = strings.TrimSpace(s)
	for _, c := range Categories {
		if strings.EqualFold(s, string(c)) {
			return c
		}
	}
	return Heritage
}

type ImageSource string

const (
	SourceEncyclopedia ImageSource = "encyclopedia"
	SourcePlaceholder  ImageSource = "placeholder"
)

// Picture is the image pair attached by enrichment.
type Picture struct {
	Image       string      `json:"image,omitempty"`
	ImageSource ImageSource `json:"imageSource,omitempty"`
}

// HasEncyclopediaImage reports whether enrichment can skip this picture.
func (p Picture) HasEncyclopediaImage() bool {
	return p.ImageSource == SourceEncyclopedia && p.Image != ""
}

type Place struct {
	Name        string   `json:"name"`
	Rating      string   `json:"rating"` // "X.Y"
	Description string   `json:"description"`
	Category    Category `json:"category"`
	Picture
}

// Region is a curated region key and its hand-authored attractions.
type Region struct {
	Key    string
	Places []Place
}
