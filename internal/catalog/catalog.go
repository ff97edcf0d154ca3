// Package catalog holds the curated region→attractions table.
package catalog

import (
	"strings"

	"smart_travel/internal/domain"
)

// Catalog is an ordered, read-only region table. Order is the tie-breaker for
// substring matches, so lookups are deterministic.
type Catalog struct {
	regions []domain.Region
	index   map[string]int
}

// New builds a catalog; later entries with the same key replace earlier ones
// in place.
func New(regions []domain.Region) *Catalog {
	c := &Catalog{index: make(map[string]int, len(regions))}
	for _, r := range regions {
		k := normalize(r.Key)
		if k == "" || len(r.Places) == 0 {
			continue
		}
		r.Key = k
		if i, ok := c.index[k]; ok {
			c.regions[i] = r
			continue
		}
		c.index[k] = len(c.regions)
		c.regions = append(c.regions, r)
	}
	return c
}

// Builtin returns the catalog compiled into the binary.
func Builtin() *Catalog { return New(builtinRegions()) }

// Overlay returns a catalog with extra regions replacing or appending to c.
func (c *Catalog) Overlay(extra []domain.Region) *Catalog {
	all := make([]domain.Region, 0, len(c.regions)+len(extra))
	all = append(all, c.regions...)
	all = append(all, extra...)
	return New(all)
}

// Regions returns a copy of the table in order.
func (c *Catalog) Regions() []domain.Region {
	out := make([]domain.Region, len(c.regions))
	for i, r := range c.regions {
		out[i] = domain.Region{Key: r.Key, Places: clonePlaces(r.Places)}
	}
	return out
}

// Lookup finds the attractions for a region name. Exact (case-insensitive)
// match first; otherwise the longest key where either string contains the
// other wins, ties going to the earlier entry. Returns nil on a miss.
// The returned slice is a copy.
func (c *Catalog) Lookup(region string) []domain.Place {
	q := normalize(region)
	if q == "" {
		return nil
	}
	if i, ok := c.index[q]; ok {
		return clonePlaces(c.regions[i].Places)
	}
	best := -1
	for i, r := range c.regions {
		if !strings.Contains(q, r.Key) && !strings.Contains(r.Key, q) {
			continue
		}
		if best < 0 || len(r.Key) > len(c.regions[best].Key) {
			best = i
		}
	}
	if best < 0 {
		return nil
	}
	return clonePlaces(c.regions[best].Places)
}

func normalize(s string) string { return strings.ToLower(strings.TrimSpace(s)) }

func clonePlaces(in []domain.Place) []domain.Place {
	out := make([]domain.Place, len(in))
	copy(out, in)
	return out
}
