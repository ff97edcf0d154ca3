package app

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"golang.org/x/sync/semaphore"

	"smart_travel/internal/domain"
)

const placeholderURL = "https://picsum.photos/seed/%s%d/800/500"

// ImageEnricher attaches pictures to named items. All lookups issued through
// one enricher share its semaphore, so concurrent requests cannot exceed the
// configured number of in-flight encyclopedia calls.
type ImageEnricher struct {
	wiki domain.Encyclopedia
	sem  *semaphore.Weighted
}

func NewImageEnricher(wiki domain.Encyclopedia, concurrency int) *ImageEnricher {
	if concurrency <= 0 {
		concurrency = 6
	}
	return &ImageEnricher{wiki: wiki, sem: semaphore.NewWeighted(int64(concurrency))}
}

type imageTarget struct {
	name string
	pic  *domain.Picture
}

// enrich fills every target in place. index is the target's position and
// decorrelates placeholder seeds for identical names.
func (e *ImageEnricher) enrich(ctx context.Context, region string, targets []imageTarget) {
	var wg sync.WaitGroup
	for i, t := range targets {
		if t.pic.HasEncyclopediaImage() {
			continue
		}
		wg.Add(1)
		go func(i int, t imageTarget) {
			defer wg.Done()
			if img, ok := e.lookup(ctx, t.name, region); ok {
				*t.pic = domain.Picture{Image: img, ImageSource: domain.SourceEncyclopedia}
				return
			}
			*t.pic = domain.Picture{Image: PlaceholderImage(t.name, i), ImageSource: domain.SourcePlaceholder}
		}(i, t)
	}
	wg.Wait()
}

func (e *ImageEnricher) lookup(ctx context.Context, name, region string) (string, bool) {
	if e.wiki == nil || strings.TrimSpace(name) == "" || ctx.Err() != nil {
		return "", false
	}
	if err := e.sem.Acquire(ctx, 1); err != nil {
		return "", false
	}
	defer e.sem.Release(1)
	return e.wiki.LookupImage(ctx, name, region)
}

// Places returns enriched copies; the input is not modified.
func (e *ImageEnricher) Places(ctx context.Context, region string, in []domain.Place) []domain.Place {
	out := make([]domain.Place, len(in))
	copy(out, in)
	targets := make([]imageTarget, len(out))
	for i := range out {
		targets[i] = imageTarget{name: out[i].Name, pic: &out[i].Picture}
	}
	e.enrich(ctx, region, targets)
	return out
}

func (e *ImageEnricher) Accommodations(ctx context.Context, region string, in []domain.Accommodation) []domain.Accommodation {
	out := make([]domain.Accommodation, len(in))
	copy(out, in)
	targets := make([]imageTarget, len(out))
	for i := range out {
		targets[i] = imageTarget{name: out[i].Name, pic: &out[i].Picture}
	}
	e.enrich(ctx, region, targets)
	return out
}

func (e *ImageEnricher) LocalEats(ctx context.Context, region string, in []domain.LocalEat) []domain.LocalEat {
	out := make([]domain.LocalEat, len(in))
	copy(out, in)
	targets := make([]imageTarget, len(out))
	for i := range out {
		targets[i] = imageTarget{name: out[i].Name, pic: &out[i].Picture}
	}
	e.enrich(ctx, region, targets)
	return out
}

// Day enriches the day's activities, slots in canonical order.
func (e *ImageEnricher) Day(ctx context.Context, region string, d domain.Day) domain.Day {
	keys := d.SlotKeys()
	acts := make([]domain.Activity, len(keys))
	targets := make([]imageTarget, len(keys))
	for i, k := range keys {
		acts[i] = d.Activities[k]
		targets[i] = imageTarget{name: acts[i].Name, pic: &acts[i].Picture}
	}
	e.enrich(ctx, region, targets)

	out := domain.Day{Day: d.Day, Title: d.Title, Activities: make(map[string]domain.Activity, len(keys))}
	for i, k := range keys {
		out.Activities[k] = acts[i]
	}
	return out
}

// PlaceholderImage derives a stable stand-in URL from the name: lowercase
// ASCII alphanumerics, at most 30 of them, "india" when none remain.
func PlaceholderImage(name string, index int) string {
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r >= 'A' && r <= 'Z':
			b.WriteRune(r + ('a' - 'A'))
		}
		if b.Len() == 30 {
			break
		}
	}
	seed := b.String()
	if seed == "" {
		seed = "india"
	}
	return fmt.Sprintf(placeholderURL, seed, index)
}
