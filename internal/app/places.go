package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"smart_travel/internal/adapters/observability"
	"smart_travel/internal/catalog"
	"smart_travel/internal/domain"
)

const (
	maxPlaces = 8
	minPlaces = 3
)

// PlaceService sources attractions for a region through four tiers: the
// curated catalog, encyclopedia categories, the oracle and a generic list.
type PlaceService struct {
	catalog  *catalog.Catalog
	wiki     domain.Encyclopedia
	oracle   domain.Oracle
	enricher *ImageEnricher
	cache    domain.Cache
	cacheTTL time.Duration
}

func NewPlaceService(cat *catalog.Catalog, wiki domain.Encyclopedia, oracle domain.Oracle,
	enricher *ImageEnricher, cache domain.Cache, ttl time.Duration) *PlaceService {
	return &PlaceService{catalog: cat, wiki: wiki, oracle: oracle, enricher: enricher, cache: cache, cacheTTL: ttl}
}

// Search returns between 3 and 8 enriched places. It never fails; the generic
// tier always answers.
func (s *PlaceService) Search(ctx context.Context, region string) []domain.Place {
	region = strings.TrimSpace(region)
	key := "places:" + strings.ToLower(region)
	if s.cache != nil {
		var cached []domain.Place
		if ok, _ := s.cache.Get(ctx, key, &cached); ok && len(cached) >= minPlaces {
			observability.ObserveTier("cache")
			return cached
		}
	}

	tier, places := s.source(ctx, region)
	observability.ObserveTier(tier)
	log.Info().Str("region", region).Str("tier", tier).Int("places", len(places)).Msg("places sourced")

	out := s.enricher.Places(ctx, region, places)
	// generic results are not cached so a recovered upstream is picked up;
	// a cancelled ctx means enrichment fell back to placeholders
	if tier != "generic" && s.cache != nil && ctx.Err() == nil {
		_ = s.cache.Set(ctx, key, out, int(s.cacheTTL.Seconds()))
	}
	return out
}

func (s *PlaceService) source(ctx context.Context, region string) (string, []domain.Place) {
	if ps := s.catalog.Lookup(region); len(ps) >= minPlaces {
		return "curated", capPlaces(ps)
	} else if len(ps) > 0 {
		log.Debug().Str("region", region).Str("tier", "curated").Int("places", len(ps)).Msg("tier miss")
	}
	if s.wiki != nil {
		if ps := s.wiki.LookupCategory(ctx, region); len(ps) >= minPlaces {
			return "encyclopedia", capPlaces(ps)
		}
		log.Debug().Str("region", region).Str("tier", "encyclopedia").Msg("tier miss")
	}
	if ps := s.fromOracle(ctx, region); ps != nil {
		return "oracle", ps
	}
	return "generic", GenericPlaces(region)
}

func (s *PlaceService) fromOracle(ctx context.Context, region string) []domain.Place {
	if s.oracle == nil {
		return nil
	}
	ps := mapOraclePlaces(s.oracle.Complete(ctx, placesPrompt(region)))
	if len(ps) < minPlaces {
		log.Debug().Str("region", region).Str("tier", "oracle").Int("places", len(ps)).Msg("tier miss")
		return nil
	}
	if looksTemplated(ps, region) {
		log.Warn().Str("region", region).Msg("oracle places rejected as templated")
		return nil
	}
	return capPlaces(ps)
}

// RealPlaces is the curated or encyclopedia list used as itinerary context.
// It does not consult the oracle and may return nil.
func (s *PlaceService) RealPlaces(ctx context.Context, region string) []domain.Place {
	if ps := s.catalog.Lookup(region); len(ps) > 0 {
		return ps
	}
	if s.wiki == nil {
		return nil
	}
	return s.wiki.LookupCategory(ctx, region)
}

// looksTemplated reports whether every name reads like "{region} Word" with
// at most three words, the shape of a guessed rather than known attraction.
func looksTemplated(ps []domain.Place, region string) bool {
	prefix := strings.ToLower(region) + " "
	for _, p := range ps {
		n := strings.ToLower(strings.TrimSpace(p.Name))
		if n == "" {
			continue
		}
		if !strings.HasPrefix(n, prefix) || len(strings.Fields(n)) > 3 {
			return false
		}
	}
	return true
}

func capPlaces(ps []domain.Place) []domain.Place {
	if len(ps) > maxPlaces {
		return ps[:maxPlaces]
	}
	return ps
}

// GenericPlaces is the last-resort list. It always has eight entries.
func GenericPlaces(region string) []domain.Place {
	g := func(suffix, rating string, cat domain.Category, desc string) domain.Place {
		return domain.Place{Name: region + " " + suffix, Rating: rating, Category: cat, Description: desc}
	}
	return []domain.Place{
		g("Fort", "4.5", domain.Heritage, fmt.Sprintf("The historic fort of %s is a compelling landmark, offering panoramic views and centuries of regional history within its ancient walls.", region)),
		g("Palace", "4.4", domain.Heritage, fmt.Sprintf("An architectural marvel showcasing the royal heritage of %s, the palace houses royal artifacts and beautiful heritage gardens.", region)),
		g("Main Temple", "4.7", domain.Spiritual, fmt.Sprintf("One of the most revered temples in %s, attracting thousands of devotees and tourists daily. The temple's architecture is breathtaking.", region)),
		g("Museum", "4.2", domain.Cultural, fmt.Sprintf("The regional museum of %s preserves ancient artifacts, sculptures and documents that chronicle the rich heritage of this storied city.", region)),
		g("Lake", "4.4", domain.Scenic, fmt.Sprintf("A picturesque lake in the heart of %s perfect for boat rides, sunset photography, and peaceful evening strolls along its promenade.", region)),
		g("Market", "4.1", domain.Cultural, fmt.Sprintf("The bustling traditional market of %s is the best place for local handicrafts, spices, textiles and an authentic taste of local life.", region)),
		g("Garden", "4.0", domain.Nature, "A lush botanical garden and recreational space, loved by families, joggers and nature lovers. Beautiful during morning and evening hours."),
		g("Viewpoint", "4.3", domain.Scenic, fmt.Sprintf("The best panoramic viewpoint in %s, offering sweeping 360-degree views of the city skyline, surrounding landscape and distant hills.", region)),
	}
}
