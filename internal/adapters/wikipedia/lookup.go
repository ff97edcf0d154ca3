package wikipedia

import (
	"context"
	"fmt"
	"hash/fnv"
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog/log"

	"smart_travel/internal/domain"
)

const (
	maxBatch      = 12
	memberSample  = 10
	minMembers    = 3
	maxResults    = 8
	maxDescLen    = 280
	minDescLen    = 15
	imageCacheKey = "wikiimg:"
)

var (
	landmarkWords = regexp.MustCompile(`Fort|Palace|Temple|Temple Complex|Beach|Lake|National Park`)
	sentenceEnd   = regexp.MustCompile(`[.!?]\s+`)
	spaces        = regexp.MustCompile(`\s+`)
)

// LookupImage returns a thumbnail URL for placeName, trying a few title
// variants and falling back to full-text search per variant. Misses and
// upstream errors both report ok=false.
func (c *Client) LookupImage(ctx context.Context, placeName, region string) (string, bool) {
	key := imageCacheKey + normalizeKey(placeName) + "|" + normalizeKey(region)
	if c.cache != nil {
		var cached string
		if ok, err := c.cache.Get(ctx, key, &cached); err == nil && ok && cached != "" {
			return cached, true
		}
	}

	for _, q := range imageQueries(placeName, region) {
		if ctx.Err() != nil {
			return "", false
		}
		img, err := c.pageImages(ctx, q)
		if err != nil {
			logVariantMiss("pageimages", q, err)
			title, serr := c.searchTitle(ctx, q)
			if serr != nil {
				logVariantMiss("search", q, serr)
				continue
			}
			if img, err = c.pageImages(ctx, title); err != nil {
				logVariantMiss("pageimages", title, err)
				continue
			}
		}
		if c.cache != nil {
			if err := c.cache.Set(ctx, key, img, int(c.cacheTTL.Seconds())); err != nil {
				log.Warn().Err(err).Str("key", key).Msg("image cache set failed")
			}
		}
		return img, true
	}
	log.Debug().Str("place", placeName).Str("region", region).Msg("no encyclopedia image")
	return "", false
}

// LookupCategory discovers attractions in region through its category pages.
// Returns nil unless at least three usable articles survive filtering.
func (c *Client) LookupCategory(ctx context.Context, region string) []domain.Place {
	region = strings.TrimSpace(region)
	if region == "" {
		return nil
	}

	var titles []string
	var used string
	for _, cat := range categoryVariants(region) {
		if ctx.Err() != nil {
			return nil
		}
		members, err := c.categoryMembers(ctx, cat)
		if err != nil {
			logVariantMiss("categorymembers", cat, err)
			continue
		}
		if members = filterMembers(members); len(members) >= minMembers {
			titles, used = members, cat
			break
		}
	}
	if len(titles) == 0 {
		log.Debug().Str("region", region).Msg("no encyclopedia category")
		return nil
	}
	if len(titles) > memberSample {
		titles = titles[:memberSample]
	}

	pages, err := c.batchDetails(ctx, titles)
	if err != nil {
		log.Warn().Err(err).Str("category", used).Msg("batch details failed")
		return nil
	}

	out := make([]domain.Place, 0, maxResults)
	for _, p := range pages {
		if !p.valid() {
			continue
		}
		desc := trimDescription(p.Extract, region)
		if len(desc) <= minDescLen {
			continue
		}
		pl := domain.Place{
			Name:        p.Title,
			Rating:      ratingFor(p.Title),
			Description: desc,
			Category:    InferCategory(p.Title),
		}
		if t := p.thumb(); t != "" {
			pl.Picture = domain.Picture{Image: t, ImageSource: domain.SourceEncyclopedia}
		}
		out = append(out, pl)
		if len(out) == maxResults {
			break
		}
	}
	if len(out) < minMembers {
		return nil
	}
	log.Info().Str("region", region).Str("category", used).Int("places", len(out)).Msg("encyclopedia category hit")
	return out
}

// imageQueries lists distinct title variants longer than three characters.
func imageQueries(name, region string) []string {
	name = strings.TrimSpace(name)
	region = strings.TrimSpace(region)

	withRegion := name
	if region != "" && !strings.Contains(strings.ToLower(name), strings.ToLower(region)) {
		withRegion = name + ", " + region
	}
	cands := []string{
		name,
		withRegion,
		strings.TrimSpace(strings.SplitN(name, "(", 2)[0]),
		strings.TrimSpace(strings.SplitN(name, ",", 2)[0]),
		strings.TrimSpace(spaces.ReplaceAllString(landmarkWords.ReplaceAllString(name, ""), " ")),
	}

	seen := make(map[string]struct{}, len(cands))
	out := make([]string, 0, len(cands))
	for _, q := range cands {
		if len(q) <= 3 {
			continue
		}
		if _, dup := seen[q]; dup {
			continue
		}
		seen[q] = struct{}{}
		out = append(out, q)
	}
	return out
}

func categoryVariants(region string) []string {
	u := strings.ReplaceAll(strings.TrimSpace(region), " ", "_")
	return []string{
		"Tourist_attractions_in_" + u,
		"Visitor_attractions_in_" + u,
		"Tourism_in_" + u,
		"Heritage_sites_in_" + u,
		"Monuments_and_memorials_in_" + u,
		"Museums_in_" + u,
		"Tourist_attractions_in_" + u + ",_India",
	}
}

var skipPrefixes = []string{"Category:", "Template:", "Wikipedia:", "File:", "Talk:", "List of"}

func filterMembers(titles []string) []string {
	out := titles[:0:0]
outer:
	for _, t := range titles {
		for _, p := range skipPrefixes {
			if strings.HasPrefix(t, p) {
				continue outer
			}
		}
		out = append(out, t)
	}
	return out
}

type categoryRule struct {
	cat domain.Category
	re  *regexp.Regexp
}

// Order matters: the first matching rule wins.
var categoryRules = []categoryRule{
	{domain.Coastal, regexp.MustCompile(`beach|coast|sea link|backwater|lake|river|waterfall`)},
	{domain.Nature, regexp.MustCompile(`wildlife|sanctuary|forest|garden|botanical|national park|hill|mountain|valley`)},
	{domain.Spiritual, regexp.MustCompile(`temple|mandir|masjid|mosque|church|gurudwara|ashram|ghat|kund|dargah|shrine|monastery`)},
	{domain.Adventure, regexp.MustCompile(`trek|rafting|skiing|bungee|paragliding|adventure|zipline`)},
	{domain.Cultural, regexp.MustCompile(`museum|gallery|bazaar|market|craft|textile|city centre|mall`)},
	{domain.Heritage, regexp.MustCompile(`fort|palace|tomb|gate|mahal|haveli|ruins|monument|heritage`)},
	{domain.Scenic, regexp.MustCompile(`view|point|ridge|peak|scenic|dam|reservoir`)},
}

// InferCategory tags a page title by keyword; Heritage when nothing matches.
func InferCategory(title string) domain.Category {
	t := strings.ToLower(title)
	for _, r := range categoryRules {
		if r.re.MatchString(t) {
			return r.cat
		}
	}
	return domain.Heritage
}

// trimDescription keeps the first two sentences, capped at maxDescLen bytes
// on a rune boundary.
func trimDescription(extract, region string) string {
	raw := strings.TrimSpace(strings.ReplaceAll(extract, "\n", " "))
	if raw == "" {
		return fmt.Sprintf("A famous attraction in %s.", region)
	}
	cut := len(raw)
	if locs := sentenceEnd.FindAllStringIndex(raw, 2); len(locs) == 2 {
		// keep the punctuation of the second sentence, drop the whitespace
		cut = locs[1][0] + 1
	}
	desc := spaces.ReplaceAllString(raw[:cut], " ")
	if len(desc) > maxDescLen {
		desc = desc[:maxDescLen]
		for !utf8.ValidString(desc) {
			desc = desc[:len(desc)-1]
		}
	}
	return desc
}

// ratingFor derives a stable "4.0".."4.8" rating from the title.
func ratingFor(title string) string {
	h := fnv.New32a()
	_, _ = h.Write([]byte(title))
	return fmt.Sprintf("4.%d", h.Sum32()%9)
}

func sortByRequestOrder(pages []page, titles []string) {
	pos := make(map[string]int, len(titles))
	for i, t := range titles {
		pos[strings.ReplaceAll(t, "_", " ")] = i
	}
	rank := func(p page) int {
		if i, ok := pos[p.Title]; ok {
			return i
		}
		return len(titles)
	}
	sort.SliceStable(pages, func(i, j int) bool {
		ri, rj := rank(pages[i]), rank(pages[j])
		if ri != rj {
			return ri < rj
		}
		return pages[i].Title < pages[j].Title
	})
}

func normalizeKey(s string) string {
	return strings.ToLower(spaces.ReplaceAllString(strings.TrimSpace(s), " "))
}
