package domain

import "context"

// Oracle is the generative text-completion service. Complete returns the
// first JSON value it could extract, or nil when every model failed.
type Oracle interface {
	Complete(ctx context.Context, prompt string) any
}

// Encyclopedia is the read-only knowledge-base client. Failures are reported
// as misses, never as errors.
type Encyclopedia interface {
	LookupImage(ctx context.Context, placeName, region string) (string, bool)
	LookupCategory(ctx context.Context, region string) []Place
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}

type CatalogRepository interface {
	UpsertRegion(ctx context.Context, region string, places []Place) error
	LoadRegions(ctx context.Context) ([]Region, error)
}
