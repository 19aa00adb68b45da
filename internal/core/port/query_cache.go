package port

import "context"

// FetchFn loads a value from the source of truth on a cache miss.
type FetchFn func(ctx context.Context) (any, error)

// QueryCachePort is a read-through cache keyed by canonical query
// signatures. Keys are hierarchical (segments joined by a separator), so
// that InvalidatePrefix can wipe a whole key family in one call, such as
// every expert list regardless of filters.
type QueryCachePort interface {
	GetOrFetch(ctx context.Context, key string, fetch FetchFn) (any, error)
	Delete(key string)
	InvalidatePrefix(prefix string)
}
