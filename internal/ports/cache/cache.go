package cache

import "context"

// Cache es un cache opcional de resultados ya derivados (kundalis serializadas).
// Los misses son silenciosos: un cache caído nunca rompe un request.
type Cache interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key string, value string) error
}
