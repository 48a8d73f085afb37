package catalog

import "context"

// Source loads the product catalogue. Implementations are read-only and are
// invoked once per request; callers may wrap one in a cache if they need to.
type Source interface {
	Load(ctx context.Context) ([]Product, error)
}
