package health

import "context"

// Pinger checks engine availability.
type Pinger interface {
	Ping(ctx context.Context) error
}

// IndexChecker reports whether a search index is present.
type IndexChecker interface {
	IndexExists(ctx context.Context, name string) (bool, error)
}
