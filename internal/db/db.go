package db

import (
	"context"
	"time"
)

// Store is the main database facade combining all sub-interfaces.
//
//nolint:interfacebloat // facade by design -- consumers use narrow sub-interfaces (ISP)
type Store interface {
	Pinger
	JSONStore
	IndexManager
	Searcher
	Configurer
	Close()
	WaitForReady(ctx context.Context, timeout time.Duration) error
}

// Pinger checks database connectivity.
type Pinger interface {
	Ping(ctx context.Context) error
}

// SetMode controls the existence precondition of a JSON.SET.
type SetMode int

const (
	// SetAlways writes unconditionally.
	SetAlways SetMode = iota
	// SetIfAbsent writes only when the key does not exist (NX).
	SetIfAbsent
	// SetIfPresent writes only when the key already exists (XX).
	SetIfPresent
)

// JSONStore provides JSON document operations.
type JSONStore interface {
	// JSONSet stores data at key/path. It returns false when the mode precondition
	// was not met and nothing was written.
	JSONSet(ctx context.Context, key, path string, data []byte, mode SetMode) (bool, error)
	JSONGet(ctx context.Context, key string, paths ...string) ([]byte, error)
	// Del removes a key and reports whether it existed.
	Del(ctx context.Context, key string) (bool, error)
}

// IndexManager provides FT index lifecycle operations.
type IndexManager interface {
	CreateIndex(ctx context.Context, def *IndexDefinition) error
	DropIndex(ctx context.Context, name string) error
	IndexExists(ctx context.Context, name string) (bool, error)
}

// Searcher provides search operations over FT indexes.
type Searcher interface {
	Search(ctx context.Context, q *Query) (*SearchResult, error)
	SearchCount(ctx context.Context, index, query string) (int, error)
}

// Configurer changes runtime engine options.
type Configurer interface {
	ConfigSet(ctx context.Context, name, value string) error
}
