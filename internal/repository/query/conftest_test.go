package query

import (
	"context"
	"testing"

	"github.com/kailas-cloud/storefront/internal/db"
)

// mockStore implements the consumer interface for tests.
type mockStore struct {
	searchFn func(ctx context.Context, q *db.Query) (*db.SearchResult, error)
	calls    []db.Query
}

func (m *mockStore) Search(ctx context.Context, q *db.Query) (*db.SearchResult, error) {
	m.calls = append(m.calls, *q)
	if m.searchFn != nil {
		return m.searchFn(ctx, q)
	}
	return &db.SearchResult{}, nil
}

type order struct {
	ID        string  `json:"id"`
	FirstName string  `json:"customer_first_name"`
	Total     float64 `json:"taxful_total_price"`
}

func (o *order) SetID(id string) { o.ID = id }

func newTestRepo(t *testing.T, opts Options) (*Repo[order, *order], *mockStore) {
	t.Helper()
	ms := &mockStore{}
	if opts.KeyPrefix == "" {
		opts.KeyPrefix = "shop:"
	}
	return New[order](ms, "ecommerce", opts), ms
}

func hit(key, body string) db.SearchEntry {
	return db.SearchEntry{Key: key, Fields: map[string]string{"$": body}}
}

func ptr(f float64) *float64 { return &f }
