package product

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/kailas-cloud/storefront/internal/db"
	domprod "github.com/kailas-cloud/storefront/internal/domain/product"
)

// store is the consumer interface for product records (ISP).
type store interface {
	JSONSet(ctx context.Context, key, path string, data []byte, mode db.SetMode) (bool, error)
	JSONGet(ctx context.Context, key string, paths ...string) ([]byte, error)
	Del(ctx context.Context, key string) (bool, error)
	Search(ctx context.Context, q *db.Query) (*db.SearchResult, error)
}

// Repo implements usecase/product.Repository on JSON documents.
type Repo struct {
	store     store
	keyPrefix string
	newID     func() string
}

// New creates a product repository.
func New(s store, keyPrefix string) *Repo {
	return &Repo{store: s, keyPrefix: keyPrefix, newID: uuid.NewString}
}

// WithIDGenerator replaces the identifier source used by Create.
func (r *Repo) WithIDGenerator(fn func() string) *Repo {
	r.newID = fn
	return r
}

// Create stores p under a freshly assigned identifier.
// It returns nil without error when the engine rejected the write.
func (r *Repo) Create(ctx context.Context, p *domprod.Product) (*domprod.Product, error) {
	created := *p
	created.ID = r.newID()

	data, err := json.Marshal(&created)
	if err != nil {
		return nil, fmt.Errorf("marshal product: %w", err)
	}

	key := r.key(created.ID)
	ok, err := r.store.JSONSet(ctx, key, "$", data, db.SetIfAbsent)
	if err != nil {
		return nil, fmt.Errorf("json.set %s: %w", key, err)
	}
	if !ok {
		return nil, nil
	}
	return &created, nil
}

// GetAll returns every stored product in engine order.
func (r *Repo) GetAll(ctx context.Context) ([]domprod.Product, error) {
	res, err := r.store.Search(ctx, &db.Query{
		IndexName:    db.IndexName(r.keyPrefix, domprod.Collection),
		Query:        db.MatchAll,
		Limit:        db.MaxSearchResults,
		ReturnFields: []string{"$"},
	})
	if err != nil {
		return nil, fmt.Errorf("search all %s: %w", domprod.Collection, err)
	}

	if res == nil {
		return []domprod.Product{}, nil
	}

	products := make([]domprod.Product, 0, len(res.Entries))
	for _, entry := range res.Entries {
		var p domprod.Product
		if err := json.Unmarshal([]byte(entry.Fields["$"]), &p); err != nil {
			return nil, fmt.Errorf("decode %s: %w", entry.Key, err)
		}
		p.SetID(db.HitID(r.keyPrefix, domprod.Collection, entry.Key))
		products = append(products, p)
	}
	return products, nil
}

// GetByID returns the product stored under id, or nil when there is none.
func (r *Repo) GetByID(ctx context.Context, id string) (*domprod.Product, error) {
	p, err := r.load(ctx, id)
	if errors.Is(err, db.ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

// Update replaces the stored product keeping its creation time.
// It returns false when no product exists under p.ID.
func (r *Repo) Update(ctx context.Context, p *domprod.Product) (bool, error) {
	current, err := r.load(ctx, p.ID)
	if errors.Is(err, db.ErrKeyNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	next := *p
	next.Created = current.Created

	data, err := json.Marshal(&next)
	if err != nil {
		return false, fmt.Errorf("marshal product: %w", err)
	}

	key := r.key(p.ID)
	ok, err := r.store.JSONSet(ctx, key, "$", data, db.SetIfPresent)
	if err != nil {
		return false, fmt.Errorf("json.set %s: %w", key, err)
	}
	return ok, nil
}

// Delete removes the product stored under id and reports whether it existed.
func (r *Repo) Delete(ctx context.Context, id string) (bool, error) {
	key := r.key(id)
	ok, err := r.store.Del(ctx, key)
	if err != nil {
		return false, fmt.Errorf("del %s: %w", key, err)
	}
	return ok, nil
}

func (r *Repo) load(ctx context.Context, id string) (*domprod.Product, error) {
	key := r.key(id)
	raw, err := r.store.JSONGet(ctx, key, "$")
	if err != nil {
		if errors.Is(err, db.ErrKeyNotFound) {
			return nil, db.ErrKeyNotFound
		}
		return nil, fmt.Errorf("json.get %s: %w", key, err)
	}

	// JSON.GET with a $ path wraps the document in an array.
	var docs []domprod.Product
	if err := json.Unmarshal(raw, &docs); err != nil {
		return nil, fmt.Errorf("decode %s: %w", key, err)
	}
	if len(docs) == 0 {
		return nil, db.ErrKeyNotFound
	}
	p := docs[0]
	p.SetID(id)
	return &p, nil
}

func (r *Repo) key(id string) string {
	return db.DocKey(r.keyPrefix, domprod.Collection, id)
}
