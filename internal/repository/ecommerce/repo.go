package ecommerce

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/kailas-cloud/storefront/internal/db"
	domecom "github.com/kailas-cloud/storefront/internal/domain/ecommerce"
)

// ErrMissingID is returned by Put for an order with neither an id nor an order number.
var ErrMissingID = errors.New("order has no id or order_id")

// store is the consumer interface for order records (ISP).
type store interface {
	JSONSet(ctx context.Context, key, path string, data []byte, mode db.SetMode) (bool, error)
}

// Repo writes sample orders as JSON documents.
type Repo struct {
	store     store
	keyPrefix string
}

// New creates an order writer.
func New(s store, keyPrefix string) *Repo {
	return &Repo{store: s, keyPrefix: keyPrefix}
}

// Put stores o, replacing any previous version, and returns its identifier.
// An order without an id is keyed by its order number.
func (r *Repo) Put(ctx context.Context, o *domecom.Order) (string, error) {
	doc := *o
	if doc.ID == "" {
		if doc.OrderID == 0 {
			return "", ErrMissingID
		}
		doc.ID = strconv.Itoa(doc.OrderID)
	}

	data, err := json.Marshal(&doc)
	if err != nil {
		return "", fmt.Errorf("marshal order: %w", err)
	}

	key := db.DocKey(r.keyPrefix, domecom.Collection, doc.ID)
	if _, err := r.store.JSONSet(ctx, key, "$", data, db.SetAlways); err != nil {
		return "", fmt.Errorf("json.set %s: %w", key, err)
	}
	return doc.ID, nil
}
