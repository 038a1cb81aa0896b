package product

import (
	"context"

	"github.com/kailas-cloud/storefront/internal/domain/product"
	"github.com/kailas-cloud/storefront/internal/domain/query"
)

// Repository defines the storage contract for products.
// Absence is reported as a nil product or false, never as an error.
type Repository interface {
	Create(ctx context.Context, p *product.Product) (*product.Product, error)
	GetAll(ctx context.Context) ([]product.Product, error)
	GetByID(ctx context.Context, id string) (*product.Product, error)
	Update(ctx context.Context, p *product.Product) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// Searcher runs query specs against the product collection.
type Searcher interface {
	Execute(ctx context.Context, spec query.Spec) ([]product.Product, error)
}
