package ecommerce

import (
	"context"

	"github.com/kailas-cloud/storefront/internal/domain/ecommerce"
	"github.com/kailas-cloud/storefront/internal/domain/query"
)

// Repository runs query specs against the order collection.
type Repository interface {
	Execute(ctx context.Context, spec query.Spec) ([]ecommerce.Order, error)
}
