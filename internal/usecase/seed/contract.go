package seed

import (
	"context"

	"github.com/kailas-cloud/storefront/internal/domain/ecommerce"
)

// Writer stores one order and returns its identifier.
type Writer interface {
	Put(ctx context.Context, o *ecommerce.Order) (string, error)
}
