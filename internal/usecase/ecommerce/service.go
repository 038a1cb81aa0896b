package ecommerce

import (
	"context"

	"go.uber.org/zap"

	"github.com/kailas-cloud/storefront/internal/domain/ecommerce"
	"github.com/kailas-cloud/storefront/internal/domain/query"
	"github.com/kailas-cloud/storefront/internal/logger"
	"github.com/kailas-cloud/storefront/internal/response"
)

// Orders is the envelope every lookup returns.
type Orders = response.Envelope[[]ecommerce.Order]

// Service answers term, terms, prefix and range lookups over sample orders.
type Service struct {
	repo Repository
}

// New creates an ecommerce query service.
func New(repo Repository) *Service {
	return &Service{repo: repo}
}

// Term returns orders whose field equals value. A nil caseSensitive uses the repository default.
func (s *Service) Term(ctx context.Context, field, value string, caseSensitive *bool) (Orders, error) {
	return s.run(ctx, query.Term{Field: field, Value: value, CaseSensitive: caseSensitive})
}

// Terms returns orders whose field equals any of values.
func (s *Service) Terms(ctx context.Context, field string, values []string) (Orders, error) {
	return s.run(ctx, query.Terms{Field: field, Values: values})
}

// Prefix returns orders whose field starts with prefix.
func (s *Service) Prefix(ctx context.Context, field, prefix string) (Orders, error) {
	return s.run(ctx, query.Prefix{Field: field, Prefix: prefix})
}

// Range returns orders whose numeric field lies within [lower, upper].
func (s *Service) Range(ctx context.Context, field string, lower, upper *float64) (Orders, error) {
	return s.run(ctx, query.Range{Field: field, Lower: lower, Upper: upper})
}

// CustomerFirstName returns orders placed by customers with the given first name.
func (s *Service) CustomerFirstName(ctx context.Context, name string) (Orders, error) {
	return s.run(ctx, query.NewTerm(ecommerce.FieldCustomerFirstName, name))
}

func (s *Service) run(ctx context.Context, spec query.Spec) (Orders, error) {
	orders, err := s.repo.Execute(ctx, spec)
	if err != nil {
		if msg, ok := query.Rejected(err); ok {
			return response.Fail[[]ecommerce.Order](response.BadRequest, msg), nil
		}
		logger.FromContext(ctx).Error("order query",
			zap.String("kind", string(spec.Kind())),
			zap.String("field", spec.FieldName()),
			zap.Error(err),
		)
		return Orders{}, err
	}
	if orders == nil {
		orders = []ecommerce.Order{}
	}
	return response.Success(orders, response.OK), nil
}
