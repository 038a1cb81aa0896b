package product

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/storefront/internal/domain/query"
	"github.com/kailas-cloud/storefront/internal/logger"
	"github.com/kailas-cloud/storefront/internal/response"
)

// Outcome messages.
const (
	MsgCreationFailed = "creation failed"
	MsgNotFound       = "not found"
	MsgUpdateFailed   = "update failed"
	MsgDeleteFailed   = "delete failed"
)

// errSearchUnavailable is returned by Search on a service built without a Searcher.
var errSearchUnavailable = errors.New("product search is not configured")

// Service handles product lifecycle operations. Business outcomes are returned as
// envelopes; infrastructure faults are returned unchanged as the error.
type Service struct {
	repo   Repository
	search Searcher
	now    func() time.Time
}

// New creates a product service.
func New(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// WithClock replaces the time source used for Created/Updated stamps.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// WithSearch enables Search over the product collection.
func (s *Service) WithSearch(search Searcher) *Service {
	s.search = search
	return s
}

// Create stores a new product.
func (s *Service) Create(ctx context.Context, cmd CreateCommand) (response.Envelope[ProductDTO], error) {
	p, err := cmd.ToProduct(s.now().UTC())
	if err != nil {
		return response.Fail[ProductDTO](response.BadRequest, err.Error()), nil
	}

	created, err := s.repo.Create(ctx, &p)
	if err != nil {
		return s.fault(ctx, "create product", err)
	}
	if created == nil {
		return response.Fail[ProductDTO](response.InternalError, MsgCreationFailed), nil
	}
	return response.Success(ToDTO(*created), response.Created), nil
}

// GetAll lists every product. An empty catalogue is still a success.
func (s *Service) GetAll(ctx context.Context) (response.Envelope[[]ProductDTO], error) {
	products, err := s.repo.GetAll(ctx)
	if err != nil {
		return s.faultList(ctx, "list products", err)
	}
	return response.Success(ToDTOs(products), response.OK), nil
}

// GetByID returns one product.
func (s *Service) GetByID(ctx context.Context, id string) (response.Envelope[ProductDTO], error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return s.fault(ctx, "get product", err)
	}
	if p == nil {
		return response.Fail[ProductDTO](response.NotFound, MsgNotFound), nil
	}
	return response.Success(ToDTO(*p), response.OK), nil
}

// Update replaces an existing product.
func (s *Service) Update(ctx context.Context, cmd UpdateCommand) (response.Envelope[bool], error) {
	p, err := cmd.ToProduct(s.now().UTC())
	if err != nil {
		return response.Fail[bool](response.BadRequest, err.Error()), nil
	}

	ok, err := s.repo.Update(ctx, &p)
	if err != nil {
		logger.FromContext(ctx).Error("update product", zap.String("id", cmd.ID), zap.Error(err))
		return response.Envelope[bool]{}, err
	}
	if !ok {
		return response.Fail[bool](response.InternalError, MsgUpdateFailed), nil
	}
	return response.Success(true, response.NoContent), nil
}

// Delete removes a product.
func (s *Service) Delete(ctx context.Context, id string) (response.Envelope[bool], error) {
	ok, err := s.repo.Delete(ctx, id)
	if err != nil {
		logger.FromContext(ctx).Error("delete product", zap.String("id", id), zap.Error(err))
		return response.Envelope[bool]{}, err
	}
	if !ok {
		return response.Fail[bool](response.InternalError, MsgDeleteFailed), nil
	}
	return response.Success(true, response.NoContent), nil
}

// Search runs a query spec against the product collection.
// Invalid queries are reported as BadRequest envelopes.
func (s *Service) Search(ctx context.Context, spec query.Spec) (response.Envelope[[]ProductDTO], error) {
	if s.search == nil {
		return response.Envelope[[]ProductDTO]{}, errSearchUnavailable
	}

	products, err := s.search.Execute(ctx, spec)
	if err != nil {
		if msg, ok := query.Rejected(err); ok {
			return response.Fail[[]ProductDTO](response.BadRequest, msg), nil
		}
		return s.faultList(ctx, "search products", err)
	}
	return response.Success(ToDTOs(products), response.OK), nil
}

func (s *Service) fault(ctx context.Context, op string, err error) (response.Envelope[ProductDTO], error) {
	logger.FromContext(ctx).Error(op, zap.Error(err))
	return response.Envelope[ProductDTO]{}, err
}

func (s *Service) faultList(ctx context.Context, op string, err error) (response.Envelope[[]ProductDTO], error) {
	logger.FromContext(ctx).Error(op, zap.Error(err))
	return response.Envelope[[]ProductDTO]{}, err
}
