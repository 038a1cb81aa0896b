package chi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/kailas-cloud/storefront/internal/domain/ecommerce"
	"github.com/kailas-cloud/storefront/internal/domain/product"
	"github.com/kailas-cloud/storefront/internal/domain/query"
	ecommerceuc "github.com/kailas-cloud/storefront/internal/usecase/ecommerce"
	healthuc "github.com/kailas-cloud/storefront/internal/usecase/health"
	productuc "github.com/kailas-cloud/storefront/internal/usecase/product"
)

// --- Mocks ---

type mockProducts struct {
	createFn  func(ctx context.Context, p *product.Product) (*product.Product, error)
	getAllFn  func(ctx context.Context) ([]product.Product, error)
	getByIDFn func(ctx context.Context, id string) (*product.Product, error)
	updateFn  func(ctx context.Context, p *product.Product) (bool, error)
	deleteFn  func(ctx context.Context, id string) (bool, error)
}

func (m *mockProducts) Create(ctx context.Context, p *product.Product) (*product.Product, error) {
	if m.createFn != nil {
		return m.createFn(ctx, p)
	}
	out := *p
	out.ID = "generated"
	return &out, nil
}

func (m *mockProducts) GetAll(ctx context.Context) ([]product.Product, error) {
	if m.getAllFn != nil {
		return m.getAllFn(ctx)
	}
	return nil, nil
}

func (m *mockProducts) GetByID(ctx context.Context, id string) (*product.Product, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *mockProducts) Update(ctx context.Context, p *product.Product) (bool, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, p)
	}
	return true, nil
}

func (m *mockProducts) Delete(ctx context.Context, id string) (bool, error) {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return true, nil
}

type mockProductSearch struct {
	executeFn func(ctx context.Context, spec query.Spec) ([]product.Product, error)
	specs     []query.Spec
}

func (m *mockProductSearch) Execute(ctx context.Context, spec query.Spec) ([]product.Product, error) {
	m.specs = append(m.specs, spec)
	if m.executeFn != nil {
		return m.executeFn(ctx, spec)
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	return nil, nil
}

type mockOrders struct {
	executeFn func(ctx context.Context, spec query.Spec) ([]ecommerce.Order, error)
	specs     []query.Spec
}

func (m *mockOrders) Execute(ctx context.Context, spec query.Spec) ([]ecommerce.Order, error) {
	m.specs = append(m.specs, spec)
	if m.executeFn != nil {
		return m.executeFn(ctx, spec)
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	return nil, nil
}

type mockEngine struct {
	pingErr error
	missing map[string]bool
}

func (m *mockEngine) Ping(context.Context) error { return m.pingErr }

func (m *mockEngine) IndexExists(_ context.Context, name string) (bool, error) {
	return !m.missing[name], nil
}

// --- Harness ---

type harness struct {
	products *mockProducts
	search   *mockProductSearch
	orders   *mockOrders
	engine   *mockEngine
	router   http.Handler
}

var fixedNow = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func newHarness(t *testing.T) *harness {
	t.Helper()

	h := &harness{
		products: &mockProducts{},
		search:   &mockProductSearch{},
		orders:   &mockOrders{},
		engine:   &mockEngine{},
	}

	products := productuc.New(h.products).
		WithClock(func() time.Time { return fixedNow }).
		WithSearch(h.search)
	orders := ecommerceuc.New(h.orders)
	health := healthuc.New(h.engine, h.engine, "test:products:idx")

	srv := NewServer(products, orders, health, zap.NewNop())
	r := chi.NewRouter()
	r.Use(JSONRecoverer(zap.NewNop()))
	srv.Register(r)
	h.router = r
	return h
}

func (h *harness) do(method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, http.NoBody)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rr := httptest.NewRecorder()
	h.router.ServeHTTP(rr, req)
	return rr
}
