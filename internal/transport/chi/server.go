package chi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/kailas-cloud/storefront/internal/domain/product"
	"github.com/kailas-cloud/storefront/internal/domain/query"
	ecommerceuc "github.com/kailas-cloud/storefront/internal/usecase/ecommerce"
	healthuc "github.com/kailas-cloud/storefront/internal/usecase/health"
	productuc "github.com/kailas-cloud/storefront/internal/usecase/product"
)

// maxBodyBytes bounds product request bodies.
const maxBodyBytes = 1 << 20

// Server exposes the product and order services over HTTP.
type Server struct {
	products *productuc.Service
	orders   *ecommerceuc.Service
	health   *healthuc.Service
	logger   *zap.Logger
}

// NewServer creates an HTTP API server.
func NewServer(
	products *productuc.Service,
	orders *ecommerceuc.Service,
	health *healthuc.Service,
	logger *zap.Logger,
) *Server {
	return &Server{products: products, orders: orders, health: health, logger: logger}
}

// Register mounts every route on r.
func (s *Server) Register(r chi.Router) {
	r.Get("/health", s.HealthCheck)
	r.Handle("/metrics", promhttp.Handler())

	r.Post("/api/products", s.CreateProduct)
	r.Get("/api/products", s.ListProducts)
	r.Put("/api/products", s.UpdateProduct)
	r.Get("/api/products/search", s.SearchProducts)
	r.Get("/api/products/{id}", s.GetProduct)
	r.Delete("/api/products/{id}", s.DeleteProduct)

	r.Get("/api/ecommerce/term", s.OrdersByTerm)
	r.Get("/api/ecommerce/terms", s.OrdersByTerms)
	r.Get("/api/ecommerce/prefix", s.OrdersByPrefix)
	r.Get("/api/ecommerce/range", s.OrdersByRange)
	r.Get("/api/ecommerce/customers/{firstName}", s.OrdersByCustomerFirstName)
}

// CreateProduct handles POST /api/products.
func (s *Server) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var cmd productuc.CreateCommand
	if err := decodeBody(w, r, &cmd); err != nil {
		badRequest(w, err.Error())
		return
	}
	env, err := s.products.Create(r.Context(), cmd)
	respond(w, r, s.logger, env, err)
}

// ListProducts handles GET /api/products.
func (s *Server) ListProducts(w http.ResponseWriter, r *http.Request) {
	env, err := s.products.GetAll(r.Context())
	respond(w, r, s.logger, env, err)
}

// GetProduct handles GET /api/products/{id}.
func (s *Server) GetProduct(w http.ResponseWriter, r *http.Request) {
	env, err := s.products.GetByID(r.Context(), chi.URLParam(r, "id"))
	respond(w, r, s.logger, env, err)
}

// UpdateProduct handles PUT /api/products.
func (s *Server) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	var cmd productuc.UpdateCommand
	if err := decodeBody(w, r, &cmd); err != nil {
		badRequest(w, err.Error())
		return
	}
	if cmd.ID == "" {
		badRequest(w, "id is required")
		return
	}
	env, err := s.products.Update(r.Context(), cmd)
	respond(w, r, s.logger, env, err)
}

// DeleteProduct handles DELETE /api/products/{id}.
func (s *Server) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	env, err := s.products.Delete(r.Context(), chi.URLParam(r, "id"))
	respond(w, r, s.logger, env, err)
}

// SearchProducts handles GET /api/products/search?name_prefix= or ?min_price=&max_price=.
func (s *Server) SearchProducts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var spec query.Spec
	switch {
	case q.Has("name_prefix"):
		spec = query.Prefix{Field: product.FieldName, Prefix: q.Get("name_prefix")}
	case q.Has("min_price") || q.Has("max_price"):
		lower, err := optionalFloat(q.Get("min_price"))
		if err != nil {
			badRequest(w, "min_price: "+err.Error())
			return
		}
		upper, err := optionalFloat(q.Get("max_price"))
		if err != nil {
			badRequest(w, "max_price: "+err.Error())
			return
		}
		spec = query.Range{Field: product.FieldPrice, Lower: lower, Upper: upper}
	default:
		badRequest(w, "name_prefix or min_price/max_price is required")
		return
	}

	env, err := s.products.Search(r.Context(), spec)
	respond(w, r, s.logger, env, err)
}

// OrdersByTerm handles GET /api/ecommerce/term?field=&value=&case_sensitive=.
func (s *Server) OrdersByTerm(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var caseSensitive *bool
	if raw := q.Get("case_sensitive"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			badRequest(w, fmt.Sprintf("case_sensitive: invalid boolean %q", raw))
			return
		}
		caseSensitive = &v
	}

	env, err := s.orders.Term(r.Context(), q.Get("field"), q.Get("value"), caseSensitive)
	respond(w, r, s.logger, env, err)
}

// OrdersByTerms handles GET /api/ecommerce/terms?field=&value=a&value=b.
func (s *Server) OrdersByTerms(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	env, err := s.orders.Terms(r.Context(), q.Get("field"), q["value"])
	respond(w, r, s.logger, env, err)
}

// OrdersByPrefix handles GET /api/ecommerce/prefix?field=&prefix=.
func (s *Server) OrdersByPrefix(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	env, err := s.orders.Prefix(r.Context(), q.Get("field"), q.Get("prefix"))
	respond(w, r, s.logger, env, err)
}

// OrdersByRange handles GET /api/ecommerce/range?field=&gte=&lte=.
func (s *Server) OrdersByRange(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	lower, err := optionalFloat(q.Get("gte"))
	if err != nil {
		badRequest(w, "gte: "+err.Error())
		return
	}
	upper, err := optionalFloat(q.Get("lte"))
	if err != nil {
		badRequest(w, "lte: "+err.Error())
		return
	}

	env, err := s.orders.Range(r.Context(), q.Get("field"), lower, upper)
	respond(w, r, s.logger, env, err)
}

// OrdersByCustomerFirstName handles GET /api/ecommerce/customers/{firstName}.
func (s *Server) OrdersByCustomerFirstName(w http.ResponseWriter, r *http.Request) {
	env, err := s.orders.CustomerFirstName(r.Context(), chi.URLParam(r, "firstName"))
	respond(w, r, s.logger, env, err)
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	httpStatus := http.StatusOK
	if report.Status != healthuc.Healthy {
		httpStatus = http.StatusServiceUnavailable
	}
	writeJSON(w, httpStatus, report)
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}
	return nil
}

func optionalFloat(raw string) (*float64, error) {
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid number %q", raw)
	}
	return &v, nil
}
