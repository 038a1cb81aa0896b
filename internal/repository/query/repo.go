package query

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/storefront/internal/db"
	"github.com/kailas-cloud/storefront/internal/domain"
	"github.com/kailas-cloud/storefront/internal/domain/query"
	"github.com/kailas-cloud/storefront/internal/logger"
	"github.com/kailas-cloud/storefront/internal/metrics"
)

// bodyField is the RETURN field carrying the whole JSON document.
const bodyField = "$"

// store is the consumer interface for query execution (ISP).
type store interface {
	Search(ctx context.Context, q *db.Query) (*db.SearchResult, error)
}

// Identifiable is a pointer to a document type whose identifier can be overwritten.
type Identifiable[T any] interface {
	*T
	SetID(id string)
}

// Repo runs query specs against one collection and decodes hits into T.
type Repo[T any, PT Identifiable[T]] struct {
	store      store
	collection string
	index      string
	opts       Options
	metrics    *metrics.QueryMetrics
	logger     *zap.Logger
}

// New creates a query repository bound to collection.
func New[T any, PT Identifiable[T]](s store, collection string, opts Options) *Repo[T, PT] {
	opts = opts.withDefaults()
	return &Repo[T, PT]{
		store:      s,
		collection: collection,
		index:      db.IndexName(opts.KeyPrefix, collection),
		opts:       opts,
	}
}

// WithMetrics records every engine call in m.
func (r *Repo[T, PT]) WithMetrics(m *metrics.QueryMetrics) *Repo[T, PT] {
	r.metrics = m
	return r
}

// WithLogger sets the fallback logger used when the context carries none.
func (r *Repo[T, PT]) WithLogger(l *zap.Logger) *Repo[T, PT] {
	r.logger = l
	return r
}

// Collection returns the bound collection name.
func (r *Repo[T, PT]) Collection() string { return r.collection }

// ExecuteTerm returns documents whose field equals value exactly.
func (r *Repo[T, PT]) ExecuteTerm(ctx context.Context, field, value string, caseSensitive bool) ([]T, error) {
	return r.Execute(ctx, query.NewCaseSensitiveTerm(field, value, caseSensitive))
}

// ExecuteTerms returns documents whose field equals any of values.
func (r *Repo[T, PT]) ExecuteTerms(ctx context.Context, field string, values []string) ([]T, error) {
	return r.Execute(ctx, query.Terms{Field: field, Values: values})
}

// ExecutePrefix returns documents whose field starts with prefix.
func (r *Repo[T, PT]) ExecutePrefix(ctx context.Context, field, prefix string) ([]T, error) {
	return r.Execute(ctx, query.Prefix{Field: field, Prefix: prefix})
}

// ExecuteRange returns documents whose numeric field lies in [lower, upper].
func (r *Repo[T, PT]) ExecuteRange(ctx context.Context, field string, lower, upper *float64) ([]T, error) {
	return r.Execute(ctx, query.Range{Field: field, Lower: lower, Upper: upper})
}

// Execute translates spec, runs it and returns the hits in engine order.
// Every returned document carries the engine hit identifier.
func (r *Repo[T, PT]) Execute(ctx context.Context, spec query.Spec) ([]T, error) {
	q, skip, err := r.Translate(spec)
	if err != nil {
		return nil, fmt.Errorf("translate query on %s: %w", r.collection, err)
	}
	if skip {
		return []T{}, nil
	}

	log := logger.FromContext(ctx, r.logger)
	start := time.Now()
	sr, err := r.store.Search(ctx, &q)
	elapsed := time.Since(start)
	r.metrics.Observe(r.collection, string(spec.Kind()), elapsed, err)

	log.Debug("engine query",
		zap.String("collection", r.collection),
		zap.String("kind", string(spec.Kind())),
		zap.String("query", q.Query),
		zap.Int("limit", q.Limit),
		zap.Duration("elapsed", elapsed),
		zap.Error(err),
	)

	if err != nil {
		return nil, fmt.Errorf("%s query on %s: %w", spec.Kind(), r.collection, r.engineError(q, err))
	}

	docs, err := r.decode(sr)
	if err != nil {
		return nil, fmt.Errorf("%s query on %s: %w", spec.Kind(), r.collection, r.engineError(q, err))
	}
	return docs, nil
}

// Translate converts spec into an engine query without touching the engine.
// skip reports that the result is known to be empty and no call is needed.
func (r *Repo[T, PT]) Translate(spec query.Spec) (q db.Query, skip bool, err error) {
	if spec == nil {
		return db.Query{}, false, errors.New("query spec is required")
	}
	if err := spec.Validate(); err != nil {
		return db.Query{}, false, err
	}

	q = db.Query{
		IndexName:    r.index,
		Limit:        r.opts.PageSize,
		ReturnFields: []string{bodyField},
	}

	switch s := spec.(type) {
	case query.Term:
		cs := r.opts.CaseSensitive
		if s.CaseSensitive != nil {
			cs = *s.CaseSensitive
		}
		q.Query = db.TagQuery(r.keywordAttr(s.Field, cs), s.Value)
	case query.Terms:
		values := s.Distinct()
		if len(values) == 0 {
			return db.Query{}, true, nil
		}
		q.Query = db.TagQuery(r.keywordAttr(s.Field, r.opts.CaseSensitive), values...)
		q.Limit = r.opts.TermsPageSize
	case query.Prefix:
		q.Query = db.TagPrefixQuery(r.keywordAttr(s.Field, r.opts.CaseSensitive), s.Prefix)
	case query.Range:
		q.Query = db.NumericRangeQuery(s.Field, s.Lower, s.Upper)
	default:
		return db.Query{}, false, fmt.Errorf("unsupported query kind %q", spec.Kind())
	}
	return q, false, nil
}

// keywordAttr maps a base field to its exact-match TAG attribute.
// A field that already carries the keyword suffix is used as given.
func (r *Repo[T, PT]) keywordAttr(field string, caseSensitive bool) string {
	kw := r.opts.KeywordSuffix
	cs := kw + r.opts.CaseSensitiveSuffix
	switch {
	case strings.HasSuffix(field, cs):
		return field
	case strings.HasSuffix(field, kw):
		if caseSensitive {
			return field + r.opts.CaseSensitiveSuffix
		}
		return field
	case caseSensitive:
		return field + cs
	default:
		return field + kw
	}
}

func (r *Repo[T, PT]) decode(sr *db.SearchResult) ([]T, error) {
	if sr == nil {
		return []T{}, nil
	}
	docs := make([]T, 0, len(sr.Entries))
	for _, entry := range sr.Entries {
		body, ok := entry.Fields[bodyField]
		if !ok {
			return nil, fmt.Errorf("hit %s has no document body", entry.Key)
		}
		var doc T
		if err := json.Unmarshal([]byte(body), &doc); err != nil {
			return nil, fmt.Errorf("decode hit %s: %w", entry.Key, err)
		}
		PT(&doc).SetID(db.HitID(r.opts.KeyPrefix, r.collection, entry.Key))
		docs = append(docs, doc)
	}
	return docs, nil
}

func (r *Repo[T, PT]) engineError(q db.Query, err error) error {
	return &domain.EngineQueryError{Collection: r.collection, Query: q.Query, Err: err}
}
