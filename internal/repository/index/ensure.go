package index

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/kailas-cloud/storefront/internal/db"
	"github.com/kailas-cloud/storefront/internal/logger"
)

// indexCreator is the consumer interface for index bootstrap (ISP).
type indexCreator interface {
	CreateIndex(ctx context.Context, def *db.IndexDefinition) error
}

// Outcome reports what EnsureIndexes or Drop did for one index.
type Outcome struct {
	Name    string
	Created bool
	Dropped bool
}

// EnsureIndexes creates every index in defs concurrently. An index that already
// exists is left untouched and reported with Created=false. Outcomes follow the order of defs.
func EnsureIndexes(ctx context.Context, s indexCreator, defs ...*db.IndexDefinition) ([]Outcome, error) {
	log := logger.FromContext(ctx)
	outcomes := make([]Outcome, len(defs))

	g, gctx := errgroup.WithContext(ctx)
	for i, def := range defs {
		g.Go(func() error {
			outcomes[i].Name = def.Name
			err := s.CreateIndex(gctx, def)
			switch {
			case err == nil:
				outcomes[i].Created = true
				log.Info("index created", zap.String("index", def.Name))
			case errors.Is(err, db.ErrIndexExists):
				log.Debug("index already exists", zap.String("index", def.Name))
			default:
				return fmt.Errorf("create index %s: %w", def.Name, err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err //nolint:wrapcheck // already wrapped per index
	}
	return outcomes, nil
}
