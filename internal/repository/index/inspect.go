package index

import (
	"context"
	"errors"
	"fmt"

	"github.com/kailas-cloud/storefront/internal/db"
)

// inspector is the consumer interface for index status (ISP).
type inspector interface {
	IndexExists(ctx context.Context, name string) (bool, error)
	SearchCount(ctx context.Context, index, query string) (int, error)
}

// dropper is the consumer interface for index removal (ISP).
type dropper interface {
	DropIndex(ctx context.Context, name string) error
}

// State describes one index as the engine currently sees it.
type State struct {
	Name      string
	Exists    bool
	Documents int
}

// Inspect reports existence and document count for every index in defs.
func Inspect(ctx context.Context, s inspector, defs ...*db.IndexDefinition) ([]State, error) {
	states := make([]State, 0, len(defs))
	for _, def := range defs {
		st := State{Name: def.Name}

		exists, err := s.IndexExists(ctx, def.Name)
		if err != nil {
			return nil, fmt.Errorf("probe index %s: %w", def.Name, err)
		}
		st.Exists = exists

		if exists {
			n, err := s.SearchCount(ctx, def.Name, db.MatchAll)
			if err != nil {
				return nil, fmt.Errorf("count index %s: %w", def.Name, err)
			}
			st.Documents = n
		}
		states = append(states, st)
	}
	return states, nil
}

// Drop removes every index in defs, keeping the documents. An index that is
// already gone is not an error. It reports whether each index was dropped.
func Drop(ctx context.Context, s dropper, defs ...*db.IndexDefinition) ([]Outcome, error) {
	outcomes := make([]Outcome, 0, len(defs))
	for _, def := range defs {
		err := s.DropIndex(ctx, def.Name)
		switch {
		case err == nil:
			outcomes = append(outcomes, Outcome{Name: def.Name, Dropped: true})
		case errors.Is(err, db.ErrIndexNotFound):
			outcomes = append(outcomes, Outcome{Name: def.Name})
		default:
			return nil, fmt.Errorf("drop index %s: %w", def.Name, err)
		}
	}
	return outcomes, nil
}
