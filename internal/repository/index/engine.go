package index

import (
	"context"
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"github.com/kailas-cloud/storefront/internal/db"
	"github.com/kailas-cloud/storefront/internal/logger"
)

// configSetter is the consumer interface for engine tuning (ISP).
type configSetter interface {
	ConfigSet(ctx context.Context, name, value string) error
}

// Setting is one runtime query engine option.
type Setting struct {
	Name  string
	Value string
}

// EngineSettings lets TAG prefix queries match from the first character and
// expand to as many tags as an unrestricted query returns documents.
// The engine defaults are a two-character minimum and 200 expansions.
var EngineSettings = []Setting{
	{Name: "search-min-prefix", Value: "1"},
	{Name: "search-max-prefix-expansions", Value: strconv.Itoa(db.MaxSearchResults)},
}

// ConfigureEngine applies EngineSettings. The options are server-wide and are lost
// on engine restart, so it runs on every start.
func ConfigureEngine(ctx context.Context, s configSetter) error {
	log := logger.FromContext(ctx)
	for _, opt := range EngineSettings {
		if err := s.ConfigSet(ctx, opt.Name, opt.Value); err != nil {
			return fmt.Errorf("set %s: %w", opt.Name, err)
		}
		log.Debug("engine option set", zap.String("name", opt.Name), zap.String("value", opt.Value))
	}
	return nil
}
