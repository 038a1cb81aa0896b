package main

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/storefront/internal/config"
	dbRedis "github.com/kailas-cloud/storefront/internal/db/redis"
	"github.com/kailas-cloud/storefront/internal/logger"
	"github.com/kailas-cloud/storefront/internal/repository/index"
)

// app holds the process-wide dependencies every subcommand starts from.
type app struct {
	env    string
	cfg    config.Config
	logger *zap.Logger
	store  *dbRedis.Store
}

// bootstrap loads configuration, builds the logger and connects to the engine.
func bootstrap(ctx context.Context, flags *globalFlags) (*app, error) {
	if err := config.LoadDotEnv(flags.envFile); err != nil {
		return nil, err
	}

	env := config.GetEnv()

	var (
		cfg config.Config
		err error
	)
	if flags.configFile != "" {
		cfg, err = config.LoadFile(flags.configFile)
	} else {
		cfg, err = config.Load(env)
	}
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	log, err := logger.NewLogger(env, cfg.Logging.Level)
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}

	store, err := dbRedis.NewStore(dbRedis.Config{
		Addrs:    cfg.Database.Addrs,
		Username: cfg.Database.Username,
		Password: cfg.Database.Password,
		DB:       cfg.Database.DB,
		Timeout:  time.Duration(cfg.Database.CommandTimeoutMs) * time.Millisecond,
	})
	if err != nil {
		_ = log.Sync()
		return nil, fmt.Errorf("create store: %w", err)
	}

	readiness := time.Duration(cfg.Database.ReadinessTimeout) * time.Second
	if err := store.WaitForReady(ctx, readiness); err != nil {
		store.Close()
		_ = log.Sync()
		return nil, fmt.Errorf("database not ready: %w", err)
	}
	log.Info("Connected to database", zap.Strings("db_addrs", cfg.Database.Addrs))

	return &app{env: env, cfg: cfg, logger: log, store: store}, nil
}

func (a *app) close() {
	a.store.Close()
	_ = a.logger.Sync()
}

func (a *app) naming() index.Naming {
	return index.Naming{
		KeyPrefix:           a.cfg.Storage.KeyPrefix,
		KeywordSuffix:       a.cfg.Query.KeywordSuffix,
		CaseSensitiveSuffix: a.cfg.Query.CaseSensitiveSuffix,
	}
}

// configureEngine applies the query engine options prefix queries rely on.
func (a *app) configureEngine(ctx context.Context) error {
	if err := index.ConfigureEngine(logger.ContextWithLogger(ctx, a.logger), a.store); err != nil {
		return fmt.Errorf("configure engine: %w", err)
	}
	return nil
}

// ensureIndexes creates every missing search index.
func (a *app) ensureIndexes(ctx context.Context) ([]index.Outcome, error) {
	defs, err := index.All(a.naming())
	if err != nil {
		return nil, fmt.Errorf("build index definitions: %w", err)
	}
	return index.EnsureIndexes(logger.ContextWithLogger(ctx, a.logger), a.store, defs...)
}

// indexNames lists the index names health checks probe.
func (a *app) indexNames() ([]string, error) {
	defs, err := index.All(a.naming())
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(defs))
	for _, d := range defs {
		names = append(names, d.Name)
	}
	return names, nil
}
