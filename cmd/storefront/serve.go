package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	domecom "github.com/kailas-cloud/storefront/internal/domain/ecommerce"
	domprod "github.com/kailas-cloud/storefront/internal/domain/product"
	"github.com/kailas-cloud/storefront/internal/metrics"
	productrepo "github.com/kailas-cloud/storefront/internal/repository/product"
	queryrepo "github.com/kailas-cloud/storefront/internal/repository/query"
	chiTransport "github.com/kailas-cloud/storefront/internal/transport/chi"
	ecommerceuc "github.com/kailas-cloud/storefront/internal/usecase/ecommerce"
	healthuc "github.com/kailas-cloud/storefront/internal/usecase/health"
	productuc "github.com/kailas-cloud/storefront/internal/usecase/product"
	"github.com/kailas-cloud/storefront/internal/version"
)

func serveCmd(flags *globalFlags) *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return runServe(ctx, flags, port)
		},
	}

	cmd.Flags().IntVar(&port, "port", 0, "Server port to listen on (overrides http.port)")

	return cmd
}

func runServe(ctx context.Context, flags *globalFlags, port int) error {
	a, err := bootstrap(ctx, flags)
	if err != nil {
		return err
	}
	defer a.close()

	cfg := a.cfg
	if port > 0 {
		cfg.HTTP.Port = port
	}
	log := a.logger

	log.Info("Starting storefront API server",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", a.env),
		zap.Int("http_port", cfg.HTTP.Port),
	)

	if err := a.configureEngine(ctx); err != nil {
		return err
	}
	if cfg.Index.EnsureOnStart {
		if _, err := a.ensureIndexes(ctx); err != nil {
			return fmt.Errorf("ensure indexes: %w", err)
		}
	}

	queryMetrics := metrics.NewQueryMetrics()
	queryMetrics.MustRegister(prometheus.DefaultRegisterer)

	opts := queryrepo.Options{
		KeyPrefix:           cfg.Storage.KeyPrefix,
		KeywordSuffix:       cfg.Query.KeywordSuffix,
		CaseSensitiveSuffix: cfg.Query.CaseSensitiveSuffix,
		CaseSensitive:       cfg.Query.CaseSensitive,
		PageSize:            cfg.Query.PageSize,
		TermsPageSize:       cfg.Query.TermsPageSize,
	}
	productQueries := queryrepo.New[domprod.Product](a.store, domprod.Collection, opts).
		WithMetrics(queryMetrics).
		WithLogger(log)
	orderQueries := queryrepo.New[domecom.Order](a.store, domecom.Collection, opts).
		WithMetrics(queryMetrics).
		WithLogger(log)

	products := productuc.New(productrepo.New(a.store, cfg.Storage.KeyPrefix)).
		WithSearch(productQueries)
	orders := ecommerceuc.New(orderQueries)

	indexNames, err := a.indexNames()
	if err != nil {
		return err
	}
	health := healthuc.New(a.store, a.store, indexNames...)

	server := chiTransport.NewServer(products, orders, health, log)

	r := chi.NewRouter()
	r.Use(chiTransport.JSONRecoverer(log))
	r.Use(chiMiddleware.RequestID)
	r.Use(chiTransport.WideEvent(log))
	r.Use(chiTransport.CORS(cfg.HTTP.CORSOrigins))
	r.Use(chiTransport.BearerAuthMiddleware(cfg.Auth.APIKeys))
	r.Use(metrics.Middleware())
	server.Register(r)

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadTimeout:       time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		ReadHeaderTimeout: time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout:      time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Info("Starting HTTP server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
		log.Info("Received shutdown signal")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.HTTP.ShutdownSec)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Error during shutdown", zap.Error(err))
		return err
	}

	log.Info("Server stopped gracefully")
	return nil
}
