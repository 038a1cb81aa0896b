package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/kailas-cloud/storefront/internal/logger"
	ecommercerepo "github.com/kailas-cloud/storefront/internal/repository/ecommerce"
	"github.com/kailas-cloud/storefront/internal/usecase/seed"
)

func seedCmd(flags *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load sample data",
	}

	var workers int
	orders := &cobra.Command{
		Use:   "orders <file|->",
		Short: "Load ecommerce orders from an NDJSON file or an Elasticsearch bulk export",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var in io.Reader = cmd.InOrStdin()
			if args[0] != "-" {
				f, err := os.Open(filepath.Clean(args[0]))
				if err != nil {
					return fmt.Errorf("open %s: %w", args[0], err)
				}
				defer f.Close()
				in = f
			}

			a, err := bootstrap(cmd.Context(), flags)
			if err != nil {
				return err
			}
			defer a.close()

			ctx := logger.ContextWithLogger(cmd.Context(), a.logger)
			if _, err := a.ensureIndexes(ctx); err != nil {
				return fmt.Errorf("ensure indexes: %w", err)
			}

			writer := ecommercerepo.New(a.store, a.cfg.Storage.KeyPrefix)
			res, err := seed.New(writer).WithWorkers(workers).Load(ctx, in)
			fmt.Fprintf(cmd.OutOrStdout(), "stored %d, failed %d, skipped %d in %s\n",
				res.Processed, res.Failed, res.Skipped, res.Duration)
			return err
		},
	}
	orders.Flags().IntVar(&workers, "workers", 8, "Concurrent writers")

	cmd.AddCommand(orders)
	return cmd
}
