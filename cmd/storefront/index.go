package main

import (
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/kailas-cloud/storefront/internal/logger"
	"github.com/kailas-cloud/storefront/internal/repository/index"
)

func indexCmd(flags *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "index",
		Short: "Manage search indexes",
	}

	cmd.AddCommand(indexEnsureCmd(flags))
	cmd.AddCommand(indexStatusCmd(flags))
	cmd.AddCommand(indexDropCmd(flags))

	return cmd
}

func indexEnsureCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "ensure",
		Short: "Create the product and order indexes if they are missing",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := bootstrap(cmd.Context(), flags)
			if err != nil {
				return err
			}
			defer a.close()

			if err := a.configureEngine(cmd.Context()); err != nil {
				return err
			}
			outcomes, err := a.ensureIndexes(cmd.Context())
			if err != nil {
				return err
			}
			for _, o := range outcomes {
				state := "exists"
				if o.Created {
					state = "created"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", o.Name, state)
			}
			return nil
		},
	}
}

func indexStatusCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show whether each index exists and how many documents it holds",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := bootstrap(cmd.Context(), flags)
			if err != nil {
				return err
			}
			defer a.close()

			defs, err := index.All(a.naming())
			if err != nil {
				return err
			}
			states, err := index.Inspect(cmd.Context(), a.store, defs...)
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "INDEX\tSTATE\tDOCUMENTS")
			for _, st := range states {
				if !st.Exists {
					fmt.Fprintf(tw, "%s\tmissing\t-\n", st.Name)
					continue
				}
				fmt.Fprintf(tw, "%s\tok\t%d\n", st.Name, st.Documents)
			}
			return tw.Flush()
		},
	}
}

func indexDropCmd(flags *globalFlags) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "drop",
		Short: "Drop the product and order indexes, keeping the documents",
		Long: `Drop the product and order indexes. Documents stay in place and are
re-indexed by the next "index ensure". Use it after changing the schema,
since ensure never alters an existing index.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return errors.New("refusing to drop indexes without --yes")
			}

			a, err := bootstrap(cmd.Context(), flags)
			if err != nil {
				return err
			}
			defer a.close()

			defs, err := index.All(a.naming())
			if err != nil {
				return err
			}
			ctx := logger.ContextWithLogger(cmd.Context(), a.logger)
			outcomes, err := index.Drop(ctx, a.store, defs...)
			if err != nil {
				return err
			}
			for _, o := range outcomes {
				state := "absent"
				if o.Dropped {
					state = "dropped"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", o.Name, state)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&yes, "yes", false, "Confirm dropping the indexes")

	return cmd
}
