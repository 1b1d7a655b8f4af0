package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func mappingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mappings",
		Short: "Inspect stored merchant mappings",
		Long:  `View the merchant mappings produced by the last reconciliation run.`,
	}

	cmd.AddCommand(mappingsListCmd())

	return cmd
}

func mappingsListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stored merchant mappings",
		RunE: func(cmd *cobra.Command, _ []string) error {
			userID, _ := cmd.Flags().GetInt64("user")

			ctx := cmd.Context()
			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			mappings, err := store.ListMappings(ctx, userID)
			if err != nil {
				return fmt.Errorf("failed to list mappings: %w", err)
			}

			if len(mappings) == 0 {
				fmt.Println("No mappings stored. Run 'khata reconcile' first.")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer func() { _ = w.Flush() }()

			fmt.Fprintln(w, "AMOUNT\tSTATEMENT TITLE\tMAPPED TITLE\tCATEGORY ID")
			for _, m := range mappings {
				category := "-"
				if m.CategoryID != nil {
					category = fmt.Sprintf("%d", *m.CategoryID)
				}
				fmt.Fprintf(w, "%.2f\t%s\t%s\t%s\n", m.Amount, m.StatementTitle, m.MappedTitle, category)
			}

			return nil
		},
	}

	cmd.Flags().Int64P("user", "u", 1, "user scope to list")

	return cmd
}
