package main

import (
	"fmt"
	"log/slog"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/arjunks/khata/internal/engine"
)

func reconcileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reconcile [statement files...]",
		Short: "Reconcile statement files against the reference ledger",
		Long: `Extract transactions from bank and credit-card statement exports, match
each one against the reference ledger, and rebuild the merchant mapping
store with the results.

The statement layout is detected from each filename. Files that cannot be
parsed are skipped with a warning; an unreadable reference ledger aborts
the run before the store is touched.

Examples:
  khata reconcile --reference input.csv ~/statements/*.xls
  khata reconcile --reference input.csv --user 2 Acct_Statement_Jan.xls CC_Statement_2026-01.xlsx`,
		Args: cobra.MinimumNArgs(1),
		RunE: runReconcile,
	}

	cmd.Flags().StringP("reference", "r", "", "path to the reference ledger CSV (required)")
	cmd.Flags().Int64P("user", "u", 1, "user scope for the rebuilt mappings")
	_ = cmd.MarkFlagRequired("reference")

	return cmd
}

func runReconcile(cmd *cobra.Command, args []string) error {
	referencePath, _ := cmd.Flags().GetString("reference")
	userID, _ := cmd.Flags().GetInt64("user")

	files, err := expandPaths(args)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no statement files found")
	}

	ctx := cmd.Context()
	store, err := initStorage(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	slog.Info("Starting reconciliation",
		"reference", referencePath,
		"files", len(files),
		"user", userID)

	bar := progressbar.NewOptions(len(files),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription("Reconciling statements..."),
	)

	rec := engine.New(store)
	rec.OnFileProcessed(func(_ string) { _ = bar.Add(1) })

	summary, err := rec.Run(ctx, engine.Options{
		ReferencePath:  referencePath,
		StatementPaths: files,
		UserID:         userID,
	})
	_ = bar.Finish()
	fmt.Println()
	if err != nil {
		return fmt.Errorf("reconciliation failed: %w", err)
	}

	slog.Info("Reconciliation summary",
		"total", summary.Total,
		"matched", summary.Matched,
		"fallback", summary.Fallback)

	return nil
}
