// Package engine orchestrates a reconciliation run: extract transactions
// from statement files, resolve each against the reference ledger and
// rebuild the mapping store.
package engine

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/arjunks/khata/internal/common"
	"github.com/arjunks/khata/internal/matcher"
	"github.com/arjunks/khata/internal/model"
	"github.com/arjunks/khata/internal/normalize"
	"github.com/arjunks/khata/internal/reference"
	"github.com/arjunks/khata/internal/service"
	"github.com/arjunks/khata/internal/sheet"
	"github.com/arjunks/khata/internal/statement"
)

// Options configures one reconciliation run.
type Options struct {
	ReferencePath  string
	StatementPaths []string
	UserID         int64
}

// Summary reports the outcome of a run.
type Summary struct {
	Total    int
	Matched  int
	Fallback int
}

// Reconciler runs reconciliation batches against a storage backend. Runs
// mutate the mapping store and must be serialized by the caller.
type Reconciler struct {
	storage  service.Storage
	progress func(file string)
}

// New creates a reconciler.
func New(storage service.Storage) *Reconciler {
	return &Reconciler{storage: storage}
}

// OnFileProcessed registers a callback invoked after each statement file,
// used by the CLI for progress display.
func (r *Reconciler) OnFileProcessed(fn func(file string)) {
	r.progress = fn
}

// Run executes a full reconciliation. A reference ledger that cannot be
// loaded aborts before any store mutation. Individual statement files that
// fail to read or yield nothing are skipped with a warning.
func (r *Reconciler) Run(ctx context.Context, opts Options) (Summary, error) {
	if len(opts.StatementPaths) == 0 {
		return Summary{}, common.ErrNoStatements
	}

	catalog, err := r.loadCatalog(ctx)
	if err != nil {
		return Summary{}, err
	}

	idx, err := reference.Load(opts.ReferencePath)
	if err != nil {
		return Summary{}, err
	}
	slog.Info("loaded reference ledger", "path", opts.ReferencePath, "records", idx.Len())

	transactions := r.extractAll(opts.StatementPaths)
	slog.Info("extracted statement transactions", "count", len(transactions))

	summary := Summary{}
	seen := make(map[model.MappingKey]struct{})
	entries := make([]model.MappingEntry, 0, len(transactions))
	now := time.Now().UTC()

	for _, txn := range transactions {
		entry := model.MappingEntry{
			UserID:         opts.UserID,
			Amount:         txn.Amount,
			StatementTitle: txn.StatementTitle,
			CleanTitle:     txn.CleanTitle,
			CreatedAt:      now,
		}
		if _, dup := seen[entry.DedupKey()]; dup {
			continue
		}
		seen[entry.DedupKey()] = struct{}{}

		result := matcher.Resolve(txn.StatementTitle, txn.CleanTitle, txn.Amount, idx)
		if result.Matched {
			summary.Matched++
			entry.MappedTitle = result.MappedTitle
		} else {
			summary.Fallback++
			// Unmatched transactions still get a displayable label.
			entry.MappedTitle = txn.CleanTitle
		}

		if result.Category != "" {
			if id, ok := catalog[strings.ToLower(result.Category)]; ok {
				entry.CategoryID = &id
			}
		}

		entries = append(entries, entry)
	}
	summary.Total = len(entries)

	if err := r.storage.RebuildMappings(ctx, opts.UserID, entries); err != nil {
		return Summary{}, fmt.Errorf("%w: %v", common.ErrStoreRebuild, err)
	}

	slog.Info("reconciliation complete",
		"total", summary.Total,
		"matched", summary.Matched,
		"fallback", summary.Fallback)
	return summary, nil
}

// extractAll pulls normalized transactions from every statement file, in
// sorted path order so dedup and tie-breaking stay deterministic.
func (r *Reconciler) extractAll(paths []string) []model.StatementTransaction {
	sorted := make([]string, len(paths))
	copy(sorted, paths)
	sort.Strings(sorted)

	var all []model.StatementTransaction
	for _, path := range sorted {
		name := filepath.Base(path)

		records := r.extractFile(path, name)
		if len(records) == 0 {
			slog.Warn("no transactions found in file", "file", name)
		} else {
			slog.Info("extracted transactions", "file", name, "count", len(records))
		}
		all = append(all, records...)

		if r.progress != nil {
			r.progress(name)
		}
	}
	return all
}

func (r *Reconciler) extractFile(path, name string) []model.StatementTransaction {
	format := statement.DetectFormat(name)
	if format == statement.FormatUnknown {
		slog.Warn("skipping file with unrecognized name", "file", name)
		return nil
	}

	grid, err := sheet.Read(path)
	if err != nil {
		slog.Warn("failed to read statement file", "file", name, "error", err)
		return nil
	}

	records := statement.Extract(grid, format, name)
	for i := range records {
		records[i].CleanTitle = normalize.Clean(records[i].StatementTitle)
	}
	return records
}

func (r *Reconciler) loadCatalog(ctx context.Context) (map[string]int64, error) {
	categories, err := r.storage.GetCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load category catalog: %w", err)
	}

	catalog := make(map[string]int64, len(categories))
	for _, cat := range categories {
		catalog[strings.ToLower(cat.Name)] = cat.ID
	}
	slog.Debug("loaded category catalog", "count", len(catalog))
	return catalog, nil
}
