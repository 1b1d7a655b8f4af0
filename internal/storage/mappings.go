package storage

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/arjunks/khata/internal/model"
)

// RebuildMappings replaces the user's mapping rows with the given entries.
// The clear commits before the insert phase begins: an insert failure leaves
// the store partially rebuilt and the whole run must be treated as needing a
// re-run. Entries are stored as given; deduplication is the caller's job.
func (s *SQLiteStorage) RebuildMappings(ctx context.Context, userID int64, entries []model.MappingEntry) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateUserID(userID); err != nil {
		return err
	}

	if _, err := s.db.ExecContext(ctx, `DELETE FROM merchant_mappings WHERE user_id = ?`, userID); err != nil {
		return fmt.Errorf("failed to clear merchant mappings: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO merchant_mappings
			(user_id, amount, statement_title, clean_title, mapped_title, category_id, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for _, e := range entries {
		createdAt := e.CreatedAt
		if createdAt.IsZero() {
			createdAt = time.Now().UTC()
		}

		if _, err := stmt.ExecContext(ctx, userID, e.Amount, e.StatementTitle,
			e.CleanTitle, e.MappedTitle, e.CategoryID, createdAt.Format(time.RFC3339)); err != nil {
			return fmt.Errorf("failed to insert mapping for %q: %w", e.StatementTitle, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit mappings: %w", err)
	}

	slog.Info("rebuilt merchant mappings", "user_id", userID, "count", len(entries))
	return nil
}

// ListMappings returns the user's stored mappings in insertion order.
func (s *SQLiteStorage) ListMappings(ctx context.Context, userID int64) ([]model.MappingEntry, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateUserID(userID); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT user_id, amount, statement_title, clean_title, mapped_title, category_id, created_at
		FROM merchant_mappings
		WHERE user_id = ?
		ORDER BY id`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query merchant mappings: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var entries []model.MappingEntry
	for rows.Next() {
		var e model.MappingEntry
		var createdAt string
		if err := rows.Scan(&e.UserID, &e.Amount, &e.StatementTitle,
			&e.CleanTitle, &e.MappedTitle, &e.CategoryID, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan mapping: %w", err)
		}
		if ts, err := time.Parse(time.RFC3339, createdAt); err == nil {
			e.CreatedAt = ts
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}
