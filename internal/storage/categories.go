package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/arjunks/khata/internal/common"
	"github.com/arjunks/khata/internal/model"
)

// GetCategories returns all categories ordered by name.
func (s *SQLiteStorage) GetCategories(ctx context.Context) ([]model.Category, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, created_at
		FROM categories
		ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var categories []model.Category
	for rows.Next() {
		var cat model.Category
		if err := rows.Scan(&cat.ID, &cat.Name, &cat.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, cat)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating categories: %w", err)
	}

	slog.Debug("retrieved categories", "count", len(categories))
	return categories, nil
}

// AddCategory creates a category and returns it. Adding an existing name
// returns the stored category unchanged.
func (s *SQLiteStorage) AddCategory(ctx context.Context, name string) (*model.Category, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(name, "name"); err != nil {
		return nil, err
	}

	var existing model.Category
	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, created_at FROM categories WHERE name = ?`, name).
		Scan(&existing.ID, &existing.Name, &existing.CreatedAt)
	if err == nil {
		return &existing, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("failed to check category: %w", err)
	}

	res, err := s.db.ExecContext(ctx, `INSERT INTO categories (name) VALUES (?)`, name)
	if err != nil {
		return nil, fmt.Errorf("failed to insert category: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get category id: %w", err)
	}

	return &model.Category{ID: id, Name: name}, nil
}

// CategoryIDByName resolves a category name case-insensitively. Returns
// common.ErrNotFound when no catalog entry matches; callers treat that as a
// null category, not a failure.
func (s *SQLiteStorage) CategoryIDByName(ctx context.Context, name string) (int64, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}
	if err := validateString(name, "name"); err != nil {
		return 0, err
	}

	var id int64
	err := s.db.QueryRowContext(ctx, `
		SELECT id FROM categories WHERE name = ? COLLATE NOCASE`, name).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, common.ErrNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("failed to query category by name: %w", err)
	}
	return id, nil
}
