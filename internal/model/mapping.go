package model

import "time"

// MappingEntry is one persisted reconciliation result: a statement title and
// amount mapped to a canonical merchant title and optional category.
// CategoryID is nil when the resolved category name has no catalog entry or
// the transaction resolved without a category.
type MappingEntry struct {
	CreatedAt      time.Time
	StatementTitle string
	CleanTitle     string
	MappedTitle    string
	CategoryID     *int64
	UserID         int64
	Amount         float64
}

// MappingKey identifies a mapping within one reconciliation run. The first
// entry seen for a given key wins; later duplicates are dropped before
// storage.
type MappingKey struct {
	StatementTitle string
	Amount         float64
}

// DedupKey builds the uniqueness key for this entry.
func (m *MappingEntry) DedupKey() MappingKey {
	return MappingKey{StatementTitle: m.StatementTitle, Amount: m.Amount}
}
