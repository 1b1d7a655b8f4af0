// Package model defines the core domain types shared across the application.
package model

// StatementTransaction is a single transaction extracted from a bank or
// credit-card statement file. StatementTitle holds the raw description cell;
// CleanTitle holds the normalized merchant name and equals StatementTitle
// when normalization did not apply.
type StatementTransaction struct {
	SourceFile     string
	StatementTitle string
	CleanTitle     string
	Amount         float64
}

// Valid reports whether the extracted record clears the acceptance filter.
// Short titles and non-positive amounts are almost always balance rows or
// header cells misread as data.
func (t *StatementTransaction) Valid() bool {
	return t.Amount > 0 && len(t.StatementTitle) > 3
}
