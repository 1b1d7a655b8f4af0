// Package reference loads the curated ledger that statement transactions are
// reconciled against and serves the two queries the resolver needs: exact
// amount lookup and full scan.
package reference

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"github.com/arjunks/khata/internal/common"
	"github.com/arjunks/khata/internal/statement"
)

// Record is one curated ledger row. Category may be empty. Records with an
// empty Title are invalid reference data; Load drops them from the queryable
// set rather than treating them as an error.
type Record struct {
	Title    string
	Category string
	Amount   float64
}

// Index is a read-only view over the ledger for one reconciliation run.
type Index struct {
	byAmount map[float64][]int
	records  []Record
}

// Load reads the reference ledger CSV. The file must have a header row with
// "amount" and "title" columns; "category name" is optional. A file that
// cannot be read or lacks the required columns is a fatal load failure, the
// caller is expected to abort the run.
func Load(path string) (*Index, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrReferenceLoad, err)
	}
	defer func() { _ = f.Close() }()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrReferenceLoad, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: empty file", common.ErrReferenceLoad)
	}

	amountCol, titleCol, categoryCol := -1, -1, -1
	for i, name := range rows[0] {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "amount":
			amountCol = i
		case "title":
			titleCol = i
		case "category name":
			categoryCol = i
		}
	}
	if amountCol < 0 || titleCol < 0 {
		return nil, fmt.Errorf("%w: missing amount or title column", common.ErrReferenceLoad)
	}

	idx := &Index{byAmount: make(map[float64][]int)}
	for _, row := range rows[1:] {
		amount, ok := statement.ParseAmount(cell(row, amountCol))
		if !ok {
			continue
		}

		rec := Record{
			Title:  strings.TrimSpace(cell(row, titleCol)),
			Amount: amount,
		}
		if categoryCol >= 0 {
			rec.Category = strings.TrimSpace(cell(row, categoryCol))
		}
		if rec.Title == "" {
			continue
		}

		idx.byAmount[amount] = append(idx.byAmount[amount], len(idx.records))
		idx.records = append(idx.records, rec)
	}

	return idx, nil
}

// NewIndex builds an index from in-memory records, dropping empty titles.
// Used by tests and callers that source the ledger elsewhere.
func NewIndex(records []Record) *Index {
	idx := &Index{byAmount: make(map[float64][]int)}
	for _, rec := range records {
		if strings.TrimSpace(rec.Title) == "" {
			continue
		}
		idx.byAmount[rec.Amount] = append(idx.byAmount[rec.Amount], len(idx.records))
		idx.records = append(idx.records, rec)
	}
	return idx
}

// ByAmount returns the records sharing exactly this amount, in ledger order.
// Exact float equality is deliberate: it mirrors how the source data was
// matched historically, formatting differences between files can miss here.
func (idx *Index) ByAmount(amount float64) []Record {
	positions := idx.byAmount[amount]
	if len(positions) == 0 {
		return nil
	}
	out := make([]Record, len(positions))
	for i, p := range positions {
		out[i] = idx.records[p]
	}
	return out
}

// All returns every queryable record in ledger order.
func (idx *Index) All() []Record {
	return idx.records
}

// Len reports the number of queryable records.
func (idx *Index) Len() int {
	return len(idx.records)
}

func cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return row[i]
}
