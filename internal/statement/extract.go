package statement

import (
	"strings"

	"github.com/arjunks/khata/internal/model"
	"github.com/arjunks/khata/internal/sheet"
)

// minSheetRows guards against truncated or empty exports; a statement with
// fewer rows cannot hold a header and data.
const minSheetRows = 3

// Column-name fragments used by the fixed-column and column-heuristic
// strategies.
const (
	colTransactionDetails = "Transaction Details"
	colAmountINR          = "Amount (INR)"
)

// Extract pulls transaction records out of a statement grid using the
// strategy for the given format. Cells that fail to parse are skipped, never
// fatal. The returned records all satisfy the acceptance filter: non-empty
// title longer than 3 characters and a positive amount.
func Extract(g sheet.Grid, f Format, sourceFile string) []model.StatementTransaction {
	if len(g) < minSheetRows {
		return nil
	}

	switch f {
	case FormatAccount:
		return extractHeaderScan(g, sourceFile)
	case FormatCardCurrent:
		return extractFixedColumns(g, sourceFile)
	case FormatCardLegacy:
		return extractKeywordOffset(g, sourceFile)
	case FormatCardArchive:
		return extractColumnHeuristic(g, sourceFile)
	default:
		return nil
	}
}

// extractHeaderScan handles account statements whose real header row floats
// below bank letterhead rows. It finds the header by keyword, then probes
// each data row for the description and amount cells.
func extractHeaderScan(g sheet.Grid, sourceFile string) []model.StatementTransaction {
	headerKeywords := []string{"date", "description", "withdrawal", "deposit"}
	titleExclusions := []string{"date", "balance", "opening", "closing"}

	start := 1
	for i, row := range g {
		if containsAny(rowText(row), headerKeywords) {
			start = i + 1
			break
		}
	}

	var records []model.StatementTransaction
	for _, row := range g[start:] {
		title := firstLongCell(row, titleExclusions)

		var amount float64
		for _, cell := range row {
			if a, ok := parseBoundedAmount(cell); ok {
				amount = a
				break
			}
		}

		records = appendValid(records, sourceFile, title, amount)
	}
	return records
}

// extractFixedColumns handles the current credit-card export, which has a
// proper header row with stable column names.
func extractFixedColumns(g sheet.Grid, sourceFile string) []model.StatementTransaction {
	titleCol := findColumn(g[0], func(name string) bool {
		return strings.EqualFold(strings.TrimSpace(name), colTransactionDetails)
	})
	amountCol := findColumn(g[0], func(name string) bool {
		return strings.EqualFold(strings.TrimSpace(name), colAmountINR)
	})
	if titleCol < 0 || amountCol < 0 {
		return nil
	}

	var records []model.StatementTransaction
	for _, row := range g[1:] {
		title := strings.TrimSpace(cellAt(row, titleCol))

		var amount float64
		if a, ok := ParseAmount(cellAt(row, amountCol)); ok {
			amount = a
		}

		records = appendValid(records, sourceFile, title, amount)
	}
	return records
}

// extractKeywordOffset handles the legacy credit-card export: data rows begin
// immediately after a row mentioning both "date" and "transaction". Amounts
// sit near the right edge, so the scan runs right-to-left and skips the
// leading date column.
func extractKeywordOffset(g sheet.Grid, sourceFile string) []model.StatementTransaction {
	titleExclusions := []string{"date", "total", "page"}

	dataStart := -1
	for i, row := range g {
		text := rowText(row)
		if strings.Contains(text, "date") && strings.Contains(text, "transaction") {
			dataStart = i + 1
			break
		}
	}
	if dataStart < 0 {
		return nil
	}

	var records []model.StatementTransaction
	for _, row := range g[dataStart:] {
		title := firstLongCell(row, titleExclusions)

		var amount float64
		for i := len(row) - 1; i >= 1; i-- {
			if a, ok := parseBoundedAmount(row[i]); ok {
				amount = a
				break
			}
		}

		records = appendValid(records, sourceFile, title, amount)
	}
	return records
}

// extractColumnHeuristic handles the oldest credit-card export, where only
// the column names are reliable: the description column mentions
// "transaction" or "narration" and the amount column mentions "amount".
func extractColumnHeuristic(g sheet.Grid, sourceFile string) []model.StatementTransaction {
	headerKeywords := []string{"date", "amount", "transaction"}

	headerIdx := 0
	for i, row := range g {
		if containsAny(rowText(row), headerKeywords) {
			headerIdx = i
			break
		}
	}

	header := g[headerIdx]
	titleCol := findColumn(header, func(name string) bool {
		lower := strings.ToLower(name)
		return strings.Contains(lower, "transaction") || strings.Contains(lower, "narration")
	})
	amountCol := findColumn(header, func(name string) bool {
		return strings.Contains(strings.ToLower(name), "amount")
	})
	if titleCol < 0 || amountCol < 0 {
		return nil
	}

	var records []model.StatementTransaction
	for _, row := range g[headerIdx+1:] {
		title := strings.TrimSpace(cellAt(row, titleCol))

		var amount float64
		if a, ok := ParseAmount(cellAt(row, amountCol)); ok {
			amount = a
		}

		records = appendValid(records, sourceFile, title, amount)
	}
	return records
}

// firstLongCell returns the first cell long enough to be a transaction
// description and free of the excluded keywords. Returns "" when no cell
// qualifies.
func firstLongCell(row []string, exclusions []string) string {
	for _, cell := range row {
		trimmed := strings.TrimSpace(cell)
		if len(trimmed) <= 10 {
			continue
		}
		if containsAny(strings.ToLower(trimmed), exclusions) {
			continue
		}
		return trimmed
	}
	return ""
}

// appendValid applies the shared acceptance filter before keeping a record.
func appendValid(records []model.StatementTransaction, sourceFile, title string, amount float64) []model.StatementTransaction {
	record := model.StatementTransaction{
		SourceFile:     sourceFile,
		StatementTitle: title,
		Amount:         amount,
	}
	if title == "" || !record.Valid() {
		return records
	}
	return append(records, record)
}

func findColumn(header []string, match func(string) bool) int {
	for i, name := range header {
		if match(name) {
			return i
		}
	}
	return -1
}

func cellAt(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return row[i]
}

func rowText(row []string) string {
	return strings.ToLower(strings.Join(row, " "))
}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}
