// Package statement locates transaction records inside inconsistently shaped
// statement exports. Each supported bank export generation gets its own
// extraction strategy, selected from the source filename.
package statement

import "strings"

// Format identifies which extraction strategy applies to a statement file.
type Format int

const (
	// FormatUnknown means the filename matched no known export generation.
	FormatUnknown Format = iota
	// FormatAccount is the current-account export with a floating header row.
	FormatAccount
	// FormatCardCurrent is the recent credit-card export with fixed named columns.
	FormatCardCurrent
	// FormatCardLegacy is the older credit-card export where data starts after
	// a date/transaction keyword row.
	FormatCardLegacy
	// FormatCardArchive is the oldest credit-card export, parsed by matching
	// column names.
	FormatCardArchive
)

// String returns a short name for logging.
func (f Format) String() string {
	switch f {
	case FormatAccount:
		return "account"
	case FormatCardCurrent:
		return "card-current"
	case FormatCardLegacy:
		return "card-legacy"
	case FormatCardArchive:
		return "card-archive"
	default:
		return "unknown"
	}
}

// DetectFormat classifies a statement file by its name. The substrings match
// the bank's export naming conventions across statement generations.
func DetectFormat(filename string) Format {
	switch {
	case strings.Contains(filename, "Acct_Statement"):
		return FormatAccount
	case strings.Contains(filename, "CC_Statement_2026"):
		return FormatCardCurrent
	case strings.Contains(filename, "CC_Statement_2025"):
		return FormatCardLegacy
	case strings.Contains(filename, "CCStatement_Past"):
		return FormatCardArchive
	default:
		return FormatUnknown
	}
}
