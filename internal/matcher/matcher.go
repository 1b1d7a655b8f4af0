// Package matcher resolves a normalized statement transaction to a canonical
// merchant title and category from the reference ledger. The policy is a
// fixed ladder: exact amount with exact title, exact amount with best token
// overlap, any exact-amount record, then string similarity for titles that
// normalization actually changed. First rung to succeed wins; everything is
// deterministic given ledger order.
package matcher

import (
	"strings"

	"github.com/arjunks/khata/internal/reference"
)

// stopwords carry no merchant signal and are dropped before token overlap.
var stopwords = map[string]struct{}{
	"the": {}, "and": {}, "or": {}, "a": {}, "an": {}, "in": {}, "on": {},
	"at": {}, "to": {}, "for": {}, "of": {}, "by": {}, "transfer": {},
	"dr": {}, "cr": {}, "payment": {}, "funds": {}, "account": {},
}

// Result is the outcome of resolving one transaction. Matched false is the
// normal "no match" outcome, not an error; MappedTitle and Category are empty
// in that case and the caller decides the fallback display title.
type Result struct {
	MappedTitle string
	Category    string
	Matched     bool
}

// Resolve runs the matching ladder for one transaction.
func Resolve(statementTitle, cleanTitle string, amount float64, idx *reference.Index) Result {
	candidates := idx.ByAmount(amount)

	if len(candidates) > 0 {
		cleanLower := strings.ToLower(cleanTitle)

		// Exact title among exact-amount records.
		for _, rec := range candidates {
			if strings.ToLower(strings.TrimSpace(rec.Title)) == cleanLower {
				return Result{MappedTitle: rec.Title, Category: rec.Category, Matched: true}
			}
		}

		// Best token overlap; strict > keeps the first-seen candidate on ties.
		best := -1
		bestOverlap := 0
		for i, rec := range candidates {
			if overlap := tokenOverlap(cleanTitle, rec.Title); overlap > bestOverlap {
				bestOverlap = overlap
				best = i
			}
		}
		if best >= 0 {
			rec := candidates[best]
			return Result{MappedTitle: rec.Title, Category: rec.Category, Matched: true}
		}

		// Same amount but unrelated titles: trust the amount.
		return Result{MappedTitle: candidates[0].Title, Category: candidates[0].Category, Matched: true}
	}

	// Fuzzy matching is only worth attempting when normalization extracted a
	// merchant name out of a composite title.
	if cleanTitle != statementTitle {
		best := -1
		bestRatio := similarityThreshold
		for i, rec := range idx.All() {
			if ratio := Similarity(cleanTitle, rec.Title); ratio > bestRatio {
				bestRatio = ratio
				best = i
			}
		}
		if best >= 0 {
			rec := idx.All()[best]
			return Result{MappedTitle: rec.Title, Category: rec.Category, Matched: true}
		}
	}

	return Result{}
}

// tokenOverlap counts shared whitespace-delimited words after stopword
// removal, a coarse relevance signal between titles of equal amount.
func tokenOverlap(a, b string) int {
	aTokens := tokenSet(a)
	bTokens := tokenSet(b)

	count := 0
	for tok := range aTokens {
		if _, ok := bTokens[tok]; ok {
			count++
		}
	}
	return count
}

func tokenSet(s string) map[string]struct{} {
	tokens := make(map[string]struct{})
	for _, tok := range strings.Fields(strings.ToLower(s)) {
		if _, skip := stopwords[tok]; skip {
			continue
		}
		tokens[tok] = struct{}{}
	}
	return tokens
}
