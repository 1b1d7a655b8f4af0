package matcher

import (
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// similarityThreshold is the single cutoff for the last-resort fuzzy match.
// A maximum ratio must strictly exceed it to count as a match.
const similarityThreshold = 0.4

// Similarity scores two titles in [0,1] using the Gestalt longest-matching-
// blocks ratio, case-insensitively over the full strings. This is the one
// shared similarity definition for the whole resolver; call sites supply
// their own thresholds.
func Similarity(a, b string) float64 {
	return difflib.NewMatcher(explode(a), explode(b)).Ratio()
}

// explode turns a title into per-rune elements so the line-oriented matcher
// compares characters.
func explode(s string) []string {
	runes := []rune(strings.ToLower(s))
	out := make([]string, len(runes))
	for i, r := range runes {
		out[i] = string(r)
	}
	return out
}
