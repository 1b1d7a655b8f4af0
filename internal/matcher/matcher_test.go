package matcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arjunks/khata/internal/reference"
)

func TestResolveExactAmountExactTitle(t *testing.T) {
	idx := reference.NewIndex([]reference.Record{
		{Title: "Zomato", Amount: 500, Category: "Food"},
		{Title: "Swiggy", Amount: 500, Category: "Food"},
	})

	got := Resolve("swiggy", "swiggy", 500, idx)
	require.True(t, got.Matched)
	assert.Equal(t, "Swiggy", got.MappedTitle)
	assert.Equal(t, "Food", got.Category)
}

func TestResolveExactTitleIgnoresLedgerWhitespace(t *testing.T) {
	idx := reference.NewIndex([]reference.Record{
		{Title: "  Swiggy  ", Amount: 500, Category: "Food"},
	})

	got := Resolve("SWIGGY", "SWIGGY", 500, idx)
	require.True(t, got.Matched)
	assert.Equal(t, "  Swiggy  ", got.MappedTitle)
}

func TestResolveTokenOverlap(t *testing.T) {
	idx := reference.NewIndex([]reference.Record{
		{Title: "Electricity Board", Amount: 780, Category: "Utilities"},
		{Title: "Grocery Mart Koramangala", Amount: 780, Category: "Groceries"},
	})

	got := Resolve("POS Grocery Mart", "POS Grocery Mart", 780, idx)
	require.True(t, got.Matched)
	assert.Equal(t, "Grocery Mart Koramangala", got.MappedTitle)
	assert.Equal(t, "Groceries", got.Category)
}

func TestResolveTokenOverlapTieKeepsFirst(t *testing.T) {
	idx := reference.NewIndex([]reference.Record{
		{Title: "Fresh Farms Indiranagar", Amount: 300, Category: "Groceries"},
		{Title: "Fresh Farms Whitefield", Amount: 300, Category: "Food"},
	})

	// Both candidates share exactly the two tokens "fresh" and "farms".
	got := Resolve("UPI Fresh Farms", "UPI Fresh Farms", 300, idx)
	require.True(t, got.Matched)
	assert.Equal(t, "Fresh Farms Indiranagar", got.MappedTitle)
	assert.Equal(t, "Groceries", got.Category)
}

func TestResolveStopwordsCarryNoOverlap(t *testing.T) {
	idx := reference.NewIndex([]reference.Record{
		{Title: "Transfer to the account", Amount: 150, Category: "Misc"},
		{Title: "Juice Stall", Amount: 150, Category: "Food"},
	})

	// Every shared token is a stopword, so overlap is zero everywhere and
	// the first exact-amount candidate wins.
	got := Resolve("payment for the account", "payment for the account", 150, idx)
	require.True(t, got.Matched)
	assert.Equal(t, "Transfer to the account", got.MappedTitle)
}

func TestResolveExactAmountFallsBackToFirstCandidate(t *testing.T) {
	idx := reference.NewIndex([]reference.Record{
		{Title: "Hardware Shop", Amount: 999, Category: "Home"},
		{Title: "Book Store", Amount: 999, Category: "Leisure"},
	})

	got := Resolve("UNRELATED XYZ", "UNRELATED XYZ", 999, idx)
	require.True(t, got.Matched)
	assert.Equal(t, "Hardware Shop", got.MappedTitle)
	assert.Equal(t, "Home", got.Category)
}

func TestResolveSimilarityRequiresNormalizationChange(t *testing.T) {
	idx := reference.NewIndex([]reference.Record{
		{Title: "Chandan Sarkar", Amount: 100, Category: "Food"},
	})

	// No exact-amount record and the title was not normalized: similarity
	// must not be attempted.
	got := Resolve("CHANDAN SARKAR STORES", "CHANDAN SARKAR STORES", 450, idx)
	assert.False(t, got.Matched)
	assert.Empty(t, got.MappedTitle)
	assert.Empty(t, got.Category)
}

func TestResolveSimilarityFallback(t *testing.T) {
	idx := reference.NewIndex([]reference.Record{
		{Title: "Electricity Board", Amount: 1200, Category: "Utilities"},
		{Title: "Chandan Sarkar", Amount: 100, Category: "Food"},
	})

	got := Resolve("UPI/CHANDAN SARKAR/bharatpe.90812345@icici", "CHANDAN SARKAR", 450, idx)
	require.True(t, got.Matched)
	assert.Equal(t, "Chandan Sarkar", got.MappedTitle)
	assert.Equal(t, "Food", got.Category)
}

func TestResolveSimilarityThresholdIsStrict(t *testing.T) {
	// Ratio is 2M/(len(a)+len(b)). "abc" vs "abxxxxx" shares the block "ab":
	// 4/10 = 0.4 exactly, which must NOT qualify.
	boundary := reference.NewIndex([]reference.Record{
		{Title: "abxxxxx", Amount: 1, Category: "X"},
	})
	got := Resolve("UPI/abc/ref", "abc", 42, boundary)
	assert.False(t, got.Matched)

	// "abc" vs "abxxxx" scores 4/9 ≈ 0.444 and qualifies.
	above := reference.NewIndex([]reference.Record{
		{Title: "abxxxx", Amount: 1, Category: "X"},
	})
	got = Resolve("UPI/abc/ref", "abc", 42, above)
	require.True(t, got.Matched)
	assert.Equal(t, "abxxxx", got.MappedTitle)
}

func TestResolveSimilarityFirstMaximalWins(t *testing.T) {
	idx := reference.NewIndex([]reference.Record{
		{Title: "Chandan Sarkar", Amount: 10, Category: "First"},
		{Title: "CHANDAN SARKAR", Amount: 20, Category: "Second"},
	})

	got := Resolve("UPI/Chandan Sarkar/ref", "Chandan Sarkar", 999, idx)
	require.True(t, got.Matched)
	assert.Equal(t, "First", got.Category)
}

func TestResolveEmptyIndex(t *testing.T) {
	idx := reference.NewIndex(nil)
	got := Resolve("UPI/Swiggy/ref", "Swiggy", 500, idx)
	assert.False(t, got.Matched)
}

func TestSimilarity(t *testing.T) {
	assert.InDelta(t, 1.0, Similarity("Swiggy", "swiggy"), 1e-9)
	assert.InDelta(t, 0.0, Similarity("abc", "xyz"), 1e-9)
	assert.InDelta(t, 0.4, Similarity("abc", "abxxxxx"), 1e-9)

	// Symmetric enough for our use: same blocks either way.
	assert.InDelta(t, Similarity("grocery mart", "grocery"), Similarity("grocery", "grocery mart"), 1e-9)
}

func TestTokenOverlap(t *testing.T) {
	assert.Equal(t, 2, tokenOverlap("Fresh Farms Bangalore", "fresh farms"))
	assert.Equal(t, 0, tokenOverlap("transfer to account", "the account transfer"))
	assert.Equal(t, 1, tokenOverlap("SWIGGY ORDER", "swiggy"))
	assert.Equal(t, 0, tokenOverlap("", "anything"))
}
