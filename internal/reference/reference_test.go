package reference

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arjunks/khata/internal/common"
)

func writeLedger(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	path := writeLedger(t, `amount,title,category name,account,income,date,currency,note
500,Swiggy,Food,HDFC,0,2026-01-02,INR,
1250.5,Grocery Mart,Groceries,HDFC,0,2026-01-03,INR,weekly
99,,Misc,HDFC,0,2026-01-04,INR,missing title
500,Chandan Sarkar,Food,HDFC,0,2026-01-05,INR,
oops,Broken Row,Misc,HDFC,0,2026-01-06,INR,
`)

	idx, err := Load(path)
	require.NoError(t, err)

	// Empty-title and unparseable-amount rows are excluded.
	assert.Equal(t, 3, idx.Len())

	matches := idx.ByAmount(500)
	require.Len(t, matches, 2)
	assert.Equal(t, "Swiggy", matches[0].Title)
	assert.Equal(t, "Chandan Sarkar", matches[1].Title)
	assert.Equal(t, "Food", matches[0].Category)

	assert.Empty(t, idx.ByAmount(42))
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.csv"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrReferenceLoad))
}

func TestLoadMissingColumns(t *testing.T) {
	path := writeLedger(t, "value,name\n500,Swiggy\n")
	_, err := Load(path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrReferenceLoad))
}

func TestLoadEmptyFile(t *testing.T) {
	path := writeLedger(t, "")
	_, err := Load(path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrReferenceLoad))
}

func TestNewIndexDropsEmptyTitles(t *testing.T) {
	idx := NewIndex([]Record{
		{Title: "Swiggy", Amount: 500},
		{Title: "   ", Amount: 500},
		{Title: "Zomato", Amount: 300},
	})

	assert.Equal(t, 2, idx.Len())
	require.Len(t, idx.ByAmount(500), 1)
	assert.Equal(t, "Swiggy", idx.ByAmount(500)[0].Title)
}

func TestAllPreservesLedgerOrder(t *testing.T) {
	idx := NewIndex([]Record{
		{Title: "B Mart", Amount: 1},
		{Title: "A Mart", Amount: 2},
		{Title: "C Mart", Amount: 3},
	})

	all := idx.All()
	require.Len(t, all, 3)
	assert.Equal(t, "B Mart", all[0].Title)
	assert.Equal(t, "A Mart", all[1].Title)
	assert.Equal(t, "C Mart", all[2].Title)
}
