package sheet

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arjunks/khata/internal/common"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestReadCSV(t *testing.T) {
	path := writeFile(t, "statement.csv", "Date,Transaction Details,Amount (INR)\n01/02/2026,UPI/Swiggy/ref1,450.00\n02/02/2026,Grocery Mart Purchase,\"1,250.50\"\n")

	grid, err := Read(path)
	require.NoError(t, err)
	require.Len(t, grid, 3)
	assert.Equal(t, []string{"Date", "Transaction Details", "Amount (INR)"}, grid[0])
	assert.Equal(t, "1,250.50", grid[2][2])
}

func TestReadCSVRaggedRows(t *testing.T) {
	path := writeFile(t, "ragged.csv", "a,b,c\nonly-one\nx,y\n")

	grid, err := Read(path)
	require.NoError(t, err)
	require.Len(t, grid, 3)
	assert.Len(t, grid[1], 1)
	assert.Len(t, grid[2], 2)
}

func TestReadUnsupportedExtension(t *testing.T) {
	path := writeFile(t, "statement.pdf", "%PDF-1.4")

	_, err := Read(path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrUnsupportedFile))
}

func TestReadMissingFile(t *testing.T) {
	_, err := Read(filepath.Join(t.TempDir(), "nope.csv"))
	require.Error(t, err)
}
