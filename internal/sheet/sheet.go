// Package sheet loads tabular statement files into an untyped 2-D grid of
// cell strings. Layout interpretation happens downstream; this package only
// cares about getting rows out of csv, xlsx and legacy xls files.
package sheet

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/extrame/xls"
	"github.com/xuri/excelize/v2"

	"github.com/arjunks/khata/internal/common"
)

// Grid is a statement sheet as rows of stringified cells. Rows may be
// ragged; callers must bounds-check columns.
type Grid [][]string

// Read loads the first sheet of the file at path into a Grid. The reader is
// chosen by file extension.
func Read(path string) (Grid, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return readCSV(path)
	case ".xlsx", ".xlsm":
		return readXLSX(path)
	case ".xls":
		return readXLS(path)
	default:
		return nil, fmt.Errorf("%w: %s", common.ErrUnsupportedFile, filepath.Base(path))
	}
}

func readCSV(path string) (Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open csv: %w", err)
	}
	defer func() { _ = f.Close() }()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // statement exports have ragged rows

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv: %w", err)
	}
	return rows, nil
}

func readXLSX(path string) (Grid, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open xlsx: %w", err)
	}
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, fmt.Errorf("failed to read xlsx rows: %w", err)
	}
	return rows, nil
}

func readXLS(path string) (Grid, error) {
	wb, err := xls.Open(path, "utf-8")
	if err != nil {
		return nil, fmt.Errorf("failed to open xls: %w", err)
	}

	ws := wb.GetSheet(0)
	if ws == nil {
		return nil, fmt.Errorf("xls file has no sheets: %s", filepath.Base(path))
	}

	grid := make(Grid, 0, int(ws.MaxRow)+1)
	for i := 0; i <= int(ws.MaxRow); i++ {
		row := ws.Row(i)
		if row == nil {
			grid = append(grid, nil)
			continue
		}
		var cells []string
		for j := row.FirstCol(); j < row.LastCol(); j++ {
			cells = append(cells, row.Col(j))
		}
		grid = append(grid, cells)
	}
	return grid, nil
}
