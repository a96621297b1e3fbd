package sheet

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/shakinm/xlsReader/xls"
	"github.com/xuri/excelize/v2"
)

// Open reads a tabular source, picking the reader by file extension.
// Supported: .xlsx, .xls, .csv.
func Open(path string) (*Document, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		return openXLSX(path)
	case ".xls":
		return openXLS(path)
	case ".csv":
		return openCSV(path)
	default:
		return nil, fmt.Errorf("unsupported file type %q", filepath.Ext(path))
	}
}

func openXLSX(path string) (*Document, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	sheetName := f.GetSheetName(f.GetActiveSheetIndex())
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("reading rows from %s: %w", path, err)
	}

	// Cell values come back through the cell's number format, so a
	// numeric code stored as 601.84 with a two-decimal format reads as
	// "601.84" rather than a float artifact.
	indents := make([][]int, len(rows))
	for r := range rows {
		indents[r] = make([]int, len(rows[r]))
		for c := range rows[r] {
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				continue
			}
			styleID, err := f.GetCellStyle(sheetName, cell)
			if err != nil {
				continue
			}
			style, err := f.GetStyle(styleID)
			if err != nil || style == nil || style.Alignment == nil {
				continue
			}
			indents[r][c] = style.Alignment.Indent
		}
	}

	return &Document{Rows: rows, Indents: indents}, nil
}

func openXLS(path string) (*Document, error) {
	wb, err := xls.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	sh, err := wb.GetSheet(0)
	if err != nil {
		return nil, fmt.Errorf("reading sheet from %s: %w", path, err)
	}

	var rows [][]string
	for _, r := range sh.GetRows() {
		var cells []string
		for _, c := range r.GetCols() {
			cells = append(cells, c.GetString())
		}
		rows = append(rows, cells)
	}
	return &Document{Rows: rows}, nil
}

func openCSV(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	cr := csv.NewReader(f)
	cr.FieldsPerRecord = -1
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return &Document{Rows: rows}, nil
}
