package sheet

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

var fillColors = map[Highlight]string{
	HighlightWarn:  "FFFF00",
	HighlightError: "FF0000",
	HighlightNew:   "90EE90",
}

// AppendToTemplate copies the xlsx template, appends rows starting at
// the first fully-empty row after existing content, applies review
// fills, and saves the result to outPath.
func AppendToTemplate(templatePath, outPath string, rows []Row) error {
	f, err := excelize.OpenFile(templatePath)
	if err != nil {
		return fmt.Errorf("opening template %s: %w", templatePath, err)
	}
	defer f.Close()

	sheetName := f.GetSheetName(f.GetActiveSheetIndex())
	existing, err := f.GetRows(sheetName)
	if err != nil {
		return fmt.Errorf("reading template rows: %w", err)
	}

	lastRow := 0
	for i, r := range existing {
		for _, cell := range r {
			if cell != "" {
				lastRow = i + 1
				break
			}
		}
	}

	styles := make(map[Highlight]int)
	for i, row := range rows {
		rowNum := lastRow + 1 + i
		for c, v := range row.Cells {
			cell, err := excelize.CoordinatesToCellName(c+1, rowNum)
			if err != nil {
				return fmt.Errorf("cell coordinates: %w", err)
			}
			if err := f.SetCellValue(sheetName, cell, v); err != nil {
				return fmt.Errorf("writing cell %s: %w", cell, err)
			}
		}
		if row.Highlight == HighlightNone || len(row.Cells) == 0 {
			continue
		}
		styleID, ok := styles[row.Highlight]
		if !ok {
			styleID, err = f.NewStyle(&excelize.Style{
				Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{fillColors[row.Highlight]}},
			})
			if err != nil {
				return fmt.Errorf("creating fill style: %w", err)
			}
			styles[row.Highlight] = styleID
		}
		first, _ := excelize.CoordinatesToCellName(1, rowNum)
		last, _ := excelize.CoordinatesToCellName(len(row.Cells), rowNum)
		if err := f.SetCellStyle(sheetName, first, last, styleID); err != nil {
			return fmt.Errorf("applying fill: %w", err)
		}
	}

	if err := f.SaveAs(outPath); err != nil {
		return fmt.Errorf("saving %s: %w", outPath, err)
	}
	return nil
}
