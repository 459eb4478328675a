package reports

import (
	"bytes"
	"fmt"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"
)

const (
	minColumnWidth = 8
	maxColumnWidth = 60
)

// RenderSpreadsheet writes the table into a single named sheet with a bold
// header row and columns sized to their widest value.
func RenderSpreadsheet(t Table) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := t.Sheet
	if sheet == "" {
		sheet = "Report"
	}
	idx, err := f.NewSheet(sheet)
	if err != nil {
		return nil, fmt.Errorf("create sheet: %w", err)
	}
	f.SetActiveSheet(idx)
	if sheet != "Sheet1" {
		if err := f.DeleteSheet("Sheet1"); err != nil {
			return nil, fmt.Errorf("drop default sheet: %w", err)
		}
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	if err != nil {
		return nil, fmt.Errorf("header style: %w", err)
	}

	widths := make([]int, len(t.Columns))
	for i, col := range t.Columns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, col.Header); err != nil {
			return nil, err
		}
		widths[i] = utf8.RuneCountInString(col.Header)
	}
	if len(t.Columns) > 0 {
		last, _ := excelize.CoordinatesToCellName(len(t.Columns), 1)
		if err := f.SetCellStyle(sheet, "A1", last, headerStyle); err != nil {
			return nil, err
		}
	}

	for r, row := range t.Rows {
		for c, value := range row {
			if c >= len(widths) {
				break
			}
			cell, _ := excelize.CoordinatesToCellName(c+1, r+2)
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return nil, err
			}
			if n := utf8.RuneCountInString(value); n > widths[c] {
				widths[c] = n
			}
		}
	}

	for i, w := range widths {
		col, _ := excelize.ColumnNumberToName(i + 1)
		if err := f.SetColWidth(sheet, col, col, columnWidth(w)); err != nil {
			return nil, err
		}
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func columnWidth(chars int) float64 {
	w := float64(chars + 2)
	if w < minColumnWidth {
		return minColumnWidth
	}
	if w > maxColumnWidth {
		return maxColumnWidth
	}
	return w
}
