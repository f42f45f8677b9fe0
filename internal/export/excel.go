// Package export renders reports as downloadable spreadsheets.
package export

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// Sheet describes one report worksheet: a bold title, an italic period
// subtitle, a styled header row, data rows and an optional bold summary row.
type Sheet struct {
	Title   string
	Period  string
	Headers []string
	Rows    [][]any
	// MoneyCols are zero-based column indexes formatted as "#,##0.00".
	MoneyCols []int
	Summary   []any
}

const sheetName = "Report"

// Workbook renders the sheet into xlsx bytes.
func Workbook(s Sheet) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName("Sheet1", sheetName)

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 14},
	})
	if err != nil {
		return nil, err
	}
	periodStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Italic: true, Size: 10, Color: "808080"},
	})
	if err != nil {
		return nil, err
	}
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"1F4E79"}},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return nil, err
	}
	moneyFmt := "#,##0.00"
	moneyStyle, err := f.NewStyle(&excelize.Style{CustomNumFmt: &moneyFmt})
	if err != nil {
		return nil, err
	}
	summaryStyle, err := f.NewStyle(&excelize.Style{
		Font:         &excelize.Font{Bold: true},
		CustomNumFmt: &moneyFmt,
	})
	if err != nil {
		return nil, err
	}

	if err := f.SetCellValue(sheetName, "A1", s.Title); err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(sheetName, "A1", "A1", titleStyle); err != nil {
		return nil, err
	}
	if err := f.SetCellValue(sheetName, "A2", s.Period); err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(sheetName, "A2", "A2", periodStyle); err != nil {
		return nil, err
	}

	const headerRow = 4
	money := make(map[int]bool, len(s.MoneyCols))
	for _, c := range s.MoneyCols {
		money[c] = true
	}
	widths := make([]int, len(s.Headers))

	for col, h := range s.Headers {
		cell, err := excelize.CoordinatesToCellName(col+1, headerRow)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheetName, cell, h); err != nil {
			return nil, err
		}
		if err := f.SetCellStyle(sheetName, cell, cell, headerStyle); err != nil {
			return nil, err
		}
		widths[col] = len(h)
	}

	row := headerRow + 1
	for _, r := range s.Rows {
		for col, v := range r {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheetName, cell, v); err != nil {
				return nil, err
			}
			if money[col] {
				if err := f.SetCellStyle(sheetName, cell, cell, moneyStyle); err != nil {
					return nil, err
				}
			}
			if col < len(widths) {
				if w := len(fmt.Sprint(v)); w > widths[col] {
					widths[col] = w
				}
			}
		}
		row++
	}

	if len(s.Summary) > 0 {
		for col, v := range s.Summary {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheetName, cell, v); err != nil {
				return nil, err
			}
			if err := f.SetCellStyle(sheetName, cell, cell, summaryStyle); err != nil {
				return nil, err
			}
		}
	}

	for col, w := range widths {
		name, err := excelize.ColumnNumberToName(col + 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetColWidth(sheetName, name, name, float64(w)+4); err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
