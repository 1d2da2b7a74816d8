package services

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// ReportSheetName is the single worksheet of the spreadsheet export.
const ReportSheetName = "COGS Report"

// GenerateReportExcel creates a workbook from the given ReportData and
// returns the file contents as a byte slice.
func GenerateReportExcel(data ReportData) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := ReportSheetName
	defaultSheet := f.GetSheetName(0)
	if err := f.SetSheetName(defaultSheet, sheetName); err != nil {
		return nil, fmt.Errorf("set sheet name: %w", err)
	}

	columns := []string{"A", "B", "C"}
	lastCol := columns[len(columns)-1]

	widths := []float64{36, 20, 14}
	for i, col := range columns {
		if err := f.SetColWidth(sheetName, col, col, widths[i]); err != nil {
			return nil, fmt.Errorf("set col width %s: %w", col, err)
		}
	}

	// ── Styles ──────────────────────────────────────────────────────────

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 16, Color: "#FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#245E4F"}, Pattern: 1},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create title style: %w", err)
	}

	subtitleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Size: 11},
	})
	if err != nil {
		return nil, fmt.Errorf("create subtitle style: %w", err)
	}

	totalLineStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 13, Color: "#245E4F"},
	})
	if err != nil {
		return nil, fmt.Errorf("create total style: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "#FFFFFF", Size: 11},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#245E4F"}, Pattern: 1},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
		Border: thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}

	bodyStyle, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Size: 10},
		Border: thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create body style: %w", err)
	}

	totalRowStyle, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true, Size: 10},
		Fill:   excelize.Fill{Type: "pattern", Color: []string{"#F0F0F0"}, Pattern: 1},
		Border: thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create total row style: %w", err)
	}

	// ── Header Rows (1-4) ───────────────────────────────────────────────

	if err := f.MergeCell(sheetName, "A1", lastCol+"1"); err != nil {
		return nil, fmt.Errorf("merge title: %w", err)
	}
	f.SetCellValue(sheetName, "A1", data.Title)
	f.SetCellStyle(sheetName, "A1", lastCol+"1", titleStyle)
	f.SetRowHeight(sheetName, 1, 28)

	f.SetCellValue(sheetName, "A2", "Generated on: "+data.GeneratedOn())
	f.SetCellStyle(sheetName, "A2", "A2", subtitleStyle)
	f.SetCellValue(sheetName, "A3", "Calculation Method: "+data.MethodLabel)
	f.SetCellStyle(sheetName, "A3", "A3", subtitleStyle)
	f.SetCellValue(sheetName, "A4", "Total COGS: "+data.TotalText)
	f.SetCellStyle(sheetName, "A4", "A4", totalLineStyle)

	// ── Row 6: Column Headers ───────────────────────────────────────────

	for i, h := range data.Columns {
		f.SetCellValue(sheetName, fmt.Sprintf("%s6", columns[i]), h)
	}
	tableLast := columns[len(data.Columns)-1]
	f.SetCellStyle(sheetName, "A6", tableLast+"6", headerStyle)

	// ── Data Rows (starting row 7) ──────────────────────────────────────

	row := 7
	for _, r := range data.Rows {
		rowStr := fmt.Sprintf("%d", row)

		f.SetCellValue(sheetName, "A"+rowStr, sanitizeExcelCell(r.Component))
		f.SetCellValue(sheetName, "B"+rowStr, sanitizeExcelCell(r.Amount))
		if data.HasPercentages() {
			f.SetCellValue(sheetName, "C"+rowStr, r.Percentage)
		}

		style := bodyStyle
		if r.IsTotal {
			style = totalRowStyle
		}
		f.SetCellStyle(sheetName, "A"+rowStr, tableLast+rowStr, style)

		row++
	}

	// ── Formula ─────────────────────────────────────────────────────────

	row++
	f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), "Formula Used:")
	f.SetCellStyle(sheetName, fmt.Sprintf("A%d", row), fmt.Sprintf("A%d", row), totalLineStyle)
	row++
	f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), data.Formula)
	row++
	f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), sanitizeExcelCell(data.FormulaTrace))

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write excel: %w", err)
	}

	return buf.Bytes(), nil
}

// sanitizeExcelCell prevents formula injection by prefixing dangerous leading
// characters with a single quote. Amounts such as "-₹35,000" start with '-'
// and would otherwise be read as a formula.
func sanitizeExcelCell(s string) string {
	if len(s) == 0 {
		return s
	}
	switch s[0] {
	case '=', '+', '-', '@', '\t', '\r', '|':
		return "'" + s
	}
	return s
}

// thinBorders returns a slice of excelize.Border for thin borders on all four sides.
func thinBorders() []excelize.Border {
	sides := []string{"left", "top", "bottom", "right"}
	borders := make([]excelize.Border, len(sides))
	for i, side := range sides {
		borders[i] = excelize.Border{
			Type:  side,
			Color: "#000000",
			Style: 1, // thin
		}
	}
	return borders
}
