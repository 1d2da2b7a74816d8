package services

import (
	"strings"
	"time"
)

const (
	ReportTitle = "COGS Calculation Report"

	// DefaultReportFilename is the fixed download name of the PDF report.
	DefaultReportFilename = "COGS_Calculation_Report.pdf"

	// DefaultBrand appears in the footer of every report page.
	DefaultBrand = "COGS Calculator | Your Financial Partner"

	formulaDirect    = "COGS = Raw Materials + Direct Labor + Manufacturing Overhead + Shipping Costs"
	formulaInventory = "COGS = Beginning Inventory + Purchases - Ending Inventory"

	cogsExplanation = "Cost of Goods Sold (COGS) represents the direct costs attributable to the production of the goods sold by a company. " +
		"This amount includes the cost of materials and labor directly used to create the good. It excludes indirect expenses, " +
		"such as distribution costs and sales force costs."
)

// ReportRow is one row of the itemized table. Percentage is empty for the
// inventory method, whose table has no percentage column.
type ReportRow struct {
	Component  string
	Amount     string
	Percentage string
	IsTotal    bool
}

// ReportData holds everything the PDF and spreadsheet exporters render.
// Apart from GeneratedAt it is fully determined by inputs, method and total.
type ReportData struct {
	Title        string
	GeneratedAt  time.Time
	Method       Method
	MethodLabel  string
	Total        float64
	TotalText    string
	Lines        []BreakdownLine
	Columns      []string
	Rows         []ReportRow
	Formula      string
	FormulaTrace string
	Explanation  string
}

// GeneratedOn renders the report date the way the header shows it (d/m/yyyy).
func (d ReportData) GeneratedOn() string {
	return d.GeneratedAt.Format("2/1/2006")
}

// HasPercentages reports whether the table carries a percentage column.
func (d ReportData) HasPercentages() bool {
	return len(d.Columns) == 3
}

// BuildReportData derives the report for a calculation. The table is built
// from ComponentLines, so a zero total still yields a complete zero-filled
// table, and Lines holds the same Breakdown the interactive view shows.
func BuildReportData(in CogsInputs, method Method, total float64, generatedAt time.Time) ReportData {
	data := ReportData{
		Title:       ReportTitle,
		GeneratedAt: generatedAt,
		Method:      method,
		MethodLabel: method.Label(),
		Total:       total,
		TotalText:   FormatINR(total),
		Lines:       Breakdown(in, method, total),
		Explanation: cogsExplanation,
	}

	components := ComponentLines(in, method, total)

	if method == MethodInventory {
		data.Columns = []string{"Component", "Amount"}
		data.Rows = []ReportRow{
			{Component: "Beginning Inventory", Amount: FormatINR(in.InventoryStart)},
			{Component: "+ Purchases", Amount: FormatINR(in.Purchases)},
			{Component: "- Ending Inventory", Amount: FormatINR(in.InventoryEnd)},
			{Component: "= Total COGS", Amount: FormatINR(total), IsTotal: true},
		}
		data.Formula = formulaInventory
		data.FormulaTrace = FormatINR(in.InventoryStart) + " + " + FormatINR(in.Purchases) +
			" - " + FormatINR(in.InventoryEnd) + " = " + FormatINR(total)
		return data
	}

	data.Columns = []string{"Component", "Amount", "Percentage"}
	amounts := make([]string, 0, len(components))
	for _, c := range components {
		data.Rows = append(data.Rows, ReportRow{
			Component:  c.Label,
			Amount:     FormatINR(c.Amount),
			Percentage: FormatPercent(c.Share),
		})
		amounts = append(amounts, FormatINR(c.Amount))
	}
	totalShare := 100
	if total == 0 {
		totalShare = 0
	}
	data.Rows = append(data.Rows, ReportRow{
		Component:  "Total",
		Amount:     FormatINR(total),
		Percentage: FormatPercent(totalShare),
		IsTotal:    true,
	})
	data.Formula = formulaDirect
	data.FormulaTrace = strings.Join(amounts, " + ") + " = " + FormatINR(total)
	return data
}

// PlainText renders the report body as text, one line per entry. It is
// what the CLI prints and the body of the emailed summary.
func (d ReportData) PlainText() string {
	var b strings.Builder
	b.WriteString(d.Title + "\n")
	b.WriteString("Generated on: " + d.GeneratedOn() + "\n")
	b.WriteString("Calculation Method: " + d.MethodLabel + "\n")
	b.WriteString("Total COGS: " + d.TotalText + "\n\n")
	for _, r := range d.Rows {
		line := r.Component + ": " + r.Amount
		if r.Percentage != "" {
			line += " (" + r.Percentage + ")"
		}
		b.WriteString(line + "\n")
	}
	b.WriteString("\nFormula Used: " + d.Formula + "\n")
	b.WriteString(d.FormulaTrace + "\n")
	return b.String()
}
