package services

import (
	_ "embed"
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/core/entity"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/johnfercher/maroto/v2/pkg/repository"
)

// reportFontFamily is a UTF-8 TrueType family carrying the rupee sign,
// which the built-in cp1252 fonts cannot encode.
const reportFontFamily = "dejavu"

var (
	//go:embed fonts/DejaVuSansCondensed.ttf
	reportFontRegular []byte
	//go:embed fonts/DejaVuSansCondensed-Bold.ttf
	reportFontBold []byte
)

var (
	brandColor = &props.Color{Red: 36, Green: 94, Blue: 79}
	white      = &props.Color{Red: 255, Green: 255, Blue: 255}
	footerGray = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// GenerateReportPDF renders the COGS report with maroto/v2 and returns the
// raw PDF bytes. The document creation date is pinned to data.GeneratedAt.
func GenerateReportPDF(data ReportData, brand string) ([]byte, error) {
	return generateReportPDF(data, brand, true)
}

func generateReportPDF(data ReportData, brand string, compress bool) ([]byte, error) {
	if brand == "" {
		brand = DefaultBrand
	}

	fonts, err := loadReportFonts()
	if err != nil {
		return nil, fmt.Errorf("failed to load report fonts: %w", err)
	}

	cfg := config.NewBuilder().
		WithOrientation(orientation.Vertical).
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).
		WithTopMargin(10).
		WithRightMargin(10).
		WithCustomFonts(fonts).
		WithDefaultFont(&props.Font{Family: reportFontFamily}).
		WithCompression(compress).
		WithTitle(data.Title, true).
		WithCreator(brand, true).
		WithCreationDate(data.GeneratedAt).
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.Bottom,
			Family:  reportFontFamily,
			Size:    9,
			Color:   footerGray,
		}).
		Build()

	m := maroto.New(cfg)

	if err := addReportFooter(m, brand); err != nil {
		return nil, fmt.Errorf("failed to register report footer: %w", err)
	}

	addReportHeader(m, data)
	addReportSummary(m, data)
	addReportTable(m, data)
	addReportFormula(m, data)
	addReportExplanation(m, data)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate COGS report PDF: %w", err)
	}

	return doc.GetBytes(), nil
}

func loadReportFonts() ([]*entity.CustomFont, error) {
	return repository.New().
		AddUTF8FontFromBytes(reportFontFamily, fontstyle.Normal, reportFontRegular).
		AddUTF8FontFromBytes(reportFontFamily, fontstyle.Bold, reportFontBold).
		Load()
}

// addReportHeader draws the colored band with the title and generation date.
func addReportHeader(m core.Maroto, data ReportData) {
	band := &props.Cell{BackgroundColor: brandColor}

	m.AddRows(
		row.New(16).Add(
			col.New(12).Add(
				text.New(data.Title, props.Text{
					Top:   4,
					Size:  22,
					Style: fontstyle.Bold,
					Align: align.Center,
					Color: white,
				}),
			).WithStyle(band),
		),
		row.New(12).Add(
			col.New(12).Add(
				text.New("Generated on: "+data.GeneratedOn(), props.Text{
					Top:   2,
					Size:  12,
					Align: align.Center,
					Color: white,
				}),
			).WithStyle(band),
		),
	)

	m.AddRows(row.New(6))
}

// addReportSummary adds the method label and the highlighted total.
func addReportSummary(m core.Maroto, data ReportData) {
	m.AddRows(
		row.New(9).Add(
			col.New(12).Add(
				text.New("Calculation Method: "+data.MethodLabel, props.Text{
					Size:  14,
					Align: align.Left,
				}),
			),
		),
		row.New(10).Add(
			col.New(12).Add(
				text.New("Total COGS: "+data.TotalText, props.Text{
					Size:  16,
					Style: fontstyle.Bold,
					Align: align.Left,
					Color: brandColor,
				}),
			),
		),
	)

	m.AddRows(row.New(4))
	m.AddRows(
		row.New(9).Add(
			col.New(12).Add(
				text.New("Cost Breakdown:", props.Text{
					Size:  14,
					Align: align.Left,
				}),
			),
		),
	)
}

// tableColumnSizes splits the 12-column grid for the two table layouts.
func tableColumnSizes(data ReportData) []int {
	if data.HasPercentages() {
		return []int{6, 4, 2}
	}
	return []int{7, 5}
}

// addReportTable renders the itemized table: a brand-colored header,
// alternating body rows and a bold total row.
func addReportTable(m core.Maroto, data ReportData) {
	sizes := tableColumnSizes(data)
	headerCell := &props.Cell{BackgroundColor: brandColor}
	headerText := props.Text{
		Top:   1.5,
		Left:  2,
		Right: 2,
		Size:  10,
		Style: fontstyle.Bold,
		Align: align.Left,
		Color: white,
	}

	var headerCols []core.Col
	for i, name := range data.Columns {
		t := headerText
		if i > 0 {
			t.Align = align.Right
		}
		headerCols = append(headerCols, col.New(sizes[i]).Add(text.New(name, t)).WithStyle(headerCell))
	}
	m.AddRows(row.New(8).Add(headerCols...))

	altBg := &props.Color{Red: 245, Green: 245, Blue: 245}
	totalBg := &props.Color{Red: 240, Green: 240, Blue: 240}

	for i, r := range data.Rows {
		style := fontstyle.Normal
		var cellStyle *props.Cell
		switch {
		case r.IsTotal:
			style = fontstyle.Bold
			cellStyle = &props.Cell{BackgroundColor: totalBg}
		case i%2 == 1:
			cellStyle = &props.Cell{BackgroundColor: altBg}
		}

		left := props.Text{Top: 1.5, Left: 2, Right: 2, Size: 10, Style: style, Align: align.Left}
		right := left
		right.Align = align.Right

		cells := []string{r.Component, r.Amount}
		if data.HasPercentages() {
			cells = append(cells, r.Percentage)
		}

		var cols []core.Col
		for j, value := range cells {
			t := right
			if j == 0 {
				t = left
			}
			c := col.New(sizes[j]).Add(text.New(value, t))
			if cellStyle != nil {
				c = c.WithStyle(cellStyle)
			}
			cols = append(cols, c)
		}
		m.AddRows(row.New(8).Add(cols...))
	}

	m.AddRows(row.New(10))
}

// addReportFormula restates the formula with the substituted amounts.
func addReportFormula(m core.Maroto, data ReportData) {
	m.AddRows(
		row.New(8).Add(
			col.New(12).Add(text.New("Formula Used:", props.Text{Size: 12, Style: fontstyle.Bold})),
		),
		row.New(7).Add(
			col.New(12).Add(text.New(data.Formula, props.Text{Size: 10})),
		),
		row.New(7).Add(
			col.New(12).Add(text.New(data.FormulaTrace, props.Text{Size: 10})),
		),
	)

	m.AddRows(row.New(8))
}

// addReportExplanation adds the fixed "What is COGS?" paragraph.
func addReportExplanation(m core.Maroto, data ReportData) {
	m.AddRows(
		row.New(9).Add(
			col.New(12).Add(text.New("What is COGS?", props.Text{Size: 14})),
		),
		row.New(20).Add(
			col.New(12).Add(text.New(data.Explanation, props.Text{Size: 10, Align: align.Left})),
		),
	)
}

// addReportFooter registers the separator line and brand string drawn at
// the bottom of every page. Page numbering comes from the config.
func addReportFooter(m core.Maroto, brand string) error {
	return m.RegisterFooter(
		row.New(3).Add(
			col.New(12).Add(line.New(props.Line{Color: brandColor, Thickness: 0.4})),
		),
		row.New(6).Add(
			col.New(12).Add(text.New(brand, props.Text{
				Size:  10,
				Align: align.Center,
				Color: footerGray,
			})),
		),
		row.New(6),
	)
}
