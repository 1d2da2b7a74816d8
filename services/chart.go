package services

import "github.com/shopspring/decimal"

// ChartPalette cycles across segments in breakdown order.
var ChartPalette = []string{"#245e4f", "#7ac9a7", "#e9c46a", "#4a8fe7"}

// ChartSegment is one proportional slice of the breakdown chart.
type ChartSegment struct {
	Label   string
	Amount  float64
	Share   int
	Width   float64 // percent of the bar, proportional to |Amount|
	Color   string
	Opacity float64
}

// ChartSegments maps breakdown lines to chart slices. Widths are relative to
// the sum of absolute amounts so the bar is always full; subtracted lines
// are drawn at reduced opacity.
func ChartSegments(lines []BreakdownLine) []ChartSegment {
	sum := decimal.Zero
	for _, l := range lines {
		sum = sum.Add(decimal.NewFromFloat(l.Amount).Abs())
	}
	if sum.IsZero() {
		return nil
	}

	segments := make([]ChartSegment, 0, len(lines))
	for i, l := range lines {
		width, _ := decimal.NewFromFloat(l.Amount).Abs().Div(sum).Mul(hundred).Round(2).Float64()
		opacity := 1.0
		if l.Negative() {
			opacity = 0.7
		}
		segments = append(segments, ChartSegment{
			Label:   l.Label,
			Amount:  l.Amount,
			Share:   l.Share,
			Width:   width,
			Color:   ChartPalette[i%len(ChartPalette)],
			Opacity: opacity,
		})
	}
	return segments
}
