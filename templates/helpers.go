package templates

import (
	"fmt"

	"github.com/a-h/templ"

	"cogscalculator/services"
)

func segmentStyle(s services.ChartSegment) templ.SafeCSS {
	return templ.SafeCSS(fmt.Sprintf("width:%.2f%%;background:%s;opacity:%.1f", s.Width, s.Color, s.Opacity))
}

func swatchStyle(s services.ChartSegment) templ.SafeCSS {
	return templ.SafeCSS(fmt.Sprintf("background:%s;opacity:%.1f", s.Color, s.Opacity))
}

// segmentTitle is the hover text of a chart segment.
func segmentTitle(s services.ChartSegment) string {
	title := s.Label + ": " + services.FormatINR(abs(s.Amount))
	if s.Amount < 0 {
		title += " (subtracted)"
	}
	return title + " - " + services.FormatPercent(s.Share) + " of total"
}

// lineAmount prints subtracted lines as "- ₹30,000".
func lineAmount(l services.BreakdownLine) string {
	if l.Negative() {
		return "- " + services.FormatINR(-l.Amount)
	}
	return services.FormatINR(l.Amount)
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
