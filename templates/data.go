// Package templates renders the calculator pages as templ components.
package templates

import (
	"net/url"
	"strconv"
	"time"

	"cogscalculator/services"
)

// InputField is one labelled rupee input of the form.
type InputField struct {
	Name  string
	Label string
	Value string // empty when the amount is zero, so the placeholder shows
}

// CalculatorData is the view model for the calculator page and partial.
type CalculatorData struct {
	Method       services.Method
	DirectFields []InputField
	InvFields    []InputField
	TotalText    string
	HasResult    bool
	Lines        []services.BreakdownLine
	Segments     []services.ChartSegment
	Inventory    InventorySummary
	ExportQuery  string
}

// InventorySummary carries the formatted inventory-method trace.
type InventorySummary struct {
	Formula  string
	Computed string
}

// EmailDialogData is the view model for the email dialog.
type EmailDialogData struct {
	Request     services.EmailRequest
	ExportQuery string
	Errors      map[string]string
}

var fieldLabels = map[string]string{
	services.FieldRawMaterials:          "Raw Materials",
	services.FieldDirectLabor:           "Direct Labor",
	services.FieldManufacturingOverhead: "Manufacturing Overhead",
	services.FieldShippingCosts:         "Shipping & Freight Costs",
	services.FieldInventoryStart:        "Beginning Inventory",
	services.FieldPurchases:             "Purchases",
	services.FieldInventoryEnd:          "Ending Inventory",
}

// NewCalculatorData builds the view model from a session. The results
// section is only populated when the session has a positive total.
func NewCalculatorData(s *services.Session) CalculatorData {
	values := s.Inputs.Values()
	data := CalculatorData{
		Method:    s.Method,
		TotalText: services.FormatINR(s.Total),
		HasResult: s.HasResult(),
	}
	for i, name := range services.InputFields {
		f := InputField{Name: name, Label: fieldLabels[name], Value: inputValue(values[name])}
		if i < 4 {
			data.DirectFields = append(data.DirectFields, f)
		} else {
			data.InvFields = append(data.InvFields, f)
		}
	}

	if !data.HasResult {
		return data
	}

	data.Lines = services.Breakdown(s.Inputs, s.Method, s.Total)
	data.Segments = services.ChartSegments(data.Lines)
	data.ExportQuery = ExportQuery(s)

	report := services.BuildReportData(s.Inputs, s.Method, s.Total, time.Time{})
	data.Inventory = InventorySummary{
		Formula:  report.Formula,
		Computed: report.FormulaTrace,
	}
	return data
}

// ExportQuery encodes the session as the query string export links carry.
func ExportQuery(s *services.Session) string {
	q := url.Values{}
	values := s.Inputs.Values()
	for _, name := range services.InputFields {
		if values[name] != 0 {
			q.Set(name, strconv.FormatFloat(values[name], 'f', -1, 64))
		}
	}
	q.Set(services.FieldMethod, string(s.Method))
	return q.Encode()
}

func inputValue(v float64) string {
	if v == 0 {
		return ""
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
