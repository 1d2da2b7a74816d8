package services

import (
	"testing"
	"time"

	"github.com/xuri/excelize/v2"
)

var reportTime = time.Date(2025, time.March, 7, 10, 30, 0, 0, time.UTC)

func scenarioDirect() CogsInputs {
	return CogsInputs{RawMaterials: 150000, DirectLabor: 80000, ManufacturingOverhead: 40000, ShippingCosts: 30000}
}

func scenarioInventory() CogsInputs {
	return CogsInputs{InventoryStart: 100000, Purchases: 50000, InventoryEnd: 30000}
}

func openReport(t *testing.T, data ReportData) *excelize.File {
	t.Helper()
	result, err := GenerateReportExcel(data)
	if err != nil {
		t.Fatalf("GenerateReportExcel() error = %v", err)
	}
	if len(result) == 0 {
		t.Fatal("GenerateReportExcel() returned empty bytes")
	}
	f, err := excelize.OpenReader(bytesReader(result))
	if err != nil {
		t.Fatalf("result is not valid Excel: %v", err)
	}
	t.Cleanup(func() { f.Close() })
	return f
}

func cell(t *testing.T, f *excelize.File, axis string) string {
	t.Helper()
	v, err := f.GetCellValue(ReportSheetName, axis)
	if err != nil {
		t.Fatalf("GetCellValue(%s): %v", axis, err)
	}
	return v
}

func TestGenerateReportExcel_Direct(t *testing.T) {
	f := openReport(t, BuildReportData(scenarioDirect(), MethodDirect, 300000, reportTime))

	sheets := f.GetSheetList()
	if len(sheets) != 1 || sheets[0] != ReportSheetName {
		t.Errorf("sheets = %v, want [%s]", sheets, ReportSheetName)
	}

	tests := []struct {
		axis string
		want string
	}{
		{"A1", "COGS Calculation Report"},
		{"A2", "Generated on: 7/3/2025"},
		{"A3", "Calculation Method: Direct Method"},
		{"A4", "Total COGS: ₹3,00,000"},
		{"A6", "Component"},
		{"C6", "Percentage"},
		{"A7", "Raw Materials"},
		{"B7", "₹1,50,000"},
		{"C7", "50%"},
		{"C8", "27%"},
		{"A10", "Shipping & Freight"},
		{"A11", "Total"},
		{"C11", "100%"},
		{"A13", "Formula Used:"},
		{"A15", "₹1,50,000 + ₹80,000 + ₹40,000 + ₹30,000 = ₹3,00,000"},
	}
	for _, tt := range tests {
		if got := cell(t, f, tt.axis); got != tt.want {
			t.Errorf("%s = %q, want %q", tt.axis, got, tt.want)
		}
	}
}

func TestGenerateReportExcel_InventoryHasNoPercentageColumn(t *testing.T) {
	f := openReport(t, BuildReportData(scenarioInventory(), MethodInventory, 120000, reportTime))

	if got := cell(t, f, "C6"); got != "" {
		t.Errorf("C6 = %q, want empty", got)
	}
	if got := cell(t, f, "A8"); got != "'+ Purchases" {
		t.Errorf("A8 = %q, want sanitized purchases label", got)
	}
	if got := cell(t, f, "B10"); got != "₹1,20,000" {
		t.Errorf("B10 = %q, want total", got)
	}
}

func TestGenerateReportExcel_ZeroTotal(t *testing.T) {
	f := openReport(t, BuildReportData(CogsInputs{}, MethodDirect, 0, reportTime))

	for _, axis := range []string{"B7", "B8", "B9", "B10", "B11"} {
		if got := cell(t, f, axis); got != "₹0" {
			t.Errorf("%s = %q, want ₹0", axis, got)
		}
	}
	if got := cell(t, f, "C11"); got != "0%" {
		t.Errorf("C11 = %q, want 0%%", got)
	}
}

func TestSanitizeExcelCell(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"=SUM(A1:A2)", "'=SUM(A1:A2)"},
		{"+ Purchases", "'+ Purchases"},
		{"-₹35,000", "'-₹35,000"},
		{"@cmd", "'@cmd"},
		{"Raw Materials", "Raw Materials"},
		{"₹1,000", "₹1,000"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := sanitizeExcelCell(tt.input); got != tt.want {
			t.Errorf("sanitizeExcelCell(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
