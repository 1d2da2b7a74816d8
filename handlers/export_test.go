package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"cogscalculator/config"
	"cogscalculator/services"
	"cogscalculator/testhelpers"
)

const directQuery = "method=direct&rawMaterials=150000&directLabor=80000&manufacturingOverhead=40000&shippingCosts=30000"

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"spaces to hyphens", "COGS Report", "COGS-Report"},
		{"slashes to hyphens", "path/to/file", "path-to-file"},
		{"backslashes", "path\\to\\file", "path-to-file"},
		{"colons", "file:name", "file-name"},
		{"quotes dropped", `my"report".pdf`, "myreport.pdf"},
		{"mixed", "A / B \\ C : D", "A---B---C---D"},
		{"default name unchanged", services.DefaultReportFilename, services.DefaultReportFilename},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := sanitizeFilename(tt.input)
			if got != tt.want {
				t.Errorf("sanitizeFilename(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestHandleExportPDF(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	cfg := config.Default()

	req := httptest.NewRequest(http.MethodGet, "/export/pdf?"+directQuery, nil)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := HandleExportPDF(app, cfg)(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Errorf("Content-Type = %q, want application/pdf", ct)
	}
	wantDisposition := `attachment; filename="COGS_Calculation_Report.pdf"`
	if cd := rec.Header().Get("Content-Disposition"); cd != wantDisposition {
		t.Errorf("Content-Disposition = %q, want %q", cd, wantDisposition)
	}
	if !bytes.HasPrefix(rec.Body.Bytes(), []byte("%PDF-")) {
		t.Error("body does not look like a PDF")
	}
	testhelpers.AssertToast(t, rec.Header().Get("HX-Trigger"), "success", "PDF generated successfully!")
}

func TestHandleExportPDF_ZeroTotalStillExports(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/export/pdf", nil)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := HandleExportPDF(app, config.Default())(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", rec.Code)
	}
	if rec.Body.Len() == 0 {
		t.Error("expected a zero-filled report, got empty body")
	}
}

func TestHandleExportExcel(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	cfg := config.Default()

	req := httptest.NewRequest(http.MethodGet, "/export/excel?"+directQuery, nil)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := HandleExportExcel(app, cfg)(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if cd := rec.Header().Get("Content-Disposition"); !strings.Contains(cd, "COGS_Calculation_Report.xlsx") {
		t.Errorf("Content-Disposition = %q, want xlsx filename", cd)
	}

	f, err := excelize.OpenReader(bytes.NewReader(rec.Body.Bytes()))
	if err != nil {
		t.Fatalf("failed to open exported workbook: %v", err)
	}
	defer f.Close()

	total, err := f.GetCellValue(services.ReportSheetName, "A4")
	if err != nil {
		t.Fatalf("GetCellValue: %v", err)
	}
	if total != "Total COGS: ₹3,00,000" {
		t.Errorf("A4 = %q, want total line", total)
	}
}

func TestHandleExport_ConfiguredFilename(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	cfg := config.Default()
	cfg.ReportFilename = "Q3 COGS.pdf"

	req := httptest.NewRequest(http.MethodGet, "/export/pdf?"+directQuery, nil)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := HandleExportPDF(app, cfg)(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if cd := rec.Header().Get("Content-Disposition"); cd != `attachment; filename="Q3-COGS.pdf"` {
		t.Errorf("Content-Disposition = %q", cd)
	}
}

func TestHandleCopyText(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  string
	}{
		{"direct", directQuery, "₹3,00,000"},
		{"inventory", "method=inventory&inventoryStart=100000&purchases=50000&inventoryEnd=30000", "₹1,20,000"},
		{"negative", "method=inventory&inventoryStart=10000&inventoryEnd=45000", "-₹35,000"},
		{"empty", "", "₹0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := testhelpers.NewTestApp(t)
			req := httptest.NewRequest(http.MethodGet, "/export/clipboard?"+tt.query, nil)
			rec := httptest.NewRecorder()
			e := newTestRequestEvent(app, req, rec)

			if err := HandleCopyText(app)(e); err != nil {
				t.Fatalf("handler returned error: %v", err)
			}
			if rec.Body.String() != tt.want {
				t.Errorf("body = %q, want %q", rec.Body.String(), tt.want)
			}
			if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/plain") {
				t.Errorf("Content-Type = %q, want text/plain", ct)
			}
			testhelpers.AssertToast(t, rec.Header().Get("HX-Trigger"), "success", "Result copied to clipboard!")
		})
	}
}
