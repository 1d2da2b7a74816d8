package handlers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"cogscalculator/config"
	"cogscalculator/services"
)

// buildReportData recomputes the total from the request fields so an export
// never trusts a client-supplied total.
func buildReportData(e *core.RequestEvent) services.ReportData {
	s := GetSession(e.Request)
	s.Calculate()
	return services.BuildReportData(s.Inputs, s.Method, s.Total, time.Now())
}

// sanitizeFilename removes characters that are unsafe for filenames.
func sanitizeFilename(s string) string {
	s = strings.ReplaceAll(s, " ", "-")
	s = strings.ReplaceAll(s, "/", "-")
	s = strings.ReplaceAll(s, "\\", "-")
	s = strings.ReplaceAll(s, ":", "-")
	s = strings.ReplaceAll(s, `"`, "")
	return s
}

func writeAttachment(e *core.RequestEvent, contentType, filename string, body []byte) error {
	e.Response.Header().Set("Content-Type", contentType)
	e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, sanitizeFilename(filename)))
	e.Response.WriteHeader(http.StatusOK)
	_, err := e.Response.Write(body)
	return err
}

// HandleExportPDF returns a handler that generates and downloads the COGS report PDF.
func HandleExportPDF(app *pocketbase.PocketBase, cfg *config.Config) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		data := buildReportData(e)

		pdfBytes, err := services.GenerateReportPDF(data, cfg.Brand)
		if err != nil {
			app.Logger().Error("export_pdf: failed to generate", "error", err)
			return ErrorToast(e, http.StatusInternalServerError, "Failed to generate PDF file")
		}

		SetToast(e, "success", "PDF generated successfully!")
		return writeAttachment(e, "application/pdf", cfg.ReportFilename, pdfBytes)
	}
}

// HandleExportExcel returns a handler that generates and downloads the COGS report workbook.
func HandleExportExcel(app *pocketbase.PocketBase, cfg *config.Config) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		data := buildReportData(e)

		xlsxBytes, err := services.GenerateReportExcel(data)
		if err != nil {
			app.Logger().Error("export_excel: failed to generate", "error", err)
			return ErrorToast(e, http.StatusInternalServerError, "Failed to generate Excel file")
		}

		SetToast(e, "success", "Excel file generated successfully!")
		return writeAttachment(e,
			"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
			cfg.ExcelFilename, xlsxBytes)
	}
}

// HandleCopyText returns the formatted total as plain text for the share button.
func HandleCopyText(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		s := GetSession(e.Request)
		s.Calculate()
		SetToast(e, "success", "Result copied to clipboard!")
		return e.String(http.StatusOK, services.ClipboardText(s.Total))
	}
}
