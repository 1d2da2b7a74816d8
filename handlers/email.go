package handlers

import (
	"errors"
	"net/http"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"cogscalculator/config"
	"cogscalculator/services"
	"cogscalculator/templates"
)

// HandleEmailForm renders the email dialog prefilled with the default
// subject and message.
func HandleEmailForm(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		data := templates.EmailDialogData{
			Request:     services.NewEmailRequest(),
			ExportQuery: templates.ExportQuery(GetSession(e.Request)),
			Errors:      make(map[string]string),
		}
		return templates.EmailDialog(data).Render(e.Request.Context(), e.Response)
	}
}

// HandleEmailSend validates the dialog, generates the PDF report and sends it
// to the recipient.
func HandleEmailSend(app *pocketbase.PocketBase, cfg *config.Config) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		s := GetSession(e.Request)
		s.Calculate()

		req := services.EmailRequest{
			Recipient: e.Request.FormValue("recipient"),
			Subject:   e.Request.FormValue("subject"),
			Message:   e.Request.FormValue("message"),
		}
		req.Normalize()

		if err := req.Validate(); err != nil {
			SetToast(e, "error", "Please fix the errors below")
			data := templates.EmailDialogData{
				Request:     req,
				ExportQuery: templates.ExportQuery(s),
				Errors:      fieldErrors(err),
			}
			e.Response.WriteHeader(http.StatusUnprocessableEntity)
			return templates.EmailDialog(data).Render(e.Request.Context(), e.Response)
		}

		report := services.BuildReportData(s.Inputs, s.Method, s.Total, time.Now())
		pdfBytes, err := services.GenerateReportPDF(report, cfg.Brand)
		if err != nil {
			app.Logger().Error("email: failed to generate report", "error", err)
			return ErrorToast(e, http.StatusInternalServerError, "Failed to generate PDF file")
		}

		rm := services.ReportMailer{
			Sender:   newSender(app, cfg),
			From:     cfg.Sender(),
			Filename: cfg.ReportFilename,
		}
		if err := rm.Send(req, report, pdfBytes); err != nil {
			app.Logger().Error("email: send failed", "recipient", req.Recipient, "error", err)
			return ErrorToast(e, http.StatusInternalServerError, "Failed to send email. Please try again.")
		}

		SetToast(e, "success", "Email sent to "+req.Recipient+"!")
		// Empty body closes the dialog.
		return e.HTML(http.StatusOK, "")
	}
}

func newSender(app *pocketbase.PocketBase, cfg *config.Config) services.Sender {
	if cfg.EmailDelivery == config.DeliverySMTP {
		return app.NewMailClient()
	}
	return services.SimulatedSender{Logger: app.Logger()}
}

// fieldErrors flattens ozzo validation errors into field name -> message.
func fieldErrors(err error) map[string]string {
	out := make(map[string]string)
	var verrs validation.Errors
	if errors.As(err, &verrs) {
		for field, ferr := range verrs {
			out[field] = ferr.Error()
		}
		return out
	}
	out["Recipient"] = err.Error()
	return out
}
