package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"cogscalculator/config"
	"cogscalculator/services"
	"cogscalculator/testhelpers"
)

func TestHandleEmailForm_PrefillsDefaults(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	req := httptest.NewRequest(http.MethodGet, "/email?"+directQuery, nil)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := HandleEmailForm(app)(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	testhelpers.AssertHTMLContains(t, rec.Body.String(),
		"Email COGS Results",
		`name="recipient" value=""`,
		services.DefaultEmailSubject,
		services.DefaultEmailMessage,
		"rawMaterials=150000",
	)
}

func emailRequest(t *testing.T, fields url.Values) (*httptest.ResponseRecorder, error) {
	t.Helper()
	app := testhelpers.NewTestApp(t)
	cfg := config.Default()

	req := httptest.NewRequest(http.MethodPost, "/email?"+directQuery, strings.NewReader(fields.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("HX-Request", "true")
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	return rec, HandleEmailSend(app, cfg)(e)
}

func TestHandleEmailSend_Simulated(t *testing.T) {
	rec, err := emailRequest(t, url.Values{
		"recipient": {"finance@example.com"},
		"subject":   {""},
		"message":   {"Q3 numbers"},
	})
	if err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	testhelpers.AssertToast(t, rec.Header().Get("HX-Trigger"), "success", "Email sent to finance@example.com!")
	if rec.Body.Len() != 0 {
		t.Errorf("expected empty body to close the dialog, got %q", rec.Body.String())
	}
}

func TestHandleEmailSend_ValidationErrors(t *testing.T) {
	tests := []struct {
		name      string
		recipient string
		subject   string
	}{
		{"missing recipient", "", ""},
		{"malformed recipient", "not-an-email", ""},
		{"subject too long", "finance@example.com", strings.Repeat("x", 201)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, err := emailRequest(t, url.Values{
				"recipient": {tt.recipient},
				"subject":   {tt.subject},
			})
			if err != nil {
				t.Fatalf("handler returned error: %v", err)
			}
			if rec.Code != http.StatusUnprocessableEntity {
				t.Errorf("expected status 422, got %d", rec.Code)
			}
			testhelpers.AssertToast(t, rec.Header().Get("HX-Trigger"), "error", "Please fix the errors below")
			testhelpers.AssertHTMLContains(t, rec.Body.String(), `class="field-error"`, `aria-invalid="true"`)
		})
	}
}

func TestFieldErrors(t *testing.T) {
	verrs := validation.Errors{
		"Recipient": errors.New("must be a valid email address"),
	}
	got := fieldErrors(verrs)
	if got["Recipient"] != "must be a valid email address" {
		t.Errorf("Recipient error = %q", got["Recipient"])
	}

	got = fieldErrors(errors.New("boom"))
	if got["Recipient"] != "boom" {
		t.Errorf("fallback error = %q, want boom", got["Recipient"])
	}
}

func TestNewSender(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	cfg := config.Default()
	if _, ok := newSender(app, cfg).(services.SimulatedSender); !ok {
		t.Error("default delivery should use the simulated sender")
	}

	cfg.EmailDelivery = config.DeliverySMTP
	if _, ok := newSender(app, cfg).(services.SimulatedSender); ok {
		t.Error("smtp delivery should use the PocketBase mail client")
	}
}
