package config

import (
	"strings"
	"testing"

	"cogscalculator/services"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	want := Default()
	if *cfg != *want {
		t.Errorf("Load() = %+v, want %+v", *cfg, *want)
	}
}

func TestLoad_FromEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("COGS_BRAND", "Acme Foods | Finance")
	t.Setenv("COGS_REPORT_FILENAME", "Acme_COGS.pdf")
	t.Setenv("COGS_EMAIL_DELIVERY", "SMTP")
	t.Setenv("COGS_MAIL_FROM", "reports@acme.example")
	t.Setenv("COGS_MAIL_FROM_NAME", "Acme Reports")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Brand != "Acme Foods | Finance" {
		t.Errorf("Brand = %q", cfg.Brand)
	}
	if cfg.ReportFilename != "Acme_COGS.pdf" || cfg.ExcelFilename != "Acme_COGS.xlsx" {
		t.Errorf("filenames = %q, %q", cfg.ReportFilename, cfg.ExcelFilename)
	}
	if cfg.EmailDelivery != DeliverySMTP {
		t.Errorf("EmailDelivery = %q, want smtp", cfg.EmailDelivery)
	}
	sender := cfg.Sender()
	if sender.Address != "reports@acme.example" || sender.Name != "Acme Reports" {
		t.Errorf("Sender() = %v", sender)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		value   string
		wantErr string
	}{
		{"unknown delivery", "COGS_EMAIL_DELIVERY", "pigeon", "COGS_EMAIL_DELIVERY"},
		{"bad from address", "COGS_MAIL_FROM", "not an address", "COGS_MAIL_FROM"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Chdir(t.TempDir())
			t.Setenv(tt.key, tt.value)

			_, err := Load()
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %v, want mention of %s", err, tt.wantErr)
			}
		})
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Brand != services.DefaultBrand {
		t.Errorf("Brand = %q", cfg.Brand)
	}
	if cfg.ExcelFilename != "COGS_Calculation_Report.xlsx" {
		t.Errorf("ExcelFilename = %q", cfg.ExcelFilename)
	}
	if cfg.EmailDelivery != DeliverySimulate {
		t.Errorf("EmailDelivery = %q", cfg.EmailDelivery)
	}
}
