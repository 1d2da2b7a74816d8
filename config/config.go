// Package config loads calculator settings from the environment.
package config

import (
	"fmt"
	"net/mail"
	"strings"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"

	"cogscalculator/services"
)

const (
	DeliverySimulate = "simulate"
	DeliverySMTP     = "smtp"

	envPrefix = "COGS_"
)

// Config holds the report branding and email delivery settings.
type Config struct {
	Brand          string
	ReportFilename string
	ExcelFilename  string
	EmailDelivery  string
	MailFrom       string
	MailFromName   string
}

// Load reads COGS_* variables from the environment and an optional .env file.
func Load() (*Config, error) {
	_ = godotenv.Load()

	k := koanf.New(".")
	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}

	cfg := &Config{
		Brand:          valueOrDefault(k.String("brand"), services.DefaultBrand),
		ReportFilename: valueOrDefault(k.String("report_filename"), services.DefaultReportFilename),
		EmailDelivery:  strings.ToLower(valueOrDefault(k.String("email_delivery"), DeliverySimulate)),
		MailFrom:       valueOrDefault(k.String("mail_from"), "noreply@cogscalculator.com"),
		MailFromName:   valueOrDefault(k.String("mail_from_name"), "COGS Calculator"),
	}
	cfg.ExcelFilename = excelName(cfg.ReportFilename)

	if cfg.EmailDelivery != DeliverySimulate && cfg.EmailDelivery != DeliverySMTP {
		return nil, fmt.Errorf("COGS_EMAIL_DELIVERY must be %q or %q, got %q",
			DeliverySimulate, DeliverySMTP, cfg.EmailDelivery)
	}
	if _, err := mail.ParseAddress(cfg.MailFrom); err != nil {
		return nil, fmt.Errorf("COGS_MAIL_FROM is not a valid address: %w", err)
	}

	return cfg, nil
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{
		Brand:          services.DefaultBrand,
		ReportFilename: services.DefaultReportFilename,
		ExcelFilename:  excelName(services.DefaultReportFilename),
		EmailDelivery:  DeliverySimulate,
		MailFrom:       "noreply@cogscalculator.com",
		MailFromName:   "COGS Calculator",
	}
}

// Sender returns the mail.Address reports are sent from.
func (c *Config) Sender() mail.Address {
	return mail.Address{Name: c.MailFromName, Address: c.MailFrom}
}

func excelName(pdfName string) string {
	return strings.TrimSuffix(pdfName, ".pdf") + ".xlsx"
}

func valueOrDefault(value, fallback string) string {
	if strings.TrimSpace(value) != "" {
		return strings.TrimSpace(value)
	}
	return fallback
}
