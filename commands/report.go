// Package commands holds the console commands registered on the PocketBase root command.
package commands

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"cogscalculator/config"
	"cogscalculator/services"
)

const (
	FormatText = "text"
	FormatPDF  = "pdf"
	FormatXLSX = "xlsx"
)

// amountFlags maps each CLI flag to the form field it fills.
var amountFlags = []struct {
	flag  string
	field string
	usage string
}{
	{"raw-materials", services.FieldRawMaterials, "raw materials cost"},
	{"direct-labor", services.FieldDirectLabor, "direct labor cost"},
	{"manufacturing-overhead", services.FieldManufacturingOverhead, "manufacturing overhead"},
	{"shipping-costs", services.FieldShippingCosts, "shipping and freight costs"},
	{"inventory-start", services.FieldInventoryStart, "beginning inventory value"},
	{"purchases", services.FieldPurchases, "purchases during the period"},
	{"inventory-end", services.FieldInventoryEnd, "ending inventory value"},
}

type reportOptions struct {
	method  string
	format  string
	out     string
	amounts map[string]*string
}

// NewReportCommand builds the "report" command, which calculates COGS from
// flags and writes the report as text, PDF or xlsx.
func NewReportCommand(cfg *config.Config) *cobra.Command {
	opts := &reportOptions{amounts: make(map[string]*string)}

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Calculate COGS and export the report",
		Long: `Calculate Cost of Goods Sold from the given amounts and export the report.

Examples:
  cogscalculator report --raw-materials 150000 --direct-labor 80000
  cogscalculator report --method inventory --inventory-start 100000 --purchases 50000 --inventory-end 30000 --format pdf
  cogscalculator report --raw-materials 5000 --format xlsx --out q3.xlsx`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(cmd, cfg, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.method, "method", "m", string(services.MethodDirect), "calculation method (direct, inventory)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", FormatText, "output format (text, pdf, xlsx)")
	cmd.Flags().StringVarP(&opts.out, "out", "o", "", "output file (defaults to stdout for text, the report filename otherwise)")
	for _, af := range amountFlags {
		opts.amounts[af.field] = cmd.Flags().String(af.flag, "", af.usage)
	}

	return cmd
}

func runReport(cmd *cobra.Command, cfg *config.Config, opts *reportOptions) error {
	format := strings.ToLower(strings.TrimSpace(opts.format))
	if format != FormatText && format != FormatPDF && format != FormatXLSX {
		return fmt.Errorf("unsupported format %q (want text, pdf or xlsx)", opts.format)
	}

	s := services.NewSession()
	s.SetMethod(services.ParseMethod(opts.method))
	s.Inputs = services.ParseInputs(func(field string) string {
		if v, ok := opts.amounts[field]; ok && v != nil {
			return *v
		}
		return ""
	})
	s.Calculate()

	data := services.BuildReportData(s.Inputs, s.Method, s.Total, time.Now())

	var (
		body []byte
		err  error
	)
	switch format {
	case FormatPDF:
		body, err = services.GenerateReportPDF(data, cfg.Brand)
	case FormatXLSX:
		body, err = services.GenerateReportExcel(data)
	default:
		body = []byte(data.PlainText())
	}
	if err != nil {
		return err
	}

	out := opts.out
	if out == "" {
		switch format {
		case FormatPDF:
			out = cfg.ReportFilename
		case FormatXLSX:
			out = cfg.ExcelFilename
		}
	}

	if out == "" || out == "-" {
		_, err := cmd.OutOrStdout().Write(body)
		return err
	}

	if err := os.WriteFile(out, body, 0o644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s (Total COGS: %s)\n", out, data.TotalText)
	return nil
}
