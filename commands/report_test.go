package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"cogscalculator/config"
	"cogscalculator/services"
)

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewReportCommand(config.Default())
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestReportCommand_TextDirect(t *testing.T) {
	out, err := runCommand(t,
		"--raw-materials", "150000",
		"--direct-labor", "80000",
		"--manufacturing-overhead", "40000",
		"--shipping-costs", "30000",
	)
	if err != nil {
		t.Fatalf("command failed: %v", err)
	}

	for _, want := range []string{
		"Calculation Method: Direct Method",
		"Total COGS: ₹3,00,000",
		"Raw Materials: ₹1,50,000 (50%)",
		"Shipping & Freight: ₹30,000 (10%)",
		"₹1,50,000 + ₹80,000 + ₹40,000 + ₹30,000 = ₹3,00,000",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q\n%s", want, out)
		}
	}
}

func TestReportCommand_TextInventory(t *testing.T) {
	out, err := runCommand(t,
		"--method", "inventory",
		"--inventory-start", "10000",
		"--purchases", "0",
		"--inventory-end", "45000",
	)
	if err != nil {
		t.Fatalf("command failed: %v", err)
	}
	if !strings.Contains(out, "Total COGS: -₹35,000") {
		t.Errorf("expected negative total, got\n%s", out)
	}
	if !strings.Contains(out, "- Ending Inventory: ₹45,000") {
		t.Errorf("expected ending inventory row, got\n%s", out)
	}
}

func TestReportCommand_InvalidAmountCoercesToZero(t *testing.T) {
	out, err := runCommand(t, "--raw-materials", "abc", "--direct-labor", "250")
	if err != nil {
		t.Fatalf("command failed: %v", err)
	}
	if !strings.Contains(out, "Total COGS: ₹250") {
		t.Errorf("expected invalid amount to count as zero, got\n%s", out)
	}
}

func TestReportCommand_UnsupportedFormat(t *testing.T) {
	_, err := runCommand(t, "--format", "docx")
	if err == nil {
		t.Fatal("expected error for unsupported format")
	}
	if !strings.Contains(err.Error(), "unsupported format") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestReportCommand_WritesFiles(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		format string
		file   string
		check  func(t *testing.T, path string)
	}{
		{
			format: FormatPDF,
			file:   "report.pdf",
			check: func(t *testing.T, path string) {
				b, err := os.ReadFile(path)
				if err != nil {
					t.Fatalf("read: %v", err)
				}
				if !bytes.HasPrefix(b, []byte("%PDF-")) {
					t.Error("file is not a PDF")
				}
			},
		},
		{
			format: FormatXLSX,
			file:   "report.xlsx",
			check: func(t *testing.T, path string) {
				f, err := excelize.OpenFile(path)
				if err != nil {
					t.Fatalf("open workbook: %v", err)
				}
				defer f.Close()
				v, _ := f.GetCellValue(services.ReportSheetName, "A4")
				if v != "Total COGS: ₹5,000" {
					t.Errorf("A4 = %q", v)
				}
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			path := filepath.Join(dir, tt.file)
			out, err := runCommand(t, "--raw-materials", "5000", "--format", tt.format, "--out", path)
			if err != nil {
				t.Fatalf("command failed: %v", err)
			}
			if !strings.Contains(out, "Report written to "+path) {
				t.Errorf("unexpected output %q", out)
			}
			tt.check(t, path)
		})
	}
}
