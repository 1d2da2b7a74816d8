package services

import "testing"

func TestSharePercent(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		total  float64
		want   int
	}{
		{"half", 150000, 300000, 50},
		{"rounds down", 80000, 300000, 27},
		{"rounds up", 40000, 300000, 13},
		{"exact tenth", 30000, 300000, 10},
		{"half rounds away from zero", 1, 8, 13},
		{"zero total", 500, 0, 0},
		{"negative amount uses magnitude", -30000, 120000, 25},
		{"negative total uses magnitude", 10000, -35000, 29},
		{"share above 100", 45000, -35000, 129},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SharePercent(tt.amount, tt.total); got != tt.want {
				t.Errorf("SharePercent(%v, %v) = %d, want %d", tt.amount, tt.total, got, tt.want)
			}
		})
	}
}

func TestBreakdown_Direct(t *testing.T) {
	in := CogsInputs{RawMaterials: 150000, DirectLabor: 80000, ManufacturingOverhead: 40000, ShippingCosts: 30000}
	lines := Breakdown(in, MethodDirect, 300000)

	want := []struct {
		label string
		share int
	}{
		{"Raw Materials", 50},
		{"Direct Labor", 27},
		{"Manufacturing Overhead", 13},
		{"Shipping & Freight", 10},
	}
	if len(lines) != len(want) {
		t.Fatalf("got %d lines, want %d", len(lines), len(want))
	}
	for i, w := range want {
		if lines[i].Label != w.label || lines[i].Share != w.share {
			t.Errorf("line %d = %s %d%%, want %s %d%%", i, lines[i].Label, lines[i].Share, w.label, w.share)
		}
		if lines[i].Negative() {
			t.Errorf("line %d should not be negative", i)
		}
	}
}

func TestBreakdown_OmitsZeroLines(t *testing.T) {
	in := CogsInputs{RawMaterials: 1000, ShippingCosts: 250}
	lines := Breakdown(in, MethodDirect, 1250)
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if lines[0].Key != FieldRawMaterials || lines[1].Key != FieldShippingCosts {
		t.Errorf("unexpected keys %q, %q", lines[0].Key, lines[1].Key)
	}
}

func TestBreakdown_Inventory(t *testing.T) {
	in := CogsInputs{InventoryStart: 100000, Purchases: 50000, InventoryEnd: 30000}
	lines := Breakdown(in, MethodInventory, 120000)
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(lines))
	}

	end := lines[2]
	if end.Label != "Ending Inventory" || end.Amount != -30000 || !end.Negative() {
		t.Errorf("ending inventory line = %+v", end)
	}
	shares := []int{lines[0].Share, lines[1].Share, lines[2].Share}
	if shares[0] != 83 || shares[1] != 42 || shares[2] != 25 {
		t.Errorf("shares = %v, want [83 42 25]", shares)
	}
}

func TestBreakdown_InventoryWithoutEndingInventory(t *testing.T) {
	in := CogsInputs{InventoryStart: 100, Purchases: 0}
	lines := Breakdown(in, MethodInventory, 100)
	if len(lines) != 1 || lines[0].Key != FieldInventoryStart {
		t.Errorf("expected only the beginning inventory line, got %+v", lines)
	}
}

func TestComponentLines_KeepsZeroLines(t *testing.T) {
	lines := ComponentLines(CogsInputs{}, MethodDirect, 0)
	if len(lines) != 4 {
		t.Fatalf("got %d lines, want 4", len(lines))
	}
	for _, l := range lines {
		if l.Share != 0 {
			t.Errorf("%s share = %d, want 0", l.Label, l.Share)
		}
	}

	if got := len(ComponentLines(CogsInputs{}, MethodInventory, 0)); got != 3 {
		t.Errorf("inventory lines = %d, want 3", got)
	}
}
