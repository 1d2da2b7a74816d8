package services

import "testing"

func TestChartSegments_Direct(t *testing.T) {
	in := CogsInputs{RawMaterials: 150000, DirectLabor: 80000, ManufacturingOverhead: 40000, ShippingCosts: 30000}
	segs := ChartSegments(Breakdown(in, MethodDirect, 300000))

	if len(segs) != 4 {
		t.Fatalf("got %d segments, want 4", len(segs))
	}
	wantWidths := []float64{50, 26.67, 13.33, 10}
	for i, s := range segs {
		if s.Width != wantWidths[i] {
			t.Errorf("segment %d width = %v, want %v", i, s.Width, wantWidths[i])
		}
		if s.Color != ChartPalette[i] {
			t.Errorf("segment %d color = %s, want %s", i, s.Color, ChartPalette[i])
		}
		if s.Opacity != 1 {
			t.Errorf("segment %d opacity = %v, want 1", i, s.Opacity)
		}
	}
}

func TestChartSegments_InventoryNegativeLine(t *testing.T) {
	in := CogsInputs{InventoryStart: 100000, Purchases: 50000, InventoryEnd: 30000}
	segs := ChartSegments(Breakdown(in, MethodInventory, 120000))

	if len(segs) != 3 {
		t.Fatalf("got %d segments, want 3", len(segs))
	}
	end := segs[2]
	if end.Opacity != 0.7 {
		t.Errorf("ending inventory opacity = %v, want 0.7", end.Opacity)
	}
	if end.Width != 16.67 {
		t.Errorf("ending inventory width = %v, want 16.67", end.Width)
	}
	if end.Share != 25 {
		t.Errorf("ending inventory share = %d, want 25", end.Share)
	}
}

func TestChartSegments_Empty(t *testing.T) {
	if segs := ChartSegments(nil); segs != nil {
		t.Errorf("expected nil segments, got %v", segs)
	}
}
