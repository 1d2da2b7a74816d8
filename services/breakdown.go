package services

import "github.com/shopspring/decimal"

// BreakdownLine is one labelled contribution to the total.
type BreakdownLine struct {
	Key    string
	Label  string
	Amount float64 // signed contribution; ending inventory is negative
	Share  int     // round(|Amount| / |total| * 100), 0 when total is 0
}

// Negative reports whether the line is subtracted from the total.
func (l BreakdownLine) Negative() bool {
	return l.Amount < 0
}

var hundred = decimal.NewFromInt(100)

// SharePercent returns the whole-number percentage of total that amount
// represents, using absolute values. Each share is rounded on its own, so
// the shares of a breakdown need not add up to exactly 100.
func SharePercent(amount, total float64) int {
	if total == 0 {
		return 0
	}
	a := decimal.NewFromFloat(amount).Abs()
	t := decimal.NewFromFloat(total).Abs()
	return int(a.Div(t).Mul(hundred).Round(0).IntPart())
}

// ComponentLines returns every fixed line of the method in display order,
// zero amounts included.
func ComponentLines(in CogsInputs, method Method, total float64) []BreakdownLine {
	var lines []BreakdownLine
	add := func(key, label string, amount float64) {
		lines = append(lines, BreakdownLine{
			Key:    key,
			Label:  label,
			Amount: amount,
			Share:  SharePercent(amount, total),
		})
	}

	if method == MethodInventory {
		add(FieldInventoryStart, "Beginning Inventory", in.InventoryStart)
		add(FieldPurchases, "Purchases", in.Purchases)
		add(FieldInventoryEnd, "Ending Inventory", -in.InventoryEnd)
		return lines
	}

	add(FieldRawMaterials, "Raw Materials", in.RawMaterials)
	add(FieldDirectLabor, "Direct Labor", in.DirectLabor)
	add(FieldManufacturingOverhead, "Manufacturing Overhead", in.ManufacturingOverhead)
	add(FieldShippingCosts, "Shipping & Freight", in.ShippingCosts)
	return lines
}

// Breakdown returns the non-zero lines of ComponentLines. Both the on-screen
// breakdown and the exported report are built from it.
func Breakdown(in CogsInputs, method Method, total float64) []BreakdownLine {
	var out []BreakdownLine
	for _, l := range ComponentLines(in, method, total) {
		if l.Amount == 0 {
			continue
		}
		out = append(out, l)
	}
	return out
}
