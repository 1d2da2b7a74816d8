// Package services provides the COGS calculation, breakdown, and report export functions.
package services

import "strings"

// Method selects which COGS formula applies.
type Method string

const (
	MethodDirect    Method = "direct"
	MethodInventory Method = "inventory"
)

// ParseMethod maps a selector value to a Method. Anything other than
// "inventory" selects the direct method, which is the form's default tab.
func ParseMethod(s string) Method {
	if strings.EqualFold(strings.TrimSpace(s), string(MethodInventory)) {
		return MethodInventory
	}
	return MethodDirect
}

// Label returns the human-readable method name used on screen and in reports.
func (m Method) Label() string {
	if m == MethodInventory {
		return "Inventory Method"
	}
	return "Direct Method"
}

// CogsInputs holds the seven numeric fields of the calculator form.
// The direct method reads the first four, the inventory method the last three.
type CogsInputs struct {
	RawMaterials          float64
	DirectLabor           float64
	ManufacturingOverhead float64
	ShippingCosts         float64
	InventoryStart        float64
	Purchases             float64
	InventoryEnd          float64
}

// Compute returns the total COGS for the given inputs and method.
func Compute(in CogsInputs, method Method) float64 {
	if method == MethodInventory {
		return in.InventoryStart + in.Purchases - in.InventoryEnd
	}
	return in.RawMaterials + in.DirectLabor + in.ManufacturingOverhead + in.ShippingCosts
}

// Session is the state of one calculator interaction: the current inputs,
// the active method, and the last calculated total. Total only changes on
// an explicit Calculate.
type Session struct {
	Inputs     CogsInputs
	Method     Method
	Total      float64
	Calculated bool
}

// NewSession returns an all-zero session on the direct method.
func NewSession() *Session {
	return &Session{Method: MethodDirect}
}

// SetMethod switches the active formula without recomputing the total.
func (s *Session) SetMethod(m Method) {
	s.Method = m
}

// Calculate recomputes and stores the total from the current inputs.
func (s *Session) Calculate() float64 {
	s.Total = Compute(s.Inputs, s.Method)
	s.Calculated = true
	return s.Total
}

// Reset clears every input and the total. The selected method is kept.
func (s *Session) Reset() {
	s.Inputs = CogsInputs{}
	s.Total = 0
	s.Calculated = false
}

// HasResult reports whether the results section (chart, breakdown, export)
// should be shown. A zero or negative total hides it.
func (s *Session) HasResult() bool {
	return s.Calculated && s.Total > 0
}
