package services

import (
	"math"
	"strings"

	"github.com/spf13/cast"
)

// Form field names shared by the HTML form, export query strings and the CLI.
const (
	FieldRawMaterials          = "rawMaterials"
	FieldDirectLabor           = "directLabor"
	FieldManufacturingOverhead = "manufacturingOverhead"
	FieldShippingCosts         = "shippingCosts"
	FieldInventoryStart        = "inventoryStart"
	FieldPurchases             = "purchases"
	FieldInventoryEnd          = "inventoryEnd"
	FieldMethod                = "method"
)

// InputFields lists the seven numeric field names in form order.
var InputFields = []string{
	FieldRawMaterials,
	FieldDirectLabor,
	FieldManufacturingOverhead,
	FieldShippingCosts,
	FieldInventoryStart,
	FieldPurchases,
	FieldInventoryEnd,
}

// CoerceAmount converts a raw field value to a number. Missing, empty,
// malformed and non-finite values all become 0.
func CoerceAmount(raw string) float64 {
	v, err := cast.ToFloat64E(strings.TrimSpace(raw))
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// ParseInputs builds CogsInputs from a field lookup such as url.Values.Get.
func ParseInputs(get func(string) string) CogsInputs {
	return CogsInputs{
		RawMaterials:          CoerceAmount(get(FieldRawMaterials)),
		DirectLabor:           CoerceAmount(get(FieldDirectLabor)),
		ManufacturingOverhead: CoerceAmount(get(FieldManufacturingOverhead)),
		ShippingCosts:         CoerceAmount(get(FieldShippingCosts)),
		InventoryStart:        CoerceAmount(get(FieldInventoryStart)),
		Purchases:             CoerceAmount(get(FieldPurchases)),
		InventoryEnd:          CoerceAmount(get(FieldInventoryEnd)),
	}
}

// Values returns the inputs keyed by field name, in a form suitable for
// building export links.
func (in CogsInputs) Values() map[string]float64 {
	return map[string]float64{
		FieldRawMaterials:          in.RawMaterials,
		FieldDirectLabor:           in.DirectLabor,
		FieldManufacturingOverhead: in.ManufacturingOverhead,
		FieldShippingCosts:         in.ShippingCosts,
		FieldInventoryStart:        in.InventoryStart,
		FieldPurchases:             in.Purchases,
		FieldInventoryEnd:          in.InventoryEnd,
	}
}
