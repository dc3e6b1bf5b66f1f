package domain

import "math"

// TasaImpuesto is the fixed tax rate applied to every invoice.
const TasaImpuesto = 0.16

// Totals computes the invoice figures from its line items. The subtotal
// is an exact sum; tax and total are derived at full precision.
func Totals(items []LineItem) Totales {
	subtotal := 0.0
	for _, item := range items {
		subtotal += item.Precio
	}
	impuestos := subtotal * TasaImpuesto
	return Totales{
		Subtotal:  subtotal,
		Impuestos: impuestos,
		Total:     subtotal + impuestos,
	}
}

// Round2 rounds a currency amount half-up to two decimals. Applied only
// when a figure crosses the presentation boundary (JSON response, PDF).
func Round2(value float64) float64 {
	return math.Round(value*100) / 100
}
