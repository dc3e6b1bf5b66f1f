package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTotals_SixteenPercentTax(t *testing.T) {
	totales := Totals([]LineItem{
		{Nombre: "Cambio de Aceite", Precio: 30},
		{Nombre: "Replace frenos", Precio: 50},
	})

	assert.Equal(t, 80.0, totales.Subtotal)
	assert.InDelta(t, 12.80, totales.Impuestos, 1e-9)
	assert.InDelta(t, 92.80, totales.Total, 1e-9)
}

func TestTotals_EmptyInvoiceIsZero(t *testing.T) {
	totales := Totals(nil)

	assert.Zero(t, totales.Subtotal)
	assert.Zero(t, totales.Impuestos)
	assert.Zero(t, totales.Total)
}

func TestTotals_KeepsFullPrecision(t *testing.T) {
	totales := Totals([]LineItem{{Nombre: "Diagnóstico", Precio: 33.33}})

	// Stored figures are not rounded; rounding is a presentation concern.
	assert.InDelta(t, 5.3328, totales.Impuestos, 1e-9)
	assert.InDelta(t, 38.6628, totales.Total, 1e-9)
}

func TestRound2_HalfUp(t *testing.T) {
	assert.Equal(t, 12.80, Round2(12.800000000000001))
	assert.Equal(t, 5.33, Round2(5.3328))
	assert.Equal(t, 0.38, Round2(0.375))
	assert.Equal(t, 0.0, Round2(0))
}
