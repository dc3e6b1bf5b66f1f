package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	diagnosticdomain "github.com/tallertech/tallertech/internal/diagnostic/domain"
)

func TestDetectServices_FallaSuggestsRepair(t *testing.T) {
	detalles := []diagnosticdomain.DetalleDiagnostico{
		{Componente: "motor", Valor: "Falla"},
	}

	assert.Equal(t, []LineItem{
		{Nombre: "Repair motor", Precio: 80, Origen: OrigenAuto},
	}, DetectServices(detalles))
}

func TestDetectServices_DesgastadosSuggestsReplacement(t *testing.T) {
	detalles := []diagnosticdomain.DetalleDiagnostico{
		{Componente: "frenos", Valor: "Desgastados"},
	}

	assert.Equal(t, []LineItem{
		{Nombre: "Replace frenos", Precio: 50, Origen: OrigenAuto},
	}, DetectServices(detalles))
}

func TestDetectServices_NumericValuesNeverMatch(t *testing.T) {
	detalles := []diagnosticdomain.DetalleDiagnostico{
		{Componente: "motor", Valor: "1"},
		{Componente: "presion_frontalIzq", Valor: "25"},
		{Componente: "alineacion_frontalIzq", Valor: "2.5"},
	}

	assert.Empty(t, DetectServices(detalles))
}

func TestDetectServices_OrderPreservedNoDedup(t *testing.T) {
	detalles := []diagnosticdomain.DetalleDiagnostico{
		{Componente: "frenos", Valor: "Desgastados"},
		{Componente: "motor", Valor: "Falla"},
		{Componente: "frenos", Valor: "Desgastados"},
		{Componente: "bateria", Valor: "0"},
	}

	assert.Equal(t, []LineItem{
		{Nombre: "Replace frenos", Precio: 50, Origen: OrigenAuto},
		{Nombre: "Repair motor", Precio: 80, Origen: OrigenAuto},
		{Nombre: "Replace frenos", Precio: 50, Origen: OrigenAuto},
	}, DetectServices(detalles))
}

func TestDetectServices_EmptyInput(t *testing.T) {
	assert.Empty(t, DetectServices(nil))
}
