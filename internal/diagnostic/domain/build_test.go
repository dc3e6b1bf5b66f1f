package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild_AlwaysEmitsElevenRows(t *testing.T) {
	now := time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)
	estado := EstadoVehiculo{
		Motor:   CondicionFalla,
		Bateria: CondicionNormal,
		Frenos:  CondicionDesgastados,
		Llantas: map[TirePosition]CondicionLlanta{
			FrontalIzq: {Presion: CondicionBaja, Angulo: 1.5},
			FrontalDer: {Presion: CondicionNormal, Angulo: -0.3},
		},
	}

	diagnostico, detalles := Build(estado, "ABC123", now)

	assert.NotEmpty(t, diagnostico.IDDiagnostico)
	assert.Equal(t, "ABC123", diagnostico.Placa)
	assert.Equal(t, "2024-03-15", diagnostico.Fecha)
	require.Len(t, detalles, 11)

	componentes := make([]string, 0, len(detalles))
	for _, detalle := range detalles {
		componentes = append(componentes, detalle.Componente)
		assert.Equal(t, diagnostico.IDDiagnostico, detalle.IDDiagnostico)
		assert.Equal(t, "ABC123", detalle.Placa)
		assert.Equal(t, "2024-03-15", detalle.Fecha)
		assert.NotEmpty(t, detalle.IDDetalle)
	}
	assert.Equal(t, []string{
		"motor", "bateria", "frenos",
		"presion_frontalIzq", "presion_frontalDer", "presion_traseraIzq", "presion_traseraDer",
		"alineacion_frontalIzq", "alineacion_frontalDer", "alineacion_traseraIzq", "alineacion_traseraDer",
	}, componentes)

	valores := map[string]Valor{}
	for _, detalle := range detalles {
		valores[detalle.Componente] = detalle.Valor
	}
	assert.Equal(t, Valor("1"), valores["motor"])
	assert.Equal(t, Valor("0"), valores["bateria"])
	assert.Equal(t, Valor("1"), valores["frenos"])
	assert.Equal(t, Valor("25"), valores["presion_frontalIzq"])
	assert.Equal(t, Valor("30"), valores["presion_frontalDer"])
	assert.Equal(t, Valor("30"), valores["presion_traseraIzq"])
	assert.Equal(t, Valor("1.5"), valores["alineacion_frontalIzq"])
	assert.Equal(t, Valor("-0.3"), valores["alineacion_frontalDer"])
	assert.Equal(t, Valor("0"), valores["alineacion_traseraIzq"])
}

func TestBuild_RowIDsAreUnique(t *testing.T) {
	_, detalles := Build(EstadoVehiculo{}, "XYZ789", time.Now())

	seen := map[string]bool{}
	for _, detalle := range detalles {
		assert.False(t, seen[detalle.IDDetalle])
		seen[detalle.IDDetalle] = true
	}
}

func TestValor_JSONNumberRoundTrip(t *testing.T) {
	detalle := DetalleDiagnostico{
		IDDetalle:  "d1",
		Componente: "presion_frontalIzq",
		Valor:      ValorFromFloat(25),
	}

	encoded, err := json.Marshal(detalle)
	require.NoError(t, err)
	assert.Contains(t, string(encoded), `"valor":25`)

	var decoded DetalleDiagnostico
	require.NoError(t, json.Unmarshal(encoded, &decoded))
	assert.Equal(t, Valor("25"), decoded.Valor)
}

func TestValor_NumericLookalikesMarshalAsStrings(t *testing.T) {
	// ParseFloat accepts these, but none of them is a valid JSON number.
	for _, raw := range []string{"NaN", "Inf", "-Inf", "0x1p-2", "1_000"} {
		encoded, err := json.Marshal(DetalleDiagnostico{
			IDDetalle:  "d3",
			Componente: "motor",
			Valor:      Valor(raw),
		})
		require.NoError(t, err, raw)
		assert.True(t, json.Valid(encoded), raw)
		assert.Contains(t, string(encoded), `"valor":"`+raw+`"`, raw)
	}
}

func TestValor_JSONStringRoundTrip(t *testing.T) {
	var decoded DetalleDiagnostico
	require.NoError(t, json.Unmarshal([]byte(`{"id_detalle":"d2","componente":"motor","valor":"Falla"}`), &decoded))
	assert.Equal(t, Valor("Falla"), decoded.Valor)

	encoded, err := json.Marshal(decoded)
	require.NoError(t, err)
	assert.Contains(t, string(encoded), `"valor":"Falla"`)

	_, numeric := decoded.Valor.Float()
	assert.False(t, numeric)
}
