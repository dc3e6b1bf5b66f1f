package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEvaluate_HealthyVehicleHasNoRecommendations(t *testing.T) {
	estado := EstadoVehiculo{
		Motor:   CondicionNormal,
		Bateria: CondicionNormal,
		Frenos:  CondicionNormal,
		Llantas: map[TirePosition]CondicionLlanta{
			FrontalIzq: {Presion: CondicionNormal, Angulo: 0},
			FrontalDer: {Presion: CondicionNormal, Angulo: 0.5},
			TraseraIzq: {Presion: CondicionNormal, Angulo: -1.0},
			TraseraDer: {Presion: CondicionNormal, Angulo: 1.0},
		},
	}

	assert.Equal(t, []string{}, Evaluate(estado, nil))
}

func TestEvaluate_EngineFailureOnly(t *testing.T) {
	estado := EstadoVehiculo{
		Motor:   CondicionFalla,
		Bateria: CondicionNormal,
		Frenos:  CondicionNormal,
	}

	assert.Equal(t, []string{"inspect the engine."}, Evaluate(estado, nil))
}

func TestEvaluate_RuleOrderIsFixed(t *testing.T) {
	estado := EstadoVehiculo{
		Motor:   CondicionFalla,
		Bateria: CondicionBaja,
		Frenos:  CondicionDesgastados,
		Llantas: map[TirePosition]CondicionLlanta{
			FrontalIzq: {Presion: CondicionBaja, Angulo: 2.5},
			TraseraDer: {Presion: CondicionBaja, Angulo: -1.2},
		},
	}

	assert.Equal(t, []string{
		"inflate tire frontalIzq to 30 PSI.",
		"inflate tire traseraDer to 30 PSI.",
		"perform alignment on wheel frontalIzq.",
		"perform alignment on wheel traseraDer.",
		"inspect the engine.",
		"charge or replace battery.",
		"inspect and replace brake pads.",
	}, Evaluate(estado, nil))
}

func TestEvaluate_CamberBoundaryIsExclusive(t *testing.T) {
	estado := EstadoVehiculo{
		Llantas: map[TirePosition]CondicionLlanta{
			FrontalIzq: {Angulo: 1.0},
			FrontalDer: {Angulo: -1.0},
			TraseraIzq: {Angulo: 1.01},
		},
	}

	assert.Equal(t, []string{"perform alignment on wheel traseraIzq."}, Evaluate(estado, nil))
}

func TestEvaluate_BrakeContradictionWithPriorInspection(t *testing.T) {
	estado := EstadoVehiculo{
		Motor:   CondicionNormal,
		Bateria: CondicionNormal,
		Frenos:  CondicionNormal,
	}
	inspeccion := map[string]string{ParteFrenos: EstadoCambiar}

	assert.Equal(t, []string{
		"prior inspection recommended replacing the brakes; re-verify the diagnostic.",
	}, Evaluate(estado, inspeccion))
}

func TestEvaluate_NoContradictionWhenBrakesWorn(t *testing.T) {
	// Worn brakes agree with the inspection, so only the wear rule fires.
	estado := EstadoVehiculo{Frenos: CondicionDesgastados}
	inspeccion := map[string]string{ParteFrenos: EstadoCambiar}

	assert.Equal(t, []string{"inspect and replace brake pads."}, Evaluate(estado, inspeccion))
}

func TestEvaluate_MissingWheelsTreatedAsZero(t *testing.T) {
	estado := EstadoVehiculo{Motor: CondicionNormal}

	assert.Empty(t, Evaluate(estado, nil))
}
