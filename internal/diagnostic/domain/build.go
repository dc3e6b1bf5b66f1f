package domain

import (
	"time"

	"github.com/google/uuid"
)

// Build flattens a diagnostic session into a persistable record. It always
// emits exactly 11 detail rows in a fixed component order: motor, bateria,
// frenos, then pressure and camber per wheel. Boolean conditions are coerced
// to 0/1 and pressure to 25/30 PSI; camber keeps its measured value.
func Build(estado EstadoVehiculo, placa string, now time.Time) (Diagnostico, []DetalleDiagnostico) {
	idDiagnostico := uuid.NewString()
	fecha := now.Format("2006-01-02")

	diagnostico := Diagnostico{
		IDDiagnostico: idDiagnostico,
		Placa:         placa,
		Fecha:         fecha,
	}

	detalles := make([]DetalleDiagnostico, 0, 11)
	row := func(componente string, valor Valor) {
		detalles = append(detalles, DetalleDiagnostico{
			IDDetalle:     uuid.NewString(),
			IDDiagnostico: idDiagnostico,
			Placa:         placa,
			Fecha:         fecha,
			Componente:    componente,
			Valor:         valor,
		})
	}

	row(string(ComponentMotor), boolValor(estado.Motor == CondicionFalla))
	row(string(ComponentBateria), boolValor(estado.Bateria == CondicionBaja))
	row(string(ComponentFrenos), boolValor(estado.Frenos == CondicionDesgastados))

	for _, pos := range TirePositions {
		presion := 30.0
		if estado.Llanta(pos).Presion == CondicionBaja {
			presion = 25.0
		}
		row(string(ComponentPresion)+"_"+string(pos), ValorFromFloat(presion))
	}

	for _, pos := range TirePositions {
		row(string(ComponentAlineacion)+"_"+string(pos), ValorFromFloat(estado.Llanta(pos).Angulo))
	}

	return diagnostico, detalles
}

func boolValor(b bool) Valor {
	if b {
		return ValorFromFloat(1)
	}
	return ValorFromFloat(0)
}
