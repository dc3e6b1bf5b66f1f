package domain

import "fmt"

// Evaluate derives recommendation strings from a vehicle's diagnostic state
// and, optionally, the part conditions of its most recent inspection.
//
// Rules run in a fixed order so output is deterministic: low tire pressure
// per wheel, camber out of range per wheel, engine failure, weak battery,
// worn brakes, then the inspection contradiction check. An empty result
// means no critical issues, not an error.
func Evaluate(estado EstadoVehiculo, inspeccionPrevia map[string]string) []string {
	recomendaciones := []string{}

	for _, pos := range TirePositions {
		if estado.Llanta(pos).Presion == CondicionBaja {
			recomendaciones = append(recomendaciones,
				fmt.Sprintf("inflate tire %s to 30 PSI.", pos))
		}
	}

	for _, pos := range TirePositions {
		angulo := estado.Llanta(pos).Angulo
		if angulo > 1.0 || angulo < -1.0 {
			recomendaciones = append(recomendaciones,
				fmt.Sprintf("perform alignment on wheel %s.", pos))
		}
	}

	if estado.Motor == CondicionFalla {
		recomendaciones = append(recomendaciones, "inspect the engine.")
	}
	if estado.Bateria == CondicionBaja {
		recomendaciones = append(recomendaciones, "charge or replace battery.")
	}
	if estado.Frenos == CondicionDesgastados {
		recomendaciones = append(recomendaciones, "inspect and replace brake pads.")
	}

	if inspeccionPrevia != nil &&
		inspeccionPrevia[ParteFrenos] == EstadoCambiar &&
		estado.Frenos == CondicionNormal {
		recomendaciones = append(recomendaciones,
			"prior inspection recommended replacing the brakes; re-verify the diagnostic.")
	}

	return recomendaciones
}
