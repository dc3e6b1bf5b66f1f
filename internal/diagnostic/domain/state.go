package domain

// ComponentKind identifies one diagnosed component family.
type ComponentKind string

const (
	ComponentMotor      ComponentKind = "motor"
	ComponentBateria    ComponentKind = "bateria"
	ComponentFrenos     ComponentKind = "frenos"
	ComponentPresion    ComponentKind = "presion"
	ComponentAlineacion ComponentKind = "alineacion"
)

// TirePosition identifies one of the four wheels.
type TirePosition string

const (
	FrontalIzq TirePosition = "frontalIzq"
	FrontalDer TirePosition = "frontalDer"
	TraseraIzq TirePosition = "traseraIzq"
	TraseraDer TirePosition = "traseraDer"
)

// TirePositions is the canonical wheel order. Evaluation and record
// building iterate it so output ordering is deterministic.
var TirePositions = [4]TirePosition{FrontalIzq, FrontalDer, TraseraIzq, TraseraDer}

// Component condition codes.
const (
	CondicionNormal      = "Normal"
	CondicionFalla       = "Falla"
	CondicionBaja        = "Baja"
	CondicionDesgastados = "Desgastados"
)

// CondicionLlanta is the measured state of one wheel.
type CondicionLlanta struct {
	Presion string  `json:"presion"`
	Angulo  float64 `json:"angulo"`
}

// EstadoVehiculo is the full in-session diagnostic state of a vehicle.
// All four wheels are always present; unset wheels take zero values.
type EstadoVehiculo struct {
	Motor   string                           `json:"motor"`
	Bateria string                           `json:"bateria"`
	Frenos  string                           `json:"frenos"`
	Llantas map[TirePosition]CondicionLlanta `json:"llantas"`
}

// Llanta returns the state of one wheel, zero-valued when unset.
func (e EstadoVehiculo) Llanta(pos TirePosition) CondicionLlanta {
	if e.Llantas == nil {
		return CondicionLlanta{}
	}
	return e.Llantas[pos]
}

// ParteFrenos is the inspection-catalog part checked against the
// diagnostic brake state for contradictions.
const ParteFrenos = "Frenos"

// EstadoCambiar is the inspection condition code meaning "replace".
const EstadoCambiar = "cambiar"
