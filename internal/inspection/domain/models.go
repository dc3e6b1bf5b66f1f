package domain

import "time"

// PartesVehiculo is the fixed inspection checklist. A full inspection has
// exactly one detail row per part, but incomplete submissions are accepted.
var PartesVehiculo = [10]string{
	"Luces delanteras", "Luces traseras", "Frenos", "Aceite del motor",
	"Batería", "Filtro de aire", "Presión de neumáticos", "Amortiguadores",
	"Dirección", "Sistema de escape",
}

// Inspection part condition codes. An empty estado marks a part that was
// skipped during the inspection.
const (
	EstadoNormal  = "normal"
	EstadoReparar = "reparar"
	EstadoCambiar = "cambiar"
	EstadoAnormal = "anormal"
)

type Inspeccion struct {
	IDInspeccion string    `gorm:"column:id_inspeccion;primaryKey" json:"id_inspeccion"`
	Placa        string    `gorm:"not null;index" json:"placa"`
	Fecha        string    `gorm:"not null" json:"fecha"`
	CreatedAt    time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (Inspeccion) TableName() string { return "inspecciones" }

type DetalleInspeccion struct {
	IDDetalle    string `gorm:"column:id_detalle;primaryKey" json:"id_detalle"`
	IDInspeccion string `gorm:"column:id_inspeccion;not null;index" json:"id_inspeccion"`
	Parte        string `gorm:"not null" json:"parte"`
	Estado       string `gorm:"not null;default:''" json:"estado"`
	Observacion  string `gorm:"not null;default:''" json:"observacion"`
}

func (DetalleInspeccion) TableName() string { return "detalle_inspeccion" }

// EsEstadoValido reports whether a condition code is acceptable for a
// detail row. The empty string is legal: incomplete inspections are a
// warn-and-continue case, never rejected.
func EsEstadoValido(estado string) bool {
	switch estado {
	case "", EstadoNormal, EstadoReparar, EstadoCambiar, EstadoAnormal:
		return true
	default:
		return false
	}
}
