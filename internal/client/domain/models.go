package domain

import (
	"time"

	"gorm.io/datatypes"
)

// Cliente is a workshop client. The id is workshop-assigned (document number),
// not server-generated.
type Cliente struct {
	ID            string            `gorm:"primaryKey" json:"id"`
	Nombre        string            `gorm:"not null" json:"nombre"`
	Tecnomecanica string            `gorm:"column:tecnomecanica" json:"tecnomecanica,omitempty"`
	Email         string            `json:"email,omitempty"`
	Telefono      string            `json:"telefono,omitempty"`
	Direccion     string            `json:"direccion,omitempty"`
	Estado        string            `gorm:"not null;default:Activo" json:"estado"`
	Metadata      datatypes.JSONMap `gorm:"type:jsonb;not null;default:'{}'" json:"metadata,omitempty"`
	CreatedAt     time.Time         `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt     time.Time         `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// TableName overrides the default pluralization.
func (Cliente) TableName() string { return "clientes" }

const (
	EstadoActivo   = "Activo"
	EstadoInactivo = "Inactivo"
)
