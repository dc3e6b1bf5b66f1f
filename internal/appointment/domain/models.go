package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// Cita is a scheduled workshop appointment.
type Cita struct {
	ID        snowflake.ID `gorm:"primaryKey" json:"id"`
	ClienteID string       `gorm:"column:cliente_id" json:"cliente_id"`
	Placa     string       `json:"placa"`
	Fecha     string       `gorm:"not null" json:"fecha"`
	Hora      string       `gorm:"not null" json:"hora"`
	Servicio  string       `json:"servicio"`
	Email     string       `json:"email"`
	Telefono  string       `json:"telefono"`
	CreatedAt time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (Cita) TableName() string { return "citas" }
