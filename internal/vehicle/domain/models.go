package domain

import "time"

// Vehiculo is keyed by its license plate.
type Vehiculo struct {
	Placa     string    `gorm:"primaryKey" json:"placa"`
	Marca     string    `gorm:"not null" json:"marca"`
	Modelo    string    `gorm:"not null" json:"modelo"`
	ClienteID string    `gorm:"column:cliente_id;index" json:"cliente_id"`
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (Vehiculo) TableName() string { return "vehiculos" }

// VehiculoConCliente is a list row joined with the owner's name.
type VehiculoConCliente struct {
	Vehiculo
	ClienteNombre string `json:"cliente_nombre"`
}
