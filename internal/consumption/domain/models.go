package domain

import "time"

// Consumo is one billed service performed for a client/vehicle, the input
// of the reporting aggregates.
type Consumo struct {
	IDConsumo  string    `gorm:"column:id_consumo;primaryKey" json:"id_consumo"`
	ClienteID  string    `gorm:"column:cliente_id" json:"cliente_id"`
	VehiculoID string    `gorm:"column:vehiculo_id;not null;index" json:"vehiculo_id"`
	Servicio   string    `gorm:"not null" json:"servicio"`
	Costo      float64   `gorm:"not null" json:"costo"`
	Fecha      string    `gorm:"not null" json:"fecha"`
	CreatedAt  time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (Consumo) TableName() string { return "consumos" }
