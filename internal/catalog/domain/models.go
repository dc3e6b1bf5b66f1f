package domain

import "time"

// Servicio is one billable catalog entry. Ids are workshop-assigned
// ("srv001" style), matching the predefined seed.
type Servicio struct {
	IDServicio string    `gorm:"column:id_servicio;primaryKey" json:"id_servicio"`
	Nombre     string    `gorm:"not null;uniqueIndex" json:"nombre"`
	Precio     float64   `gorm:"not null" json:"precio"`
	CreatedAt  time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt  time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (Servicio) TableName() string { return "servicios" }

// Predefinidos is the catalog loaded on first start.
var Predefinidos = []Servicio{
	{IDServicio: "srv001", Nombre: "Cambio de Aceite", Precio: 30},
	{IDServicio: "srv002", Nombre: "Alineación y Balanceo", Precio: 50},
	{IDServicio: "srv003", Nombre: "Cambio de Filtros", Precio: 40},
	{IDServicio: "srv004", Nombre: "Revisión General", Precio: 80},
	{IDServicio: "srv005", Nombre: "Cambio de Batería", Precio: 100},
	{IDServicio: "srv006", Nombre: "Cambio de Pastillas de Freno", Precio: 90},
	{IDServicio: "srv007", Nombre: "Diagnóstico Computarizado", Precio: 60},
	{IDServicio: "srv008", Nombre: "Reparación de Suspensión", Precio: 120},
}
