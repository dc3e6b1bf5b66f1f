package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// Line item provenance. Auto lines come from diagnostic detection and are
// read-only; manual lines are user-added and deduplicated by name among
// themselves only.
const (
	OrigenAuto   = "auto"
	OrigenManual = "manual"
)

// LineItem is one billable service on an invoice.
type LineItem struct {
	Nombre string  `json:"nombre"`
	Precio float64 `json:"precio"`
	Origen string  `json:"origen"`
}

// Totales are the derived invoice figures. Values are kept at full
// precision; rounding happens only at the presentation boundary.
type Totales struct {
	Subtotal  float64 `json:"subtotal"`
	Impuestos float64 `json:"impuestos"`
	Total     float64 `json:"total"`
}

type Factura struct {
	ID         snowflake.ID `gorm:"primaryKey" json:"id"`
	NumFactura string       `gorm:"column:num_factura;not null" json:"num_factura"`
	ClienteID  string       `gorm:"column:cliente_id" json:"cliente_id"`
	Placa      string       `gorm:"not null;index" json:"placa"`
	Fecha      string       `gorm:"not null" json:"fecha"`
	Subtotal   float64      `gorm:"not null" json:"subtotal"`
	Impuestos  float64      `gorm:"not null" json:"impuestos"`
	Total      float64      `gorm:"not null" json:"total"`
	CreatedAt  time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (Factura) TableName() string { return "facturas" }

type DetalleFactura struct {
	ID        snowflake.ID `gorm:"primaryKey" json:"id"`
	FacturaID snowflake.ID `gorm:"column:factura_id;not null;index" json:"factura_id"`
	Nombre    string       `gorm:"not null" json:"nombre"`
	Precio    float64      `gorm:"not null" json:"precio"`
	Origen    string       `gorm:"not null;default:manual" json:"origen"`
}

func (DetalleFactura) TableName() string { return "detalle_factura" }
