package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type Repository interface {
	InsertFactura(ctx context.Context, db *gorm.DB, factura *Factura, detalles []DetalleFactura) error
	UpdateTotales(ctx context.Context, db *gorm.DB, facturaID snowflake.ID, totales Totales) error
	InsertDetalle(ctx context.Context, db *gorm.DB, detalle *DetalleFactura) error
	FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*Factura, error)
	ListByPlaca(ctx context.Context, db *gorm.DB, placa string) ([]*Factura, error)
	ListDetalles(ctx context.Context, db *gorm.DB, facturaID snowflake.ID) ([]*DetalleFactura, error)
}
