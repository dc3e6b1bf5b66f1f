package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, inspeccion *Inspeccion) error
	InsertDetalle(ctx context.Context, db *gorm.DB, detalle *DetalleInspeccion) error
	FindByID(ctx context.Context, db *gorm.DB, id string) (*Inspeccion, error)
	ListByPlaca(ctx context.Context, db *gorm.DB, placa string) ([]*Inspeccion, error)
	ListDetalles(ctx context.Context, db *gorm.DB, idInspeccion string) ([]*DetalleInspeccion, error)
}
