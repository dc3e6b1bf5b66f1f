package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, vehiculo *Vehiculo) error
	Update(ctx context.Context, db *gorm.DB, vehiculo *Vehiculo) error
	Delete(ctx context.Context, db *gorm.DB, placa string) (int64, error)
	FindByPlaca(ctx context.Context, db *gorm.DB, placa string) (*Vehiculo, error)
	ListWithOwner(ctx context.Context, db *gorm.DB) ([]*VehiculoConCliente, error)
	ListByCliente(ctx context.Context, db *gorm.DB, clienteID string) ([]*Vehiculo, error)
}
