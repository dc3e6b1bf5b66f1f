package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	InsertComplete(ctx context.Context, db *gorm.DB, diagnostico *Diagnostico, detalles []DetalleDiagnostico) error
	FindByID(ctx context.Context, db *gorm.DB, id string) (*Diagnostico, error)
	ListByPlaca(ctx context.Context, db *gorm.DB, placa string) ([]*Diagnostico, error)
	ListDetalles(ctx context.Context, db *gorm.DB, idDiagnostico string) ([]*DetalleDiagnostico, error)
	ListDetallesByPlaca(ctx context.Context, db *gorm.DB, placa string) ([]*DetalleDiagnostico, error)
}
