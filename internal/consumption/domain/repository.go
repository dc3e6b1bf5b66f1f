package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, consumo *Consumo) error
	List(ctx context.Context, db *gorm.DB) ([]*Consumo, error)
	ListByPlaca(ctx context.Context, db *gorm.DB, placa string) ([]*Consumo, error)
}
