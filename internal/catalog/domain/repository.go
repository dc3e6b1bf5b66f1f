package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, servicio *Servicio) error
	Update(ctx context.Context, db *gorm.DB, servicio *Servicio) error
	Delete(ctx context.Context, db *gorm.DB, id string) (int64, error)
	FindByID(ctx context.Context, db *gorm.DB, id string) (*Servicio, error)
	List(ctx context.Context, db *gorm.DB) ([]*Servicio, error)
}
