package domain

import (
	"context"

	"github.com/tallertech/tallertech/pkg/db/pagination"
	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, cliente *Cliente) error
	Update(ctx context.Context, db *gorm.DB, cliente *Cliente) error
	Delete(ctx context.Context, db *gorm.DB, id string) (int64, error)
	FindByID(ctx context.Context, db *gorm.DB, id string) (*Cliente, error)
	List(ctx context.Context, db *gorm.DB, filter ListClienteFilter, page pagination.Pagination) ([]*Cliente, error)
}
