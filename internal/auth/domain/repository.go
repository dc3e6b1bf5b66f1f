package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, usuario *Usuario) error
	FindByUsername(ctx context.Context, db *gorm.DB, username string) (*Usuario, error)
}
