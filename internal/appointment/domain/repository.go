package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, cita *Cita) error
	Delete(ctx context.Context, db *gorm.DB, id snowflake.ID) (int64, error)
	List(ctx context.Context, db *gorm.DB) ([]*Cita, error)
}
