package repository

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"github.com/tallertech/tallertech/internal/appointment/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, cita *domain.Cita) error {
	return db.WithContext(ctx).Create(cita).Error
}

func (r *repo) Delete(ctx context.Context, db *gorm.DB, id snowflake.ID) (int64, error) {
	result := db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Cita{})
	return result.RowsAffected, result.Error
}

func (r *repo) List(ctx context.Context, db *gorm.DB) ([]*domain.Cita, error) {
	var citas []*domain.Cita
	err := db.WithContext(ctx).
		Order("fecha asc, hora asc").
		Find(&citas).Error
	if err != nil {
		return nil, err
	}
	return citas, nil
}
