package repository

import (
	"context"
	"errors"

	"github.com/tallertech/tallertech/internal/catalog/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, servicio *domain.Servicio) error {
	return db.WithContext(ctx).Create(servicio).Error
}

func (r *repo) Update(ctx context.Context, db *gorm.DB, servicio *domain.Servicio) error {
	return db.WithContext(ctx).
		Model(&domain.Servicio{}).
		Where("id_servicio = ?", servicio.IDServicio).
		Updates(map[string]any{
			"nombre":     servicio.Nombre,
			"precio":     servicio.Precio,
			"updated_at": servicio.UpdatedAt,
		}).Error
}

func (r *repo) Delete(ctx context.Context, db *gorm.DB, id string) (int64, error) {
	result := db.WithContext(ctx).Where("id_servicio = ?", id).Delete(&domain.Servicio{})
	return result.RowsAffected, result.Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id string) (*domain.Servicio, error) {
	var servicio domain.Servicio
	err := db.WithContext(ctx).
		Where("id_servicio = ?", id).
		Take(&servicio).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &servicio, nil
}

func (r *repo) List(ctx context.Context, db *gorm.DB) ([]*domain.Servicio, error) {
	var servicios []*domain.Servicio
	err := db.WithContext(ctx).
		Order("id_servicio asc").
		Find(&servicios).Error
	if err != nil {
		return nil, err
	}
	return servicios, nil
}
