package repository

import (
	"context"

	"github.com/tallertech/tallertech/internal/consumption/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, consumo *domain.Consumo) error {
	return db.WithContext(ctx).Create(consumo).Error
}

func (r *repo) List(ctx context.Context, db *gorm.DB) ([]*domain.Consumo, error) {
	var consumos []*domain.Consumo
	err := db.WithContext(ctx).
		Order("fecha asc, id_consumo asc").
		Find(&consumos).Error
	if err != nil {
		return nil, err
	}
	return consumos, nil
}

func (r *repo) ListByPlaca(ctx context.Context, db *gorm.DB, placa string) ([]*domain.Consumo, error) {
	var consumos []*domain.Consumo
	err := db.WithContext(ctx).
		Where("vehiculo_id = ?", placa).
		Order("fecha asc, id_consumo asc").
		Find(&consumos).Error
	if err != nil {
		return nil, err
	}
	return consumos, nil
}
