package repository

import (
	"context"
	"errors"

	"github.com/tallertech/tallertech/internal/inspection/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, inspeccion *domain.Inspeccion) error {
	return db.WithContext(ctx).Create(inspeccion).Error
}

func (r *repo) InsertDetalle(ctx context.Context, db *gorm.DB, detalle *domain.DetalleInspeccion) error {
	return db.WithContext(ctx).Create(detalle).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id string) (*domain.Inspeccion, error) {
	var inspeccion domain.Inspeccion
	err := db.WithContext(ctx).
		Where("id_inspeccion = ?", id).
		Take(&inspeccion).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &inspeccion, nil
}

func (r *repo) ListByPlaca(ctx context.Context, db *gorm.DB, placa string) ([]*domain.Inspeccion, error) {
	var inspecciones []*domain.Inspeccion
	err := db.WithContext(ctx).
		Where("placa = ?", placa).
		Order("created_at desc, id_inspeccion desc").
		Find(&inspecciones).Error
	if err != nil {
		return nil, err
	}
	return inspecciones, nil
}

func (r *repo) ListDetalles(ctx context.Context, db *gorm.DB, idInspeccion string) ([]*domain.DetalleInspeccion, error) {
	var detalles []*domain.DetalleInspeccion
	err := db.WithContext(ctx).
		Where("id_inspeccion = ?", idInspeccion).
		Find(&detalles).Error
	if err != nil {
		return nil, err
	}
	return detalles, nil
}
