package repository

import (
	"context"
	"errors"

	"github.com/tallertech/tallertech/internal/diagnostic/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) InsertComplete(ctx context.Context, db *gorm.DB, diagnostico *domain.Diagnostico, detalles []domain.DetalleDiagnostico) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(diagnostico).Error; err != nil {
			return err
		}
		if len(detalles) == 0 {
			return nil
		}
		return tx.Create(&detalles).Error
	})
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id string) (*domain.Diagnostico, error) {
	var diagnostico domain.Diagnostico
	err := db.WithContext(ctx).
		Where("id_diagnostico = ?", id).
		Take(&diagnostico).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &diagnostico, nil
}

func (r *repo) ListByPlaca(ctx context.Context, db *gorm.DB, placa string) ([]*domain.Diagnostico, error) {
	var diagnosticos []*domain.Diagnostico
	err := db.WithContext(ctx).
		Where("placa = ?", placa).
		Order("created_at desc, id_diagnostico desc").
		Find(&diagnosticos).Error
	if err != nil {
		return nil, err
	}
	return diagnosticos, nil
}

func (r *repo) ListDetalles(ctx context.Context, db *gorm.DB, idDiagnostico string) ([]*domain.DetalleDiagnostico, error) {
	var detalles []*domain.DetalleDiagnostico
	err := db.WithContext(ctx).
		Where("id_diagnostico = ?", idDiagnostico).
		Order("id_detalle asc").
		Find(&detalles).Error
	if err != nil {
		return nil, err
	}
	return detalles, nil
}

func (r *repo) ListDetallesByPlaca(ctx context.Context, db *gorm.DB, placa string) ([]*domain.DetalleDiagnostico, error) {
	var detalles []*domain.DetalleDiagnostico
	err := db.WithContext(ctx).
		Where("placa = ?", placa).
		Order("fecha desc, id_diagnostico desc, id_detalle asc").
		Find(&detalles).Error
	if err != nil {
		return nil, err
	}
	return detalles, nil
}
