package repository

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
	"github.com/tallertech/tallertech/internal/billing/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) InsertFactura(ctx context.Context, db *gorm.DB, factura *domain.Factura, detalles []domain.DetalleFactura) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(factura).Error; err != nil {
			return err
		}
		if len(detalles) == 0 {
			return nil
		}
		return tx.Create(&detalles).Error
	})
}

func (r *repo) UpdateTotales(ctx context.Context, db *gorm.DB, facturaID snowflake.ID, totales domain.Totales) error {
	return db.WithContext(ctx).
		Model(&domain.Factura{}).
		Where("id = ?", facturaID).
		Updates(map[string]any{
			"subtotal":  totales.Subtotal,
			"impuestos": totales.Impuestos,
			"total":     totales.Total,
		}).Error
}

func (r *repo) InsertDetalle(ctx context.Context, db *gorm.DB, detalle *domain.DetalleFactura) error {
	return db.WithContext(ctx).Create(detalle).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*domain.Factura, error) {
	var factura domain.Factura
	err := db.WithContext(ctx).
		Where("id = ?", id).
		Take(&factura).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &factura, nil
}

func (r *repo) ListByPlaca(ctx context.Context, db *gorm.DB, placa string) ([]*domain.Factura, error) {
	var facturas []*domain.Factura
	err := db.WithContext(ctx).
		Where("placa = ?", placa).
		Order("created_at desc, id desc").
		Find(&facturas).Error
	if err != nil {
		return nil, err
	}
	return facturas, nil
}

func (r *repo) ListDetalles(ctx context.Context, db *gorm.DB, facturaID snowflake.ID) ([]*domain.DetalleFactura, error) {
	var detalles []*domain.DetalleFactura
	err := db.WithContext(ctx).
		Where("factura_id = ?", facturaID).
		Order("id asc").
		Find(&detalles).Error
	if err != nil {
		return nil, err
	}
	return detalles, nil
}
