package repository

import (
	"context"
	"errors"

	"github.com/tallertech/tallertech/internal/vehicle/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, vehiculo *domain.Vehiculo) error {
	return db.WithContext(ctx).Create(vehiculo).Error
}

func (r *repo) Update(ctx context.Context, db *gorm.DB, vehiculo *domain.Vehiculo) error {
	return db.WithContext(ctx).
		Model(&domain.Vehiculo{}).
		Where("placa = ?", vehiculo.Placa).
		Updates(map[string]any{
			"marca":      vehiculo.Marca,
			"modelo":     vehiculo.Modelo,
			"cliente_id": vehiculo.ClienteID,
			"updated_at": vehiculo.UpdatedAt,
		}).Error
}

func (r *repo) Delete(ctx context.Context, db *gorm.DB, placa string) (int64, error) {
	result := db.WithContext(ctx).Where("placa = ?", placa).Delete(&domain.Vehiculo{})
	return result.RowsAffected, result.Error
}

func (r *repo) FindByPlaca(ctx context.Context, db *gorm.DB, placa string) (*domain.Vehiculo, error) {
	var vehiculo domain.Vehiculo
	err := db.WithContext(ctx).
		Where("placa = ?", placa).
		Take(&vehiculo).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &vehiculo, nil
}

func (r *repo) ListWithOwner(ctx context.Context, db *gorm.DB) ([]*domain.VehiculoConCliente, error) {
	var rows []*domain.VehiculoConCliente
	err := db.WithContext(ctx).Raw(
		`SELECT v.placa, v.marca, v.modelo, v.cliente_id, v.created_at, v.updated_at,
		        COALESCE(c.nombre, '') AS cliente_nombre
		 FROM vehiculos v
		 LEFT JOIN clientes c ON c.id = v.cliente_id
		 ORDER BY v.created_at DESC, v.placa DESC`,
	).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *repo) ListByCliente(ctx context.Context, db *gorm.DB, clienteID string) ([]*domain.Vehiculo, error) {
	var vehiculos []*domain.Vehiculo
	err := db.WithContext(ctx).
		Where("cliente_id = ?", clienteID).
		Order("created_at desc, placa desc").
		Find(&vehiculos).Error
	if err != nil {
		return nil, err
	}
	return vehiculos, nil
}
