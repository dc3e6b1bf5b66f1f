package repository

import (
	"context"
	"errors"

	"github.com/tallertech/tallertech/internal/client/domain"
	"github.com/tallertech/tallertech/pkg/db/option"
	"github.com/tallertech/tallertech/pkg/db/pagination"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, cliente *domain.Cliente) error {
	return db.WithContext(ctx).Create(cliente).Error
}

func (r *repo) Update(ctx context.Context, db *gorm.DB, cliente *domain.Cliente) error {
	return db.WithContext(ctx).
		Model(&domain.Cliente{}).
		Where("id = ?", cliente.ID).
		Updates(map[string]any{
			"nombre":        cliente.Nombre,
			"tecnomecanica": cliente.Tecnomecanica,
			"email":         cliente.Email,
			"telefono":      cliente.Telefono,
			"direccion":     cliente.Direccion,
			"estado":        cliente.Estado,
			"metadata":      cliente.Metadata,
			"updated_at":    cliente.UpdatedAt,
		}).Error
}

func (r *repo) Delete(ctx context.Context, db *gorm.DB, id string) (int64, error) {
	result := db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Cliente{})
	return result.RowsAffected, result.Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id string) (*domain.Cliente, error) {
	var cliente domain.Cliente
	err := db.WithContext(ctx).
		Where("id = ?", id).
		Take(&cliente).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &cliente, nil
}

func (r *repo) List(ctx context.Context, db *gorm.DB, filter domain.ListClienteFilter, page pagination.Pagination) ([]*domain.Cliente, error) {
	var clientes []*domain.Cliente
	stmt := db.WithContext(ctx).Model(&domain.Cliente{})
	if filter.Nombre != "" {
		stmt = stmt.Where("nombre LIKE ?", "%"+filter.Nombre+"%")
	}
	if filter.Estado != "" {
		stmt = stmt.Where("estado = ?", filter.Estado)
	}
	stmt = option.ApplyPagination(page).Apply(stmt)
	err := stmt.
		Order("created_at desc, id desc").
		Find(&clientes).Error
	if err != nil {
		return nil, err
	}
	return clientes, nil
}
