package domain

import (
	"context"
	"errors"
)

type CreateServicioRequest struct {
	IDServicio string  `json:"id_servicio"`
	Nombre     string  `json:"nombre"`
	Precio     float64 `json:"precio"`
}

type UpdateServicioRequest struct {
	IDServicio string  `json:"-"`
	Nombre     string  `json:"nombre"`
	Precio     float64 `json:"precio"`
}

type Service interface {
	Create(context.Context, CreateServicioRequest) (Servicio, error)
	Update(context.Context, UpdateServicioRequest) (Servicio, error)
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (Servicio, error)
	List(ctx context.Context) ([]Servicio, error)
	LoadPredefinidos(ctx context.Context) (int, error)
}

var (
	ErrInvalidID     = errors.New("invalid_id")
	ErrInvalidNombre = errors.New("invalid_nombre")
	ErrInvalidPrecio = errors.New("invalid_precio")
	ErrDuplicate     = errors.New("servicio_already_exists")
	ErrNotFound      = errors.New("not_found")
)
