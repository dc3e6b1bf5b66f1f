package domain

import (
	"context"
	"errors"
)

type CreateConsumoRequest struct {
	IDConsumo  string  `json:"id_consumo"`
	ClienteID  string  `json:"cliente_id"`
	VehiculoID string  `json:"vehiculo_id"`
	Servicio   string  `json:"servicio"`
	Costo      float64 `json:"costo"`
	Fecha      string  `json:"fecha"`
}

type Service interface {
	Create(context.Context, CreateConsumoRequest) (Consumo, error)
	List(ctx context.Context) ([]Consumo, error)
	ListByPlaca(ctx context.Context, placa string) ([]Consumo, error)
}

var (
	ErrInvalidPlaca    = errors.New("invalid_placa")
	ErrInvalidServicio = errors.New("invalid_servicio")
	ErrInvalidCosto    = errors.New("invalid_costo")
	ErrDuplicate       = errors.New("consumo_already_exists")
	ErrNotFound        = errors.New("not_found")
)
