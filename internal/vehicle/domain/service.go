package domain

import (
	"context"
	"errors"
)

type CreateVehiculoRequest struct {
	Placa     string `json:"placa"`
	Marca     string `json:"marca"`
	Modelo    string `json:"modelo"`
	ClienteID string `json:"cliente_id"`
}

type UpdateVehiculoRequest struct {
	Placa     string `json:"-"`
	Marca     string `json:"marca"`
	Modelo    string `json:"modelo"`
	ClienteID string `json:"cliente_id"`
}

type GetVehiculoRequest struct {
	Placa string
}

type ListVehiculoResponse struct {
	Vehiculos []VehiculoConCliente `json:"vehiculos"`
}

type Service interface {
	Create(context.Context, CreateVehiculoRequest) (Vehiculo, error)
	Update(context.Context, UpdateVehiculoRequest) (Vehiculo, error)
	Delete(context.Context, GetVehiculoRequest) error
	GetByPlaca(context.Context, GetVehiculoRequest) (Vehiculo, error)
	List(context.Context) (ListVehiculoResponse, error)
	ListByCliente(ctx context.Context, clienteID string) ([]Vehiculo, error)
}

var (
	ErrInvalidPlaca   = errors.New("invalid_placa")
	ErrInvalidCliente = errors.New("invalid_cliente")
	ErrInvalidMarca   = errors.New("invalid_marca")
	ErrInvalidModelo  = errors.New("invalid_modelo")
	ErrDuplicate      = errors.New("vehiculo_already_exists")
	ErrNotFound       = errors.New("not_found")
)

// SinRegistrar is the owner-name fallback when a vehicle has no linked client.
const SinRegistrar = "No registrado"
