package domain

import (
	"context"
	"errors"
)

type LineItemRequest struct {
	Nombre string  `json:"nombre"`
	Precio float64 `json:"precio"`
	Origen string  `json:"origen"`
}

type CreateFacturaRequest struct {
	NumFactura string            `json:"num_factura"`
	ClienteID  string            `json:"cliente_id"`
	Placa      string            `json:"placa"`
	Fecha      string            `json:"fecha"`
	Items      []LineItemRequest `json:"items"`
}

type AddDetalleRequest struct {
	FacturaID string  `json:"factura_id"`
	Nombre    string  `json:"nombre"`
	Precio    float64 `json:"precio"`
}

type FacturaConDetalles struct {
	Factura
	Detalles []DetalleFactura `json:"detalles"`
}

type Service interface {
	Create(context.Context, CreateFacturaRequest) (FacturaConDetalles, error)
	AddDetalle(context.Context, AddDetalleRequest) (DetalleFactura, error)
	GetByID(ctx context.Context, id string) (FacturaConDetalles, error)
	ListByPlaca(ctx context.Context, placa string) ([]FacturaConDetalles, error)
	SuggestServices(ctx context.Context, placa string) ([]LineItem, error)
}

var (
	ErrInvalidID      = errors.New("invalid_id")
	ErrInvalidCliente = errors.New("invalid_cliente")
	ErrInvalidPlaca   = errors.New("invalid_placa")
	ErrInvalidItems   = errors.New("invalid_items")
	ErrInvalidNombre  = errors.New("invalid_nombre")
	ErrDuplicateItem  = errors.New("detalle_already_exists")
	ErrNotFound       = errors.New("not_found")
)
