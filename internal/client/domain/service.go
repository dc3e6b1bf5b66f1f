package domain

import (
	"context"
	"errors"

	"github.com/tallertech/tallertech/pkg/db/pagination"
)

type ListClienteRequest struct {
	PageToken string
	PageSize  int32
	Nombre    string
	Estado    string
}

type ListClienteFilter struct {
	Nombre string
	Estado string
}

type ListClienteResponse struct {
	pagination.PageInfo
	Clientes []Cliente `json:"clientes"`
}

type CreateClienteRequest struct {
	ID            string         `json:"id"`
	Nombre        string         `json:"nombre"`
	Tecnomecanica string         `json:"tecnomecanica"`
	Email         string         `json:"email"`
	Telefono      string         `json:"telefono"`
	Direccion     string         `json:"direccion"`
	Estado        string         `json:"estado"`
	Metadata      map[string]any `json:"metadata"`
}

type UpdateClienteRequest struct {
	ID            string         `json:"-"`
	Nombre        string         `json:"nombre"`
	Tecnomecanica string         `json:"tecnomecanica"`
	Email         string         `json:"email"`
	Telefono      string         `json:"telefono"`
	Direccion     string         `json:"direccion"`
	Estado        string         `json:"estado"`
	Metadata      map[string]any `json:"metadata"`
}

type GetClienteRequest struct {
	ID string
}

type Service interface {
	Create(context.Context, CreateClienteRequest) (Cliente, error)
	Update(context.Context, UpdateClienteRequest) (Cliente, error)
	Delete(context.Context, GetClienteRequest) error
	GetByID(context.Context, GetClienteRequest) (Cliente, error)
	List(context.Context, ListClienteRequest) (ListClienteResponse, error)
}

var (
	ErrInvalidID     = errors.New("invalid_id")
	ErrInvalidName   = errors.New("invalid_name")
	ErrInvalidEstado = errors.New("invalid_estado")
	ErrDuplicate     = errors.New("cliente_already_exists")
	ErrNotFound      = errors.New("not_found")
)
