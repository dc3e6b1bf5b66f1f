package domain

import (
	"context"
	"errors"
)

type CreateCitaRequest struct {
	ClienteID string `json:"cliente_id"`
	Placa     string `json:"placa"`
	Fecha     string `json:"fecha"`
	Hora      string `json:"hora"`
	Servicio  string `json:"servicio"`
	Email     string `json:"email"`
	Telefono  string `json:"telefono"`
}

type Service interface {
	Create(context.Context, CreateCitaRequest) (Cita, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]Cita, error)
}

var (
	ErrInvalidID    = errors.New("invalid_id")
	ErrInvalidFecha = errors.New("invalid_fecha")
	ErrInvalidHora  = errors.New("invalid_hora")
	ErrNotFound     = errors.New("not_found")
)
