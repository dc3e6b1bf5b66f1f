package domain

import (
	"context"
	"errors"
)

type CreateInspeccionRequest struct {
	IDInspeccion string `json:"id_inspeccion"`
	Placa        string `json:"placa"`
	Fecha        string `json:"fecha"`
}

type CreateDetalleRequest struct {
	IDDetalle    string `json:"id_detalle"`
	IDInspeccion string `json:"id_inspeccion"`
	Parte        string `json:"parte"`
	Estado       string `json:"estado"`
	Observacion  string `json:"observacion"`
}

// InspeccionCompleta is one inspection with its detail rows. Completa is
// derived: true when every catalog part has a non-empty estado.
type InspeccionCompleta struct {
	Inspeccion
	Detalles []DetalleInspeccion `json:"detalles"`
	Completa bool                `json:"completa"`
}

type Service interface {
	Create(context.Context, CreateInspeccionRequest) (Inspeccion, error)
	AddDetalle(context.Context, CreateDetalleRequest) (DetalleInspeccion, error)
	HistoryByPlaca(ctx context.Context, placa string) ([]InspeccionCompleta, error)
}

var (
	ErrInvalidID     = errors.New("invalid_id")
	ErrInvalidPlaca  = errors.New("invalid_placa")
	ErrInvalidParte  = errors.New("invalid_parte")
	ErrInvalidEstado = errors.New("invalid_estado")
	ErrDuplicate     = errors.New("inspeccion_already_exists")
	ErrNotFound      = errors.New("not_found")
)
