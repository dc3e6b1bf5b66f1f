package domain

import (
	"context"
	"errors"
)

// SaveCompleteRequest is the wire shape of POST /diagnosticos/completo.
// Callers either submit pre-built detail rows or an estado, in which case
// the rows are built server-side via Build.
type SaveCompleteRequest struct {
	IDDiagnostico string               `json:"id_diagnostico"`
	Placa         string               `json:"placa"`
	Fecha         string               `json:"fecha"`
	Observaciones string               `json:"observaciones"`
	Estado        *EstadoVehiculo      `json:"estado,omitempty"`
	Detalles      []DetalleDiagnostico `json:"detalles"`
}

// RecommendRequest asks for a recommendation preview without persisting.
type RecommendRequest struct {
	Estado           EstadoVehiculo    `json:"estado"`
	InspeccionPrevia map[string]string `json:"inspeccion_previa"`
}

type RecommendResponse struct {
	Recomendaciones []string `json:"recomendaciones"`
}

type DiagnosticoCompleto struct {
	Diagnostico
	Detalles []DetalleDiagnostico `json:"detalles"`
}

type Service interface {
	SaveComplete(context.Context, SaveCompleteRequest) (Diagnostico, error)
	GetByID(ctx context.Context, id string) (DiagnosticoCompleto, error)
	ListByPlaca(ctx context.Context, placa string) ([]Diagnostico, error)
	DetallesByPlaca(ctx context.Context, placa string) ([]DetalleDiagnostico, error)
	Recommend(context.Context, RecommendRequest) (RecommendResponse, error)
}

var (
	ErrInvalidID       = errors.New("invalid_id")
	ErrInvalidPlaca    = errors.New("invalid_placa")
	ErrInvalidDetalles = errors.New("invalid_detalles")
	ErrDuplicate       = errors.New("diagnostico_already_exists")
	ErrNotFound        = errors.New("not_found")
)
