package domain

import (
	"context"
	"errors"
)

type SummaryRequest struct {
	Inicio string `form:"inicio"`
	Fin    string `form:"fin"`
}

type Service interface {
	Summary(context.Context, SummaryRequest) (Resumen, error)
}

var ErrInvalidRango = errors.New("invalid_rango")
