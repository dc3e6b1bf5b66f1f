package service

import (
	"context"
	"strings"
	"time"

	consumptiondomain "github.com/tallertech/tallertech/internal/consumption/domain"
	"github.com/tallertech/tallertech/internal/report/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type Params struct {
	fx.In

	Log         *zap.Logger
	Consumption consumptiondomain.Service
}

type Service struct {
	log         *zap.Logger
	consumption consumptiondomain.Service
}

func New(p Params) domain.Service {
	return &Service{
		log:         p.Log.Named("report.service"),
		consumption: p.Consumption,
	}
}

func (s *Service) Summary(ctx context.Context, req domain.SummaryRequest) (domain.Resumen, error) {
	inicio := strings.TrimSpace(req.Inicio)
	fin := strings.TrimSpace(req.Fin)
	for _, bound := range []string{inicio, fin} {
		if bound == "" {
			continue
		}
		if _, err := time.Parse("2006-01-02", bound); err != nil {
			return domain.Resumen{}, domain.ErrInvalidRango
		}
	}

	consumos, err := s.consumption.List(ctx)
	if err != nil {
		return domain.Resumen{}, err
	}

	registros := make([]domain.Registro, 0, len(consumos))
	for _, consumo := range consumos {
		registros = append(registros, domain.Registro{
			Servicio: consumo.Servicio,
			Costo:    consumo.Costo,
			Fecha:    consumo.Fecha,
		})
	}

	var rango *domain.Rango
	if inicio != "" || fin != "" {
		rango = &domain.Rango{Inicio: inicio, Fin: fin}
	}
	return domain.Aggregate(registros, rango), nil
}
