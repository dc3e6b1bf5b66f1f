package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	consumptiondomain "github.com/tallertech/tallertech/internal/consumption/domain"
	"github.com/tallertech/tallertech/internal/report/domain"
	"go.uber.org/zap"
)

type stubConsumption struct {
	consumos []consumptiondomain.Consumo
}

func (s *stubConsumption) Create(ctx context.Context, req consumptiondomain.CreateConsumoRequest) (consumptiondomain.Consumo, error) {
	return consumptiondomain.Consumo{}, nil
}

func (s *stubConsumption) List(ctx context.Context) ([]consumptiondomain.Consumo, error) {
	return s.consumos, nil
}

func (s *stubConsumption) ListByPlaca(ctx context.Context, placa string) ([]consumptiondomain.Consumo, error) {
	return s.consumos, nil
}

func TestSummary_AggregatesConsumption(t *testing.T) {
	svc := New(Params{
		Log: zap.NewNop(),
		Consumption: &stubConsumption{consumos: []consumptiondomain.Consumo{
			{Servicio: "Cambio de Aceite", Costo: 30, Fecha: "2024-01-15"},
			{Servicio: "Cambio de Aceite", Costo: 30, Fecha: "2024-02-20"},
			{Servicio: "Revisión de Frenos", Costo: 60, Fecha: "2024-02-25"},
		}},
	})

	resumen, err := svc.Summary(context.Background(), domain.SummaryRequest{})
	require.NoError(t, err)
	assert.Equal(t, []domain.ServicioCount{
		{Servicio: "Cambio de Aceite", Cantidad: 2},
		{Servicio: "Revisión de Frenos", Cantidad: 1},
	}, resumen.PorServicio)
	assert.Equal(t, []domain.MesTotal{
		{Mes: "January 2024", Total: 30},
		{Mes: "February 2024", Total: 90},
	}, resumen.PorMes)
}

func TestSummary_RangeBoundsFilter(t *testing.T) {
	svc := New(Params{
		Log: zap.NewNop(),
		Consumption: &stubConsumption{consumos: []consumptiondomain.Consumo{
			{Servicio: "Cambio de Aceite", Costo: 30, Fecha: "2024-01-15"},
			{Servicio: "Revisión de Frenos", Costo: 60, Fecha: "2024-03-05"},
		}},
	})

	resumen, err := svc.Summary(context.Background(), domain.SummaryRequest{
		Inicio: "2024-02-01",
		Fin:    "2024-12-31",
	})
	require.NoError(t, err)
	require.Len(t, resumen.PorServicio, 1)
	assert.Equal(t, "Revisión de Frenos", resumen.PorServicio[0].Servicio)
}

func TestSummary_InvalidBoundRejected(t *testing.T) {
	svc := New(Params{Log: zap.NewNop(), Consumption: &stubConsumption{}})

	_, err := svc.Summary(context.Background(), domain.SummaryRequest{Inicio: "15-01-2024"})
	assert.ErrorIs(t, err, domain.ErrInvalidRango)
}
