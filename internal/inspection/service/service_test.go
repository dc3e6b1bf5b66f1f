package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tallertech/tallertech/internal/inspection/domain"
	"github.com/tallertech/tallertech/internal/inspection/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newTestService(t *testing.T) domain.Service {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file:inspectionsvc?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.Inspeccion{}, &domain.DetalleInspeccion{}))
	db.Exec("DELETE FROM detalle_inspeccion")
	db.Exec("DELETE FROM inspecciones")

	return New(Params{
		DB:   db,
		Log:  zap.NewNop(),
		Repo: repository.Provide(),
	})
}

func TestCreate_GeneratesPrefixedID(t *testing.T) {
	svc := newTestService(t)

	inspeccion, err := svc.Create(context.Background(), domain.CreateInspeccionRequest{
		Placa: "abc123",
		Fecha: "2024-03-15",
	})
	require.NoError(t, err)
	assert.Equal(t, "ABC123", inspeccion.Placa)
	assert.Regexp(t, "^INSP-", inspeccion.IDInspeccion)
}

func TestAddDetalle_RejectsUnknownEstado(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	inspeccion, err := svc.Create(ctx, domain.CreateInspeccionRequest{Placa: "ABC123"})
	require.NoError(t, err)

	_, err = svc.AddDetalle(ctx, domain.CreateDetalleRequest{
		IDInspeccion: inspeccion.IDInspeccion,
		Parte:        "Frenos",
		Estado:       "roto",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidEstado)
}

func TestAddDetalle_EmptyEstadoIsLegal(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	inspeccion, err := svc.Create(ctx, domain.CreateInspeccionRequest{Placa: "ABC123"})
	require.NoError(t, err)

	detalle, err := svc.AddDetalle(ctx, domain.CreateDetalleRequest{
		IDInspeccion: inspeccion.IDInspeccion,
		Parte:        "Frenos",
		Estado:       "",
		Observacion:  "no revisado",
	})
	require.NoError(t, err)
	assert.Empty(t, detalle.Estado)
}

func TestAddDetalle_UnknownInspection(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.AddDetalle(context.Background(), domain.CreateDetalleRequest{
		IDInspeccion: "INSP-missing",
		Parte:        "Frenos",
		Estado:       domain.EstadoNormal,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestHistoryByPlaca_DerivesCompleta(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	parcial, err := svc.Create(ctx, domain.CreateInspeccionRequest{Placa: "HIST01", Fecha: "2024-01-10"})
	require.NoError(t, err)
	_, err = svc.AddDetalle(ctx, domain.CreateDetalleRequest{
		IDInspeccion: parcial.IDInspeccion,
		Parte:        "Frenos",
		Estado:       domain.EstadoCambiar,
	})
	require.NoError(t, err)

	completa, err := svc.Create(ctx, domain.CreateInspeccionRequest{Placa: "HIST01", Fecha: "2024-02-10"})
	require.NoError(t, err)
	for i, parte := range domain.PartesVehiculo {
		_, err = svc.AddDetalle(ctx, domain.CreateDetalleRequest{
			IDDetalle:    fmt.Sprintf("det-%02d", i),
			IDInspeccion: completa.IDInspeccion,
			Parte:        parte,
			Estado:       domain.EstadoNormal,
		})
		require.NoError(t, err)
	}

	historial, err := svc.HistoryByPlaca(ctx, "hist01")
	require.NoError(t, err)
	require.Len(t, historial, 2)

	byID := map[string]domain.InspeccionCompleta{}
	for _, item := range historial {
		byID[item.IDInspeccion] = item
	}
	assert.False(t, byID[parcial.IDInspeccion].Completa)
	assert.Len(t, byID[parcial.IDInspeccion].Detalles, 1)
	assert.True(t, byID[completa.IDInspeccion].Completa)
	assert.Len(t, byID[completa.IDInspeccion].Detalles, 10)
}
