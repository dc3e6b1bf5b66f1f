package service

import (
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tallertech/tallertech/internal/diagnostic/domain"
	"github.com/tallertech/tallertech/internal/diagnostic/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newTestService(t *testing.T) domain.Service {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file:diagnosticsvc?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.Diagnostico{}, &domain.DetalleDiagnostico{}))
	db.Exec("DELETE FROM detalle_diagnostico")
	db.Exec("DELETE FROM diagnosticos")

	return New(Params{
		DB:   db,
		Log:  zap.NewNop(),
		Repo: repository.Provide(),
	})
}

func TestSaveComplete_PersistsHeaderAndDetails(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	estado := domain.EstadoVehiculo{
		Motor:   domain.CondicionFalla,
		Bateria: domain.CondicionNormal,
		Frenos:  domain.CondicionNormal,
	}
	header, detalles := domain.Build(estado, "ABC123", time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC))

	saved, err := svc.SaveComplete(ctx, domain.SaveCompleteRequest{
		IDDiagnostico: header.IDDiagnostico,
		Placa:         header.Placa,
		Fecha:         header.Fecha,
		Detalles:      detalles,
	})
	require.NoError(t, err)
	assert.Equal(t, header.IDDiagnostico, saved.IDDiagnostico)

	completo, err := svc.GetByID(ctx, header.IDDiagnostico)
	require.NoError(t, err)
	assert.Equal(t, "ABC123", completo.Placa)
	assert.Len(t, completo.Detalles, 11)
}

func TestSaveComplete_GeneratesIDAndDate(t *testing.T) {
	svc := newTestService(t)

	saved, err := svc.SaveComplete(context.Background(), domain.SaveCompleteRequest{
		Placa: "xyz789",
		Detalles: []domain.DetalleDiagnostico{
			{IDDetalle: "d1", Componente: "motor", Valor: "Falla"},
		},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, saved.IDDiagnostico)
	assert.Equal(t, "XYZ789", saved.Placa)
	assert.Equal(t, time.Now().UTC().Format("2006-01-02"), saved.Fecha)
}

func TestSaveComplete_BuildsRowsFromEstado(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	saved, err := svc.SaveComplete(ctx, domain.SaveCompleteRequest{
		Placa: "est123",
		Fecha: "2024-03-15",
		Estado: &domain.EstadoVehiculo{
			Motor: domain.CondicionFalla,
			Llantas: map[domain.TirePosition]domain.CondicionLlanta{
				domain.FrontalIzq: {Presion: domain.CondicionBaja, Angulo: 1.5},
			},
		},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, saved.IDDiagnostico)

	completo, err := svc.GetByID(ctx, saved.IDDiagnostico)
	require.NoError(t, err)
	require.Len(t, completo.Detalles, 11)

	valores := map[string]domain.Valor{}
	for _, detalle := range completo.Detalles {
		valores[detalle.Componente] = detalle.Valor
		assert.Equal(t, saved.IDDiagnostico, detalle.IDDiagnostico)
		assert.Equal(t, "EST123", detalle.Placa)
		assert.Equal(t, "2024-03-15", detalle.Fecha)
	}
	assert.Equal(t, domain.Valor("1"), valores["motor"])
	assert.Equal(t, domain.Valor("25"), valores["presion_frontalIzq"])
	assert.Equal(t, domain.Valor("1.5"), valores["alineacion_frontalIzq"])
}

func TestGetByID_DetailOrderIsStable(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.SaveComplete(ctx, domain.SaveCompleteRequest{
		IDDiagnostico: "diag-ord",
		Placa:         "ORD123",
		Fecha:         "2024-03-15",
		Detalles: []domain.DetalleDiagnostico{
			{IDDetalle: "c", Componente: "motor", Valor: "1"},
			{IDDetalle: "a", Componente: "bateria", Valor: "0"},
			{IDDetalle: "b", Componente: "frenos", Valor: "1"},
		},
	})
	require.NoError(t, err)

	completo, err := svc.GetByID(ctx, "diag-ord")
	require.NoError(t, err)
	require.Len(t, completo.Detalles, 3)
	ids := make([]string, 0, len(completo.Detalles))
	for _, detalle := range completo.Detalles {
		ids = append(ids, detalle.IDDetalle)
	}
	assert.Equal(t, []string{"a", "b", "c"}, ids)
}

func TestSaveComplete_DuplicateID(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	req := domain.SaveCompleteRequest{
		IDDiagnostico: "diag-dup",
		Placa:         "ABC123",
		Detalles: []domain.DetalleDiagnostico{
			{IDDetalle: "d1", Componente: "motor", Valor: "1"},
		},
	}
	_, err := svc.SaveComplete(ctx, req)
	require.NoError(t, err)

	req.Detalles = []domain.DetalleDiagnostico{
		{IDDetalle: "d2", Componente: "motor", Valor: "1"},
	}
	_, err = svc.SaveComplete(ctx, req)
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestSaveComplete_Validation(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.SaveComplete(ctx, domain.SaveCompleteRequest{Placa: " "})
	assert.ErrorIs(t, err, domain.ErrInvalidPlaca)

	_, err = svc.SaveComplete(ctx, domain.SaveCompleteRequest{Placa: "ABC123"})
	assert.ErrorIs(t, err, domain.ErrInvalidDetalles)

	_, err = svc.SaveComplete(ctx, domain.SaveCompleteRequest{
		Placa:    "ABC123",
		Detalles: []domain.DetalleDiagnostico{{IDDetalle: "d1"}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidDetalles)
}

func TestDetallesByPlaca_ReturnsFlattenedRows(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.SaveComplete(ctx, domain.SaveCompleteRequest{
		IDDiagnostico: "diag-1",
		Placa:         "ABC123",
		Fecha:         "2024-03-15",
		Detalles: []domain.DetalleDiagnostico{
			{IDDetalle: "d1", Componente: "motor", Valor: "Falla"},
			{IDDetalle: "d2", Componente: "frenos", Valor: "Desgastados"},
		},
	})
	require.NoError(t, err)

	detalles, err := svc.DetallesByPlaca(ctx, "abc123")
	require.NoError(t, err)
	require.Len(t, detalles, 2)
	assert.Equal(t, "diag-1", detalles[0].IDDiagnostico)
	assert.Equal(t, "ABC123", detalles[0].Placa)
}

func TestGetByID_NotFound(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRecommend_PureEvaluation(t *testing.T) {
	svc := newTestService(t)

	resp, err := svc.Recommend(context.Background(), domain.RecommendRequest{
		Estado: domain.EstadoVehiculo{Motor: domain.CondicionFalla},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"inspect the engine."}, resp.Recomendaciones)
}
