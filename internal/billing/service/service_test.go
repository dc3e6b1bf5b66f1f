package service

import (
	"context"
	"errors"
	"testing"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tallertech/tallertech/internal/billing/domain"
	"github.com/tallertech/tallertech/internal/billing/repository"
	diagnosticdomain "github.com/tallertech/tallertech/internal/diagnostic/domain"
	diagnosticrepository "github.com/tallertech/tallertech/internal/diagnostic/repository"
	diagnosticservice "github.com/tallertech/tallertech/internal/diagnostic/service"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newTestService(t *testing.T) (domain.Service, diagnosticdomain.Service) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file:billingsvc?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&domain.Factura{},
		&domain.DetalleFactura{},
		&diagnosticdomain.Diagnostico{},
		&diagnosticdomain.DetalleDiagnostico{},
	))
	db.Exec("DELETE FROM detalle_factura")
	db.Exec("DELETE FROM facturas")
	db.Exec("DELETE FROM detalle_diagnostico")
	db.Exec("DELETE FROM diagnosticos")

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	diagnostics := diagnosticservice.New(diagnosticservice.Params{
		DB:   db,
		Log:  zap.NewNop(),
		Repo: diagnosticrepository.Provide(),
	})

	billing := New(Params{
		DB:          db,
		Log:         zap.NewNop(),
		GenID:       node,
		Repo:        repository.Provide(),
		Diagnostics: diagnostics,
	})
	return billing, diagnostics
}

func TestCreateFactura_ComputesTotals(t *testing.T) {
	svc, _ := newTestService(t)

	factura, err := svc.Create(context.Background(), domain.CreateFacturaRequest{
		NumFactura: "001",
		ClienteID:  "cli001",
		Placa:      "abc123",
		Fecha:      "2024-03-15",
		Items: []domain.LineItemRequest{
			{Nombre: "Cambio de Aceite", Precio: 30, Origen: "manual"},
			{Nombre: "Replace frenos", Precio: 50, Origen: "auto"},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "ABC123", factura.Placa)
	assert.Equal(t, 80.0, factura.Subtotal)
	assert.InDelta(t, 12.80, factura.Impuestos, 1e-9)
	assert.InDelta(t, 92.80, factura.Total, 1e-9)
	require.Len(t, factura.Detalles, 2)
	assert.Equal(t, domain.OrigenManual, factura.Detalles[0].Origen)
	assert.Equal(t, domain.OrigenAuto, factura.Detalles[1].Origen)
}

func TestCreateFactura_Validation(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, domain.CreateFacturaRequest{Placa: "ABC123"})
	assert.ErrorIs(t, err, domain.ErrInvalidCliente)

	_, err = svc.Create(ctx, domain.CreateFacturaRequest{ClienteID: "cli001"})
	assert.ErrorIs(t, err, domain.ErrInvalidPlaca)

	_, err = svc.Create(ctx, domain.CreateFacturaRequest{ClienteID: "cli001", Placa: "ABC123"})
	assert.ErrorIs(t, err, domain.ErrInvalidItems)
}

func TestAddDetalle_ManualDedupAndRecompute(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	factura, err := svc.Create(ctx, domain.CreateFacturaRequest{
		NumFactura: "002",
		ClienteID:  "cli001",
		Placa:      "ABC123",
		Items: []domain.LineItemRequest{
			{Nombre: "Repair motor", Precio: 80, Origen: "auto"},
		},
	})
	require.NoError(t, err)

	// A manual line may share a name with an auto-detected one.
	_, err = svc.AddDetalle(ctx, domain.AddDetalleRequest{
		FacturaID: factura.ID.String(),
		Nombre:    "Repair motor",
		Precio:    20,
	})
	require.NoError(t, err)

	// But not with another manual line.
	_, err = svc.AddDetalle(ctx, domain.AddDetalleRequest{
		FacturaID: factura.ID.String(),
		Nombre:    "Repair motor",
		Precio:    20,
	})
	assert.ErrorIs(t, err, domain.ErrDuplicateItem)

	updated, err := svc.GetByID(ctx, factura.ID.String())
	require.NoError(t, err)
	assert.Equal(t, 100.0, updated.Subtotal)
	assert.InDelta(t, 16.0, updated.Impuestos, 1e-9)
	assert.InDelta(t, 116.0, updated.Total, 1e-9)
	assert.Len(t, updated.Detalles, 2)
}

type totalsFailRepo struct {
	domain.Repository
}

func (totalsFailRepo) UpdateTotales(ctx context.Context, db *gorm.DB, facturaID snowflake.ID, totales domain.Totales) error {
	return errors.New("totals write refused")
}

func TestAddDetalle_RollsBackLineWhenTotalsUpdateFails(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	factura, err := svc.Create(ctx, domain.CreateFacturaRequest{
		NumFactura: "003",
		ClienteID:  "cli001",
		Placa:      "ABC123",
		Items: []domain.LineItemRequest{
			{Nombre: "Repair motor", Precio: 80, Origen: "auto"},
		},
	})
	require.NoError(t, err)

	db, err := gorm.Open(sqlite.Open("file:billingsvc?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	node, err := snowflake.NewNode(2)
	require.NoError(t, err)
	failing := New(Params{
		DB:    db,
		Log:   zap.NewNop(),
		GenID: node,
		Repo:  totalsFailRepo{Repository: repository.Provide()},
	})

	_, err = failing.AddDetalle(ctx, domain.AddDetalleRequest{
		FacturaID: factura.ID.String(),
		Nombre:    "Cambio de Aceite",
		Precio:    30,
	})
	require.Error(t, err)

	// The manual line must not survive the failed totals rewrite.
	after, err := svc.GetByID(ctx, factura.ID.String())
	require.NoError(t, err)
	assert.Len(t, after.Detalles, 1)
	assert.Equal(t, 80.0, after.Subtotal)
	assert.InDelta(t, 12.80, after.Impuestos, 1e-9)
	assert.InDelta(t, 92.80, after.Total, 1e-9)
}

func TestAddDetalle_UnknownFactura(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.AddDetalle(context.Background(), domain.AddDetalleRequest{
		FacturaID: "123456789",
		Nombre:    "Cambio de Aceite",
		Precio:    30,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSuggestServices_FromPersistedDiagnostics(t *testing.T) {
	svc, diagnostics := newTestService(t)
	ctx := context.Background()

	_, err := diagnostics.SaveComplete(ctx, diagnosticdomain.SaveCompleteRequest{
		IDDiagnostico: "diag-sug",
		Placa:         "SUG123",
		Fecha:         "2024-03-15",
		Detalles: []diagnosticdomain.DetalleDiagnostico{
			{IDDetalle: "d1", Componente: "motor", Valor: "Falla"},
			{IDDetalle: "d2", Componente: "frenos", Valor: "Desgastados"},
			{IDDetalle: "d3", Componente: "presion_frontalIzq", Valor: "25"},
		},
	})
	require.NoError(t, err)

	items, err := svc.SuggestServices(ctx, "SUG123")
	require.NoError(t, err)
	assert.Equal(t, []domain.LineItem{
		{Nombre: "Repair motor", Precio: 80, Origen: domain.OrigenAuto},
		{Nombre: "Replace frenos", Precio: 50, Origen: domain.OrigenAuto},
	}, items)
}

func TestSuggestServices_InvalidPlaca(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.SuggestServices(context.Background(), "  ")
	assert.ErrorIs(t, err, domain.ErrInvalidPlaca)
}
