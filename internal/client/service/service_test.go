package service

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tallertech/tallertech/internal/client/domain"
	"github.com/tallertech/tallertech/internal/client/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newTestService(t *testing.T) domain.Service {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file:clientsvc?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.Cliente{}))
	db.Exec("DELETE FROM clientes")

	return New(Params{
		DB:   db,
		Log:  zap.NewNop(),
		Repo: repository.Provide(),
	})
}

func TestCreate_DefaultsEstadoActivo(t *testing.T) {
	svc := newTestService(t)

	cliente, err := svc.Create(context.Background(), domain.CreateClienteRequest{
		ID:     "cli001",
		Nombre: "  Juan Pérez  ",
	})
	require.NoError(t, err)
	assert.Equal(t, "Juan Pérez", cliente.Nombre)
	assert.Equal(t, domain.EstadoActivo, cliente.Estado)
	assert.NotNil(t, cliente.Metadata)
}

func TestCreate_RejectsUnknownEstado(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Create(context.Background(), domain.CreateClienteRequest{
		ID:     "cli001",
		Nombre: "Juan Pérez",
		Estado: "Pendiente",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidEstado)
}

func TestCreate_DuplicateID(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, domain.CreateClienteRequest{ID: "cli001", Nombre: "Juan Pérez"})
	require.NoError(t, err)

	_, err = svc.Create(ctx, domain.CreateClienteRequest{ID: "cli001", Nombre: "Otro Nombre"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestUpdate_UnknownClienteNotFound(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Update(context.Background(), domain.UpdateClienteRequest{
		ID:     "cli999",
		Nombre: "Juan Pérez",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDelete_Lifecycle(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, domain.CreateClienteRequest{ID: "cli001", Nombre: "Juan Pérez"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, domain.GetClienteRequest{ID: "cli001"}))

	_, err = svc.GetByID(ctx, domain.GetClienteRequest{ID: "cli001"})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	err = svc.Delete(ctx, domain.GetClienteRequest{ID: "cli001"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestList_FiltersByNombreAndEstado(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	seed := []domain.CreateClienteRequest{
		{ID: "cli001", Nombre: "Juan Pérez"},
		{ID: "cli002", Nombre: "Juana Torres", Estado: domain.EstadoInactivo},
		{ID: "cli003", Nombre: "Carlos Gómez"},
	}
	for _, req := range seed {
		_, err := svc.Create(ctx, req)
		require.NoError(t, err)
	}

	resp, err := svc.List(ctx, domain.ListClienteRequest{Nombre: "Juan"})
	require.NoError(t, err)
	require.Len(t, resp.Clientes, 2)

	resp, err = svc.List(ctx, domain.ListClienteRequest{Estado: domain.EstadoInactivo})
	require.NoError(t, err)
	require.Len(t, resp.Clientes, 1)
	assert.Equal(t, "cli002", resp.Clientes[0].ID)
}

func TestList_PageSizeCapsResults(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	for _, id := range []string{"cli001", "cli002", "cli003"} {
		_, err := svc.Create(ctx, domain.CreateClienteRequest{ID: id, Nombre: "Cliente " + id})
		require.NoError(t, err)
	}

	resp, err := svc.List(ctx, domain.ListClienteRequest{PageSize: 2})
	require.NoError(t, err)
	assert.Len(t, resp.Clientes, 2)
	assert.True(t, resp.HasMore)
	assert.NotEmpty(t, resp.NextPageToken)

	resp, err = svc.List(ctx, domain.ListClienteRequest{})
	require.NoError(t, err)
	assert.Len(t, resp.Clientes, 3)
	assert.False(t, resp.HasMore)
}
