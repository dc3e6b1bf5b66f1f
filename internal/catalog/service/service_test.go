package service

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tallertech/tallertech/internal/catalog/domain"
	"github.com/tallertech/tallertech/internal/catalog/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newTestService(t *testing.T) (domain.Service, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file:catalogsvc?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.Servicio{}))
	db.Exec("DELETE FROM servicios")

	svc := New(Params{
		DB:   db,
		Log:  zap.NewNop(),
		Repo: repository.Provide(),
	})
	return svc, db
}

func TestLoadPredefinidos_IdempotentSeed(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	added, err := svc.LoadPredefinidos(ctx)
	require.NoError(t, err)
	assert.Equal(t, len(domain.Predefinidos), added)

	again, err := svc.LoadPredefinidos(ctx)
	require.NoError(t, err)
	assert.Zero(t, again)

	servicios, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, servicios, len(domain.Predefinidos))
}

func TestList_ServesFromCacheUntilInvalidated(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, domain.CreateServicioRequest{
		IDServicio: "srv100", Nombre: "Lavado", Precio: 15,
	})
	require.NoError(t, err)

	first, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, first, 1)

	// A write that bypasses the service is invisible while cached.
	db.Exec("INSERT INTO servicios (id_servicio, nombre, precio) VALUES ('srv999', 'Pulido', 25)")

	cached, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, cached, 1)

	// A service write invalidates, so the next read sees both rows.
	_, err = svc.Create(ctx, domain.CreateServicioRequest{
		IDServicio: "srv101", Nombre: "Encerado", Precio: 20,
	})
	require.NoError(t, err)

	fresh, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, fresh, 3)
}

func TestCreate_DuplicateID(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, domain.CreateServicioRequest{IDServicio: "srv100", Nombre: "Lavado", Precio: 15})
	require.NoError(t, err)

	_, err = svc.Create(ctx, domain.CreateServicioRequest{IDServicio: "srv100", Nombre: "Otro", Precio: 10})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestUpdateAndDelete(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, domain.CreateServicioRequest{IDServicio: "srv100", Nombre: "Lavado", Precio: 15})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, domain.UpdateServicioRequest{IDServicio: "srv100", Nombre: "Lavado Premium", Precio: 18})
	require.NoError(t, err)
	assert.Equal(t, "Lavado Premium", updated.Nombre)
	assert.Equal(t, 18.0, updated.Precio)

	require.NoError(t, svc.Delete(ctx, "srv100"))
	assert.ErrorIs(t, svc.Delete(ctx, "srv100"), domain.ErrNotFound)

	_, err = svc.GetByID(ctx, "srv100")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
