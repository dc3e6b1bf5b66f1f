package service

import (
	"context"
	"testing"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tallertech/tallertech/internal/appointment/domain"
	"github.com/tallertech/tallertech/internal/appointment/repository"
	"github.com/tallertech/tallertech/internal/providers/email"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type recordingEmail struct {
	sent [][]string
}

func (r *recordingEmail) Send(ctx context.Context, to []string, subject, body string) error {
	r.sent = append(r.sent, to)
	return nil
}

func newTestService(t *testing.T, provider email.Provider) domain.Service {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file:appointmentsvc?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.Cita{}))
	db.Exec("DELETE FROM citas")

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	return New(Params{
		DB:    db,
		Log:   zap.NewNop(),
		GenID: node,
		Repo:  repository.Provide(),
		Email: provider,
	})
}

func TestCreateCita_SendsReminderWhenEmailPresent(t *testing.T) {
	mailer := &recordingEmail{}
	svc := newTestService(t, mailer)

	cita, err := svc.Create(context.Background(), domain.CreateCitaRequest{
		ClienteID: "cli001",
		Placa:     "abc123",
		Fecha:     "2024-04-01",
		Hora:      "10:30",
		Servicio:  "Cambio de Aceite",
		Email:     "cliente@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, "ABC123", cita.Placa)
	require.Len(t, mailer.sent, 1)
	assert.Equal(t, []string{"cliente@example.com"}, mailer.sent[0])
}

func TestCreateCita_NoReminderWithoutEmail(t *testing.T) {
	mailer := &recordingEmail{}
	svc := newTestService(t, mailer)

	_, err := svc.Create(context.Background(), domain.CreateCitaRequest{
		ClienteID: "cli001",
		Placa:     "ABC123",
		Fecha:     "2024-04-01",
		Hora:      "10:30",
	})
	require.NoError(t, err)
	assert.Empty(t, mailer.sent)
}

func TestCreateCita_Validation(t *testing.T) {
	svc := newTestService(t, &email.NoOpProvider{})
	ctx := context.Background()

	_, err := svc.Create(ctx, domain.CreateCitaRequest{Fecha: "01/04/2024", Hora: "10:30"})
	assert.ErrorIs(t, err, domain.ErrInvalidFecha)

	_, err = svc.Create(ctx, domain.CreateCitaRequest{Fecha: "2024-04-01"})
	assert.ErrorIs(t, err, domain.ErrInvalidHora)
}

func TestDeleteCita(t *testing.T) {
	svc := newTestService(t, &email.NoOpProvider{})
	ctx := context.Background()

	cita, err := svc.Create(ctx, domain.CreateCitaRequest{
		Fecha: "2024-04-01",
		Hora:  "10:30",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, cita.ID.String()))
	assert.ErrorIs(t, svc.Delete(ctx, cita.ID.String()), domain.ErrNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, "abc"), domain.ErrInvalidID)
}
