package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/tallertech/tallertech/internal/appointment/domain"
	"github.com/tallertech/tallertech/internal/observability/metrics"
	"github.com/tallertech/tallertech/internal/providers/email"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB      *gorm.DB
	Log     *zap.Logger
	GenID   *snowflake.Node
	Repo    domain.Repository
	Email   email.Provider
	Metrics *metrics.Metrics `optional:"true"`
}

type Service struct {
	db      *gorm.DB
	log     *zap.Logger
	genID   *snowflake.Node
	repo    domain.Repository
	email   email.Provider
	metrics *metrics.Metrics
}

func New(p Params) domain.Service {
	return &Service{
		db:      p.DB,
		log:     p.Log.Named("appointment.service"),
		genID:   p.GenID,
		repo:    p.Repo,
		email:   p.Email,
		metrics: p.Metrics,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateCitaRequest) (domain.Cita, error) {
	fecha := strings.TrimSpace(req.Fecha)
	if _, err := time.Parse("2006-01-02", fecha); err != nil {
		return domain.Cita{}, domain.ErrInvalidFecha
	}
	hora := strings.TrimSpace(req.Hora)
	if hora == "" {
		return domain.Cita{}, domain.ErrInvalidHora
	}

	cita := domain.Cita{
		ID:        s.genID.Generate(),
		ClienteID: strings.TrimSpace(req.ClienteID),
		Placa:     strings.ToUpper(strings.TrimSpace(req.Placa)),
		Fecha:     fecha,
		Hora:      hora,
		Servicio:  strings.TrimSpace(req.Servicio),
		Email:     strings.TrimSpace(req.Email),
		Telefono:  strings.TrimSpace(req.Telefono),
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repo.Insert(ctx, s.db, &cita); err != nil {
		return domain.Cita{}, err
	}

	s.metrics.RecordAppointment(ctx, cita.Email != "")
	if cita.Email != "" {
		s.sendReminder(ctx, cita)
	}

	s.log.Info("appointment scheduled",
		zap.String("cita_id", cita.ID.String()),
		zap.String("fecha", cita.Fecha),
		zap.String("hora", cita.Hora))
	return cita, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	citaID, err := snowflake.ParseString(strings.TrimSpace(id))
	if err != nil || citaID == 0 {
		return domain.ErrInvalidID
	}
	rows, err := s.repo.Delete(ctx, s.db, citaID)
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (s *Service) List(ctx context.Context) ([]domain.Cita, error) {
	rows, err := s.repo.List(ctx, s.db)
	if err != nil {
		return nil, err
	}
	citas := make([]domain.Cita, 0, len(rows))
	for _, row := range rows {
		if row == nil {
			continue
		}
		citas = append(citas, *row)
	}
	return citas, nil
}

// sendReminder is best-effort; a failed email never fails the booking.
func (s *Service) sendReminder(ctx context.Context, cita domain.Cita) {
	subject := "Recordatorio de cita - TallerTech"
	body := fmt.Sprintf(
		"<p>Su cita está agendada para el <b>%s</b> a las <b>%s</b>.</p><p>Servicio: %s<br>Vehículo: %s</p>",
		cita.Fecha, cita.Hora, cita.Servicio, cita.Placa,
	)
	if err := s.email.Send(ctx, []string{cita.Email}, subject, body); err != nil {
		s.log.Warn("appointment reminder failed",
			zap.String("cita_id", cita.ID.String()),
			zap.Error(err))
	}
}
