package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tallertech/tallertech/internal/inspection/domain"
	"github.com/tallertech/tallertech/internal/observability/metrics"
	"github.com/tallertech/tallertech/pkg/db"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB      *gorm.DB
	Log     *zap.Logger
	Repo    domain.Repository
	Metrics *metrics.Metrics `optional:"true"`
}

type Service struct {
	db      *gorm.DB
	log     *zap.Logger
	repo    domain.Repository
	metrics *metrics.Metrics
}

func New(p Params) domain.Service {
	return &Service{
		db:      p.DB,
		log:     p.Log.Named("inspection.service"),
		repo:    p.Repo,
		metrics: p.Metrics,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateInspeccionRequest) (domain.Inspeccion, error) {
	placa := strings.ToUpper(strings.TrimSpace(req.Placa))
	if placa == "" {
		return domain.Inspeccion{}, domain.ErrInvalidPlaca
	}

	id := strings.TrimSpace(req.IDInspeccion)
	if id == "" {
		id = "INSP-" + uuid.NewString()
	}
	fecha := strings.TrimSpace(req.Fecha)
	if fecha == "" {
		fecha = time.Now().UTC().Format("2006-01-02")
	}

	inspeccion := domain.Inspeccion{
		IDInspeccion: id,
		Placa:        placa,
		Fecha:        fecha,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.repo.Insert(ctx, s.db, &inspeccion); err != nil {
		if db.IsDuplicateKeyErr(err) {
			return domain.Inspeccion{}, domain.ErrDuplicate
		}
		return domain.Inspeccion{}, err
	}

	s.metrics.RecordInspection(ctx)
	s.log.Info("inspection opened",
		zap.String("id_inspeccion", inspeccion.IDInspeccion),
		zap.String("placa", placa))
	return inspeccion, nil
}

func (s *Service) AddDetalle(ctx context.Context, req domain.CreateDetalleRequest) (domain.DetalleInspeccion, error) {
	idInspeccion := strings.TrimSpace(req.IDInspeccion)
	if idInspeccion == "" {
		return domain.DetalleInspeccion{}, domain.ErrInvalidID
	}
	parte := strings.TrimSpace(req.Parte)
	if parte == "" {
		return domain.DetalleInspeccion{}, domain.ErrInvalidParte
	}
	estado := strings.TrimSpace(req.Estado)
	if !domain.EsEstadoValido(estado) {
		return domain.DetalleInspeccion{}, domain.ErrInvalidEstado
	}

	inspeccion, err := s.repo.FindByID(ctx, s.db, idInspeccion)
	if err != nil {
		return domain.DetalleInspeccion{}, err
	}
	if inspeccion == nil {
		return domain.DetalleInspeccion{}, domain.ErrNotFound
	}

	idDetalle := strings.TrimSpace(req.IDDetalle)
	if idDetalle == "" {
		idDetalle = uuid.NewString()
	}

	detalle := domain.DetalleInspeccion{
		IDDetalle:    idDetalle,
		IDInspeccion: idInspeccion,
		Parte:        parte,
		Estado:       estado,
		Observacion:  strings.TrimSpace(req.Observacion),
	}

	if err := s.repo.InsertDetalle(ctx, s.db, &detalle); err != nil {
		if db.IsDuplicateKeyErr(err) {
			return domain.DetalleInspeccion{}, domain.ErrDuplicate
		}
		return domain.DetalleInspeccion{}, err
	}
	return detalle, nil
}

func (s *Service) HistoryByPlaca(ctx context.Context, placa string) ([]domain.InspeccionCompleta, error) {
	placa = strings.ToUpper(strings.TrimSpace(placa))
	if placa == "" {
		return nil, domain.ErrInvalidPlaca
	}

	rows, err := s.repo.ListByPlaca(ctx, s.db, placa)
	if err != nil {
		return nil, err
	}

	historial := make([]domain.InspeccionCompleta, 0, len(rows))
	for _, row := range rows {
		if row == nil {
			continue
		}
		detalleRows, err := s.repo.ListDetalles(ctx, s.db, row.IDInspeccion)
		if err != nil {
			return nil, err
		}
		detalles := make([]domain.DetalleInspeccion, 0, len(detalleRows))
		for _, detalle := range detalleRows {
			if detalle == nil {
				continue
			}
			detalles = append(detalles, *detalle)
		}
		historial = append(historial, domain.InspeccionCompleta{
			Inspeccion: *row,
			Detalles:   detalles,
			Completa:   derivarCompleta(detalles),
		})
	}
	return historial, nil
}

// derivarCompleta reports whether every catalog part has a recorded,
// non-empty estado.
func derivarCompleta(detalles []domain.DetalleInspeccion) bool {
	estados := make(map[string]string, len(detalles))
	for _, detalle := range detalles {
		estados[detalle.Parte] = detalle.Estado
	}
	for _, parte := range domain.PartesVehiculo {
		if estados[parte] == "" {
			return false
		}
	}
	return true
}
