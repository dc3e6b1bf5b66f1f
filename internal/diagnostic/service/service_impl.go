package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tallertech/tallertech/internal/diagnostic/domain"
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
		log:     p.Log.Named("diagnostic.service"),
		repo:    p.Repo,
		metrics: p.Metrics,
	}
}

func (s *Service) SaveComplete(ctx context.Context, req domain.SaveCompleteRequest) (domain.Diagnostico, error) {
	placa := strings.ToUpper(strings.TrimSpace(req.Placa))
	if placa == "" {
		return domain.Diagnostico{}, domain.ErrInvalidPlaca
	}
	id := strings.TrimSpace(req.IDDiagnostico)
	fecha := strings.TrimSpace(req.Fecha)

	rows := req.Detalles
	if len(rows) == 0 {
		if req.Estado == nil {
			return domain.Diagnostico{}, domain.ErrInvalidDetalles
		}
		built, builtRows := domain.Build(*req.Estado, placa, time.Now().UTC())
		if id == "" {
			id = built.IDDiagnostico
		}
		if fecha == "" {
			fecha = built.Fecha
		} else {
			for i := range builtRows {
				builtRows[i].Fecha = fecha
			}
		}
		rows = builtRows
	}

	if id == "" {
		id = uuid.NewString()
	}
	if fecha == "" {
		fecha = time.Now().UTC().Format("2006-01-02")
	}

	diagnostico := domain.Diagnostico{
		IDDiagnostico: id,
		Placa:         placa,
		Fecha:         fecha,
		Observaciones: strings.TrimSpace(req.Observaciones),
		CreatedAt:     time.Now().UTC(),
	}

	detalles := make([]domain.DetalleDiagnostico, 0, len(rows))
	for _, detalle := range rows {
		if strings.TrimSpace(detalle.IDDetalle) == "" || strings.TrimSpace(detalle.Componente) == "" {
			return domain.Diagnostico{}, domain.ErrInvalidDetalles
		}
		detalle.IDDiagnostico = diagnostico.IDDiagnostico
		if detalle.Placa == "" {
			detalle.Placa = placa
		}
		if detalle.Fecha == "" {
			detalle.Fecha = fecha
		}
		detalles = append(detalles, detalle)
	}

	if err := s.repo.InsertComplete(ctx, s.db, &diagnostico, detalles); err != nil {
		if db.IsDuplicateKeyErr(err) {
			return domain.Diagnostico{}, domain.ErrDuplicate
		}
		return domain.Diagnostico{}, err
	}

	s.metrics.RecordDiagnostic(ctx)
	s.log.Info("diagnostic saved",
		zap.String("id_diagnostico", diagnostico.IDDiagnostico),
		zap.String("placa", placa),
		zap.Int("detalles", len(detalles)))
	return diagnostico, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (domain.DiagnosticoCompleto, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return domain.DiagnosticoCompleto{}, domain.ErrInvalidID
	}

	diagnostico, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return domain.DiagnosticoCompleto{}, err
	}
	if diagnostico == nil {
		return domain.DiagnosticoCompleto{}, domain.ErrNotFound
	}

	rows, err := s.repo.ListDetalles(ctx, s.db, id)
	if err != nil {
		return domain.DiagnosticoCompleto{}, err
	}

	detalles := make([]domain.DetalleDiagnostico, 0, len(rows))
	for _, row := range rows {
		if row == nil {
			continue
		}
		detalles = append(detalles, *row)
	}

	return domain.DiagnosticoCompleto{
		Diagnostico: *diagnostico,
		Detalles:    detalles,
	}, nil
}

func (s *Service) ListByPlaca(ctx context.Context, placa string) ([]domain.Diagnostico, error) {
	placa = strings.ToUpper(strings.TrimSpace(placa))
	if placa == "" {
		return nil, domain.ErrInvalidPlaca
	}
	rows, err := s.repo.ListByPlaca(ctx, s.db, placa)
	if err != nil {
		return nil, err
	}
	diagnosticos := make([]domain.Diagnostico, 0, len(rows))
	for _, row := range rows {
		if row == nil {
			continue
		}
		diagnosticos = append(diagnosticos, *row)
	}
	return diagnosticos, nil
}

func (s *Service) DetallesByPlaca(ctx context.Context, placa string) ([]domain.DetalleDiagnostico, error) {
	placa = strings.ToUpper(strings.TrimSpace(placa))
	if placa == "" {
		return nil, domain.ErrInvalidPlaca
	}
	rows, err := s.repo.ListDetallesByPlaca(ctx, s.db, placa)
	if err != nil {
		return nil, err
	}
	detalles := make([]domain.DetalleDiagnostico, 0, len(rows))
	for _, row := range rows {
		if row == nil {
			continue
		}
		detalles = append(detalles, *row)
	}
	return detalles, nil
}

func (s *Service) Recommend(ctx context.Context, req domain.RecommendRequest) (domain.RecommendResponse, error) {
	recomendaciones := domain.Evaluate(req.Estado, req.InspeccionPrevia)
	return domain.RecommendResponse{Recomendaciones: recomendaciones}, nil
}
