package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/tallertech/tallertech/internal/consumption/domain"
	"github.com/tallertech/tallertech/pkg/db"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	GenID *snowflake.Node
	Repo  domain.Repository
}

type Service struct {
	db    *gorm.DB
	log   *zap.Logger
	genID *snowflake.Node
	repo  domain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		db:    p.DB,
		log:   p.Log.Named("consumption.service"),
		genID: p.GenID,
		repo:  p.Repo,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateConsumoRequest) (domain.Consumo, error) {
	placa := strings.ToUpper(strings.TrimSpace(req.VehiculoID))
	if placa == "" {
		return domain.Consumo{}, domain.ErrInvalidPlaca
	}
	servicio := strings.TrimSpace(req.Servicio)
	if servicio == "" {
		return domain.Consumo{}, domain.ErrInvalidServicio
	}
	if req.Costo < 0 {
		return domain.Consumo{}, domain.ErrInvalidCosto
	}

	id := strings.TrimSpace(req.IDConsumo)
	if id == "" {
		id = s.genID.Generate().String()
	}
	fecha := strings.TrimSpace(req.Fecha)
	if fecha == "" {
		fecha = time.Now().UTC().Format("2006-01-02")
	}

	consumo := domain.Consumo{
		IDConsumo:  id,
		ClienteID:  strings.TrimSpace(req.ClienteID),
		VehiculoID: placa,
		Servicio:   servicio,
		Costo:      req.Costo,
		Fecha:      fecha,
		CreatedAt:  time.Now().UTC(),
	}

	if err := s.repo.Insert(ctx, s.db, &consumo); err != nil {
		if db.IsDuplicateKeyErr(err) {
			return domain.Consumo{}, domain.ErrDuplicate
		}
		return domain.Consumo{}, err
	}
	return consumo, nil
}

func (s *Service) List(ctx context.Context) ([]domain.Consumo, error) {
	rows, err := s.repo.List(ctx, s.db)
	if err != nil {
		return nil, err
	}
	return collect(rows), nil
}

func (s *Service) ListByPlaca(ctx context.Context, placa string) ([]domain.Consumo, error) {
	placa = strings.ToUpper(strings.TrimSpace(placa))
	if placa == "" {
		return nil, domain.ErrInvalidPlaca
	}
	rows, err := s.repo.ListByPlaca(ctx, s.db, placa)
	if err != nil {
		return nil, err
	}
	return collect(rows), nil
}

func collect(rows []*domain.Consumo) []domain.Consumo {
	consumos := make([]domain.Consumo, 0, len(rows))
	for _, row := range rows {
		if row == nil {
			continue
		}
		consumos = append(consumos, *row)
	}
	return consumos
}
