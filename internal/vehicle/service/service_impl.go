package service

import (
	"context"
	"strings"
	"time"

	"github.com/tallertech/tallertech/internal/vehicle/domain"
	"github.com/tallertech/tallertech/pkg/db"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB   *gorm.DB
	Log  *zap.Logger
	Repo domain.Repository
}

type Service struct {
	db   *gorm.DB
	log  *zap.Logger
	repo domain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		db:   p.DB,
		log:  p.Log.Named("vehicle.service"),
		repo: p.Repo,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateVehiculoRequest) (domain.Vehiculo, error) {
	placa := normalizePlaca(req.Placa)
	if placa == "" {
		return domain.Vehiculo{}, domain.ErrInvalidPlaca
	}
	marca := strings.TrimSpace(req.Marca)
	if marca == "" {
		return domain.Vehiculo{}, domain.ErrInvalidMarca
	}
	modelo := strings.TrimSpace(req.Modelo)
	if modelo == "" {
		return domain.Vehiculo{}, domain.ErrInvalidModelo
	}

	now := time.Now().UTC()
	vehiculo := domain.Vehiculo{
		Placa:     placa,
		Marca:     marca,
		Modelo:    modelo,
		ClienteID: strings.TrimSpace(req.ClienteID),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Insert(ctx, s.db, &vehiculo); err != nil {
		if db.IsDuplicateKeyErr(err) {
			return domain.Vehiculo{}, domain.ErrDuplicate
		}
		return domain.Vehiculo{}, err
	}

	s.log.Info("vehicle registered", zap.String("placa", vehiculo.Placa))
	return vehiculo, nil
}

func (s *Service) Update(ctx context.Context, req domain.UpdateVehiculoRequest) (domain.Vehiculo, error) {
	placa := normalizePlaca(req.Placa)
	if placa == "" {
		return domain.Vehiculo{}, domain.ErrInvalidPlaca
	}

	existing, err := s.repo.FindByPlaca(ctx, s.db, placa)
	if err != nil {
		return domain.Vehiculo{}, err
	}
	if existing == nil {
		return domain.Vehiculo{}, domain.ErrNotFound
	}

	if marca := strings.TrimSpace(req.Marca); marca != "" {
		existing.Marca = marca
	}
	if modelo := strings.TrimSpace(req.Modelo); modelo != "" {
		existing.Modelo = modelo
	}
	existing.ClienteID = strings.TrimSpace(req.ClienteID)
	existing.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, s.db, existing); err != nil {
		return domain.Vehiculo{}, err
	}
	return *existing, nil
}

func (s *Service) Delete(ctx context.Context, req domain.GetVehiculoRequest) error {
	placa := normalizePlaca(req.Placa)
	if placa == "" {
		return domain.ErrInvalidPlaca
	}
	rows, err := s.repo.Delete(ctx, s.db, placa)
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (s *Service) GetByPlaca(ctx context.Context, req domain.GetVehiculoRequest) (domain.Vehiculo, error) {
	placa := normalizePlaca(req.Placa)
	if placa == "" {
		return domain.Vehiculo{}, domain.ErrInvalidPlaca
	}
	item, err := s.repo.FindByPlaca(ctx, s.db, placa)
	if err != nil {
		return domain.Vehiculo{}, err
	}
	if item == nil {
		return domain.Vehiculo{}, domain.ErrNotFound
	}
	return *item, nil
}

func (s *Service) List(ctx context.Context) (domain.ListVehiculoResponse, error) {
	rows, err := s.repo.ListWithOwner(ctx, s.db)
	if err != nil {
		return domain.ListVehiculoResponse{}, err
	}

	vehiculos := make([]domain.VehiculoConCliente, 0, len(rows))
	for _, row := range rows {
		if row == nil {
			continue
		}
		if strings.TrimSpace(row.ClienteNombre) == "" {
			row.ClienteNombre = domain.SinRegistrar
		}
		vehiculos = append(vehiculos, *row)
	}
	return domain.ListVehiculoResponse{Vehiculos: vehiculos}, nil
}

func (s *Service) ListByCliente(ctx context.Context, clienteID string) ([]domain.Vehiculo, error) {
	clienteID = strings.TrimSpace(clienteID)
	if clienteID == "" {
		return nil, domain.ErrInvalidCliente
	}
	rows, err := s.repo.ListByCliente(ctx, s.db, clienteID)
	if err != nil {
		return nil, err
	}
	vehiculos := make([]domain.Vehiculo, 0, len(rows))
	for _, row := range rows {
		if row == nil {
			continue
		}
		vehiculos = append(vehiculos, *row)
	}
	return vehiculos, nil
}

func normalizePlaca(value string) string {
	return strings.ToUpper(strings.TrimSpace(value))
}
