package service

import (
	"context"
	"strings"
	"time"

	"github.com/tallertech/tallertech/internal/client/domain"
	"github.com/tallertech/tallertech/pkg/db"
	"github.com/tallertech/tallertech/pkg/db/pagination"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/datatypes"
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
		log:  p.Log.Named("client.service"),
		repo: p.Repo,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateClienteRequest) (domain.Cliente, error) {
	id := strings.TrimSpace(req.ID)
	if id == "" {
		return domain.Cliente{}, domain.ErrInvalidID
	}
	nombre := strings.TrimSpace(req.Nombre)
	if nombre == "" {
		return domain.Cliente{}, domain.ErrInvalidName
	}
	estado, err := normalizeEstado(req.Estado)
	if err != nil {
		return domain.Cliente{}, err
	}

	now := time.Now().UTC()
	cliente := domain.Cliente{
		ID:            id,
		Nombre:        nombre,
		Tecnomecanica: strings.TrimSpace(req.Tecnomecanica),
		Email:         strings.TrimSpace(req.Email),
		Telefono:      strings.TrimSpace(req.Telefono),
		Direccion:     strings.TrimSpace(req.Direccion),
		Estado:        estado,
		Metadata:      metadataOrEmpty(req.Metadata),
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.repo.Insert(ctx, s.db, &cliente); err != nil {
		if db.IsDuplicateKeyErr(err) {
			return domain.Cliente{}, domain.ErrDuplicate
		}
		return domain.Cliente{}, err
	}

	s.log.Info("client registered", zap.String("cliente_id", cliente.ID))
	return cliente, nil
}

func (s *Service) Update(ctx context.Context, req domain.UpdateClienteRequest) (domain.Cliente, error) {
	id := strings.TrimSpace(req.ID)
	if id == "" {
		return domain.Cliente{}, domain.ErrInvalidID
	}
	nombre := strings.TrimSpace(req.Nombre)
	if nombre == "" {
		return domain.Cliente{}, domain.ErrInvalidName
	}
	estado, err := normalizeEstado(req.Estado)
	if err != nil {
		return domain.Cliente{}, err
	}

	existing, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return domain.Cliente{}, err
	}
	if existing == nil {
		return domain.Cliente{}, domain.ErrNotFound
	}

	existing.Nombre = nombre
	existing.Tecnomecanica = strings.TrimSpace(req.Tecnomecanica)
	existing.Email = strings.TrimSpace(req.Email)
	existing.Telefono = strings.TrimSpace(req.Telefono)
	existing.Direccion = strings.TrimSpace(req.Direccion)
	existing.Estado = estado
	if req.Metadata != nil {
		existing.Metadata = datatypes.JSONMap(req.Metadata)
	}
	existing.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, s.db, existing); err != nil {
		return domain.Cliente{}, err
	}
	return *existing, nil
}

func (s *Service) Delete(ctx context.Context, req domain.GetClienteRequest) error {
	id := strings.TrimSpace(req.ID)
	if id == "" {
		return domain.ErrInvalidID
	}
	rows, err := s.repo.Delete(ctx, s.db, id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (s *Service) GetByID(ctx context.Context, req domain.GetClienteRequest) (domain.Cliente, error) {
	id := strings.TrimSpace(req.ID)
	if id == "" {
		return domain.Cliente{}, domain.ErrInvalidID
	}
	item, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return domain.Cliente{}, err
	}
	if item == nil {
		return domain.Cliente{}, domain.ErrNotFound
	}
	return *item, nil
}

func (s *Service) List(ctx context.Context, req domain.ListClienteRequest) (domain.ListClienteResponse, error) {
	filter := domain.ListClienteFilter{
		Nombre: strings.TrimSpace(req.Nombre),
		Estado: strings.TrimSpace(req.Estado),
	}

	pageSize := req.PageSize
	if pageSize <= 0 {
		pageSize = 50
	}

	items, err := s.repo.List(ctx, s.db, filter, pagination.Pagination{
		PageToken: req.PageToken,
		PageSize:  int(pageSize),
	})
	if err != nil {
		return domain.ListClienteResponse{}, err
	}

	pageInfo := pagination.BuildCursorPageInfo(items, int(pageSize), func(cliente *domain.Cliente) string {
		token, err := pagination.EncodeCursor(pagination.Cursor{
			ID:        cliente.ID,
			CreatedAt: cliente.CreatedAt.Format(time.RFC3339),
		})
		if err != nil {
			return ""
		}
		return token
	})
	if pageInfo != nil && pageInfo.HasMore && len(items) > int(pageSize) {
		items = items[:pageSize]
	}

	clientes := make([]domain.Cliente, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		clientes = append(clientes, *item)
	}

	resp := domain.ListClienteResponse{Clientes: clientes}
	if pageInfo != nil {
		resp.PageInfo = *pageInfo
	}
	return resp, nil
}

func normalizeEstado(value string) (string, error) {
	estado := strings.TrimSpace(value)
	if estado == "" {
		return domain.EstadoActivo, nil
	}
	switch estado {
	case domain.EstadoActivo, domain.EstadoInactivo:
		return estado, nil
	default:
		return "", domain.ErrInvalidEstado
	}
}

func metadataOrEmpty(m map[string]any) datatypes.JSONMap {
	if m == nil {
		return datatypes.JSONMap{}
	}
	return datatypes.JSONMap(m)
}
