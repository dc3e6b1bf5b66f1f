package service

import (
	"context"
	"strings"
	"time"

	"github.com/tallertech/tallertech/internal/cache"
	"github.com/tallertech/tallertech/internal/catalog/domain"
	"github.com/tallertech/tallertech/pkg/db"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// catalogTTL bounds how stale a cached catalog read may be. Writes
// invalidate immediately.
const catalogTTL = 5 * time.Minute

const catalogKey = "servicios"

type Params struct {
	fx.In

	DB   *gorm.DB
	Log  *zap.Logger
	Repo domain.Repository
}

type Service struct {
	db    *gorm.DB
	log   *zap.Logger
	repo  domain.Repository
	cache cache.Cache[string, []domain.Servicio]
}

func New(p Params) domain.Service {
	return &Service{
		db:    p.DB,
		log:   p.Log.Named("catalog.service"),
		repo:  p.Repo,
		cache: cache.NewTTLCache[string, []domain.Servicio](),
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateServicioRequest) (domain.Servicio, error) {
	id := strings.TrimSpace(req.IDServicio)
	if id == "" {
		return domain.Servicio{}, domain.ErrInvalidID
	}
	nombre := strings.TrimSpace(req.Nombre)
	if nombre == "" {
		return domain.Servicio{}, domain.ErrInvalidNombre
	}
	if req.Precio < 0 {
		return domain.Servicio{}, domain.ErrInvalidPrecio
	}

	now := time.Now().UTC()
	servicio := domain.Servicio{
		IDServicio: id,
		Nombre:     nombre,
		Precio:     req.Precio,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.repo.Insert(ctx, s.db, &servicio); err != nil {
		if db.IsDuplicateKeyErr(err) {
			return domain.Servicio{}, domain.ErrDuplicate
		}
		return domain.Servicio{}, err
	}

	s.cache.Delete(catalogKey)
	s.log.Info("service added to catalog", zap.String("id_servicio", id))
	return servicio, nil
}

func (s *Service) Update(ctx context.Context, req domain.UpdateServicioRequest) (domain.Servicio, error) {
	id := strings.TrimSpace(req.IDServicio)
	if id == "" {
		return domain.Servicio{}, domain.ErrInvalidID
	}
	nombre := strings.TrimSpace(req.Nombre)
	if nombre == "" {
		return domain.Servicio{}, domain.ErrInvalidNombre
	}
	if req.Precio < 0 {
		return domain.Servicio{}, domain.ErrInvalidPrecio
	}

	existing, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return domain.Servicio{}, err
	}
	if existing == nil {
		return domain.Servicio{}, domain.ErrNotFound
	}

	existing.Nombre = nombre
	existing.Precio = req.Precio
	existing.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, s.db, existing); err != nil {
		return domain.Servicio{}, err
	}

	s.cache.Delete(catalogKey)
	return *existing, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
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
	s.cache.Delete(catalogKey)
	return nil
}

func (s *Service) GetByID(ctx context.Context, id string) (domain.Servicio, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return domain.Servicio{}, domain.ErrInvalidID
	}
	item, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return domain.Servicio{}, err
	}
	if item == nil {
		return domain.Servicio{}, domain.ErrNotFound
	}
	return *item, nil
}

// List serves the catalog through the read-through cache.
func (s *Service) List(ctx context.Context) ([]domain.Servicio, error) {
	if cached, ok := s.cache.Get(catalogKey); ok {
		return cached, nil
	}

	rows, err := s.repo.List(ctx, s.db)
	if err != nil {
		return nil, err
	}

	servicios := make([]domain.Servicio, 0, len(rows))
	for _, row := range rows {
		if row == nil {
			continue
		}
		servicios = append(servicios, *row)
	}

	s.cache.Set(catalogKey, servicios, catalogTTL)
	return servicios, nil
}

// LoadPredefinidos inserts the predefined services that are not yet
// present and reports how many were added.
func (s *Service) LoadPredefinidos(ctx context.Context) (int, error) {
	added := 0
	for _, predefinido := range domain.Predefinidos {
		existing, err := s.repo.FindByID(ctx, s.db, predefinido.IDServicio)
		if err != nil {
			return added, err
		}
		if existing != nil {
			continue
		}
		now := time.Now().UTC()
		servicio := predefinido
		servicio.CreatedAt = now
		servicio.UpdatedAt = now
		if err := s.repo.Insert(ctx, s.db, &servicio); err != nil {
			return added, err
		}
		added++
	}
	if added > 0 {
		s.cache.Delete(catalogKey)
		s.log.Info("predefined services loaded", zap.Int("added", added))
	}
	return added, nil
}
