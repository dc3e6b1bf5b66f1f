package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/tallertech/tallertech/internal/billing/domain"
	diagnosticdomain "github.com/tallertech/tallertech/internal/diagnostic/domain"
	"github.com/tallertech/tallertech/internal/observability/metrics"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB          *gorm.DB
	Log         *zap.Logger
	GenID       *snowflake.Node
	Repo        domain.Repository
	Diagnostics diagnosticdomain.Service
	Metrics     *metrics.Metrics `optional:"true"`
}

type Service struct {
	db          *gorm.DB
	log         *zap.Logger
	genID       *snowflake.Node
	repo        domain.Repository
	diagnostics diagnosticdomain.Service
	metrics     *metrics.Metrics
}

func New(p Params) domain.Service {
	return &Service{
		db:          p.DB,
		log:         p.Log.Named("billing.service"),
		genID:       p.GenID,
		repo:        p.Repo,
		diagnostics: p.Diagnostics,
		metrics:     p.Metrics,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateFacturaRequest) (domain.FacturaConDetalles, error) {
	clienteID := strings.TrimSpace(req.ClienteID)
	if clienteID == "" {
		return domain.FacturaConDetalles{}, domain.ErrInvalidCliente
	}
	placa := strings.ToUpper(strings.TrimSpace(req.Placa))
	if placa == "" {
		return domain.FacturaConDetalles{}, domain.ErrInvalidPlaca
	}
	if len(req.Items) == 0 {
		return domain.FacturaConDetalles{}, domain.ErrInvalidItems
	}

	items := make([]domain.LineItem, 0, len(req.Items))
	for _, item := range req.Items {
		nombre := strings.TrimSpace(item.Nombre)
		if nombre == "" {
			return domain.FacturaConDetalles{}, domain.ErrInvalidItems
		}
		origen := item.Origen
		if origen != domain.OrigenAuto {
			origen = domain.OrigenManual
		}
		items = append(items, domain.LineItem{
			Nombre: nombre,
			Precio: item.Precio,
			Origen: origen,
		})
	}

	totales := domain.Totals(items)

	numFactura := strings.TrimSpace(req.NumFactura)
	if numFactura == "" {
		numFactura = fmt.Sprintf("%03d", rand.Intn(1000))
	}
	fecha := strings.TrimSpace(req.Fecha)
	if fecha == "" {
		fecha = time.Now().UTC().Format("2006-01-02")
	}

	factura := domain.Factura{
		ID:         s.genID.Generate(),
		NumFactura: numFactura,
		ClienteID:  clienteID,
		Placa:      placa,
		Fecha:      fecha,
		Subtotal:   totales.Subtotal,
		Impuestos:  totales.Impuestos,
		Total:      totales.Total,
		CreatedAt:  time.Now().UTC(),
	}

	detalles := make([]domain.DetalleFactura, 0, len(items))
	for _, item := range items {
		detalles = append(detalles, domain.DetalleFactura{
			ID:        s.genID.Generate(),
			FacturaID: factura.ID,
			Nombre:    item.Nombre,
			Precio:    item.Precio,
			Origen:    item.Origen,
		})
	}

	if err := s.repo.InsertFactura(ctx, s.db, &factura, detalles); err != nil {
		return domain.FacturaConDetalles{}, err
	}

	s.metrics.RecordInvoice(ctx)
	s.log.Info("invoice issued",
		zap.String("num_factura", factura.NumFactura),
		zap.String("placa", placa),
		zap.Float64("total", factura.Total))
	return domain.FacturaConDetalles{Factura: factura, Detalles: detalles}, nil
}

// AddDetalle appends a manual line item. Manual lines are deduplicated by
// name among themselves; auto-detected lines are never touched.
func (s *Service) AddDetalle(ctx context.Context, req domain.AddDetalleRequest) (domain.DetalleFactura, error) {
	facturaID, err := s.parseID(req.FacturaID)
	if err != nil {
		return domain.DetalleFactura{}, err
	}
	nombre := strings.TrimSpace(req.Nombre)
	if nombre == "" {
		return domain.DetalleFactura{}, domain.ErrInvalidNombre
	}

	// The dedup check, line insert, and totals rewrite must land together;
	// a stale stored total would leak through every invoice view.
	var detalle domain.DetalleFactura
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		factura, err := s.repo.FindByID(ctx, tx, facturaID)
		if err != nil {
			return err
		}
		if factura == nil {
			return domain.ErrNotFound
		}

		existentes, err := s.repo.ListDetalles(ctx, tx, facturaID)
		if err != nil {
			return err
		}
		items := make([]domain.LineItem, 0, len(existentes)+1)
		for _, existente := range existentes {
			if existente == nil {
				continue
			}
			if existente.Origen == domain.OrigenManual && existente.Nombre == nombre {
				return domain.ErrDuplicateItem
			}
			items = append(items, domain.LineItem{Nombre: existente.Nombre, Precio: existente.Precio, Origen: existente.Origen})
		}

		detalle = domain.DetalleFactura{
			ID:        s.genID.Generate(),
			FacturaID: facturaID,
			Nombre:    nombre,
			Precio:    req.Precio,
			Origen:    domain.OrigenManual,
		}
		if err := s.repo.InsertDetalle(ctx, tx, &detalle); err != nil {
			return err
		}

		items = append(items, domain.LineItem{Nombre: detalle.Nombre, Precio: detalle.Precio, Origen: detalle.Origen})
		return s.repo.UpdateTotales(ctx, tx, facturaID, domain.Totals(items))
	})
	if err != nil {
		return domain.DetalleFactura{}, err
	}
	return detalle, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (domain.FacturaConDetalles, error) {
	facturaID, err := s.parseID(id)
	if err != nil {
		return domain.FacturaConDetalles{}, err
	}

	factura, err := s.repo.FindByID(ctx, s.db, facturaID)
	if err != nil {
		return domain.FacturaConDetalles{}, err
	}
	if factura == nil {
		return domain.FacturaConDetalles{}, domain.ErrNotFound
	}
	return s.withDetalles(ctx, *factura)
}

func (s *Service) ListByPlaca(ctx context.Context, placa string) ([]domain.FacturaConDetalles, error) {
	placa = strings.ToUpper(strings.TrimSpace(placa))
	if placa == "" {
		return nil, domain.ErrInvalidPlaca
	}

	rows, err := s.repo.ListByPlaca(ctx, s.db, placa)
	if err != nil {
		return nil, err
	}

	facturas := make([]domain.FacturaConDetalles, 0, len(rows))
	for _, row := range rows {
		if row == nil {
			continue
		}
		factura, err := s.withDetalles(ctx, *row)
		if err != nil {
			return nil, err
		}
		facturas = append(facturas, factura)
	}
	return facturas, nil
}

// SuggestServices runs auto-detection over the vehicle's persisted
// diagnostic detail rows.
func (s *Service) SuggestServices(ctx context.Context, placa string) ([]domain.LineItem, error) {
	detalles, err := s.diagnostics.DetallesByPlaca(ctx, placa)
	if err != nil {
		if errors.Is(err, diagnosticdomain.ErrInvalidPlaca) {
			return nil, domain.ErrInvalidPlaca
		}
		return nil, err
	}
	return domain.DetectServices(detalles), nil
}

func (s *Service) withDetalles(ctx context.Context, factura domain.Factura) (domain.FacturaConDetalles, error) {
	rows, err := s.repo.ListDetalles(ctx, s.db, factura.ID)
	if err != nil {
		return domain.FacturaConDetalles{}, err
	}
	detalles := make([]domain.DetalleFactura, 0, len(rows))
	for _, row := range rows {
		if row == nil {
			continue
		}
		detalles = append(detalles, *row)
	}
	return domain.FacturaConDetalles{Factura: factura, Detalles: detalles}, nil
}

func (s *Service) parseID(value string) (snowflake.ID, error) {
	id, err := snowflake.ParseString(strings.TrimSpace(value))
	if err != nil || id == 0 {
		return 0, domain.ErrInvalidID
	}
	return id, nil
}
