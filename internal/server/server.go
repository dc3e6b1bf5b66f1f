package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/tallertech/tallertech/internal/appointment"
	appointmentdomain "github.com/tallertech/tallertech/internal/appointment/domain"
	"github.com/tallertech/tallertech/internal/auth"
	authdomain "github.com/tallertech/tallertech/internal/auth/domain"
	"github.com/tallertech/tallertech/internal/billing"
	billingdomain "github.com/tallertech/tallertech/internal/billing/domain"
	"github.com/tallertech/tallertech/internal/catalog"
	catalogdomain "github.com/tallertech/tallertech/internal/catalog/domain"
	"github.com/tallertech/tallertech/internal/client"
	clientdomain "github.com/tallertech/tallertech/internal/client/domain"
	"github.com/tallertech/tallertech/internal/config"
	"github.com/tallertech/tallertech/internal/consumption"
	consumptiondomain "github.com/tallertech/tallertech/internal/consumption/domain"
	"github.com/tallertech/tallertech/internal/diagnostic"
	diagnosticdomain "github.com/tallertech/tallertech/internal/diagnostic/domain"
	"github.com/tallertech/tallertech/internal/inspection"
	inspectiondomain "github.com/tallertech/tallertech/internal/inspection/domain"
	"github.com/tallertech/tallertech/internal/observability"
	obsmiddleware "github.com/tallertech/tallertech/internal/observability/logger"
	obstracing "github.com/tallertech/tallertech/internal/observability/tracing"
	"github.com/tallertech/tallertech/internal/providers/email"
	"github.com/tallertech/tallertech/internal/providers/pdf"
	"github.com/tallertech/tallertech/internal/report"
	reportdomain "github.com/tallertech/tallertech/internal/report/domain"
	"github.com/tallertech/tallertech/internal/vehicle"
	vehicledomain "github.com/tallertech/tallertech/internal/vehicle/domain"
	"go.uber.org/fx"
)

var Module = fx.Module("http.server",
	fx.Provide(registerGin),
	email.Module,
	pdf.Module,
	auth.Module,
	client.Module,
	vehicle.Module,
	inspection.Module,
	diagnostic.Module,
	catalog.Module,
	billing.Module,
	consumption.Module,
	report.Module,
	appointment.Module,
	fx.Invoke(NewServer),
	fx.Invoke(run),
)

func NewEngine(obsCfg observability.Config) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(obsmiddleware.GinMiddleware(obsmiddleware.MiddlewareConfig{
		Debug:           obsCfg.Debug(),
		ErrorClassifier: classifyErrorForLog,
	}))
	r.Use(obstracing.GinMiddleware())
	r.Use(ErrorHandlingMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

func registerGin(obsCfg observability.Config) *gin.Engine {
	return NewEngine(obsCfg)
}

func run(lc fx.Lifecycle, cfg config.Config, r *gin.Engine) {
	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: r,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					panic(err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}

type Server struct {
	engine *gin.Engine
	cfg    config.Config

	authsvc        authdomain.Service
	clienteSvc     clientdomain.Service
	vehiculoSvc    vehicledomain.Service
	inspeccionSvc  inspectiondomain.Service
	diagnosticoSvc diagnosticdomain.Service
	servicioSvc    catalogdomain.Service
	facturaSvc     billingdomain.Service
	consumoSvc     consumptiondomain.Service
	reporteSvc     reportdomain.Service
	citaSvc        appointmentdomain.Service

	pdf pdf.Provider
}

type ServerParams struct {
	fx.In

	Gin            *gin.Engine
	Cfg            config.Config
	Authsvc        authdomain.Service
	ClienteSvc     clientdomain.Service
	VehiculoSvc    vehicledomain.Service
	InspeccionSvc  inspectiondomain.Service
	DiagnosticoSvc diagnosticdomain.Service
	ServicioSvc    catalogdomain.Service
	FacturaSvc     billingdomain.Service
	ConsumoSvc     consumptiondomain.Service
	ReporteSvc     reportdomain.Service
	CitaSvc        appointmentdomain.Service
	PDF            pdf.Provider
}

func NewServer(p ServerParams) *Server {
	svc := &Server{
		engine:         p.Gin,
		cfg:            p.Cfg,
		authsvc:        p.Authsvc,
		clienteSvc:     p.ClienteSvc,
		vehiculoSvc:    p.VehiculoSvc,
		inspeccionSvc:  p.InspeccionSvc,
		diagnosticoSvc: p.DiagnosticoSvc,
		servicioSvc:    p.ServicioSvc,
		facturaSvc:     p.FacturaSvc,
		consumoSvc:     p.ConsumoSvc,
		reporteSvc:     p.ReporteSvc,
		citaSvc:        p.CitaSvc,
		pdf:            p.PDF,
	}

	svc.registerAuthRoutes()
	svc.registerAPIRoutes()

	return svc
}

func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func (s *Server) registerAuthRoutes() {
	auth := s.engine.Group("/auth")

	auth.POST("/registro", s.Register)
	auth.POST("/login", s.Login)
}

func (s *Server) registerAPIRoutes() {
	api := s.engine.Group("/")
	api.Use(s.BearerAuthRequired())

	// -------- Clientes --------
	api.GET("/clientes", s.ListClientes)
	api.POST("/clientes", s.CreateCliente)
	api.GET("/clientes/:id", s.GetClienteByID)
	api.PUT("/clientes/:id", s.UpdateCliente)
	api.DELETE("/clientes/:id", s.DeleteCliente)

	// -------- Vehiculos --------
	api.GET("/vehiculos", s.ListVehiculos)
	api.POST("/vehiculos", s.CreateVehiculo)
	api.GET("/vehiculos/por-cliente/:id", s.ListVehiculosByCliente)
	api.GET("/vehiculos/:placa", s.GetVehiculoByPlaca)
	api.PUT("/vehiculos/:placa", s.UpdateVehiculo)
	api.DELETE("/vehiculos/:placa", s.DeleteVehiculo)

	// -------- Inspecciones --------
	api.POST("/inspecciones", s.CreateInspeccion)
	api.POST("/detalle-inspeccion", s.CreateDetalleInspeccion)
	api.GET("/inspecciones/:placa", s.GetInspeccionesByPlaca)

	// -------- Diagnosticos --------
	api.POST("/diagnosticos/completo", s.SaveDiagnosticoCompleto)
	api.POST("/diagnosticos/recomendaciones", s.RecommendDiagnostico)
	api.GET("/diagnosticos/por-placa/:placa", s.ListDiagnosticosByPlaca)
	api.GET("/diagnosticos/:id", s.GetDiagnosticoByID)
	api.GET("/detalle-diagnostico-por-placa", s.ListDetalleDiagnosticoByPlaca)

	// -------- Servicios --------
	api.GET("/servicios", s.ListServicios)
	api.POST("/servicios", s.CreateServicio)
	api.POST("/servicios/cargar-predefinidos", s.LoadServiciosPredefinidos)
	api.GET("/servicios/:id", s.GetServicioByID)
	api.PUT("/servicios/:id", s.UpdateServicio)
	api.DELETE("/servicios/:id", s.DeleteServicio)

	// -------- Facturas --------
	api.POST("/facturas", s.CreateFactura)
	api.POST("/detalle-factura", s.AddDetalleFactura)
	api.GET("/facturas/por-placa/:placa", s.ListFacturasByPlaca)
	api.GET("/facturas/sugerencias/:placa", s.SuggestServicios)
	api.GET("/facturas/:id", s.GetFacturaByID)
	api.GET("/facturas/:id/pdf", s.RenderFacturaPDF)

	// -------- Consumos --------
	api.GET("/consumos", s.ListConsumos)
	api.POST("/consumos", s.CreateConsumo)
	api.GET("/consumos/placa/:placa", s.ListConsumosByPlaca)
	api.GET("/consumos/placa/:placa/pdf", s.RenderHistorialPDF)

	// -------- Reportes --------
	api.GET("/reportes/resumen", s.GetResumenConsumos)

	// -------- Citas --------
	api.GET("/citas", s.ListCitas)
	api.POST("/citas", s.CreateCita)
	api.DELETE("/citas/:id", s.DeleteCita)

	if !s.cfg.IsProduction() {
		api.POST("/consumos/datos-prueba", s.SeedConsumosPrueba)
	}
}
