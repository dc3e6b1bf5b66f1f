package server

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	clientdomain "github.com/tallertech/tallertech/internal/client/domain"
	consumptiondomain "github.com/tallertech/tallertech/internal/consumption/domain"
	"github.com/tallertech/tallertech/internal/providers/pdf"
	vehicledomain "github.com/tallertech/tallertech/internal/vehicle/domain"
)

func (s *Server) CreateConsumo(c *gin.Context) {
	var req consumptiondomain.CreateConsumoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.consumoSvc.Create(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) ListConsumos(c *gin.Context) {
	resp, err := s.consumoSvc.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) ListConsumosByPlaca(c *gin.Context) {
	resp, err := s.consumoSvc.ListByPlaca(c.Request.Context(), strings.TrimSpace(c.Param("placa")))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

// RenderHistorialPDF exports a vehicle's service history as a PDF.
func (s *Server) RenderHistorialPDF(c *gin.Context) {
	ctx := c.Request.Context()
	placa := strings.TrimSpace(c.Param("placa"))

	consumos, err := s.consumoSvc.ListByPlaca(ctx, placa)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	clienteNombre := vehicledomain.SinRegistrar
	if vehiculo, err := s.vehiculoSvc.GetByPlaca(ctx, vehicledomain.GetVehiculoRequest{Placa: placa}); err == nil {
		if cliente, err := s.clienteSvc.GetByID(ctx, clientdomain.GetClienteRequest{ID: vehiculo.ClienteID}); err == nil {
			clienteNombre = cliente.Nombre
		}
	}

	registros := make([]pdf.HistorialItem, 0, len(consumos))
	for _, consumo := range consumos {
		registros = append(registros, pdf.HistorialItem{
			Fecha:    consumo.Fecha,
			Servicio: consumo.Servicio,
			Costo:    formatMoney(consumo.Costo),
		})
	}

	reader, err := s.pdf.GenerateHistorial(ctx, pdf.HistorialData{
		Placa:         strings.ToUpper(placa),
		ClienteNombre: clienteNombre,
		Registros:     registros,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=historial-%s.pdf", strings.ToUpper(placa)))
	c.DataFromReader(http.StatusOK, -1, "application/pdf", reader, nil)
}

// SeedConsumosPrueba inserts a small fixed data set for manual testing.
// Not registered in production.
func (s *Server) SeedConsumosPrueba(c *gin.Context) {
	muestras := []consumptiondomain.CreateConsumoRequest{
		{ClienteID: "cli001", VehiculoID: "ABC123", Servicio: "Cambio de Aceite", Costo: 30, Fecha: "2024-01-15"},
		{ClienteID: "cli001", VehiculoID: "ABC123", Servicio: "Alineación y Balanceo", Costo: 45, Fecha: "2024-02-10"},
		{ClienteID: "cli002", VehiculoID: "XYZ789", Servicio: "Cambio de Aceite", Costo: 30, Fecha: "2024-02-20"},
		{ClienteID: "cli002", VehiculoID: "XYZ789", Servicio: "Revisión de Frenos", Costo: 60, Fecha: "2024-03-05"},
	}

	inserted := 0
	for _, muestra := range muestras {
		if _, err := s.consumoSvc.Create(c.Request.Context(), muestra); err != nil {
			AbortWithError(c, err)
			return
		}
		inserted++
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{"insertados": inserted}})
}

func isConsumoValidationError(err error) bool {
	switch err {
	case consumptiondomain.ErrInvalidPlaca,
		consumptiondomain.ErrInvalidServicio,
		consumptiondomain.ErrInvalidCosto:
		return true
	default:
		return false
	}
}
