package server

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	billingdomain "github.com/tallertech/tallertech/internal/billing/domain"
	clientdomain "github.com/tallertech/tallertech/internal/client/domain"
	"github.com/tallertech/tallertech/internal/providers/pdf"
	vehicledomain "github.com/tallertech/tallertech/internal/vehicle/domain"
)

func (s *Server) CreateFactura(c *gin.Context) {
	var req billingdomain.CreateFacturaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.facturaSvc.Create(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": facturaView(resp)})
}

func (s *Server) AddDetalleFactura(c *gin.Context) {
	var req billingdomain.AddDetalleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.facturaSvc.AddDetalle(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) GetFacturaByID(c *gin.Context) {
	resp, err := s.facturaSvc.GetByID(c.Request.Context(), strings.TrimSpace(c.Param("id")))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": facturaView(resp)})
}

func (s *Server) ListFacturasByPlaca(c *gin.Context) {
	facturas, err := s.facturaSvc.ListByPlaca(c.Request.Context(), strings.TrimSpace(c.Param("placa")))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	views := make([]gin.H, 0, len(facturas))
	for _, factura := range facturas {
		views = append(views, facturaView(factura))
	}

	c.JSON(http.StatusOK, gin.H{"data": views})
}

func (s *Server) SuggestServicios(c *gin.Context) {
	items, err := s.facturaSvc.SuggestServices(c.Request.Context(), strings.TrimSpace(c.Param("placa")))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": items})
}

func (s *Server) RenderFacturaPDF(c *gin.Context) {
	ctx := c.Request.Context()

	factura, err := s.facturaSvc.GetByID(ctx, strings.TrimSpace(c.Param("id")))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	clienteNombre := factura.ClienteID
	if cliente, err := s.clienteSvc.GetByID(ctx, clientdomain.GetClienteRequest{ID: factura.ClienteID}); err == nil {
		clienteNombre = cliente.Nombre
	}

	var marca, modelo string
	if vehiculo, err := s.vehiculoSvc.GetByPlaca(ctx, vehicledomain.GetVehiculoRequest{Placa: factura.Placa}); err == nil {
		marca = vehiculo.Marca
		modelo = vehiculo.Modelo
	}

	items := make([]pdf.FacturaItem, 0, len(factura.Detalles))
	for _, detalle := range factura.Detalles {
		items = append(items, pdf.FacturaItem{
			Nombre: detalle.Nombre,
			Origen: detalle.Origen,
			Precio: formatMoney(detalle.Precio),
		})
	}

	reader, err := s.pdf.GenerateFactura(ctx, pdf.FacturaData{
		NumFactura:    factura.NumFactura,
		Fecha:         factura.Fecha,
		ClienteNombre: clienteNombre,
		ClienteID:     factura.ClienteID,
		Placa:         factura.Placa,
		Marca:         marca,
		Modelo:        modelo,
		Items:         items,
		Subtotal:      formatMoney(factura.Subtotal),
		Impuestos:     formatMoney(factura.Impuestos),
		Total:         formatMoney(factura.Total),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=factura-%s.pdf", factura.NumFactura))
	c.DataFromReader(http.StatusOK, -1, "application/pdf", reader, nil)
}

// facturaView rounds the derived figures at the presentation boundary.
// Stored values keep full precision.
func facturaView(factura billingdomain.FacturaConDetalles) gin.H {
	return gin.H{
		"id":          factura.ID,
		"num_factura": factura.NumFactura,
		"cliente_id":  factura.ClienteID,
		"placa":       factura.Placa,
		"fecha":       factura.Fecha,
		"subtotal":    billingdomain.Round2(factura.Subtotal),
		"impuestos":   billingdomain.Round2(factura.Impuestos),
		"total":       billingdomain.Round2(factura.Total),
		"detalles":    factura.Detalles,
	}
}

func formatMoney(value float64) string {
	return fmt.Sprintf("$%.2f", billingdomain.Round2(value))
}

func isFacturaValidationError(err error) bool {
	switch err {
	case billingdomain.ErrInvalidID,
		billingdomain.ErrInvalidCliente,
		billingdomain.ErrInvalidPlaca,
		billingdomain.ErrInvalidItems,
		billingdomain.ErrInvalidNombre:
		return true
	default:
		return false
	}
}
