package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	vehicledomain "github.com/tallertech/tallertech/internal/vehicle/domain"
)

type vehiculoRequest struct {
	Placa     string `json:"placa"`
	Marca     string `json:"marca"`
	Modelo    string `json:"modelo"`
	ClienteID string `json:"cliente_id"`
}

func (s *Server) CreateVehiculo(c *gin.Context) {
	var req vehiculoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.vehiculoSvc.Create(c.Request.Context(), vehicledomain.CreateVehiculoRequest{
		Placa:     strings.TrimSpace(req.Placa),
		Marca:     strings.TrimSpace(req.Marca),
		Modelo:    strings.TrimSpace(req.Modelo),
		ClienteID: strings.TrimSpace(req.ClienteID),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) UpdateVehiculo(c *gin.Context) {
	var req vehiculoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.vehiculoSvc.Update(c.Request.Context(), vehicledomain.UpdateVehiculoRequest{
		Placa:     strings.TrimSpace(c.Param("placa")),
		Marca:     strings.TrimSpace(req.Marca),
		Modelo:    strings.TrimSpace(req.Modelo),
		ClienteID: strings.TrimSpace(req.ClienteID),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) DeleteVehiculo(c *gin.Context) {
	err := s.vehiculoSvc.Delete(c.Request.Context(), vehicledomain.GetVehiculoRequest{
		Placa: strings.TrimSpace(c.Param("placa")),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

func (s *Server) GetVehiculoByPlaca(c *gin.Context) {
	resp, err := s.vehiculoSvc.GetByPlaca(c.Request.Context(), vehicledomain.GetVehiculoRequest{
		Placa: strings.TrimSpace(c.Param("placa")),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) ListVehiculos(c *gin.Context) {
	resp, err := s.vehiculoSvc.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) ListVehiculosByCliente(c *gin.Context) {
	resp, err := s.vehiculoSvc.ListByCliente(c.Request.Context(), strings.TrimSpace(c.Param("id")))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func isVehiculoValidationError(err error) bool {
	switch err {
	case vehicledomain.ErrInvalidPlaca,
		vehicledomain.ErrInvalidCliente,
		vehicledomain.ErrInvalidMarca,
		vehicledomain.ErrInvalidModelo:
		return true
	default:
		return false
	}
}
