package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	inspectiondomain "github.com/tallertech/tallertech/internal/inspection/domain"
)

func (s *Server) CreateInspeccion(c *gin.Context) {
	var req inspectiondomain.CreateInspeccionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.inspeccionSvc.Create(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) CreateDetalleInspeccion(c *gin.Context) {
	var req inspectiondomain.CreateDetalleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.inspeccionSvc.AddDetalle(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) GetInspeccionesByPlaca(c *gin.Context) {
	resp, err := s.inspeccionSvc.HistoryByPlaca(c.Request.Context(), strings.TrimSpace(c.Param("placa")))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func isInspeccionValidationError(err error) bool {
	switch err {
	case inspectiondomain.ErrInvalidID,
		inspectiondomain.ErrInvalidPlaca,
		inspectiondomain.ErrInvalidParte,
		inspectiondomain.ErrInvalidEstado:
		return true
	default:
		return false
	}
}
