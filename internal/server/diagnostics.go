package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	diagnosticdomain "github.com/tallertech/tallertech/internal/diagnostic/domain"
)

func (s *Server) SaveDiagnosticoCompleto(c *gin.Context) {
	var req diagnosticdomain.SaveCompleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.diagnosticoSvc.SaveComplete(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) RecommendDiagnostico(c *gin.Context) {
	var req diagnosticdomain.RecommendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.diagnosticoSvc.Recommend(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (s *Server) GetDiagnosticoByID(c *gin.Context) {
	resp, err := s.diagnosticoSvc.GetByID(c.Request.Context(), strings.TrimSpace(c.Param("id")))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) ListDiagnosticosByPlaca(c *gin.Context) {
	resp, err := s.diagnosticoSvc.ListByPlaca(c.Request.Context(), strings.TrimSpace(c.Param("placa")))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) ListDetalleDiagnosticoByPlaca(c *gin.Context) {
	placa := strings.TrimSpace(c.Query("placa"))
	resp, err := s.diagnosticoSvc.DetallesByPlaca(c.Request.Context(), placa)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func isDiagnosticoValidationError(err error) bool {
	switch err {
	case diagnosticdomain.ErrInvalidID,
		diagnosticdomain.ErrInvalidPlaca,
		diagnosticdomain.ErrInvalidDetalles:
		return true
	default:
		return false
	}
}
