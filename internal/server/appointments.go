package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	appointmentdomain "github.com/tallertech/tallertech/internal/appointment/domain"
)

func (s *Server) CreateCita(c *gin.Context) {
	var req appointmentdomain.CreateCitaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.citaSvc.Create(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) ListCitas(c *gin.Context) {
	resp, err := s.citaSvc.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) DeleteCita(c *gin.Context) {
	if err := s.citaSvc.Delete(c.Request.Context(), strings.TrimSpace(c.Param("id"))); err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

func isCitaValidationError(err error) bool {
	switch err {
	case appointmentdomain.ErrInvalidID,
		appointmentdomain.ErrInvalidFecha,
		appointmentdomain.ErrInvalidHora:
		return true
	default:
		return false
	}
}
