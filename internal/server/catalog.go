package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	catalogdomain "github.com/tallertech/tallertech/internal/catalog/domain"
)

type servicioRequest struct {
	IDServicio string  `json:"id_servicio"`
	Nombre     string  `json:"nombre"`
	Precio     float64 `json:"precio"`
}

func (s *Server) CreateServicio(c *gin.Context) {
	var req servicioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.servicioSvc.Create(c.Request.Context(), catalogdomain.CreateServicioRequest{
		IDServicio: strings.TrimSpace(req.IDServicio),
		Nombre:     strings.TrimSpace(req.Nombre),
		Precio:     req.Precio,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) UpdateServicio(c *gin.Context) {
	var req servicioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.servicioSvc.Update(c.Request.Context(), catalogdomain.UpdateServicioRequest{
		IDServicio: strings.TrimSpace(c.Param("id")),
		Nombre:     strings.TrimSpace(req.Nombre),
		Precio:     req.Precio,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) DeleteServicio(c *gin.Context) {
	if err := s.servicioSvc.Delete(c.Request.Context(), strings.TrimSpace(c.Param("id"))); err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

func (s *Server) GetServicioByID(c *gin.Context) {
	resp, err := s.servicioSvc.GetByID(c.Request.Context(), strings.TrimSpace(c.Param("id")))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) ListServicios(c *gin.Context) {
	resp, err := s.servicioSvc.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) LoadServiciosPredefinidos(c *gin.Context) {
	inserted, err := s.servicioSvc.LoadPredefinidos(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{"insertados": inserted}})
}

func isServicioValidationError(err error) bool {
	switch err {
	case catalogdomain.ErrInvalidID,
		catalogdomain.ErrInvalidNombre,
		catalogdomain.ErrInvalidPrecio:
		return true
	default:
		return false
	}
}
