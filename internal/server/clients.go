package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	clientdomain "github.com/tallertech/tallertech/internal/client/domain"
	"github.com/tallertech/tallertech/pkg/db/pagination"
)

type clienteRequest struct {
	ID            string         `json:"id"`
	Nombre        string         `json:"nombre"`
	Tecnomecanica string         `json:"tecnomecanica"`
	Email         string         `json:"email"`
	Telefono      string         `json:"telefono"`
	Direccion     string         `json:"direccion"`
	Estado        string         `json:"estado"`
	Metadata      map[string]any `json:"metadata"`
}

func (s *Server) CreateCliente(c *gin.Context) {
	var req clienteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.clienteSvc.Create(c.Request.Context(), clientdomain.CreateClienteRequest{
		ID:            strings.TrimSpace(req.ID),
		Nombre:        strings.TrimSpace(req.Nombre),
		Tecnomecanica: strings.TrimSpace(req.Tecnomecanica),
		Email:         strings.TrimSpace(req.Email),
		Telefono:      strings.TrimSpace(req.Telefono),
		Direccion:     strings.TrimSpace(req.Direccion),
		Estado:        strings.TrimSpace(req.Estado),
		Metadata:      req.Metadata,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) UpdateCliente(c *gin.Context) {
	var req clienteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.clienteSvc.Update(c.Request.Context(), clientdomain.UpdateClienteRequest{
		ID:            strings.TrimSpace(c.Param("id")),
		Nombre:        strings.TrimSpace(req.Nombre),
		Tecnomecanica: strings.TrimSpace(req.Tecnomecanica),
		Email:         strings.TrimSpace(req.Email),
		Telefono:      strings.TrimSpace(req.Telefono),
		Direccion:     strings.TrimSpace(req.Direccion),
		Estado:        strings.TrimSpace(req.Estado),
		Metadata:      req.Metadata,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) DeleteCliente(c *gin.Context) {
	err := s.clienteSvc.Delete(c.Request.Context(), clientdomain.GetClienteRequest{
		ID: strings.TrimSpace(c.Param("id")),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

func (s *Server) GetClienteByID(c *gin.Context) {
	resp, err := s.clienteSvc.GetByID(c.Request.Context(), clientdomain.GetClienteRequest{
		ID: strings.TrimSpace(c.Param("id")),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) ListClientes(c *gin.Context) {
	var query struct {
		pagination.Pagination
		Nombre string `form:"nombre"`
		Estado string `form:"estado"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.clienteSvc.List(c.Request.Context(), clientdomain.ListClienteRequest{
		PageToken: query.PageToken,
		PageSize:  int32(query.PageSize),
		Nombre:    strings.TrimSpace(query.Nombre),
		Estado:    strings.TrimSpace(query.Estado),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func isClienteValidationError(err error) bool {
	switch err {
	case clientdomain.ErrInvalidID,
		clientdomain.ErrInvalidName,
		clientdomain.ErrInvalidEstado:
		return true
	default:
		return false
	}
}
