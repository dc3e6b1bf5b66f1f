package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	authdomain "github.com/tallertech/tallertech/internal/auth/domain"
)

type registerRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (s *Server) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	usuario, err := s.authsvc.Register(c.Request.Context(), authdomain.RegisterRequest{
		Username: strings.TrimSpace(req.Username),
		Password: req.Password,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{
		"id":       usuario.ID,
		"username": usuario.Username,
	}})
}

func (s *Server) Login(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	token, err := s.authsvc.Login(c.Request.Context(), authdomain.LoginRequest{
		Username: strings.TrimSpace(req.Username),
		Password: req.Password,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, token)
}

func isAuthValidationError(err error) bool {
	switch err {
	case authdomain.ErrInvalidUsername,
		authdomain.ErrInvalidPassword:
		return true
	default:
		return false
	}
}
