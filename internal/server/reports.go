package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	reportdomain "github.com/tallertech/tallertech/internal/report/domain"
)

func (s *Server) GetResumenConsumos(c *gin.Context) {
	var req reportdomain.SummaryRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.reporteSvc.Summary(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}
