package server

import (
	"strings"

	"github.com/gin-gonic/gin"
	obscontext "github.com/tallertech/tallertech/internal/observability/context"
)

// BearerAuthRequired validates the Authorization header and stores the
// authenticated user id in the request context.
func (s *Server) BearerAuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))
		if token == "" {
			AbortWithError(c, ErrUnauthorized)
			return
		}

		userID, err := s.authsvc.VerifyToken(c.Request.Context(), token)
		if err != nil {
			AbortWithError(c, err)
			return
		}

		ctx := obscontext.WithUserID(c.Request.Context(), userID)
		c.Request = c.Request.WithContext(ctx)
		c.Set("user_id", userID)
		c.Next()
	}
}

func bearerToken(header string) string {
	header = strings.TrimSpace(header)
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
