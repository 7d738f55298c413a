package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"kanban-board-api/internal/response"
)

// Recovery returns a middleware that recovers from panics and renders the
// standard server error body. The recovered value ends up in the error field
// so clients see the same shape for panics and handled failures.
func Recovery(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("panic recovered",
					zap.Any("panic", r),
					zap.String("path", c.Request.URL.Path),
					zap.String("method", c.Request.Method),
				)
				response.SendServerError(c, http.StatusInternalServerError, "Internal server error", r)
				c.Abort()
			}
		}()
		c.Next()
	}
}
