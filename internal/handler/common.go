package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"kanban-board-api/internal/middleware"
	"kanban-board-api/internal/response"
)

// extractUserID pulls the authenticated user id off the gin context. A
// missing id means the route was registered without the auth middleware;
// respond 401 rather than proceeding unscoped.
func extractUserID(c *gin.Context) (uuid.UUID, bool) {
	value, exists := c.Get(middleware.ContextUserIDKey)
	if !exists {
		response.SendError(c, http.StatusUnauthorized, "User not authenticated")
		return uuid.Nil, false
	}
	userID, ok := value.(uuid.UUID)
	if !ok {
		response.SendError(c, http.StatusUnauthorized, "User not authenticated")
		return uuid.Nil, false
	}
	return userID, true
}

// parseIDParam parses the :id path parameter as a uuid
func parseIDParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, "Invalid ID")
		return uuid.Nil, false
	}
	return id, true
}

// parseScopeQuery parses a required scope query parameter (e.g. boardId on
// the column list). missingMessage follows the "<X> ID missing" convention.
func parseScopeQuery(c *gin.Context, name, missingMessage string) (uuid.UUID, bool) {
	raw := c.Query(name)
	if raw == "" {
		response.SendError(c, http.StatusBadRequest, missingMessage)
		return uuid.Nil, false
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		response.SendError(c, http.StatusBadRequest, "Invalid ID")
		return uuid.Nil, false
	}
	return id, true
}
