package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"kanban-board-api/internal/response"
)

// ContextUserIDKey is the gin context key the authenticated user id is stored under
const ContextUserIDKey = "user_id"

// TokenVerifier answers whether a token has been revoked. Implemented by the
// auth service on top of the Redis denylist.
type TokenVerifier interface {
	IsRevoked(token string) bool
}

// Auth validates the Authorization bearer token and puts the user id on the
// context. The verifier may be nil when token revocation is not configured.
func Auth(secret string, verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
			response.SendError(c, http.StatusUnauthorized, "Authentication required")
			c.Abort()
			return
		}
		tokenString := parts[1]

		if verifier != nil && verifier.IsRevoked(tokenString) {
			response.SendError(c, http.StatusUnauthorized, "Invalid token")
			c.Abort()
			return
		}

		token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			response.SendError(c, http.StatusUnauthorized, "Invalid token")
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			response.SendError(c, http.StatusUnauthorized, "Invalid token")
			c.Abort()
			return
		}

		rawUserID, ok := claims["user_id"].(string)
		if !ok {
			response.SendError(c, http.StatusUnauthorized, "Invalid token")
			c.Abort()
			return
		}

		userID, err := uuid.Parse(rawUserID)
		if err != nil {
			response.SendError(c, http.StatusUnauthorized, "Invalid token")
			c.Abort()
			return
		}

		c.Set(ContextUserIDKey, userID)
		c.Next()
	}
}
