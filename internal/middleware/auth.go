package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/thereayou/microblog/internal/database"
	"github.com/thereayou/microblog/pkg/auth"
)

const (
	UserNameKey = "userName"
	UserIDKey   = "userID"
)

// AuthMiddleware проверяет opaque session token
func AuthMiddleware(db *database.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := auth.ExtractTokenFromHeader(c.Request)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing or invalid token"})
			c.Abort()
			return
		}

		name, err := db.NameForAuth(c.Request.Context(), token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			c.Abort()
			return
		}

		uid, err := db.FindUID(c.Request.Context(), name)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			c.Abort()
			return
		}

		c.Set(UserNameKey, name)
		c.Set(UserIDKey, uid)
		c.Next()
	}
}
