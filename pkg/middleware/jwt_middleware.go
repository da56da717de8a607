package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"vivuconnect/pkg/utils"
)

// Context keys set by JWTAuthMiddleware.
const (
	ContextUserID = "user_id"
	ContextRole   = "role"
)

func JWTAuthMiddleware(issuer *utils.TokenIssuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.RespondError(c, http.StatusUnauthorized, utils.CodeUnauthenticated, "Authorization header missing or invalid")
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := issuer.ValidateToken(tokenString)
		if err != nil {
			utils.RespondError(c, http.StatusUnauthorized, utils.CodeUnauthenticated, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextRole, claims.Role)
		c.Next()
	}
}

// AdminOnly must run after JWTAuthMiddleware.
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !utils.IsAdmin(c.GetString(ContextRole)) {
			utils.RespondError(c, http.StatusForbidden, utils.CodePermissionDenied, "Forbidden: insufficient permissions")
			c.Abort()
			return
		}
		c.Next()
	}
}
