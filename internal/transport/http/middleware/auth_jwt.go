package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"go-micropost/internal/core/auth"
	resp "go-micropost/internal/transport/http/response"
)

const KeyUserID = "userId"

func AuthJWT(j *auth.JWTer) gin.HandlerFunc {
	return func(c *gin.Context) {
		ah := c.GetHeader("Authorization")
		if !strings.HasPrefix(ah, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusOK, resp.Error(resp.CodeUnauthorized, "missing token"))
			return
		}
		claims, err := j.Parse(strings.TrimPrefix(ah, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusOK, resp.Error(resp.CodeUnauthorized, "invalid token"))
			return
		}
		c.Set("claims", claims)
		c.Set(KeyUserID, claims.UID)
		c.Next()
	}
}
