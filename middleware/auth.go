package middleware

import (
	"main/utils"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware is the authentication half of the authorization gate:
// it aborts with UNAUTHENTICATED when the session resolved to
// anonymous. The ownership half lives in the stores' joint
// {id, owner} filters.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if Identity(c) == "" {
			utils.Unauthorized(c, utils.CodeUnauthenticated, "you are not authenticated")
			c.Abort()
			return
		}
		c.Next()
	}
}
