package middleware

import (
	"main/services"
	"main/utils"

	"github.com/gin-gonic/gin"
)

// Context keys set by SessionMiddleware when a request carries a valid
// session token.
const (
	ContextUserID   = "user_id"
	ContextUsername = "username"
)

// TokenVerifier is what the resolver needs from the token service.
type TokenVerifier interface {
	Verify(token string) (*services.Claims, error)
}

// SessionMiddleware resolves the session cookie into a request
// identity. A missing cookie resolves to anonymous; an invalid or
// expired token is cleared from the client and also resolves to
// anonymous. Resolution never rejects the request — whether anonymous
// is acceptable is decided per operation by AuthMiddleware.
func SessionMiddleware(tokens TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(utils.SessionCookieName)
		if err != nil || token == "" {
			c.Next()
			return
		}

		claims, err := tokens.Verify(token)
		if err != nil {
			utils.ClearSessionCookie(c)
			c.Next()
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextUsername, claims.Username)
		c.Next()
	}
}

// Identity returns the resolved user id, or "" for anonymous requests.
func Identity(c *gin.Context) string {
	return c.GetString(ContextUserID)
}
