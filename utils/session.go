package utils

import (
	"main/config"

	"github.com/gin-gonic/gin"
)

// SessionCookieName is the cookie carrying the session token.
const SessionCookieName = "access_token"

// SetSessionCookie attaches the session token to the response. The
// cookie lives exactly as long as the token it carries.
func SetSessionCookie(c *gin.Context, cfg *config.Config, token string) {
	c.SetSameSite(cfg.CookieSameSite)
	c.SetCookie(SessionCookieName, token, int(cfg.TokenTTL.Seconds()), "/", "", cfg.CookieSecure, true)
}

// ClearSessionCookie removes the session cookie from the client.
// Safe to call whether or not a cookie is present.
func ClearSessionCookie(c *gin.Context) {
	c.SetCookie(SessionCookieName, "", -1, "/", "", true, true)
}
