// Package session manages the cookie that carries the bearer token.
package session

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

const (
	// CookieName is the session carrier.
	CookieName = "authorization"
	// Scheme prefixes the token inside the cookie value.
	Scheme = "Bearer"
)

// Carrier reads and writes the session cookie.
type Carrier struct {
	Secure bool
}

// Set writes "Bearer <token>" into the session cookie.
func (cr Carrier) Set(c *gin.Context, token string, ttl time.Duration) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(CookieName, Scheme+" "+token, int(ttl/time.Second), "/", "", cr.Secure, true)
}

// Clear removes the session cookie from the client.
func (cr Carrier) Clear(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(CookieName, "", -1, "/", "", cr.Secure, true)
}

// Read returns the cookie value, or "" if absent.
func (cr Carrier) Read(c *gin.Context) string {
	val, err := c.Cookie(CookieName)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(val)
}

// Split separates the scheme from the token on the first space.
func Split(value string) (scheme, token string) {
	scheme, token, _ = strings.Cut(value, " ")
	return scheme, strings.TrimSpace(token)
}
