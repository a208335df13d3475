package auth

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

const (
	accessCookieName  = "accessToken"
	refreshCookieName = "refreshToken"
)

// CookieWriter is the session transport: it moves the token pair
// between server and client as HTTP-only cookies with fixed security
// attributes.
type CookieWriter struct {
	secure     bool
	sameSite   http.SameSite
	path       string
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewCookieWriter(secure bool, sameSite, path string, accessTTL, refreshTTL time.Duration) *CookieWriter {
	return &CookieWriter{
		secure:     secure,
		sameSite:   parseSameSite(sameSite),
		path:       path,
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}

func parseSameSite(v string) http.SameSite {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "lax":
		return http.SameSiteLaxMode
	case "none":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteStrictMode
	}
}

// SetSession attaches both tokens to the response.
func (w *CookieWriter) SetSession(c *gin.Context, accessToken, refreshToken string) {
	c.SetSameSite(w.sameSite)
	c.SetCookie(accessCookieName, accessToken, int(w.accessTTL.Seconds()), w.path, "", w.secure, true)
	c.SetCookie(refreshCookieName, refreshToken, int(w.refreshTTL.Seconds()), w.path, "", w.secure, true)
}

// SetAccess replaces only the access-token cookie (refresh flow).
func (w *CookieWriter) SetAccess(c *gin.Context, accessToken string) {
	c.SetSameSite(w.sameSite)
	c.SetCookie(accessCookieName, accessToken, int(w.accessTTL.Seconds()), w.path, "", w.secure, true)
}

// Clear expires both cookies (logout).
func (w *CookieWriter) Clear(c *gin.Context) {
	c.SetSameSite(w.sameSite)
	c.SetCookie(accessCookieName, "", -1, w.path, "", w.secure, true)
	c.SetCookie(refreshCookieName, "", -1, w.path, "", w.secure, true)
}
