package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	root "campus_match"
	"campus_match/internal/models"
	"campus_match/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	ctxUser  = "currentUser"
	ctxToken = "sessionToken"
)

// sessionToken reads the token from a Bearer header or the session cookie.
// An explicit header wins so API clients are not shadowed by a leftover cookie.
func (h *Handler) sessionToken(c *gin.Context) string {
	parts := strings.SplitN(c.GetHeader("Authorization"), " ", 2)
	if len(parts) == 2 && parts[0] == "Bearer" {
		if tok := strings.TrimSpace(parts[1]); tok != "" {
			return tok
		}
	}
	if v, err := c.Cookie(h.cfg.CookieName); err == nil && v != "" {
		return v
	}
	return ""
}

// sessionMiddleware resolves the session to a user or redirects to /login.
func (h *Handler) sessionMiddleware(c *gin.Context) {
	token := h.sessionToken(c)
	if token == "" {
		c.Redirect(http.StatusFound, "/login")
		c.Abort()
		return
	}

	user, err := h.services.CurrentUser(c.Request.Context(), token)
	if err != nil {
		if !errors.Is(err, service.ErrUnauthenticated) {
			h.logAndJSONError(c, http.StatusInternalServerError, root.CodeInternal, errInternal, "session_lookup_failed", err)
			c.Abort()
			return
		}
		h.clearSessionCookie(c)
		c.Redirect(http.StatusFound, "/login")
		c.Abort()
		return
	}

	// store in Gin context
	c.Set(ctxUser, user)
	c.Set(ctxToken, token)
	c.Next()
}

// currentUser returns the user placed by sessionMiddleware.
func currentUser(c *gin.Context) (models.User, bool) {
	v, ok := c.Get(ctxUser)
	if !ok {
		return models.User{}, false
	}
	u, ok := v.(models.User)
	return u, ok
}

func (h *Handler) setSessionCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cfg.CookieName, token, int(h.cfg.TokenTTL/time.Second), "/", "", h.cfg.CookieSecure, true)
}

func (h *Handler) clearSessionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cfg.CookieName, "", -1, "/", "", h.cfg.CookieSecure, true)
}

// requestLogger logs method, path, status and latency of every request.
func (h *Handler) requestLogger(c *gin.Context) {
	start := time.Now()
	c.Next()
	if h.log == nil {
		return
	}
	h.log.Debugw("http_request",
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"status", c.Writer.Status(),
		"latency", time.Since(start),
		"ip", c.ClientIP(),
	)
}

// observe records request counters and latency by route template.
func (h *Handler) observe(c *gin.Context) {
	start := time.Now()
	c.Next()
	route := c.FullPath()
	if route == "" {
		route = "unmatched"
	}
	h.metrics.ObserveHTTP(c.Request.Method, route, c.Writer.Status(), time.Since(start))
}
