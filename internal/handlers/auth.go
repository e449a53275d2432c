package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"highpro/web/internal/backend"
	"highpro/web/internal/session"
)

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login proxies credentials to the backend and, on success, materializes
// the session cookies. The tokens never appear in the response body; the
// browser only sees the user summary.
func (h HandlerSet) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "username va parol kiritilishi shart"})
		return
	}

	result, err := h.backend.Login(c.Request.Context(), backend.Credentials{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		var remote *backend.RemoteError
		switch {
		case errors.As(err, &remote):
			// Relay the backend's status and body verbatim so the login
			// form can show its exact error text.
			relayBody(c, remote.StatusCode, remote.Body)
		case errors.Is(err, backend.ErrMalformedResponse):
			h.log.Error().Err(err).Msg("backend login response rejected")
			c.JSON(http.StatusBadGateway, gin.H{"detail": "backend javobi yaroqsiz"})
		default:
			h.log.Error().Err(err).Msg("backend login call failed")
			c.JSON(http.StatusBadGateway, gin.H{"detail": "backend bilan aloqa uzildi"})
		}
		return
	}

	if err := session.Set(c, result.Tokens.Access, result.Tokens.Refresh, result.User, h.cfg.Production()); err != nil {
		h.log.Error().Err(err).Msg("session cookie encode failed")
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "sessiya yaratib bo'lmadi"})
		return
	}

	h.log.Info().
		Str("username", result.User.Username).
		Str("role", string(result.User.Role)).
		Msg("login succeeded")

	c.JSON(http.StatusOK, gin.H{"user": result.User})
}

// Logout clears the session cookies unconditionally. No backend call, no
// failure mode; clearing an absent session is still a success.
func (h HandlerSet) Logout(c *gin.Context) {
	session.Clear(c, h.cfg.Production())
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// relayBody forwards an upstream reply without reshaping it. JSON bodies
// keep their content type; anything else goes through as plain text.
func relayBody(c *gin.Context, status int, body []byte) {
	if json.Valid(body) {
		c.Data(status, "application/json", body)
		return
	}
	c.Data(status, "text/plain; charset=utf-8", body)
}
