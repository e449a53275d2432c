// Package session owns the three cookies that represent a logged-in user.
// The cookie names are shared with the browser script (web/static/session.js)
// and must not change independently of it.
package session

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"highpro/web/internal/models"
)

const (
	AccessCookie  = "hp_access"
	RefreshCookie = "hp_refresh"
	UserCookie    = "hp_user"

	accessMaxAge  = 86400  // 1 day
	refreshMaxAge = 259200 // 3 days
	userMaxAge    = 259200 // 3 days
)

// Set materializes the session: access and user snapshot readable by page
// scripts, refresh token replay-only. All three are replaced wholesale on
// every login; nothing is ever mutated in place.
func Set(c *gin.Context, access, refresh string, user models.UserSummary, secure bool) error {
	snapshot, err := json.Marshal(user)
	if err != nil {
		return err
	}

	// gin query-escapes cookie values on write and unescapes on read, so
	// the JSON snapshot round-trips as-is.
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(AccessCookie, access, accessMaxAge, "/", "", secure, false)
	c.SetCookie(RefreshCookie, refresh, refreshMaxAge, "/", "", secure, true)
	c.SetCookie(UserCookie, string(snapshot), userMaxAge, "/", "", secure, false)
	return nil
}

// Clear expires all three cookies immediately. Safe to call with no
// session present.
func Clear(c *gin.Context, secure bool) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(AccessCookie, "", -1, "/", "", secure, false)
	c.SetCookie(RefreshCookie, "", -1, "/", "", secure, true)
	c.SetCookie(UserCookie, "", -1, "/", "", secure, false)
}

// User decodes the hp_user snapshot from the request. ok is false when the
// cookie is absent or does not parse; a malformed cookie is indistinguishable
// from no session.
func User(c *gin.Context) (models.UserSummary, bool) {
	raw, err := c.Cookie(UserCookie)
	if err != nil || raw == "" {
		return models.UserSummary{}, false
	}
	return decodeSnapshot(raw)
}

// Present reports whether the user snapshot and access cookies both exist.
// The session invariant treats the pair as one unit: either missing means
// no session, even if the other remains.
func Present(c *gin.Context) bool {
	if v, err := c.Cookie(UserCookie); err != nil || v == "" {
		return false
	}
	if v, err := c.Cookie(AccessCookie); err != nil || v == "" {
		return false
	}
	return true
}

func decodeSnapshot(raw string) (models.UserSummary, bool) {
	var user models.UserSummary
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		return models.UserSummary{}, false
	}
	if user.Role == "" {
		return models.UserSummary{}, false
	}
	return user, true
}
