package middleware

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"

	"highpro/web/internal/models"
	"highpro/web/internal/session"
)

// RouteGuard gates the dashboard prefixes on every request, before any
// handler runs. It is a pure function of the request path and the two
// readable session cookies; it never calls the backend, which keeps it
// cheap enough to run on every navigation.
//
// The decision table:
//   - unguarded path                     -> allow (except /login below)
//   - /login with a live session        -> redirect to the role's landing path
//   - guarded path, cookie(s) missing    -> redirect /login?from=<path>
//   - guarded path, cookie unparseable   -> clear session, redirect /login
//   - guarded path, role matches         -> allow
//   - guarded path, other known role     -> redirect to that role's own section
//   - guarded path, unknown role         -> redirect /login
func RouteGuard(secure bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path

		guard, guarded := matchGuard(path)
		if !guarded {
			if path == models.LoginPath && session.Present(c) {
				user, ok := session.User(c)
				if ok && models.KnownRole(user.Role) {
					// Already authenticated; keep the login form out of sight.
					redirect(c, models.LandingPath(user.Role))
					return
				}
				if !ok {
					// Corrupted snapshot: treat as logout and serve the form.
					session.Clear(c, secure)
				}
			}
			c.Next()
			return
		}

		if !session.Present(c) {
			redirect(c, loginRedirect(path))
			return
		}

		user, ok := session.User(c)
		if !ok {
			session.Clear(c, secure)
			redirect(c, models.LoginPath)
			return
		}

		switch {
		case user.Role == guard.Role:
			c.Next()
		case models.KnownRole(user.Role):
			// Authenticated, just in the wrong section. Send them home,
			// never back to the login form.
			redirect(c, models.LandingPath(user.Role))
		default:
			redirect(c, models.LoginPath)
		}
	}
}

func matchGuard(path string) (models.Guard, bool) {
	for _, g := range models.Guards {
		if strings.HasPrefix(path, g.Prefix) {
			return g, true
		}
	}
	return models.Guard{}, false
}

// loginRedirect carries the original destination so the login page can
// return the user there after success.
func loginRedirect(from string) string {
	return models.LoginPath + "?from=" + url.QueryEscape(from)
}

func redirect(c *gin.Context, location string) {
	c.Redirect(http.StatusFound, location)
	c.Abort()
}
