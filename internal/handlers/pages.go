package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"highpro/web/internal/models"
)

// Home renders the marketing page. The contact form on it posts to
// /api/submit.
func (h HandlerSet) Home(c *gin.Context) {
	c.HTML(http.StatusOK, "home.html", gin.H{
		"User": currentUser(c),
	})
}

// LoginPage serves the login form. The route guard has already bounced
// authenticated visitors to their dashboard before this runs.
func (h HandlerSet) LoginPage(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{
		"From": c.Query("from"),
	})
}

// Dashboard renders a role section's shell. By the time it runs the
// route guard has verified the visitor's role, so the snapshot is
// present and well-formed.
func (h HandlerSet) Dashboard(section string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.HTML(http.StatusOK, "dashboard.html", gin.H{
			"Section": section,
			"User":    currentUser(c),
		})
	}
}

func currentUser(c *gin.Context) *models.UserSummary {
	val, ok := c.Get("current_user")
	if !ok {
		return nil
	}
	user, ok := val.(models.UserSummary)
	if !ok {
		return nil
	}
	return &user
}
