package middleware

import (
	"net/http"

	"newsline/internal/db"
	"newsline/internal/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const CurrentUserKey = "user"

// LoadUser resolves the session user on every request and puts it into the
// Gin context for handlers and templates.
func LoadUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		userID := session.Get("user_id")

		if userID != nil {
			var user models.User
			if err := db.DB.First(&user, userID).Error; err == nil {
				c.Set(CurrentUserKey, &user)
			}
		}
		c.Next()
	}
}

// AuthRequired guards mutating routes. Anonymous visitors are sent to the
// login page with the originally requested path in the next parameter, so
// they land back where they started after signing in.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, exists := c.Get(CurrentUserKey); !exists {
			c.Redirect(http.StatusFound, "/login?next="+c.Request.URL.Path)
			c.Abort()
			return
		}
		c.Next()
	}
}

// CurrentUser returns the logged-in user from the context, or nil for an
// anonymous visitor.
func CurrentUser(c *gin.Context) *models.User {
	if v, exists := c.Get(CurrentUserKey); exists {
		if u, ok := v.(*models.User); ok {
			return u
		}
	}
	return nil
}
