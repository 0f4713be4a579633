package handlers

import (
	"newsline/internal/middleware"

	"github.com/gin-gonic/gin"
)

// Render injects shared template variables (current user, current path)
// before rendering a view.
func Render(c *gin.Context, code int, name string, obj gin.H) {
	if obj == nil {
		obj = gin.H{}
	}

	if user := middleware.CurrentUser(c); user != nil {
		obj["CurrentUser"] = user
	}
	obj["CurrentPath"] = c.Request.URL.Path

	c.HTML(code, name, obj)
}

// RenderError shows the error page with the given status. A 404 here is also
// how authorization failures are reported, so a comment a visitor may not
// touch looks exactly like a comment that does not exist.
func RenderError(c *gin.Context, code int, message string) {
	Render(c, code, "error.html", gin.H{"Title": "Ошибка", "Error": message})
}
