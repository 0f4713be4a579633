package router

import (
	"html/template"
	"time"

	"newsline/internal/handlers"
	"newsline/internal/middleware"

	"github.com/gin-contrib/multitemplate"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes attaches every handler to the engine. LoadUser must already
// be installed so AuthRequired sees the session user.
func RegisterRoutes(r *gin.Engine) {
	authHandler := handlers.NewAuthHandler()
	newsHandler := handlers.NewNewsHandler()
	commentHandler := handlers.NewCommentHandler()

	// Public routes
	r.GET("/", newsHandler.Home)
	r.GET("/news/:id", newsHandler.Detail)

	r.GET("/signup", authHandler.ShowRegister)
	r.POST("/signup", authHandler.Register)
	r.GET("/login", authHandler.ShowLogin)
	r.POST("/login", authHandler.Login)
	r.GET("/logout", authHandler.Logout)

	// Protected routes: anonymous callers are redirected to /login?next=...
	authorized := r.Group("/")
	authorized.Use(middleware.AuthRequired())
	{
		authorized.POST("/news/:id/comment", commentHandler.Create)
		authorized.GET("/comment/:id/edit", commentHandler.ShowEdit)
		authorized.POST("/comment/:id/edit", commentHandler.Edit)
		authorized.GET("/comment/:id/delete", commentHandler.ShowDelete)
		authorized.POST("/comment/:id/delete", commentHandler.Delete)
	}
}

// LoadTemplates builds the multitemplate renderer: every view is assembled
// from the shared layouts plus its own file.
func LoadTemplates(templatesDir string) multitemplate.Renderer {
	r := multitemplate.NewRenderer()

	layout := templatesDir + "/layouts/base.html"

	assemble := func(view string) []string {
		return []string{layout, templatesDir + "/views/" + view}
	}

	funcMap := template.FuncMap{
		"formatDate": func(t time.Time) string {
			return t.Format("02.01.2006")
		},
		"formatTime": func(t time.Time) string {
			return t.Format("02.01.2006 15:04")
		},
	}

	r.AddFromFilesFuncs("news/list.html", funcMap, assemble("news/list.html")...)
	r.AddFromFilesFuncs("news/detail.html", funcMap, assemble("news/detail.html")...)
	r.AddFromFilesFuncs("comment/edit.html", funcMap, assemble("comment/edit.html")...)
	r.AddFromFilesFuncs("comment/delete.html", funcMap, assemble("comment/delete.html")...)
	r.AddFromFilesFuncs("auth/login.html", funcMap, assemble("auth/login.html")...)
	r.AddFromFilesFuncs("auth/signup.html", funcMap, assemble("auth/signup.html")...)
	r.AddFromFilesFuncs("error.html", funcMap, assemble("error.html")...)

	return r
}
