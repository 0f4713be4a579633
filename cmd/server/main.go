package main

import (
	"log"

	"newsline/internal/config"
	"newsline/internal/db"
	"newsline/internal/middleware"
	"newsline/internal/router"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading env vars from system")
	}

	db.Init()

	r := gin.Default()

	store := cookie.NewStore([]byte(config.SessionSecret()))
	r.Use(sessions.Sessions("newsline_session", store))

	r.HTMLRender = router.LoadTemplates("./web/templates")
	r.Static("/static", "./web/static")

	r.Use(middleware.LoadUser())
	router.RegisterRoutes(r)

	port := config.Port()
	log.Printf("Newsline server starting on :%s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
