package db

import (
	"log"
	"time"

	"newsline/internal/config"
	"newsline/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// Init connects to Postgres using DATABASE_URL and seeds demo content.
// The process cannot do anything useful without a database, so failure is
// fatal.
func Init() {
	if err := Open(postgres.Open(config.DatabaseURL())); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Database connection established")
	seedNews()
}

// Open establishes the global connection on any GORM dialector and runs the
// schema migration. Tests call it with an in-memory SQLite dialector.
func Open(dialector gorm.Dialector) error {
	var err error
	DB, err = gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return err
	}

	return DB.AutoMigrate(
		&models.User{},
		&models.News{},
		&models.Comment{},
	)
}

// seedNews creates a couple of articles so a fresh install has a front page.
func seedNews() {
	var count int64
	DB.Model(&models.News{}).Count(&count)
	if count > 0 {
		return
	}

	items := []models.News{
		{
			Title: "Добро пожаловать на Newsline",
			Text:  "Первая заметка нашего новостного сайта. Зарегистрируйтесь, чтобы оставлять комментарии.",
			Date:  time.Now().AddDate(0, 0, -1),
		},
		{
			Title: "Комментарии открыты",
			Text:  "Под каждой новостью теперь можно обсуждать прочитанное. Будьте вежливы.",
			Date:  time.Now(),
		},
	}

	for _, item := range items {
		if err := DB.Create(&item).Error; err != nil {
			log.Printf("Failed to seed news %q: %v", item.Title, err)
		}
	}
	log.Println("Initial news created")
}
