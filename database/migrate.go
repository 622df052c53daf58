package database

import (
	"blogforge/internal/models"
	"log"
)

func MigrateDatabase() error {
	log.Println("Running database migrations...")

	err := DB.AutoMigrate(
		&models.Category{},
		&models.Topic{},
		&models.Article{},
		&models.ArticleParameters{},
		&models.WordPressPost{},
	)

	if err != nil {
		log.Printf("Error during migration: %v", err)
		return err
	}

	log.Println("Database migrations completed successfully")
	return nil
}
