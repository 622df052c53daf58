package main

import (
	"flag"
	"log"
	"os"

	"blogforge/database"
	"blogforge/internal/repository"
	"blogforge/internal/seed"

	"github.com/joho/godotenv"
)

func init() {
	// Load .env file from project root
	if err := godotenv.Load(); err != nil {
		// Try loading from parent directory (in case running from cmd/seed/)
		if err := godotenv.Load("../../.env"); err != nil {
			log.Printf("Warning: No .env file found: %v", err)
		}
	}
}

func main() {
	seedCmd := flag.NewFlagSet("seed", flag.ExitOnError)
	seedFile := seedCmd.String("file", "seed/topics.yaml", "Path to the YAML seed document")

	resetCmd := flag.NewFlagSet("reset", flag.ExitOnError)
	confirm := resetCmd.Bool("yes", false, "Confirm deletion of all content data")

	if len(os.Args) < 2 {
		printHelp()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "seed":
		seedCmd.Parse(os.Args[2:])

		database.ConnectDatabase()
		if err := database.MigrateDatabase(); err != nil {
			log.Fatalf("Failed to run database migrations: %v", err)
		}

		categoryRepo := repository.NewCategoryRepository(database.DB)
		topicRepo := repository.NewTopicRepository(database.DB)

		f, err := seed.Load(*seedFile)
		if err != nil {
			log.Fatalf("Error loading seed file: %v", err)
		}

		categories, topics, err := seed.Apply(f, categoryRepo, topicRepo)
		if err != nil {
			log.Fatalf("Error seeding database (seeded %d categories, %d topics): %v", categories, topics, err)
		}
		log.Printf("Seeded %d categories and %d topics from %s", categories, topics, *seedFile)

	case "reset":
		resetCmd.Parse(os.Args[2:])
		if !*confirm {
			log.Fatal("Refusing to reset without --yes")
		}

		database.ConnectDatabase()

		articleRepo := repository.NewArticleRepository(database.DB)
		topicRepo := repository.NewTopicRepository(database.DB)
		categoryRepo := repository.NewCategoryRepository(database.DB)

		if err := articleRepo.DeleteAll(); err != nil {
			log.Fatalf("Error deleting articles: %v", err)
		}
		if err := topicRepo.DeleteAll(); err != nil {
			log.Fatalf("Error deleting topics: %v", err)
		}
		if err := categoryRepo.DeleteAll(); err != nil {
			log.Fatalf("Error deleting categories: %v", err)
		}
		log.Println("All content data deleted")

	default:
		printHelp()
		os.Exit(1)
	}
}

func printHelp() {
	log.Println("Usage:")
	log.Println("  seed  --file seed/topics.yaml   Seed categories and topics from a YAML document")
	log.Println("  reset --yes                     Delete all articles, topics and categories")
}
