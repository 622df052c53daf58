package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"blogforge/database"
	"blogforge/internal/ai"
	"blogforge/internal/cache"
	"blogforge/internal/controllers"
	"blogforge/internal/repository"
	"blogforge/internal/services"
	"blogforge/internal/wordpress"
	"blogforge/routes"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: No .env file found: %v", err)
	}

	// Connect to database
	database.ConnectDatabase()
	if err := database.MigrateDatabase(); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}
	database.MonitorDBConnections()

	// Redis is optional: without it the article repository reads straight
	// from Postgres.
	var articleRepo repository.ArticleRepository
	redisClient, err := cache.NewRedisClient()
	if err != nil {
		log.Printf("Warning: Redis unavailable, article cache disabled: %v", err)
		articleRepo = repository.NewArticleRepository(database.DB)
	} else {
		defer redisClient.Close()
		articleRepo = repository.NewCachedArticleRepository(database.DB, redisClient.Client())
		log.Println("Article cache enabled via Redis")
	}

	// Initialize repositories
	categoryRepo := repository.NewCategoryRepository(database.DB)
	topicRepo := repository.NewTopicRepository(database.DB)
	paramsRepo := repository.NewArticleParametersRepository(database.DB)
	wordPressRepo := repository.NewWordPressPostRepository(database.DB)

	// Generative backend client, constructed explicitly from configuration
	model := os.Getenv("OPENAI_MODEL")
	if model == "" {
		model = "gpt-4o"
	}
	generator, err := ai.NewOpenAIGenerator(ai.Config{
		APIKey:  os.Getenv("OPENAI_API_KEY"),
		Model:   model,
		BaseURL: os.Getenv("OPENAI_BASE_URL"),
	})
	if err != nil {
		log.Fatalf("Failed to create generation client: %v", err)
	}

	generationService := services.NewGenerationService(
		generator,
		categoryRepo,
		topicRepo,
		articleRepo,
		paramsRepo,
		wordPressRepo,
	)

	wordPressURL := os.Getenv("WORDPRESS_API_URL")
	if wordPressURL == "" {
		log.Println("Warning: WORDPRESS_API_URL not set, sync endpoint will fail until configured")
	}
	wordPressClient := wordpress.NewClient(wordPressURL)

	// Initialize controllers
	categoryController := controllers.NewCategoryController(categoryRepo, topicRepo)
	topicController := controllers.NewTopicController(topicRepo)
	articleController := controllers.NewArticleController(articleRepo)
	parametersController := controllers.NewParametersController(paramsRepo)
	generationController := controllers.NewGenerationController(generationService)
	wordPressController := controllers.NewWordPressController(wordPressClient, wordPressRepo)
	adminController := controllers.NewAdminController(articleRepo, topicRepo, categoryRepo)

	gin.SetMode(gin.ReleaseMode)
	router := gin.Default()

	router.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "Blogforge API is running",
			"version": "1.0.0",
			"status":  "healthy",
			"model":   model,
		})
	})

	routes.RegisterCategoryRoutes(router, categoryController)
	routes.RegisterTopicRoutes(router, topicController)
	routes.RegisterArticleRoutes(router, articleController)
	routes.RegisterParametersRoutes(router, parametersController)
	routes.RegisterGenerationRoutes(router, generationController)
	routes.RegisterWordPressRoutes(router, wordPressController)
	routes.RegisterAdminRoutes(router, adminController)

	// Debug endpoints
	router.GET("/debug/database", func(c *gin.Context) {
		sqlDB, err := database.DB.DB()
		if err != nil {
			c.JSON(500, gin.H{
				"database_health": false,
				"error":           err.Error(),
			})
			return
		}

		var result int
		row := sqlDB.QueryRowContext(c.Request.Context(), "SELECT 1")
		err = row.Scan(&result)
		c.JSON(200, gin.H{
			"database_health": err == nil && result == 1,
		})
	})

	if redisClient != nil {
		router.GET("/debug/cache", func(c *gin.Context) {
			status, err := redisClient.GetStatus()
			if err != nil {
				c.JSON(500, gin.H{"connected": false, "error": err.Error()})
				return
			}
			c.JSON(200, status)
		})
	}

	// Start the server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	server := &http.Server{
		Addr:    ":" + port,
		Handler: router,
		// Generation round trips block on the model; give them room.
		ReadTimeout:    30 * time.Second,
		WriteTimeout:   120 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	log.Printf("Blogforge API server starting on port %s", port)

	if err := server.ListenAndServe(); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
