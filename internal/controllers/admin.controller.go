package controllers

import (
	"net/http"
	"os"

	"blogforge/internal/repository"
	"blogforge/internal/seed"

	"github.com/gin-gonic/gin"
)

const defaultSeedFile = "seed/topics.yaml"

type AdminController struct {
	articleRepo  repository.ArticleRepository
	topicRepo    repository.TopicRepository
	categoryRepo repository.CategoryRepository
}

func NewAdminController(
	articleRepo repository.ArticleRepository,
	topicRepo repository.TopicRepository,
	categoryRepo repository.CategoryRepository,
) *AdminController {
	return &AdminController{
		articleRepo:  articleRepo,
		topicRepo:    topicRepo,
		categoryRepo: categoryRepo,
	}
}

// ResetDatabase godoc
// @Summary Delete all content data
// @Description Remove every article, topic and category. Synced WordPress posts are kept.
// @Tags admin
// @Produce json
// @Success 200 {object} map[string]interface{} "Database reset successfully"
// @Router /admin/reset [post]
func (ac *AdminController) ResetDatabase(c *gin.Context) {
	// Children first so foreign keys never dangle mid-way.
	if err := ac.articleRepo.DeleteAll(); err != nil {
		respondError(c, err, "Failed to reset database")
		return
	}
	if err := ac.topicRepo.DeleteAll(); err != nil {
		respondError(c, err, "Failed to reset database")
		return
	}
	if err := ac.categoryRepo.DeleteAll(); err != nil {
		respondError(c, err, "Failed to reset database")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Database reset successfully",
		"data":    nil,
	})
}

// SeedDatabase godoc
// @Summary Seed categories and topics from the seed file
// @Description Load the static seed document (SEED_FILE or seed/topics.yaml) through the normal repositories
// @Tags admin
// @Produce json
// @Success 200 {object} map[string]interface{} "Database seeded successfully"
// @Failure 500 {object} map[string]interface{} "Seed file missing or invalid"
// @Router /admin/seed [post]
func (ac *AdminController) SeedDatabase(c *gin.Context) {
	path := os.Getenv("SEED_FILE")
	if path == "" {
		path = defaultSeedFile
	}

	f, err := seed.Load(path)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to load seed file",
			"error":   err.Error(),
		})
		return
	}

	categories, topics, err := seed.Apply(f, ac.categoryRepo, ac.topicRepo)
	if err != nil {
		respondError(c, err, "Failed to seed database")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Database seeded successfully",
		"data": gin.H{
			"categories": categories,
			"topics":     topics,
		},
	})
}
