package controllers

import (
	"context"
	"fmt"
	"net/http"

	"blogforge/internal/models"
	"blogforge/internal/repository"
	"blogforge/internal/wordpress"

	"github.com/gin-gonic/gin"
)

// WordPressFetcher is the slice of the WordPress client the controller
// needs; tests substitute a fake.
type WordPressFetcher interface {
	ListRecentPosts(ctx context.Context, limit int) ([]wordpress.Post, error)
}

type WordPressController struct {
	client WordPressFetcher
	repo   repository.WordPressPostRepository
}

func NewWordPressController(client WordPressFetcher, repo repository.WordPressPostRepository) *WordPressController {
	return &WordPressController{client: client, repo: repo}
}

type syncRequest struct {
	Limit int `json:"limit"`
}

// SyncPosts godoc
// @Summary Sync recent posts from the WordPress site
// @Description Fetch recent published posts over the WordPress REST API and upsert them by external id
// @Tags wordpress
// @Accept json
// @Produce json
// @Param request body syncRequest false "Optional fetch limit"
// @Success 200 {object} map[string]interface{} "Posts synced"
// @Failure 502 {object} map[string]interface{} "WordPress API unreachable"
// @Router /wordpress/sync [post]
func (wc *WordPressController) SyncPosts(c *gin.Context) {
	var req syncRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"status":  "error",
				"message": "Invalid request data",
				"error":   err.Error(),
			})
			return
		}
	}

	posts, err := wc.client.ListRecentPosts(c.Request.Context(), req.Limit)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{
			"status":  "error",
			"message": "Failed to fetch WordPress posts",
			"error":   err.Error(),
		})
		return
	}

	synced := 0
	for _, post := range posts {
		record := models.WordPressPost{
			WPID:          post.ID,
			Title:         post.Title,
			Excerpt:       post.Excerpt,
			Content:       post.Content,
			WPURL:         post.URL,
			PublishedDate: post.PublishedAt,
		}
		if err := wc.repo.Upsert(&record); err != nil {
			respondError(c, err, "Failed to store WordPress post")
			return
		}
		synced++
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": fmt.Sprintf("Synced %d WordPress posts", synced),
		"data":    gin.H{"synced": synced},
	})
}

// GetPosts godoc
// @Summary Get synced WordPress posts
// @Tags wordpress
// @Produce json
// @Success 200 {object} map[string]interface{} "Posts retrieved successfully"
// @Router /wordpress/posts [get]
func (wc *WordPressController) GetPosts(c *gin.Context) {
	posts, err := wc.repo.FindAll()
	if err != nil {
		respondError(c, err, "Failed to retrieve WordPress posts")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "WordPress posts retrieved successfully",
		"data":    posts,
	})
}
