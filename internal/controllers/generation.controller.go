package controllers

import (
	"fmt"
	"net/http"

	"blogforge/internal/ai"
	"blogforge/internal/services"

	"github.com/gin-gonic/gin"
)

const (
	defaultIdeaCount = 3
	maxIdeaCount     = 10

	sourceCategory  = "category"
	sourceWordPress = "wordpress"
)

type GenerationController struct {
	service *services.GenerationService
}

func NewGenerationController(service *services.GenerationService) *GenerationController {
	return &GenerationController{service: service}
}

type generateTopicsRequest struct {
	CategoryID uint   `json:"category_id"`
	Source     string `json:"source"`
	Count      int    `json:"count"`
}

// GenerateTopicIdeas godoc
// @Summary Generate topic idea candidates
// @Description Ask the generative backend for topic ideas. Candidates are returned for review and are NOT persisted; use the confirm endpoint to save a selection.
// @Tags generation
// @Accept json
// @Produce json
// @Param request body generateTopicsRequest true "Category (or source=wordpress) and count"
// @Success 200 {object} map[string]interface{} "Candidates generated"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 404 {object} map[string]interface{} "Category not found"
// @Failure 502 {object} map[string]interface{} "Generation backend failed"
// @Router /generation/topics [post]
func (gc *GenerationController) GenerateTopicIdeas(c *gin.Context) {
	var req generateTopicsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	count := req.Count
	if count <= 0 {
		count = defaultIdeaCount
	}
	if count > maxIdeaCount {
		count = maxIdeaCount
	}

	var ideas []ai.TopicIdea
	var err error

	switch req.Source {
	case sourceWordPress:
		ideas, err = gc.service.GenerateTopicIdeasFromWordPress(c.Request.Context(), count)
	case sourceCategory, "":
		if req.CategoryID == 0 {
			c.JSON(http.StatusBadRequest, gin.H{
				"status":  "error",
				"message": "Invalid request data",
				"error":   "category_id is required unless source is wordpress",
			})
			return
		}
		ideas, err = gc.service.GenerateTopicIdeas(c.Request.Context(), req.CategoryID, count)
	default:
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   "source must be category or wordpress",
		})
		return
	}

	if err != nil {
		if err == services.ErrNoWordPressPosts {
			c.JSON(http.StatusBadRequest, gin.H{
				"status":  "error",
				"message": "No WordPress posts available",
				"error":   "Sync WordPress posts before generating ideas from them",
			})
			return
		}
		respondError(c, err, "Failed to generate topic ideas")
		return
	}

	// An unparseable response is not an error: the operator simply gets
	// zero candidates and can retry.
	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": fmt.Sprintf("Generated %d topic idea candidates", len(ideas)),
		"data":    ideas,
	})
}

type confirmTopicsRequest struct {
	CategoryID uint           `json:"category_id"`
	Ideas      []ai.TopicIdea `json:"ideas" binding:"required"`
}

// ConfirmTopicIdeas godoc
// @Summary Persist selected topic idea candidates
// @Description Save the operator-approved subset of generated ideas as draft topics. A missing category_id files them under the WordPress fallback category.
// @Tags generation
// @Accept json
// @Produce json
// @Param request body confirmTopicsRequest true "Selected ideas"
// @Success 201 {object} map[string]interface{} "Topics created"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 404 {object} map[string]interface{} "Category not found"
// @Failure 409 {object} map[string]interface{} "Slug collision"
// @Router /generation/topics/confirm [post]
func (gc *GenerationController) ConfirmTopicIdeas(c *gin.Context) {
	var req confirmTopicsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	for _, idea := range req.Ideas {
		if idea.Title == "" || idea.Description == "" {
			c.JSON(http.StatusBadRequest, gin.H{
				"status":  "error",
				"message": "Invalid request data",
				"error":   "Every idea needs a title and a description",
			})
			return
		}
	}

	topics, err := gc.service.ConfirmTopicIdeas(c.Request.Context(), req.CategoryID, req.Ideas)
	if err != nil {
		respondError(c, err, "Failed to save topics")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": fmt.Sprintf("Saved %d topics", len(topics)),
		"data":    topics,
	})
}

type generateArticleRequest struct {
	ParametersID uint `json:"parameters_id"`
}

// GenerateArticle godoc
// @Summary Generate an article for a topic
// @Description Draft an article with the generative backend and save it, publishing the topic in the same transaction. SEO scoring is a separate step.
// @Tags generation
// @Accept json
// @Produce json
// @Param id path int true "Topic ID"
// @Param request body generateArticleRequest false "Optional parameter set"
// @Success 201 {object} map[string]interface{} "Article generated"
// @Failure 404 {object} map[string]interface{} "Topic or parameter set not found"
// @Failure 502 {object} map[string]interface{} "Generation backend failed"
// @Router /generation/article/{id} [post]
func (gc *GenerationController) GenerateArticle(c *gin.Context) {
	topicID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req generateArticleRequest
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

	article, err := gc.service.GenerateArticle(c.Request.Context(), topicID, req.ParametersID)
	if err != nil {
		respondError(c, err, "Failed to generate article")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Article generated successfully",
		"data":    article,
	})
}

// ScoreArticleSEO godoc
// @Summary Run SEO scoring for an article
// @Description Second generation round trip producing score, meta description, keywords and feedback. Retryable; a malformed response writes nothing.
// @Tags generation
// @Produce json
// @Param id path int true "Article ID"
// @Success 200 {object} map[string]interface{} "SEO result saved"
// @Failure 404 {object} map[string]interface{} "Article not found"
// @Failure 422 {object} map[string]interface{} "Unparseable SEO response"
// @Failure 502 {object} map[string]interface{} "Generation backend failed"
// @Router /generation/article/{id}/seo [post]
func (gc *GenerationController) ScoreArticleSEO(c *gin.Context) {
	articleID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	result, err := gc.service.ScoreArticleSEO(c.Request.Context(), articleID)
	if err != nil {
		respondError(c, err, "Failed to score article SEO")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "SEO analysis saved successfully",
		"data":    result,
	})
}
