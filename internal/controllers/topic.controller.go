package controllers

import (
	"net/http"

	"blogforge/internal/models"
	"blogforge/internal/repository"

	"github.com/gin-gonic/gin"
)

type TopicController struct {
	repo repository.TopicRepository
}

func NewTopicController(repo repository.TopicRepository) *TopicController {
	return &TopicController{repo: repo}
}

type createTopicRequest struct {
	Title           string `json:"title" binding:"required"`
	Description     string `json:"description" binding:"required"`
	CategoryID      uint   `json:"category_id" binding:"required"`
	TargetWordCount int    `json:"target_word_count"`
}

// CreateTopic godoc
// @Summary Create a new topic
// @Description Create a draft topic in a category; the slug is derived from the title
// @Tags topic
// @Accept json
// @Produce json
// @Param topic body createTopicRequest true "Topic data"
// @Success 201 {object} map[string]interface{} "Topic created successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 404 {object} map[string]interface{} "Category not found"
// @Failure 409 {object} map[string]interface{} "Slug already exists"
// @Router /topic [post]
func (tc *TopicController) CreateTopic(c *gin.Context) {
	var req createTopicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	topic := models.Topic{
		Title:       req.Title,
		Description: req.Description,
		CategoryID:  req.CategoryID,
		Status:      models.TopicStatusDraft,
	}
	if req.TargetWordCount > 0 {
		topic.TargetWordCount = req.TargetWordCount
	}

	if err := tc.repo.Create(&topic); err != nil {
		respondError(c, err, "Failed to create topic")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Topic created successfully",
		"data":    topic,
	})
}

// GetAllTopics godoc
// @Summary Get all topics
// @Description Retrieve all topics with their categories, newest first
// @Tags topic
// @Produce json
// @Success 200 {object} map[string]interface{} "Topics retrieved successfully"
// @Router /topic [get]
func (tc *TopicController) GetAllTopics(c *gin.Context) {
	topics, err := tc.repo.FindAll()
	if err != nil {
		respondError(c, err, "Failed to retrieve topics")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Topics retrieved successfully",
		"data":    topics,
	})
}

// GetTopicByID godoc
// @Summary Get a topic by ID
// @Tags topic
// @Produce json
// @Param id path int true "Topic ID"
// @Success 200 {object} map[string]interface{} "Topic retrieved successfully"
// @Failure 404 {object} map[string]interface{} "Topic not found"
// @Router /topic/{id} [get]
func (tc *TopicController) GetTopicByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	topic, err := tc.repo.FindByID(id)
	if err != nil {
		respondError(c, err, "Topic not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Topic retrieved successfully",
		"data":    topic,
	})
}

// GetTopicBySlug godoc
// @Summary Get a topic by slug
// @Tags topic
// @Produce json
// @Param slug path string true "Topic slug"
// @Success 200 {object} map[string]interface{} "Topic retrieved successfully"
// @Failure 404 {object} map[string]interface{} "Topic not found"
// @Router /topic/slug/{slug} [get]
func (tc *TopicController) GetTopicBySlug(c *gin.Context) {
	topic, err := tc.repo.FindBySlug(c.Param("slug"))
	if err != nil {
		respondError(c, err, "Topic not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Topic retrieved successfully",
		"data":    topic,
	})
}

// UpdateTopic godoc
// @Summary Update a topic
// @Description Update title/description/category; the slug and status are not editable here
// @Tags topic
// @Accept json
// @Produce json
// @Param id path int true "Topic ID"
// @Param topic body createTopicRequest true "Topic data"
// @Success 200 {object} map[string]interface{} "Topic updated successfully"
// @Failure 404 {object} map[string]interface{} "Topic not found"
// @Router /topic/{id} [put]
func (tc *TopicController) UpdateTopic(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	topic, err := tc.repo.FindByID(id)
	if err != nil {
		respondError(c, err, "Topic not found")
		return
	}

	var req createTopicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	topic.Title = req.Title
	topic.Description = req.Description
	topic.CategoryID = req.CategoryID
	if req.TargetWordCount > 0 {
		topic.TargetWordCount = req.TargetWordCount
	}
	topic.Category = nil

	if err := tc.repo.Update(topic); err != nil {
		respondError(c, err, "Failed to update topic")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Topic updated successfully",
		"data":    topic,
	})
}

// DeleteTopic godoc
// @Summary Delete a topic
// @Tags topic
// @Produce json
// @Param id path int true "Topic ID"
// @Success 200 {object} map[string]interface{} "Topic deleted successfully"
// @Failure 404 {object} map[string]interface{} "Topic not found"
// @Router /topic/{id} [delete]
func (tc *TopicController) DeleteTopic(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := tc.repo.Delete(id); err != nil {
		respondError(c, err, "Failed to delete topic")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Topic deleted successfully",
		"data":    nil,
	})
}
