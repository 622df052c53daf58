package controllers

import (
	"net/http"
	"strconv"

	"blogforge/internal/models"
	"blogforge/internal/repository"

	"github.com/gin-gonic/gin"
)

type CategoryController struct {
	repo      repository.CategoryRepository
	topicRepo repository.TopicRepository
}

func NewCategoryController(repo repository.CategoryRepository, topicRepo repository.TopicRepository) *CategoryController {
	return &CategoryController{repo: repo, topicRepo: topicRepo}
}

func parseUintString(value string) (uint, error) {
	id, err := strconv.ParseUint(value, 10, 32)
	return uint(id), err
}

// CreateCategory godoc
// @Summary Create a new category
// @Description Create a category; the slug is derived from the name
// @Tags category
// @Accept json
// @Produce json
// @Param category body models.Category true "Category data"
// @Success 201 {object} map[string]interface{} "Category created successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 409 {object} map[string]interface{} "Category already exists"
// @Router /category [post]
func (cc *CategoryController) CreateCategory(c *gin.Context) {
	var category models.Category

	if err := c.ShouldBindJSON(&category); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	if category.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   "Category name is required",
		})
		return
	}

	if err := cc.repo.Create(&category); err != nil {
		respondError(c, err, "Failed to create category")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Category created successfully",
		"data":    category,
	})
}

// GetAllCategories godoc
// @Summary Get all categories
// @Description Retrieve all categories ordered by name
// @Tags category
// @Produce json
// @Success 200 {object} map[string]interface{} "Categories retrieved successfully"
// @Router /category [get]
func (cc *CategoryController) GetAllCategories(c *gin.Context) {
	categories, err := cc.repo.FindAll()
	if err != nil {
		respondError(c, err, "Failed to retrieve categories")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Categories retrieved successfully",
		"data":    categories,
	})
}

// GetCategoryByID godoc
// @Summary Get a category by ID
// @Tags category
// @Produce json
// @Param id path int true "Category ID"
// @Success 200 {object} map[string]interface{} "Category retrieved successfully"
// @Failure 404 {object} map[string]interface{} "Category not found"
// @Router /category/{id} [get]
func (cc *CategoryController) GetCategoryByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	category, err := cc.repo.FindByID(id)
	if err != nil {
		respondError(c, err, "Category not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Category retrieved successfully",
		"data":    category,
	})
}

// GetCategoryTopics godoc
// @Summary Get the topics that belong to a category
// @Tags category
// @Produce json
// @Param id path int true "Category ID"
// @Success 200 {object} map[string]interface{} "Topics retrieved successfully"
// @Failure 404 {object} map[string]interface{} "Category not found"
// @Router /category/{id}/topics [get]
func (cc *CategoryController) GetCategoryTopics(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if _, err := cc.repo.FindByID(id); err != nil {
		respondError(c, err, "Category not found")
		return
	}

	topics, err := cc.topicRepo.FindByCategoryID(id)
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

// UpdateCategory godoc
// @Summary Update a category
// @Description Update name/description; the slug is never recomputed
// @Tags category
// @Accept json
// @Produce json
// @Param id path int true "Category ID"
// @Param category body models.Category true "Category data"
// @Success 200 {object} map[string]interface{} "Category updated successfully"
// @Failure 404 {object} map[string]interface{} "Category not found"
// @Router /category/{id} [put]
func (cc *CategoryController) UpdateCategory(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	existing, err := cc.repo.FindByID(id)
	if err != nil {
		respondError(c, err, "Category not found")
		return
	}

	var payload models.Category
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	// Slug is first-write-wins: a renamed category keeps its slug.
	existing.Name = payload.Name
	existing.Description = payload.Description

	if err := cc.repo.Update(existing); err != nil {
		respondError(c, err, "Failed to update category")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Category updated successfully",
		"data":    existing,
	})
}

// DeleteCategory godoc
// @Summary Delete a category
// @Tags category
// @Produce json
// @Param id path int true "Category ID"
// @Success 200 {object} map[string]interface{} "Category deleted successfully"
// @Failure 404 {object} map[string]interface{} "Category not found"
// @Router /category/{id} [delete]
func (cc *CategoryController) DeleteCategory(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := cc.repo.Delete(id); err != nil {
		respondError(c, err, "Failed to delete category")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Category deleted successfully",
		"data":    nil,
	})
}
