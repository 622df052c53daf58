package controllers

import (
	"net/http"

	"blogforge/internal/models"
	"blogforge/internal/repository"

	"github.com/gin-gonic/gin"
)

type ParametersController struct {
	repo repository.ArticleParametersRepository
}

func NewParametersController(repo repository.ArticleParametersRepository) *ParametersController {
	return &ParametersController{repo: repo}
}

// CreateParameters godoc
// @Summary Create an article parameter set
// @Description Create a named generation configuration; marking it default clears any previous default
// @Tags parameters
// @Accept json
// @Produce json
// @Param parameters body models.ArticleParameters true "Parameter set"
// @Success 201 {object} map[string]interface{} "Parameter set created successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Router /parameters [post]
func (pc *ParametersController) CreateParameters(c *gin.Context) {
	var params models.ArticleParameters
	if err := c.ShouldBindJSON(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	if params.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   "Parameter set name is required",
		})
		return
	}

	if err := pc.repo.Create(&params); err != nil {
		respondError(c, err, "Failed to create parameter set")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Parameter set created successfully",
		"data":    params,
	})
}

// GetAllParameters godoc
// @Summary Get all parameter sets
// @Tags parameters
// @Produce json
// @Success 200 {object} map[string]interface{} "Parameter sets retrieved successfully"
// @Router /parameters [get]
func (pc *ParametersController) GetAllParameters(c *gin.Context) {
	records, err := pc.repo.FindAll()
	if err != nil {
		respondError(c, err, "Failed to retrieve parameter sets")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Parameter sets retrieved successfully",
		"data":    records,
	})
}

// GetParametersByID godoc
// @Summary Get a parameter set by ID
// @Tags parameters
// @Produce json
// @Param id path int true "Parameter set ID"
// @Success 200 {object} map[string]interface{} "Parameter set retrieved successfully"
// @Failure 404 {object} map[string]interface{} "Parameter set not found"
// @Router /parameters/{id} [get]
func (pc *ParametersController) GetParametersByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	params, err := pc.repo.FindByID(id)
	if err != nil {
		respondError(c, err, "Parameter set not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Parameter set retrieved successfully",
		"data":    params,
	})
}

// UpdateParameters godoc
// @Summary Update a parameter set
// @Tags parameters
// @Accept json
// @Produce json
// @Param id path int true "Parameter set ID"
// @Param parameters body models.ArticleParameters true "Parameter set"
// @Success 200 {object} map[string]interface{} "Parameter set updated successfully"
// @Failure 404 {object} map[string]interface{} "Parameter set not found"
// @Router /parameters/{id} [put]
func (pc *ParametersController) UpdateParameters(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	existing, err := pc.repo.FindByID(id)
	if err != nil {
		respondError(c, err, "Parameter set not found")
		return
	}

	var payload models.ArticleParameters
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	existing.Name = payload.Name
	existing.Purpose = payload.Purpose
	existing.TargetAudience = payload.TargetAudience
	existing.Tone = payload.Tone
	if payload.TargetWordCount > 0 {
		existing.TargetWordCount = payload.TargetWordCount
	}

	if err := pc.repo.Update(existing); err != nil {
		respondError(c, err, "Failed to update parameter set")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Parameter set updated successfully",
		"data":    existing,
	})
}

// SetDefaultParameters godoc
// @Summary Mark a parameter set as the default
// @Description Atomically flips the default flag: exactly one parameter set is default afterwards
// @Tags parameters
// @Produce json
// @Param id path int true "Parameter set ID"
// @Success 200 {object} map[string]interface{} "Default parameter set updated"
// @Failure 404 {object} map[string]interface{} "Parameter set not found"
// @Router /parameters/{id}/default [put]
func (pc *ParametersController) SetDefaultParameters(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := pc.repo.SetDefault(id); err != nil {
		respondError(c, err, "Failed to set default parameter set")
		return
	}

	params, err := pc.repo.FindByID(id)
	if err != nil {
		respondError(c, err, "Parameter set not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Default parameter set updated",
		"data":    params,
	})
}

// DeleteParameters godoc
// @Summary Delete a parameter set
// @Tags parameters
// @Produce json
// @Param id path int true "Parameter set ID"
// @Success 200 {object} map[string]interface{} "Parameter set deleted successfully"
// @Failure 404 {object} map[string]interface{} "Parameter set not found"
// @Router /parameters/{id} [delete]
func (pc *ParametersController) DeleteParameters(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := pc.repo.Delete(id); err != nil {
		respondError(c, err, "Failed to delete parameter set")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Parameter set deleted successfully",
		"data":    nil,
	})
}
