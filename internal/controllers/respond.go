package controllers

import (
	"errors"
	"net/http"

	"blogforge/internal/ai"
	"blogforge/internal/repository"

	"github.com/gin-gonic/gin"
)

// respondError maps the pipeline's error taxonomy onto HTTP statuses:
// missing references are 404, slug/name collisions 409, backend failures
// 502, unusable SEO responses 422, everything else 500.
func respondError(c *gin.Context, err error, message string) {
	var genErr *ai.GenerationError
	var parseErr *ai.ParseError

	switch {
	case errors.Is(err, repository.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": message,
			"error":   "No record exists with the provided identifier",
		})
	case errors.Is(err, repository.ErrDuplicate):
		c.JSON(http.StatusConflict, gin.H{
			"status":  "error",
			"message": message,
			"error":   "A record with the same name or slug already exists",
		})
	case errors.As(err, &genErr):
		c.JSON(http.StatusBadGateway, gin.H{
			"status":  "error",
			"message": message,
			"error":   genErr.Error(),
		})
	case errors.As(err, &parseErr):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"status":  "error",
			"message": message,
			"error":   parseErr.Error(),
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": message,
			"error":   err.Error(),
		})
	}
}

func parseIDParam(c *gin.Context, name string) (uint, bool) {
	id, err := parseUintString(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid identifier",
			"error":   "ID must be a valid positive integer",
		})
		return 0, false
	}
	return id, true
}
