package controllers

import (
	"bytes"
	"net/http"

	"blogforge/internal/models"
	"blogforge/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/yuin/goldmark"
)

type ArticleController struct {
	repo     repository.ArticleRepository
	markdown goldmark.Markdown
}

func NewArticleController(repo repository.ArticleRepository) *ArticleController {
	return &ArticleController{
		repo:     repo,
		markdown: goldmark.New(),
	}
}

// GetAllArticles godoc
// @Summary Get all articles
// @Description Retrieve all generated articles with their topics, newest first
// @Tags article
// @Produce json
// @Success 200 {object} map[string]interface{} "Articles retrieved successfully"
// @Router /article [get]
func (ac *ArticleController) GetAllArticles(c *gin.Context) {
	articles, err := ac.repo.FindAll()
	if err != nil {
		respondError(c, err, "Failed to retrieve articles")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Articles retrieved successfully",
		"data":    articles,
	})
}

// GetArticleByID godoc
// @Summary Get an article by ID
// @Description Retrieve an article; pass ?render=html to get the markdown body rendered to HTML
// @Tags article
// @Produce json
// @Param id path int true "Article ID"
// @Param render query string false "Set to html to render the markdown content"
// @Success 200 {object} map[string]interface{} "Article retrieved successfully"
// @Failure 404 {object} map[string]interface{} "Article not found"
// @Router /article/{id} [get]
func (ac *ArticleController) GetArticleByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	article, err := ac.repo.FindByID(id)
	if err != nil {
		respondError(c, err, "Article not found")
		return
	}

	ac.respondArticle(c, article)
}

// GetArticleBySlug godoc
// @Summary Get an article by slug
// @Tags article
// @Produce json
// @Param slug path string true "Article slug"
// @Param render query string false "Set to html to render the markdown content"
// @Success 200 {object} map[string]interface{} "Article retrieved successfully"
// @Failure 404 {object} map[string]interface{} "Article not found"
// @Router /article/slug/{slug} [get]
func (ac *ArticleController) GetArticleBySlug(c *gin.Context) {
	article, err := ac.repo.FindBySlug(c.Param("slug"))
	if err != nil {
		respondError(c, err, "Article not found")
		return
	}

	ac.respondArticle(c, article)
}

func (ac *ArticleController) respondArticle(c *gin.Context, article *models.Article) {
	response := gin.H{
		"status":  "success",
		"message": "Article retrieved successfully",
		"data":    article,
	}

	if c.Query("render") == "html" {
		var buf bytes.Buffer
		if err := ac.markdown.Convert([]byte(article.Content), &buf); err == nil {
			response["rendered_html"] = buf.String()
		}
	}

	c.JSON(http.StatusOK, response)
}

// DeleteArticle godoc
// @Summary Delete an article
// @Tags article
// @Produce json
// @Param id path int true "Article ID"
// @Success 200 {object} map[string]interface{} "Article deleted successfully"
// @Failure 404 {object} map[string]interface{} "Article not found"
// @Router /article/{id} [delete]
func (ac *ArticleController) DeleteArticle(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := ac.repo.Delete(id); err != nil {
		respondError(c, err, "Failed to delete article")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Article deleted successfully",
		"data":    nil,
	})
}
