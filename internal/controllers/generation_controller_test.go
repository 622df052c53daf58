package controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"blogforge/internal/ai"
	"blogforge/internal/controllers"
	"blogforge/internal/mocks"
	"blogforge/internal/models"
	"blogforge/internal/repository"
	"blogforge/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type generationMocks struct {
	generator     *mocks.MockGenerator
	categoryRepo  *mocks.MockCategoryRepository
	topicRepo     *mocks.MockTopicRepository
	articleRepo   *mocks.MockArticleRepository
	paramsRepo    *mocks.MockArticleParametersRepository
	wordPressRepo *mocks.MockWordPressPostRepository
}

func setupGenerationController() (*controllers.GenerationController, *generationMocks) {
	m := &generationMocks{
		generator:     new(mocks.MockGenerator),
		categoryRepo:  new(mocks.MockCategoryRepository),
		topicRepo:     new(mocks.MockTopicRepository),
		articleRepo:   new(mocks.MockArticleRepository),
		paramsRepo:    new(mocks.MockArticleParametersRepository),
		wordPressRepo: new(mocks.MockWordPressPostRepository),
	}
	service := services.NewGenerationService(
		m.generator,
		m.categoryRepo,
		m.topicRepo,
		m.articleRepo,
		m.paramsRepo,
		m.wordPressRepo,
	)
	return controllers.NewGenerationController(service), m
}

func TestGenerateTopicIdeasEndpoint(t *testing.T) {
	ideasJSON := `[{"title": "Idea One", "description": "First candidate."}]`

	tests := []struct {
		name           string
		requestBody    map[string]interface{}
		setupMock      func(*generationMocks)
		expectedStatus int
		expectedMsg    string
	}{
		{
			name:        "category source success",
			requestBody: map[string]interface{}{"category_id": 1, "count": 3},
			setupMock: func(m *generationMocks) {
				m.categoryRepo.On("FindByID", uint(1)).Return(&models.Category{ID: 1, Name: "Business"}, nil)
				m.generator.On("Generate", mock.Anything, mock.AnythingOfType("string")).Return(ideasJSON, nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "Generated 1 topic idea candidates",
		},
		{
			name:        "wordpress source success",
			requestBody: map[string]interface{}{"source": "wordpress", "count": 3},
			setupMock: func(m *generationMocks) {
				m.wordPressRepo.On("FindRecent", 10).Return([]models.WordPressPost{{WPID: 1, Title: "Post"}}, nil)
				m.generator.On("Generate", mock.Anything, mock.AnythingOfType("string")).Return(ideasJSON, nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "Generated 1 topic idea candidates",
		},
		{
			name:        "wordpress source without synced posts",
			requestBody: map[string]interface{}{"source": "wordpress"},
			setupMock: func(m *generationMocks) {
				m.wordPressRepo.On("FindRecent", 10).Return([]models.WordPressPost{}, nil)
			},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "No WordPress posts available",
		},
		{
			name:           "category source without category_id",
			requestBody:    map[string]interface{}{"count": 3},
			setupMock:      func(m *generationMocks) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Invalid request data",
		},
		{
			name:           "unknown source",
			requestBody:    map[string]interface{}{"source": "rss", "category_id": 1},
			setupMock:      func(m *generationMocks) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Invalid request data",
		},
		{
			name:        "category not found",
			requestBody: map[string]interface{}{"category_id": 99},
			setupMock: func(m *generationMocks) {
				m.categoryRepo.On("FindByID", uint(99)).Return(nil, repository.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedMsg:    "Failed to generate topic ideas",
		},
		{
			name:        "backend failure",
			requestBody: map[string]interface{}{"category_id": 1},
			setupMock: func(m *generationMocks) {
				m.categoryRepo.On("FindByID", uint(1)).Return(&models.Category{ID: 1, Name: "Business"}, nil)
				m.generator.On("Generate", mock.Anything, mock.AnythingOfType("string")).
					Return("", &ai.GenerationError{Message: "empty response from model"})
			},
			expectedStatus: http.StatusBadGateway,
			expectedMsg:    "Failed to generate topic ideas",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			controller, m := setupGenerationController()
			tt.setupMock(m)

			router := setupTestRouter()
			router.POST("/generation/topics", controller.GenerateTopicIdeas)

			body, _ := json.Marshal(tt.requestBody)
			req := httptest.NewRequest("POST", "/generation/topics", bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var response map[string]interface{}
			err := json.Unmarshal(w.Body.Bytes(), &response)
			assert.NoError(t, err)
			assert.Contains(t, response["message"], tt.expectedMsg)
		})
	}
}

func TestGenerateTopicIdeasEndpointNeverPersists(t *testing.T) {
	controller, m := setupGenerationController()
	m.categoryRepo.On("FindByID", uint(1)).Return(&models.Category{ID: 1, Name: "Business"}, nil)
	m.generator.On("Generate", mock.Anything, mock.AnythingOfType("string")).
		Return(`[{"title": "Candidate", "description": "Returned, not saved."}]`, nil)

	router := setupTestRouter()
	router.POST("/generation/topics", controller.GenerateTopicIdeas)

	body, _ := json.Marshal(map[string]interface{}{"category_id": 1})
	req := httptest.NewRequest("POST", "/generation/topics", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	m.topicRepo.AssertNotCalled(t, "Create", mock.Anything)
	m.topicRepo.AssertNotCalled(t, "CreateBatch", mock.Anything)
}

func TestConfirmTopicIdeasEndpoint(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    map[string]interface{}
		setupMock      func(*generationMocks)
		expectedStatus int
		expectedMsg    string
	}{
		{
			name: "saves selected ideas as draft topics",
			requestBody: map[string]interface{}{
				"category_id": 1,
				"ideas": []map[string]interface{}{
					{"title": "Chosen", "description": "Operator approved."},
				},
			},
			setupMock: func(m *generationMocks) {
				m.categoryRepo.On("FindByID", uint(1)).Return(&models.Category{ID: 1, Name: "Business"}, nil)
				m.topicRepo.On("CreateBatch", mock.AnythingOfType("[]*models.Topic")).Return(nil)
			},
			expectedStatus: http.StatusCreated,
			expectedMsg:    "Saved 1 topics",
		},
		{
			name: "idea without description rejected",
			requestBody: map[string]interface{}{
				"category_id": 1,
				"ideas": []map[string]interface{}{
					{"title": "No description"},
				},
			},
			setupMock:      func(m *generationMocks) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Invalid request data",
		},
		{
			name:           "missing ideas field rejected",
			requestBody:    map[string]interface{}{"category_id": 1},
			setupMock:      func(m *generationMocks) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Invalid request data",
		},
		{
			name: "slug collision",
			requestBody: map[string]interface{}{
				"category_id": 1,
				"ideas": []map[string]interface{}{
					{"title": "Duplicate", "description": "Slug already taken."},
				},
			},
			setupMock: func(m *generationMocks) {
				m.categoryRepo.On("FindByID", uint(1)).Return(&models.Category{ID: 1, Name: "Business"}, nil)
				m.topicRepo.On("CreateBatch", mock.AnythingOfType("[]*models.Topic")).Return(repository.ErrDuplicate)
			},
			expectedStatus: http.StatusConflict,
			expectedMsg:    "Failed to save topics",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			controller, m := setupGenerationController()
			tt.setupMock(m)

			router := setupTestRouter()
			router.POST("/generation/topics/confirm", controller.ConfirmTopicIdeas)

			body, _ := json.Marshal(tt.requestBody)
			req := httptest.NewRequest("POST", "/generation/topics/confirm", bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var response map[string]interface{}
			err := json.Unmarshal(w.Body.Bytes(), &response)
			assert.NoError(t, err)
			assert.Contains(t, response["message"], tt.expectedMsg)
		})
	}
}

func TestGenerateArticleEndpoint(t *testing.T) {
	topic := &models.Topic{
		ID:          5,
		Title:       "AI in Healthcare",
		Description: "Diagnostics",
		CategoryID:  1,
		Category:    &models.Category{ID: 1, Name: "Industry Applications"},
	}

	tests := []struct {
		name           string
		path           string
		setupMock      func(*generationMocks)
		expectedStatus int
	}{
		{
			name: "article generated and saved",
			path: "/generation/article/5",
			setupMock: func(m *generationMocks) {
				m.topicRepo.On("FindByID", uint(5)).Return(topic, nil)
				m.paramsRepo.On("FindDefault").Return(nil, repository.ErrNotFound)
				m.generator.On("Generate", mock.Anything, mock.AnythingOfType("string")).
					Return("# Article\n\nBody", nil)
				m.articleRepo.On("SaveWithTopicPublish", mock.AnythingOfType("*models.Article")).Return(nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "topic not found",
			path: "/generation/article/99",
			setupMock: func(m *generationMocks) {
				m.topicRepo.On("FindByID", uint(99)).Return(nil, repository.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name: "backend failure",
			path: "/generation/article/5",
			setupMock: func(m *generationMocks) {
				m.topicRepo.On("FindByID", uint(5)).Return(topic, nil)
				m.paramsRepo.On("FindDefault").Return(nil, repository.ErrNotFound)
				m.generator.On("Generate", mock.Anything, mock.AnythingOfType("string")).
					Return("", &ai.GenerationError{Message: "model unavailable"})
			},
			expectedStatus: http.StatusBadGateway,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			controller, m := setupGenerationController()
			tt.setupMock(m)

			router := setupTestRouter()
			router.POST("/generation/article/:id", controller.GenerateArticle)

			req := httptest.NewRequest("POST", tt.path, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestScoreArticleSEOEndpoint(t *testing.T) {
	article := &models.Article{ID: 8, Title: "AI in Healthcare", Content: "Body"}

	tests := []struct {
		name           string
		setupMock      func(*generationMocks)
		expectedStatus int
	}{
		{
			name: "scored and saved",
			setupMock: func(m *generationMocks) {
				m.articleRepo.On("FindByID", uint(8)).Return(article, nil)
				m.generator.On("Generate", mock.Anything, mock.AnythingOfType("string")).
					Return(`{"seo_score": 8, "meta_description": "d", "keywords": ["ai"], "seo_feedback": "f"}`, nil)
				m.articleRepo.On("UpdateSEO", uint(8), 8.0, "d", []string{"ai"}, "f").Return(nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "unparseable response",
			setupMock: func(m *generationMocks) {
				m.articleRepo.On("FindByID", uint(8)).Return(article, nil)
				m.generator.On("Generate", mock.Anything, mock.AnythingOfType("string")).
					Return("Sorry, I cannot help with that.", nil)
			},
			expectedStatus: http.StatusUnprocessableEntity,
		},
		{
			name: "article not found",
			setupMock: func(m *generationMocks) {
				m.articleRepo.On("FindByID", uint(8)).Return(nil, repository.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			controller, m := setupGenerationController()
			tt.setupMock(m)

			router := setupTestRouter()
			router.POST("/generation/article/:id/seo", controller.ScoreArticleSEO)

			req := httptest.NewRequest("POST", "/generation/article/8/seo", nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			if tt.expectedStatus != http.StatusOK {
				m.articleRepo.AssertNotCalled(t, "UpdateSEO", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
			}
		})
	}
}
