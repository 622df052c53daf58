package controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"blogforge/internal/controllers"
	"blogforge/internal/mocks"
	"blogforge/internal/models"
	"blogforge/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupTopicController() (*controllers.TopicController, *mocks.MockTopicRepository) {
	mockRepo := new(mocks.MockTopicRepository)
	controller := controllers.NewTopicController(mockRepo)
	return controller, mockRepo
}

func TestCreateTopic(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    map[string]interface{}
		setupMock      func(*mocks.MockTopicRepository)
		expectedStatus int
	}{
		{
			name: "successful creation",
			requestBody: map[string]interface{}{
				"title":       "AI in Healthcare",
				"description": "Personalized diagnostics",
				"category_id": 1,
			},
			setupMock: func(m *mocks.MockTopicRepository) {
				m.On("Create", mock.MatchedBy(func(topic *models.Topic) bool {
					return topic.Title == "AI in Healthcare" && topic.Status == models.TopicStatusDraft
				})).Return(nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "missing title",
			requestBody: map[string]interface{}{
				"description": "No title",
				"category_id": 1,
			},
			setupMock:      func(m *mocks.MockTopicRepository) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "category does not exist",
			requestBody: map[string]interface{}{
				"title":       "Orphan",
				"description": "Bad category",
				"category_id": 99,
			},
			setupMock: func(m *mocks.MockTopicRepository) {
				m.On("Create", mock.AnythingOfType("*models.Topic")).Return(repository.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name: "duplicate slug",
			requestBody: map[string]interface{}{
				"title":       "AI in Healthcare",
				"description": "Same title again",
				"category_id": 1,
			},
			setupMock: func(m *mocks.MockTopicRepository) {
				m.On("Create", mock.AnythingOfType("*models.Topic")).Return(repository.ErrDuplicate)
			},
			expectedStatus: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			controller, mockRepo := setupTopicController()
			tt.setupMock(mockRepo)

			router := setupTestRouter()
			router.POST("/topic", controller.CreateTopic)

			body, _ := json.Marshal(tt.requestBody)
			req := httptest.NewRequest("POST", "/topic", bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestGetAllTopics(t *testing.T) {
	controller, mockRepo := setupTopicController()
	mockRepo.On("FindAll").Return([]models.Topic{
		{ID: 1, Title: "First", Status: models.TopicStatusDraft},
		{ID: 2, Title: "Second", Status: models.TopicStatusPublished},
	}, nil)

	router := setupTestRouter()
	router.GET("/topic", controller.GetAllTopics)

	req := httptest.NewRequest("GET", "/topic", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Len(t, response["data"], 2)
}

func TestGetTopicBySlug(t *testing.T) {
	tests := []struct {
		name           string
		slug           string
		setupMock      func(*mocks.MockTopicRepository)
		expectedStatus int
	}{
		{
			name: "found",
			slug: "ai-in-healthcare",
			setupMock: func(m *mocks.MockTopicRepository) {
				m.On("FindBySlug", "ai-in-healthcare").Return(&models.Topic{ID: 1, Slug: "ai-in-healthcare"}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "not found",
			slug: "missing",
			setupMock: func(m *mocks.MockTopicRepository) {
				m.On("FindBySlug", "missing").Return(nil, repository.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			controller, mockRepo := setupTopicController()
			tt.setupMock(mockRepo)

			router := setupTestRouter()
			router.GET("/topic/slug/:slug", controller.GetTopicBySlug)

			req := httptest.NewRequest("GET", "/topic/slug/"+tt.slug, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestUpdateTopicKeepsSlugAndStatus(t *testing.T) {
	controller, mockRepo := setupTopicController()
	existing := &models.Topic{
		ID:     1,
		Title:  "Old Title",
		Slug:   "old-title",
		Status: models.TopicStatusPublished,
	}
	mockRepo.On("FindByID", uint(1)).Return(existing, nil)
	mockRepo.On("Update", mock.MatchedBy(func(topic *models.Topic) bool {
		return topic.Title == "New Title" &&
			topic.Slug == "old-title" &&
			topic.Status == models.TopicStatusPublished
	})).Return(nil)

	router := setupTestRouter()
	router.PUT("/topic/:id", controller.UpdateTopic)

	body, _ := json.Marshal(map[string]interface{}{
		"title":       "New Title",
		"description": "Updated",
		"category_id": 1,
	})
	req := httptest.NewRequest("PUT", "/topic/1", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockRepo.AssertExpectations(t)
}

func TestDeleteTopic(t *testing.T) {
	controller, mockRepo := setupTopicController()
	mockRepo.On("Delete", uint(1)).Return(nil)

	router := setupTestRouter()
	router.DELETE("/topic/:id", controller.DeleteTopic)

	req := httptest.NewRequest("DELETE", "/topic/1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockRepo.AssertExpectations(t)
}
