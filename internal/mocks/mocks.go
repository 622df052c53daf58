// Package mocks provides testify mocks for the repository interfaces and
// the generation client, shared by the service and controller tests.
package mocks

import (
	"context"

	"blogforge/internal/models"
	"blogforge/internal/wordpress"

	"github.com/stretchr/testify/mock"
)

type MockGenerator struct {
	mock.Mock
}

func (m *MockGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}

type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) Create(category *models.Category) error {
	return m.Called(category).Error(0)
}

func (m *MockCategoryRepository) FindAll() ([]models.Category, error) {
	args := m.Called()
	return args.Get(0).([]models.Category), args.Error(1)
}

func (m *MockCategoryRepository) FindByID(id uint) (*models.Category, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Category), args.Error(1)
}

func (m *MockCategoryRepository) FindBySlug(slug string) (*models.Category, error) {
	args := m.Called(slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Category), args.Error(1)
}

func (m *MockCategoryRepository) FindOrCreateByName(name, description string) (*models.Category, error) {
	args := m.Called(name, description)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Category), args.Error(1)
}

func (m *MockCategoryRepository) Update(category *models.Category) error {
	return m.Called(category).Error(0)
}

func (m *MockCategoryRepository) Delete(id uint) error {
	return m.Called(id).Error(0)
}

func (m *MockCategoryRepository) DeleteAll() error {
	return m.Called().Error(0)
}

type MockTopicRepository struct {
	mock.Mock
}

func (m *MockTopicRepository) Create(topic *models.Topic) error {
	return m.Called(topic).Error(0)
}

func (m *MockTopicRepository) CreateBatch(topics []*models.Topic) error {
	return m.Called(topics).Error(0)
}

func (m *MockTopicRepository) FindAll() ([]models.Topic, error) {
	args := m.Called()
	return args.Get(0).([]models.Topic), args.Error(1)
}

func (m *MockTopicRepository) FindByID(id uint) (*models.Topic, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Topic), args.Error(1)
}

func (m *MockTopicRepository) FindBySlug(slug string) (*models.Topic, error) {
	args := m.Called(slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Topic), args.Error(1)
}

func (m *MockTopicRepository) FindByCategoryID(categoryID uint) ([]models.Topic, error) {
	args := m.Called(categoryID)
	return args.Get(0).([]models.Topic), args.Error(1)
}

func (m *MockTopicRepository) Update(topic *models.Topic) error {
	return m.Called(topic).Error(0)
}

func (m *MockTopicRepository) Delete(id uint) error {
	return m.Called(id).Error(0)
}

func (m *MockTopicRepository) DeleteAll() error {
	return m.Called().Error(0)
}

type MockArticleRepository struct {
	mock.Mock
}

func (m *MockArticleRepository) SaveWithTopicPublish(article *models.Article) error {
	return m.Called(article).Error(0)
}

func (m *MockArticleRepository) FindAll() ([]models.Article, error) {
	args := m.Called()
	return args.Get(0).([]models.Article), args.Error(1)
}

func (m *MockArticleRepository) FindByID(id uint) (*models.Article, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Article), args.Error(1)
}

func (m *MockArticleRepository) FindBySlug(slug string) (*models.Article, error) {
	args := m.Called(slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Article), args.Error(1)
}

func (m *MockArticleRepository) UpdateSEO(id uint, score float64, metaDescription string, keywords []string, feedback string) error {
	return m.Called(id, score, metaDescription, keywords, feedback).Error(0)
}

func (m *MockArticleRepository) Delete(id uint) error {
	return m.Called(id).Error(0)
}

func (m *MockArticleRepository) DeleteAll() error {
	return m.Called().Error(0)
}

type MockArticleParametersRepository struct {
	mock.Mock
}

func (m *MockArticleParametersRepository) Create(params *models.ArticleParameters) error {
	return m.Called(params).Error(0)
}

func (m *MockArticleParametersRepository) FindAll() ([]models.ArticleParameters, error) {
	args := m.Called()
	return args.Get(0).([]models.ArticleParameters), args.Error(1)
}

func (m *MockArticleParametersRepository) FindByID(id uint) (*models.ArticleParameters, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ArticleParameters), args.Error(1)
}

func (m *MockArticleParametersRepository) FindDefault() (*models.ArticleParameters, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ArticleParameters), args.Error(1)
}

func (m *MockArticleParametersRepository) Update(params *models.ArticleParameters) error {
	return m.Called(params).Error(0)
}

func (m *MockArticleParametersRepository) Delete(id uint) error {
	return m.Called(id).Error(0)
}

func (m *MockArticleParametersRepository) SetDefault(id uint) error {
	return m.Called(id).Error(0)
}

type MockWordPressPostRepository struct {
	mock.Mock
}

func (m *MockWordPressPostRepository) Upsert(post *models.WordPressPost) error {
	return m.Called(post).Error(0)
}

func (m *MockWordPressPostRepository) FindAll() ([]models.WordPressPost, error) {
	args := m.Called()
	return args.Get(0).([]models.WordPressPost), args.Error(1)
}

func (m *MockWordPressPostRepository) FindRecent(limit int) ([]models.WordPressPost, error) {
	args := m.Called(limit)
	return args.Get(0).([]models.WordPressPost), args.Error(1)
}

type MockWordPressFetcher struct {
	mock.Mock
}

func (m *MockWordPressFetcher) ListRecentPosts(ctx context.Context, limit int) ([]wordpress.Post, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]wordpress.Post), args.Error(1)
}
