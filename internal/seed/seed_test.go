package seed

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"blogforge/internal/mocks"
	"blogforge/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

const sampleDocument = `categories:
  - name: Artificial Intelligence
    description: Core AI concepts.
  - name: Business
    description: Strategy and operations.

topics:
  - title: What are vertical AI agents?
    description: Explore the concept of vertical AI agents.
    category: Artificial Intelligence
    target_word_count: 2000
  - title: Industries ripe for disruption
    description: Analysis of likely transformations.
    category: Business
`

func writeTempSeedFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "topics.yaml")
	err := os.WriteFile(path, []byte(content), 0o644)
	assert.NoError(t, err)
	return path
}

func TestLoad(t *testing.T) {
	path := writeTempSeedFile(t, sampleDocument)

	f, err := Load(path)

	assert.NoError(t, err)
	assert.Len(t, f.Categories, 2)
	assert.Len(t, f.Topics, 2)
	assert.Equal(t, "Artificial Intelligence", f.Categories[0].Name)
	assert.Equal(t, "What are vertical AI agents?", f.Topics[0].Title)
	assert.Equal(t, 2000, f.Topics[0].TargetWordCount)
	assert.Equal(t, 0, f.Topics[1].TargetWordCount)
}

func TestLoadMissingFile(t *testing.T) {
	f, err := Load("/nonexistent/topics.yaml")

	assert.Nil(t, f)
	assert.ErrorContains(t, err, "failed to read seed file")
}

func TestLoadInvalidYAML(t *testing.T) {
	path := writeTempSeedFile(t, "categories: [unclosed")

	f, err := Load(path)

	assert.Nil(t, f)
	assert.ErrorContains(t, err, "failed to parse seed file")
}

func TestApply(t *testing.T) {
	categoryRepo := new(mocks.MockCategoryRepository)
	topicRepo := new(mocks.MockTopicRepository)

	aiCategory := &models.Category{ID: 1, Name: "Artificial Intelligence"}
	business := &models.Category{ID: 2, Name: "Business"}

	categoryRepo.On("FindOrCreateByName", "Artificial Intelligence", mock.AnythingOfType("string")).Return(aiCategory, nil)
	categoryRepo.On("FindOrCreateByName", "Business", mock.AnythingOfType("string")).Return(business, nil)
	topicRepo.On("Create", mock.MatchedBy(func(topic *models.Topic) bool {
		return topic.Title == "What are vertical AI agents?" &&
			topic.CategoryID == 1 &&
			topic.Status == models.TopicStatusDraft &&
			topic.TargetWordCount == 2000
	})).Return(nil)
	topicRepo.On("Create", mock.MatchedBy(func(topic *models.Topic) bool {
		return topic.Title == "Industries ripe for disruption" && topic.CategoryID == 2
	})).Return(nil)

	f, err := Load(writeTempSeedFile(t, sampleDocument))
	assert.NoError(t, err)

	categories, topics, err := Apply(f, categoryRepo, topicRepo)

	assert.NoError(t, err)
	assert.Equal(t, 2, categories)
	assert.Equal(t, 2, topics)
	categoryRepo.AssertExpectations(t)
	topicRepo.AssertExpectations(t)
}

func TestApplyStopsOnTopicError(t *testing.T) {
	categoryRepo := new(mocks.MockCategoryRepository)
	topicRepo := new(mocks.MockTopicRepository)

	category := &models.Category{ID: 1, Name: "Artificial Intelligence"}
	categoryRepo.On("FindOrCreateByName", mock.AnythingOfType("string"), mock.AnythingOfType("string")).Return(category, nil)
	topicRepo.On("Create", mock.AnythingOfType("*models.Topic")).Return(errors.New("database error")).Once()

	f := &File{
		Categories: []CategoryRecord{{Name: "Artificial Intelligence"}},
		Topics: []TopicRecord{
			{Title: "Fails", Description: "d", Category: "Artificial Intelligence"},
			{Title: "Never reached", Description: "d", Category: "Artificial Intelligence"},
		},
	}

	categories, topics, err := Apply(f, categoryRepo, topicRepo)

	assert.Error(t, err)
	assert.Equal(t, 1, categories)
	assert.Equal(t, 0, topics)
	topicRepo.AssertNumberOfCalls(t, "Create", 1)
}
