// Package seed loads the static category/topic document consumed at
// initialization time and pushes it through the same repositories the rest
// of the application uses.
package seed

import (
	"fmt"
	"os"

	"blogforge/internal/models"
	"blogforge/internal/repository"

	"gopkg.in/yaml.v3"
)

type CategoryRecord struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

type TopicRecord struct {
	Title           string `yaml:"title"`
	Description     string `yaml:"description"`
	Category        string `yaml:"category"`
	TargetWordCount int    `yaml:"target_word_count"`
}

type File struct {
	Categories []CategoryRecord `yaml:"categories"`
	Topics     []TopicRecord    `yaml:"topics"`
}

func Load(path string) (*File, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}

	var f File
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("failed to parse seed file: %w", err)
	}
	return &f, nil
}

// Apply seeds categories first, then topics, resolving each topic's
// category by name. Already-existing categories are reused, so seeding is
// idempotent for categories; duplicate topic slugs surface as ErrDuplicate.
func Apply(f *File, categoryRepo repository.CategoryRepository, topicRepo repository.TopicRepository) (int, int, error) {
	categoriesSeeded := 0
	for _, record := range f.Categories {
		if _, err := categoryRepo.FindOrCreateByName(record.Name, record.Description); err != nil {
			return categoriesSeeded, 0, fmt.Errorf("failed to seed category %q: %w", record.Name, err)
		}
		categoriesSeeded++
	}

	topicsSeeded := 0
	for _, record := range f.Topics {
		category, err := categoryRepo.FindOrCreateByName(record.Category, "")
		if err != nil {
			return categoriesSeeded, topicsSeeded, fmt.Errorf("failed to resolve category %q: %w", record.Category, err)
		}

		topic := &models.Topic{
			Title:       record.Title,
			Description: record.Description,
			CategoryID:  category.ID,
			Status:      models.TopicStatusDraft,
		}
		if record.TargetWordCount > 0 {
			topic.TargetWordCount = record.TargetWordCount
		}
		if err := topicRepo.Create(topic); err != nil {
			return categoriesSeeded, topicsSeeded, fmt.Errorf("failed to seed topic %q: %w", record.Title, err)
		}
		topicsSeeded++
	}

	return categoriesSeeded, topicsSeeded, nil
}
