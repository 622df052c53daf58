package repository

import (
	"blogforge/internal/models"

	"gorm.io/gorm"
)

type TopicRepository interface {
	Create(topic *models.Topic) error
	CreateBatch(topics []*models.Topic) error
	FindAll() ([]models.Topic, error)
	FindByID(id uint) (*models.Topic, error)
	FindBySlug(slug string) (*models.Topic, error)
	FindByCategoryID(categoryID uint) ([]models.Topic, error)
	Update(topic *models.Topic) error
	Delete(id uint) error
	DeleteAll() error
}

type topicRepository struct {
	db *gorm.DB
}

func NewTopicRepository(db *gorm.DB) TopicRepository {
	return &topicRepository{db: db}
}

func (r *topicRepository) Create(topic *models.Topic) error {
	if err := r.requireCategory(r.db, topic.CategoryID); err != nil {
		return err
	}
	return translate(r.db.Create(topic).Error)
}

// CreateBatch saves a set of confirmed topic ideas in one transaction, so a
// slug collision in the middle of the batch leaves nothing half-saved.
func (r *topicRepository) CreateBatch(topics []*models.Topic) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		for _, topic := range topics {
			if err := r.requireCategory(tx, topic.CategoryID); err != nil {
				return err
			}
			if err := tx.Create(topic).Error; err != nil {
				return translate(err)
			}
		}
		return nil
	})
}

func (r *topicRepository) requireCategory(tx *gorm.DB, categoryID uint) error {
	var count int64
	if err := tx.Model(&models.Category{}).Where("id = ?", categoryID).Count(&count).Error; err != nil {
		return translate(err)
	}
	if count == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *topicRepository) FindAll() ([]models.Topic, error) {
	var topics []models.Topic
	err := r.db.Preload("Category").Order("created_at DESC").Find(&topics).Error
	return topics, translate(err)
}

func (r *topicRepository) FindByID(id uint) (*models.Topic, error) {
	var topic models.Topic
	if err := r.db.Preload("Category").First(&topic, id).Error; err != nil {
		return nil, translate(err)
	}
	return &topic, nil
}

func (r *topicRepository) FindBySlug(slug string) (*models.Topic, error) {
	var topic models.Topic
	if err := r.db.Preload("Category").Where("slug = ?", slug).First(&topic).Error; err != nil {
		return nil, translate(err)
	}
	return &topic, nil
}

func (r *topicRepository) FindByCategoryID(categoryID uint) ([]models.Topic, error) {
	var topics []models.Topic
	err := r.db.Where("category_id = ?", categoryID).Order("created_at DESC").Find(&topics).Error
	return topics, translate(err)
}

func (r *topicRepository) Update(topic *models.Topic) error {
	return translate(r.db.Save(topic).Error)
}

func (r *topicRepository) Delete(id uint) error {
	result := r.db.Delete(&models.Topic{}, id)
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *topicRepository) DeleteAll() error {
	return translate(r.db.Where("1 = 1").Delete(&models.Topic{}).Error)
}
