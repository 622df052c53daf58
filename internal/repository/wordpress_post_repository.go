package repository

import (
	"blogforge/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type WordPressPostRepository interface {
	// Upsert inserts the post or refreshes its content when the external
	// id is already known.
	Upsert(post *models.WordPressPost) error
	FindAll() ([]models.WordPressPost, error)
	FindRecent(limit int) ([]models.WordPressPost, error)
}

type wordPressPostRepository struct {
	db *gorm.DB
}

func NewWordPressPostRepository(db *gorm.DB) WordPressPostRepository {
	return &wordPressPostRepository{db: db}
}

func (r *wordPressPostRepository) Upsert(post *models.WordPressPost) error {
	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "wp_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"title", "excerpt", "content", "wp_url", "published_date", "last_synced"}),
	}).Create(post).Error
	return translate(err)
}

func (r *wordPressPostRepository) FindAll() ([]models.WordPressPost, error) {
	var posts []models.WordPressPost
	err := r.db.Order("published_date DESC").Find(&posts).Error
	return posts, translate(err)
}

func (r *wordPressPostRepository) FindRecent(limit int) ([]models.WordPressPost, error) {
	var posts []models.WordPressPost
	err := r.db.Order("published_date DESC").Limit(limit).Find(&posts).Error
	return posts, translate(err)
}
