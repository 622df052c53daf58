package repository

import (
	"errors"

	"blogforge/internal/models"

	"gorm.io/gorm"
)

type CategoryRepository interface {
	Create(category *models.Category) error
	FindAll() ([]models.Category, error)
	FindByID(id uint) (*models.Category, error)
	FindBySlug(slug string) (*models.Category, error)
	FindOrCreateByName(name, description string) (*models.Category, error)
	Update(category *models.Category) error
	Delete(id uint) error
	DeleteAll() error
}

type categoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) Create(category *models.Category) error {
	return translate(r.db.Create(category).Error)
}

func (r *categoryRepository) FindAll() ([]models.Category, error) {
	var categories []models.Category
	err := r.db.Order("name").Find(&categories).Error
	return categories, translate(err)
}

func (r *categoryRepository) FindByID(id uint) (*models.Category, error) {
	var category models.Category
	if err := r.db.First(&category, id).Error; err != nil {
		return nil, translate(err)
	}
	return &category, nil
}

func (r *categoryRepository) FindBySlug(slug string) (*models.Category, error) {
	var category models.Category
	if err := r.db.Where("slug = ?", slug).First(&category).Error; err != nil {
		return nil, translate(err)
	}
	return &category, nil
}

// FindOrCreateByName resolves a category by name, creating it when absent.
// Used for the WordPress fallback bucket so externally-sourced topics never
// fail on a missing category.
func (r *categoryRepository) FindOrCreateByName(name, description string) (*models.Category, error) {
	var category models.Category
	err := r.db.Where("name = ?", name).First(&category).Error
	if err == nil {
		return &category, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, translate(err)
	}

	category = models.Category{Name: name, Description: description}
	if err := r.db.Create(&category).Error; err != nil {
		return nil, translate(err)
	}
	return &category, nil
}

func (r *categoryRepository) Update(category *models.Category) error {
	return translate(r.db.Save(category).Error)
}

func (r *categoryRepository) Delete(id uint) error {
	result := r.db.Delete(&models.Category{}, id)
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *categoryRepository) DeleteAll() error {
	return translate(r.db.Where("1 = 1").Delete(&models.Category{}).Error)
}
