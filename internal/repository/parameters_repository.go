package repository

import (
	"blogforge/internal/models"

	"gorm.io/gorm"
)

type ArticleParametersRepository interface {
	Create(params *models.ArticleParameters) error
	FindAll() ([]models.ArticleParameters, error)
	FindByID(id uint) (*models.ArticleParameters, error)
	// FindDefault returns the record flagged as default, or ErrNotFound
	// when none exists.
	FindDefault() (*models.ArticleParameters, error)
	Update(params *models.ArticleParameters) error
	Delete(id uint) error
	// SetDefault flags one record as default and clears the flag on every
	// other record in the same transaction.
	SetDefault(id uint) error
}

type articleParametersRepository struct {
	db *gorm.DB
}

func NewArticleParametersRepository(db *gorm.DB) ArticleParametersRepository {
	return &articleParametersRepository{db: db}
}

func (r *articleParametersRepository) Create(params *models.ArticleParameters) error {
	if !params.IsDefault {
		return translate(r.db.Create(params).Error)
	}

	// Creating a new default clears any previous one atomically.
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := clearDefaults(tx); err != nil {
			return err
		}
		return translate(tx.Create(params).Error)
	})
}

func (r *articleParametersRepository) FindAll() ([]models.ArticleParameters, error) {
	var records []models.ArticleParameters
	err := r.db.Order("name").Find(&records).Error
	return records, translate(err)
}

func (r *articleParametersRepository) FindByID(id uint) (*models.ArticleParameters, error) {
	var params models.ArticleParameters
	if err := r.db.First(&params, id).Error; err != nil {
		return nil, translate(err)
	}
	return &params, nil
}

func (r *articleParametersRepository) FindDefault() (*models.ArticleParameters, error) {
	var params models.ArticleParameters
	if err := r.db.Where("is_default = ?", true).First(&params).Error; err != nil {
		return nil, translate(err)
	}
	return &params, nil
}

func (r *articleParametersRepository) Update(params *models.ArticleParameters) error {
	return translate(r.db.Save(params).Error)
}

func (r *articleParametersRepository) Delete(id uint) error {
	result := r.db.Delete(&models.ArticleParameters{}, id)
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *articleParametersRepository) SetDefault(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var params models.ArticleParameters
		if err := tx.First(&params, id).Error; err != nil {
			return translate(err)
		}

		if err := clearDefaults(tx); err != nil {
			return err
		}

		return translate(tx.Model(&params).Update("is_default", true).Error)
	})
}

func clearDefaults(tx *gorm.DB) error {
	err := tx.Model(&models.ArticleParameters{}).
		Where("is_default = ?", true).
		Update("is_default", false).Error
	return translate(err)
}
