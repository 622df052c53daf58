package models

import (
	"time"

	"blogforge/internal/utils"

	"gorm.io/gorm"
)

// WordPressFallbackCategory is the bucket topics derived from synced
// WordPress posts land in when no category was chosen by the operator.
const WordPressFallbackCategory = "Ideas from WordPress"

type Category struct {
	ID          uint      `gorm:"primaryKey" json:"id" example:"1"`
	Name        string    `gorm:"size:200;uniqueIndex;not null" json:"name" example:"Artificial Intelligence"`
	Slug        string    `gorm:"size:200;uniqueIndex;not null" json:"slug" example:"artificial-intelligence"`
	Description string    `json:"description" example:"Everything about AI and machine learning."`
	CreatedAt   time.Time `json:"created_at" example:"2023-01-01T00:00:00Z"`
}

// BeforeCreate derives the slug from the name if the caller did not set one.
// An already-set slug is never recomputed.
func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.Slug == "" {
		c.Slug = utils.GenerateSlug(c.Name)
	}
	return nil
}
