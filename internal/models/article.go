package models

import (
	"time"

	"blogforge/internal/utils"

	"gorm.io/gorm"
)

type Article struct {
	ID        uint      `gorm:"primaryKey" json:"id" example:"1"`
	TopicID   uint      `gorm:"not null;index" json:"topic_id" example:"1"`
	Topic     *Topic    `gorm:"foreignKey:TopicID" json:"topic,omitempty"`
	Title     string    `gorm:"size:200;not null" json:"title" example:"AI in Healthcare"`
	Slug      string    `gorm:"size:200;uniqueIndex;not null" json:"slug" example:"ai-in-healthcare"`
	Content   string    `gorm:"not null" json:"content"`
	CreatedAt time.Time `json:"created_at" example:"2023-01-01T00:00:00Z"`
	UpdatedAt time.Time `json:"updated_at" example:"2023-01-01T00:00:00Z"`

	// SEO fields stay empty until the scoring step runs; SEOScore doubles
	// as the "has been scored" marker.
	SEOScore        *float64 `json:"seo_score,omitempty" example:"8.5"`
	MetaDescription string   `gorm:"size:300" json:"meta_description,omitempty"`
	Keywords        []string `gorm:"serializer:json" json:"keywords,omitempty"`
	SEOFeedback     string   `json:"seo_feedback,omitempty"`
}

func (a *Article) BeforeCreate(tx *gorm.DB) error {
	if a.Slug == "" {
		a.Slug = utils.GenerateSlug(a.Title)
	}
	return nil
}
