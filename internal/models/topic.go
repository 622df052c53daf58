package models

import (
	"time"

	"blogforge/internal/utils"

	"gorm.io/gorm"
)

const (
	TopicStatusDraft     = "draft"
	TopicStatusPublished = "published"

	// TopicStatusInProgress is part of the status enum for schema
	// compatibility but no workflow sets it yet.
	TopicStatusInProgress = "in_progress"
)

type Topic struct {
	ID              uint      `gorm:"primaryKey" json:"id" example:"1"`
	Title           string    `gorm:"size:200;not null" json:"title" example:"AI in Healthcare"`
	Slug            string    `gorm:"size:200;uniqueIndex;not null" json:"slug" example:"ai-in-healthcare"`
	Description     string    `gorm:"not null" json:"description" example:"How AI is transforming diagnostics."`
	CategoryID      uint      `gorm:"not null;index" json:"category_id" example:"1"`
	Category        *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Status          string    `gorm:"size:20;default:draft" json:"status" example:"draft"`
	TargetWordCount int       `gorm:"default:1500" json:"target_word_count" example:"2000"`
	CreatedAt       time.Time `json:"created_at" example:"2023-01-01T00:00:00Z"`
	UpdatedAt       time.Time `json:"updated_at" example:"2023-01-01T00:00:00Z"`
}

func (t *Topic) BeforeCreate(tx *gorm.DB) error {
	if t.Slug == "" {
		t.Slug = utils.GenerateSlug(t.Title)
	}
	if t.Status == "" {
		t.Status = TopicStatusDraft
	}
	return nil
}
