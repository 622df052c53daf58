package models

import "time"

// ArticleParameters is a named, reusable generation configuration. At most
// one record carries IsDefault=true; the repository enforces that when the
// flag is flipped.
type ArticleParameters struct {
	ID              uint      `gorm:"primaryKey" json:"id" example:"1"`
	Name            string    `gorm:"size:200;not null" json:"name" example:"Long-form technical"`
	Purpose         string    `json:"purpose" example:"Educate readers about emerging technology"`
	TargetAudience  string    `json:"target_audience" example:"Technical decision makers"`
	Tone            string    `json:"tone" example:"professional"`
	TargetWordCount int       `gorm:"default:1500" json:"target_word_count" example:"2000"`
	IsDefault       bool      `gorm:"default:false;index" json:"is_default" example:"false"`
	CreatedAt       time.Time `json:"created_at" example:"2023-01-01T00:00:00Z"`
	UpdatedAt       time.Time `json:"updated_at" example:"2023-01-01T00:00:00Z"`
}

// DefaultArticleParameters is the hardcoded fallback used when no stored
// default exists.
func DefaultArticleParameters() *ArticleParameters {
	return &ArticleParameters{
		Name:            "default",
		Purpose:         "Provide valuable insights to readers",
		TargetAudience:  "General audience",
		Tone:            "informative",
		TargetWordCount: 1500,
	}
}
