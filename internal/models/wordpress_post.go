package models

import "time"

// WordPressPost mirrors a post synced from the external WordPress site. The
// generation pipeline only reads these records; the sync endpoint owns them.
type WordPressPost struct {
	ID            uint      `gorm:"primaryKey" json:"id" example:"1"`
	WPID          int       `gorm:"uniqueIndex;not null" json:"wp_id" example:"42"`
	Title         string    `gorm:"size:200" json:"title"`
	Excerpt       string    `json:"excerpt"`
	Content       string    `json:"content"`
	WPURL         string    `gorm:"size:500" json:"wp_url"`
	PublishedDate time.Time `json:"published_date"`
	LastSynced    time.Time `gorm:"autoUpdateTime" json:"last_synced"`
}
