package models

import "time"

// Draft is the composer state of one actor. At most one row exists per
// actor; while EditingPostID is set, publishing saves that post instead of
// creating a new one. Starting another edit replaces the row.
type Draft struct {
	ID            string    `json:"id" gorm:"primaryKey"`
	ActorKey      string    `json:"-" gorm:"uniqueIndex"`
	EditingPostID *string   `json:"editing_post_id"`
	Title         string    `json:"title"`
	Content       string    `json:"content"`
	ImageURL      string    `json:"image_url,omitempty"`
	UpdatedAt     time.Time `json:"updated_at"`
}
