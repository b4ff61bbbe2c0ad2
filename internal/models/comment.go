package models

import "time"

// Comment represents a reply to a post, stored in PostgreSQL
type Comment struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	PostID    string    `json:"post_id" gorm:"index"` // Hex ObjectID of the owning post
	Content   string    `json:"content"`
	UserName  string    `json:"user_name"`
	UserID    *string   `json:"user_id"` // Firebase UID of the author; nil for guests
	CreatedAt time.Time `json:"created_at"`
}

// TableName keeps the table name aligned with the client schema
func (Comment) TableName() string {
	return "chat_comments"
}

// CreateCommentRequest defines the request body for replying to a post
type CreateCommentRequest struct {
	Content string `json:"content" validate:"required"`
}
