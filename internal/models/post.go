package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Post represents a community board topic stored in MongoDB
type Post struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Title     string             `json:"title" bson:"title"`
	Content   string             `json:"content" bson:"content"`
	ImageURL  string             `json:"image_url,omitempty" bson:"image_url,omitempty"`
	UserName  string             `json:"user_name" bson:"user_name"` // Display name captured at creation time
	UserID    *string            `json:"user_id" bson:"user_id"`     // Firebase UID of the author; nil for guests
	Likes     int                `json:"likes" bson:"likes"`
	Dislikes  int                `json:"dislikes" bson:"dislikes"`
	CreatedAt time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time          `json:"updated_at" bson:"updated_at"`

	// ChatComments is attached at feed-assembly time, sorted oldest first.
	ChatComments []Comment `json:"chat_comments" bson:"-"`
}

// Reaction kinds accepted by the reaction endpoint. They double as the BSON
// field names of the counters they bump.
const (
	ReactionLikes    = "likes"
	ReactionDislikes = "dislikes"
)

// SharePostRequest defines the request body for publishing a post. The same
// payload saves an in-progress edit when the caller's draft targets a post.
type SharePostRequest struct {
	Title    string `json:"title" validate:"required"`
	Content  string `json:"content" validate:"required"`
	ImageURL string `json:"image_url,omitempty"`
}

// ReactRequest defines the request body for reacting to a post
type ReactRequest struct {
	Kind string `json:"kind" validate:"required,oneof=likes dislikes"`
}
